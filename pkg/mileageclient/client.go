package mileageclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"mileage/pkg/logger"
	"mileage/pkg/querycodec"
)

const searchPath = "/api/search-mileage"

var ErrUnexpectedResponse = errors.New("mileageclient: unexpected response")

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     logger.Logger
}

func NewClient(httpClient *http.Client, baseURL string, log logger.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     log,
	}
}

// Search calls the mileage service. A 400 or 500 envelope comes back as *APIError.
func (c *Client) Search(ctx context.Context, p Params) ([]Entry, error) {
	query := querycodec.Encode(querycodec.Params{
		"originAirport":      p.OriginAirports,
		"destinationAirport": p.DestinationAirports,
		"departureDate":      p.DepartureDate,
		"minimumFees":        p.MinimumFees,
		"maximumFees":        p.MaximumFees,
		"onlyDirectFlights":  p.OnlyDirectFlights,
	})
	url := fmt.Sprintf("%s%s?%s", c.baseURL, searchPath, query)

	r, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("mileageclient: failed to build request: %w", err)
	}
	r.Header.Set("Accept", "application/json")

	c.logger.Debug("calling mileage api", logger.Field{Key: "url", Value: url})

	resp, err := c.httpClient.Do(r)
	if err != nil {
		return nil, fmt.Errorf("mileageclient: api call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || len(errResp.ErrorMessages) == 0 {
			return nil, fmt.Errorf("%w: status %d", ErrUnexpectedResponse, resp.StatusCode)
		}
		return nil, &APIError{Code: resp.StatusCode, Messages: errResp.ErrorMessages}
	}

	var apiResp searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("mileageclient: failed to decode json response: %w", err)
	}
	if apiResp.Data == nil {
		return []Entry{}, nil
	}
	return apiResp.Data, nil
}
