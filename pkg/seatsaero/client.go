package seatsaero

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"mileage/pkg/logger"
	"mileage/pkg/querycodec"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

const searchPath = "/partnerapi/search"

var (
	ErrUnexpectedStatus  = errors.New("seatsaero: unexpected status")
	ErrMalformedResponse = errors.New("seatsaero: malformed response")
)

// Query is a single-day cached search.
type Query struct {
	OriginAirports      []string
	DestinationAirports []string
	Date                string
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     logger.Logger
	tracer     trace.Tracer
	validate   *validator.Validate
	limiter    *rate.Limiter
}

// NewClient builds a partner API client. Timeouts are the caller's concern and
// belong on httpClient.
func NewClient(httpClient *http.Client, baseURL, apiKey string, log logger.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		logger:     log,
		tracer:     otel.Tracer("mileage/seatsaero"),
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}
}

// WithRateLimit throttles outbound calls to rps with the given burst. Callers
// block until a token is free or their context ends. rps <= 0 disables it.
func (c *Client) WithRateLimit(rps float64, burst int) *Client {
	if rps <= 0 {
		c.limiter = nil
		return c
	}
	c.limiter = rate.NewLimiter(rate.Limit(rps), max(burst, 1))
	return c
}

// Search performs exactly one GET against the cached search endpoint. The
// start and end of the window are both q.Date.
func (c *Client) Search(ctx context.Context, q Query) (*SearchResponse, error) {
	ctx, span := c.tracer.Start(ctx, "seatsaero.search",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.StringSlice("mileage.origin_airports", q.OriginAirports),
			attribute.StringSlice("mileage.destination_airports", q.DestinationAirports),
			attribute.String("mileage.date", q.Date),
		),
	)
	defer span.End()

	resp, err := c.search(ctx, q)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("mileage.records", len(resp.Data)))
	return resp, nil
}

func (c *Client) search(ctx context.Context, q Query) (*SearchResponse, error) {
	query := querycodec.Encode(querycodec.Params{
		"origin_airport":      strings.Join(q.OriginAirports, ","),
		"destination_airport": strings.Join(q.DestinationAirports, ","),
		"start_date":          q.Date,
		"end_date":            q.Date,
	})
	url := fmt.Sprintf("%s%s?%s", c.baseURL, searchPath, query)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("seatsaero: rate limit wait: %w", err)
		}
	}

	r, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("seatsaero: failed to build request: %w", err)
	}
	r.Header.Set("Partner-Authorization", c.apiKey)
	r.Header.Set("Accept", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(r.Header))

	c.logger.Debug("calling seats.aero", logger.Field{Key: "url", Value: url})

	resp, err := c.httpClient.Do(r)
	if err != nil {
		return nil, fmt.Errorf("seatsaero: external api call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var apiResp SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("seatsaero: failed to decode json response: %w", err)
	}

	if err := c.validate.Struct(&apiResp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return &apiResp, nil
}
