package main

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

//go:embed data/availability.json
var fixture []byte

type fixtureFile struct {
	Data []json.RawMessage `json:"data"`
}

type availabilityKey struct {
	Date  string `json:"Date"`
	Route struct {
		OriginAirport      string `json:"OriginAirport"`
		DestinationAirport string `json:"DestinationAirport"`
	} `json:"Route"`
}

type availabilityRow struct {
	key availabilityKey
	raw json.RawMessage
}

type searchResponse struct {
	Data    []json.RawMessage `json:"data"`
	Count   int               `json:"count"`
	HasMore bool              `json:"hasMore"`
	Cursor  int               `json:"cursor"`
}

type partnerHandler struct {
	rows []availabilityRow
}

// newPartnerHandler indexes the fixture once. Records pass through untouched
// so odd upstream values in the fixture reach the client as-is.
func newPartnerHandler(data []byte) (*partnerHandler, error) {
	var file fixtureFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse availability fixture: %w", err)
	}

	rows := make([]availabilityRow, 0, len(file.Data))
	for i, raw := range file.Data {
		var key availabilityKey
		if err := json.Unmarshal(raw, &key); err != nil {
			return nil, fmt.Errorf("failed to parse availability record %d: %w", i, err)
		}
		rows = append(rows, availabilityRow{key: key, raw: raw})
	}
	return &partnerHandler{rows: rows}, nil
}

func (h *partnerHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/partnerapi/search", h.SearchHandler)
}

func (h *partnerHandler) SearchHandler(c *gin.Context) {
	if c.GetHeader("Partner-Authorization") == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing Partner-Authorization header"})
		return
	}

	origins := codeSet(c.Query("origin_airport"))
	destinations := codeSet(c.Query("destination_airport"))
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")

	filtered := make([]json.RawMessage, 0)
	for _, row := range h.rows {
		if len(origins) > 0 && !origins[row.key.Route.OriginAirport] {
			continue
		}
		if len(destinations) > 0 && !destinations[row.key.Route.DestinationAirport] {
			continue
		}
		// ISO dates compare lexically.
		if startDate != "" && row.key.Date < startDate {
			continue
		}
		if endDate != "" && row.key.Date > endDate {
			continue
		}
		filtered = append(filtered, row.raw)
	}

	c.JSON(http.StatusOK, searchResponse{
		Data:  filtered,
		Count: len(filtered),
	})
}

func codeSet(raw string) map[string]bool {
	set := make(map[string]bool)
	for _, code := range strings.Split(raw, ",") {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code != "" {
			set[code] = true
		}
	}
	return set
}
