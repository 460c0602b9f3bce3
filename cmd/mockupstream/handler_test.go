package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mileage/pkg/logger"
	"mileage/pkg/seatsaero"
)

func newMockServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h, err := newPartnerHandler(fixture)
	require.NoError(t, err)

	r := gin.New()
	h.RegisterRoutes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestSearchHandler_RequiresPartnerKey(t *testing.T) {
	srv := newMockServer(t)

	resp, err := http.Get(srv.URL + "/partnerapi/search?origin_airport=JFK")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSearchHandler_FiltersThroughRealClient(t *testing.T) {
	srv := newMockServer(t)
	client := seatsaero.NewClient(srv.Client(), srv.URL, "test-key", logger.Nop())

	resp, err := client.Search(context.Background(), seatsaero.Query{
		OriginAirports:      []string{"JFK", "EWR"},
		DestinationAirports: []string{"LHR"},
		Date:                "2025-06-01",
	})
	require.NoError(t, err)

	require.Len(t, resp.Data, 3)
	for _, a := range resp.Data {
		assert.Equal(t, "2025-06-01", a.Date)
		assert.Equal(t, "LHR", a.Route.DestinationAirport)
		assert.Contains(t, []string{"JFK", "EWR"}, a.Route.OriginAirport)
	}
	assert.Equal(t, 3, resp.Count)
	assert.False(t, resp.HasMore)
}

func TestSearchHandler_NoMatch(t *testing.T) {
	srv := newMockServer(t)
	client := seatsaero.NewClient(srv.Client(), srv.URL, "test-key", logger.Nop())

	resp, err := client.Search(context.Background(), seatsaero.Query{
		OriginAirports:      []string{"ORD"},
		DestinationAirports: []string{"LHR"},
		Date:                "2025-06-01",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Data)
}

func TestCodeSet(t *testing.T) {
	assert.Equal(t, map[string]bool{"JFK": true, "EWR": true}, codeSet(" jfk,EWR,,"))
	assert.Empty(t, codeSet(""))
}

func TestNewPartnerHandler_InvalidFixture(t *testing.T) {
	_, err := newPartnerHandler([]byte(`{"data": [1]}`))
	assert.Error(t, err)
}
