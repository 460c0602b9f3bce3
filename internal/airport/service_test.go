package airport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDataset = `{
  "EGLL": {"icao": "EGLL", "iata": "LHR", "name": "London Heathrow Airport"},
  "EGLW": {"icao": "EGLW", "iata": "", "name": "London Heliport"},
  "EGKK": {"icao": "EGKK", "iata": "LGW", "name": "London Gatwick Airport"},
  "KJFK": {"icao": "KJFK", "iata": "JFK", "name": "John F Kennedy International Airport"}
}`

func newSampleService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewServiceFromReader(strings.NewReader(sampleDataset))
	require.NoError(t, err)
	return svc
}

func TestLookup_CaseInsensitiveSubstring(t *testing.T) {
	svc := newSampleService(t)

	got := svc.Lookup("LONDON")

	assert.Equal(t, []Airport{
		{Code: "LHR", Name: "London Heathrow Airport"},
		{Code: "LGW", Name: "London Gatwick Airport"},
	}, got)
}

func TestLookup_EmptyQuery(t *testing.T) {
	svc := newSampleService(t)

	got := svc.Lookup("  ")

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLookup_NoMatch(t *testing.T) {
	svc := newSampleService(t)

	assert.Empty(t, svc.Lookup("atlantis"))
}

func TestNewService_EmbeddedDataset(t *testing.T) {
	svc, err := NewService()
	require.NoError(t, err)

	got := svc.Lookup("kennedy")
	require.Len(t, got, 1)
	assert.Equal(t, "JFK", got[0].Code)

	for _, a := range svc.Lookup("heliport") {
		assert.NotEmpty(t, a.Code)
	}
}

func TestNewServiceFromReader_Invalid(t *testing.T) {
	_, err := NewServiceFromReader(strings.NewReader(`[]`))
	assert.Error(t, err)

	_, err = NewServiceFromReader(strings.NewReader(`{"X": 1}`))
	assert.Error(t, err)
}

func TestLookupHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewAirportHandler(newSampleService(t)).RegisterRoutes(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/airports?q=gat", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var got []Airport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, []Airport{{Code: "LGW", Name: "London Gatwick Airport"}}, got)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/airports", nil))
	assert.JSONEq(t, `[]`, w.Body.String())
}
