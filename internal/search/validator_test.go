package search

import (
	"testing"

	"mileage/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestValidator_Valid(t *testing.T) {
	v := NewRequestValidator(logger.Nop())

	req, problems := v.Validate(map[string]string{
		"originAirport":      "jfk, EWR",
		"destinationAirport": "LHR",
		"departureDate":      "2025-06-01",
		"minimumFees":        "10",
		"maximumFees":        "250.5",
		"onlyDirectFlights":  "true",
	})
	require.Empty(t, problems)

	assert.Equal(t, []string{"JFK", "EWR"}, req.OriginAirports)
	assert.Equal(t, []string{"LHR"}, req.DestinationAirports)
	assert.Equal(t, "2025-06-01", req.DepartureDate)
	require.NotNil(t, req.MinimumFees)
	assert.Equal(t, 10.0, *req.MinimumFees)
	require.NotNil(t, req.MaximumFees)
	assert.Equal(t, 250.5, *req.MaximumFees)
	assert.True(t, req.OnlyDirectFlights)
}

func TestRequestValidator_OptionalFieldsAbsent(t *testing.T) {
	v := NewRequestValidator(logger.Nop())

	req, problems := v.Validate(map[string]string{
		"originAirport":      "JFK",
		"destinationAirport": "LHR",
		"departureDate":      "2025-06-01",
	})
	require.Empty(t, problems)

	assert.Nil(t, req.MinimumFees)
	assert.Nil(t, req.MaximumFees)
	assert.False(t, req.OnlyDirectFlights)
}

func TestRequestValidator_AllRequiredMissing(t *testing.T) {
	v := NewRequestValidator(logger.Nop())

	_, problems := v.Validate(map[string]string{})

	assert.Equal(t, []string{
		"origin airports (comma-separated) is required",
		"destination airports (comma-separated) is required",
		"departure date is required",
	}, problems)
}

func TestRequestValidator_ReportsEveryRule(t *testing.T) {
	v := NewRequestValidator(logger.Nop())

	_, problems := v.Validate(map[string]string{
		"originAirport":      "JFK,LONDON,EW1",
		"destinationAirport": " , ",
		"departureDate":      "01/06/2025",
		"minimumFees":        "-5",
		"maximumFees":        "-1",
		"onlyDirectFlights":  "sometimes",
	})

	assert.Equal(t, []string{
		"origin airports must be 3-letter IATA codes",
		"destination airports (comma-separated) is required",
		"date must follow the format YYYY-MM-DD",
		"minimumFees must be a non-negative number",
		"maximumFees must be a non-negative number",
		"onlyDirectFlights must be a boolean",
	}, problems)
}

func TestRequestValidator_ImpossibleDate(t *testing.T) {
	v := NewRequestValidator(logger.Nop())

	_, problems := v.Validate(map[string]string{
		"originAirport":      "JFK",
		"destinationAirport": "LHR",
		"departureDate":      "2025-02-30",
	})

	assert.Equal(t, []string{"date must follow the format YYYY-MM-DD"}, problems)
}

func TestRequestValidator_NonNumericFeesAreAbsent(t *testing.T) {
	v := NewRequestValidator(logger.Nop())

	req, problems := v.Validate(map[string]string{
		"originAirport":      "JFK",
		"destinationAirport": "LHR",
		"departureDate":      "2025-06-01",
		"minimumFees":        "cheap",
		"maximumFees":        "NaN",
	})
	require.Empty(t, problems)

	assert.Nil(t, req.MinimumFees)
	assert.Nil(t, req.MaximumFees)
}

func TestRequestValidator_FeeOrderingNotEnforced(t *testing.T) {
	v := NewRequestValidator(logger.Nop())

	req, problems := v.Validate(map[string]string{
		"originAirport":      "JFK",
		"destinationAirport": "LHR",
		"departureDate":      "2025-06-01",
		"minimumFees":        "500",
		"maximumFees":        "10",
	})
	require.Empty(t, problems)

	assert.Equal(t, 500.0, *req.MinimumFees)
	assert.Equal(t, 10.0, *req.MaximumFees)
}
