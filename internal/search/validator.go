package search

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"mileage/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// searchParams mirrors the raw query after splitting and coercion. Tags carry
// the rules; messages are attached in fieldMessage.
type searchParams struct {
	OriginAirport      []string `validate:"required,min=1,dive,len=3,alpha"`
	DestinationAirport []string `validate:"required,min=1,dive,len=3,alpha"`
	DepartureDate      string   `validate:"required,datetime=2006-01-02"`
	MinimumFees        *float64 `validate:"omitempty,gte=0"`
	MaximumFees        *float64 `validate:"omitempty,gte=0"`
	OnlyDirectFlights  string   `validate:"omitempty,boolean"`
}

// Messages are reported in this order regardless of how the validator walks the struct.
var fieldOrder = []string{
	"OriginAirport",
	"DestinationAirport",
	"DepartureDate",
	"MinimumFees",
	"MaximumFees",
	"OnlyDirectFlights",
}

type RequestValidator struct {
	validate *validator.Validate
	logger   logger.Logger
}

func NewRequestValidator(log logger.Logger) *RequestValidator {
	return &RequestValidator{
		validate: validator.New(),
		logger:   log,
	}
}

// Validate checks every rule and returns either a request or one message per
// offending field.
func (v *RequestValidator) Validate(query map[string]string) (SearchRequest, []string) {
	params := searchParams{
		OriginAirport:      splitCodes(query["originAirport"]),
		DestinationAirport: splitCodes(query["destinationAirport"]),
		DepartureDate:      strings.TrimSpace(query["departureDate"]),
		MinimumFees:        v.coerceFee("minimumFees", query["minimumFees"]),
		MaximumFees:        v.coerceFee("maximumFees", query["maximumFees"]),
		OnlyDirectFlights:  strings.TrimSpace(query["onlyDirectFlights"]),
	}

	if err := v.validate.Struct(params); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return SearchRequest{}, []string{err.Error()}
		}
		return SearchRequest{}, collectMessages(fieldErrs)
	}

	onlyDirect, _ := strconv.ParseBool(params.OnlyDirectFlights)

	return SearchRequest{
		OriginAirports:      params.OriginAirport,
		DestinationAirports: params.DestinationAirport,
		DepartureDate:       params.DepartureDate,
		MinimumFees:         params.MinimumFees,
		MaximumFees:         params.MaximumFees,
		OnlyDirectFlights:   onlyDirect,
	}, nil
}

// coerceFee turns an unparseable fee into "absent" rather than an error.
func (v *RequestValidator) coerceFee(name, raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	fee, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(fee) {
		v.logger.Warn("ignoring non-numeric fee filter",
			logger.Field{Key: "param", Value: name},
			logger.Field{Key: "value", Value: raw},
		)
		return nil
	}
	return &fee
}

func splitCodes(raw string) []string {
	var codes []string
	for _, part := range strings.Split(raw, ",") {
		code := strings.ToUpper(strings.TrimSpace(part))
		if code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}

func collectMessages(fieldErrs validator.ValidationErrors) []string {
	byField := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fe.StructField()
		if i := strings.IndexByte(field, '['); i >= 0 {
			field = field[:i]
		}
		if _, seen := byField[field]; seen {
			continue
		}
		byField[field] = fieldMessage(field, fe.Tag())
	}

	messages := make([]string, 0, len(byField))
	for _, field := range fieldOrder {
		if msg, ok := byField[field]; ok {
			messages = append(messages, msg)
		}
	}
	return messages
}

func fieldMessage(field, tag string) string {
	switch field {
	case "OriginAirport":
		if tag == "required" || tag == "min" {
			return "origin airports (comma-separated) is required"
		}
		return "origin airports must be 3-letter IATA codes"
	case "DestinationAirport":
		if tag == "required" || tag == "min" {
			return "destination airports (comma-separated) is required"
		}
		return "destination airports must be 3-letter IATA codes"
	case "DepartureDate":
		if tag == "required" {
			return "departure date is required"
		}
		return "date must follow the format YYYY-MM-DD"
	case "MinimumFees":
		return "minimumFees must be a non-negative number"
	case "MaximumFees":
		return "maximumFees must be a non-negative number"
	case "OnlyDirectFlights":
		return "onlyDirectFlights must be a boolean"
	}
	return field + " is invalid"
}
