package seatsaero

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SearchResponse is the body of GET /partnerapi/search.
type SearchResponse struct {
	Data    []Availability `json:"data" validate:"required,dive"`
	Count   int            `json:"count"`
	HasMore bool           `json:"hasMore"`
	Cursor  int            `json:"cursor"`
}

// Availability is one cached award availability row. Cabin fields are keyed by
// letter: Y economy, W premium economy, J business, F first.
type Availability struct {
	ID         string `json:"ID"`
	RouteID    string `json:"RouteID"`
	Route      *Route `json:"Route" validate:"required"`
	Date       string `json:"Date"`
	ParsedDate string `json:"ParsedDate"`

	YAvailable *bool `json:"YAvailable" validate:"required"`
	WAvailable *bool `json:"WAvailable" validate:"required"`
	JAvailable *bool `json:"JAvailable" validate:"required"`
	FAvailable *bool `json:"FAvailable" validate:"required"`

	YMileageCost *NumericString `json:"YMileageCost"`
	WMileageCost *NumericString `json:"WMileageCost"`
	JMileageCost *NumericString `json:"JMileageCost"`
	FMileageCost *NumericString `json:"FMileageCost"`

	// Minor currency units, e.g. cents.
	YTotalTaxes *float64 `json:"YTotalTaxes" validate:"required"`
	WTotalTaxes *float64 `json:"WTotalTaxes" validate:"required"`
	JTotalTaxes *float64 `json:"JTotalTaxes" validate:"required"`
	FTotalTaxes *float64 `json:"FTotalTaxes" validate:"required"`

	YRemainingSeats *int `json:"YRemainingSeats" validate:"required"`
	WRemainingSeats *int `json:"WRemainingSeats" validate:"required"`
	JRemainingSeats *int `json:"JRemainingSeats" validate:"required"`
	FRemainingSeats *int `json:"FRemainingSeats" validate:"required"`

	YDirect *bool `json:"YDirect" validate:"required"`
	WDirect *bool `json:"WDirect" validate:"required"`
	JDirect *bool `json:"JDirect" validate:"required"`
	FDirect *bool `json:"FDirect" validate:"required"`

	TaxesCurrency string `json:"TaxesCurrency"`
	Source        string `json:"Source"`
}

type Route struct {
	ID                 string `json:"ID"`
	OriginAirport      string `json:"OriginAirport"`
	OriginRegion       string `json:"OriginRegion"`
	DestinationAirport string `json:"DestinationAirport"`
	DestinationRegion  string `json:"DestinationRegion"`
	NumDaysOut         int    `json:"NumDaysOut"`
	Distance           int    `json:"Distance"`
	Source             string `json:"Source"`
}

// NumericString holds a value the API usually sends as a string ("35000") but
// occasionally as a bare number.
type NumericString string

func (n *NumericString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = NumericString(s)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return fmt.Errorf("seatsaero: mileage cost is neither string nor number: %s", b)
	}
	*n = NumericString(num.String())
	return nil
}
