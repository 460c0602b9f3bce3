package mileageclient

import (
	"fmt"
	"strings"
)

// Params mirrors the query of GET /api/search-mileage. Zero fees and a false
// direct flag are not sent.
type Params struct {
	OriginAirports      []string
	DestinationAirports []string
	DepartureDate       string
	MinimumFees         *float64
	MaximumFees         *float64
	OnlyDirectFlights   bool
}

type Route struct {
	ID                 string `json:"ID"`
	OriginAirport      string `json:"originAirport"`
	OriginRegion       string `json:"originRegion"`
	DestinationAirport string `json:"destinationAirport"`
	DestinationRegion  string `json:"destinationRegion"`
	NumDaysOut         int    `json:"numDaysOut"`
	Distance           int    `json:"distance"`
	Source             string `json:"source"`
}

// Entry is one search result. Mileage costs are nil when the server could not
// read the upstream value.
type Entry struct {
	ID            string `json:"ID"`
	RouteID       string `json:"routeID"`
	Route         Route  `json:"route"`
	Date          string `json:"date"`
	ParsedDate    string `json:"parsedDate"`
	TaxesCurrency string `json:"taxesCurrency"`

	IsEconomyAvailable  bool `json:"isEconomyAvailable"`
	IsPremiumAvailable  bool `json:"isPremiumAvailable"`
	IsBusinessAvailable bool `json:"isBusinessAvailable"`
	IsFirstAvailable    bool `json:"isFirstAvailable"`

	EconomyMileageCost  *float64 `json:"economyMileageCost"`
	PremiumMileageCost  *float64 `json:"premiumMileageCost"`
	BusinessMileageCost *float64 `json:"businessMileageCost"`
	FirstMileageCost    *float64 `json:"firstMileageCost"`

	EconomyTaxCost  float64 `json:"economyTaxCost"`
	PremiumTaxCost  float64 `json:"premiumTaxCost"`
	BusinessTaxCost float64 `json:"businessTaxCost"`
	FirstTaxCost    float64 `json:"firstTaxCost"`

	EconomyRemainingSeats  int `json:"economyRemainingSeats"`
	PremiumRemainingSeats  int `json:"premiumRemainingSeats"`
	BusinessRemainingSeats int `json:"businessRemainingSeats"`
	FirstRemainingSeats    int `json:"firstRemainingSeats"`

	EconomyDirect  bool `json:"economyDirect"`
	PremiumDirect  bool `json:"premiumDirect"`
	BusinessDirect bool `json:"businessDirect"`
	FirstDirect    bool `json:"firstDirect"`
}

type searchResponse struct {
	Code int     `json:"code"`
	Data []Entry `json:"data"`
}

type errorResponse struct {
	Code          int      `json:"code"`
	ErrorMessages []string `json:"errorMessages"`
}

// APIError is a non-200 envelope returned by the mileage service.
type APIError struct {
	Code     int
	Messages []string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mileage api error %d: %s", e.Code, strings.Join(e.Messages, "; "))
}
