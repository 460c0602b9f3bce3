package search

import (
	"bytes"
	"math"
	"strconv"
)

// SearchRequest is a validated search. Fee bounds are nil when not supplied;
// no ordering between them is enforced.
type SearchRequest struct {
	OriginAirports      []string
	DestinationAirports []string
	DepartureDate       string
	MinimumFees         *float64
	MaximumFees         *float64
	OnlyDirectFlights   bool
}

func (r SearchRequest) filterOptions() FilterOptions {
	return FilterOptions{
		MinimumFees:       r.MinimumFees,
		MaximumFees:       r.MaximumFees,
		OnlyDirectFlights: r.OnlyDirectFlights,
	}
}

type FilterOptions struct {
	MinimumFees       *float64
	MaximumFees       *float64
	OnlyDirectFlights bool
}

type MileageRoute struct {
	ID                 string `json:"ID"`
	OriginAirport      string `json:"originAirport"`
	OriginRegion       string `json:"originRegion"`
	DestinationAirport string `json:"destinationAirport"`
	DestinationRegion  string `json:"destinationRegion"`
	NumDaysOut         int    `json:"numDaysOut"`
	Distance           int    `json:"distance"`
	Source             string `json:"source"`
}

// MileageEntry is one upstream availability row, flattened per cabin.
type MileageEntry struct {
	ID            string       `json:"ID"`
	RouteID       string       `json:"routeID"`
	Route         MileageRoute `json:"route"`
	Date          string       `json:"date"`
	ParsedDate    string       `json:"parsedDate"`
	TaxesCurrency string       `json:"taxesCurrency"`

	IsEconomyAvailable  bool `json:"isEconomyAvailable"`
	IsPremiumAvailable  bool `json:"isPremiumAvailable"`
	IsBusinessAvailable bool `json:"isBusinessAvailable"`
	IsFirstAvailable    bool `json:"isFirstAvailable"`

	EconomyMileageCost  MileageCost `json:"economyMileageCost"`
	PremiumMileageCost  MileageCost `json:"premiumMileageCost"`
	BusinessMileageCost MileageCost `json:"businessMileageCost"`
	FirstMileageCost    MileageCost `json:"firstMileageCost"`

	// Major currency units.
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

func (e MileageEntry) taxCosts() [4]float64 {
	return [4]float64{e.EconomyTaxCost, e.PremiumTaxCost, e.BusinessTaxCost, e.FirstTaxCost}
}

func (e MileageEntry) directFlags() [4]bool {
	return [4]bool{e.EconomyDirect, e.PremiumDirect, e.BusinessDirect, e.FirstDirect}
}

// MileageCost is an integer mileage price. NaN marks a value the upstream sent
// that could not be parsed; it is encoded as JSON null.
type MileageCost float64

func NaNMileageCost() MileageCost {
	return MileageCost(math.NaN())
}

func (m MileageCost) IsNaN() bool {
	return math.IsNaN(float64(m))
}

func (m MileageCost) MarshalJSON() ([]byte, error) {
	if m.IsNaN() {
		return []byte("null"), nil
	}
	return strconv.AppendInt(nil, int64(m), 10), nil
}

func (m *MileageCost) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*m = NaNMileageCost()
		return nil
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*m = MileageCost(v)
	return nil
}

// SearchResponse is the success envelope. Data is always emitted, even when empty.
type SearchResponse struct {
	Code int            `json:"code"`
	Data []MileageEntry `json:"data"`
}

// ErrorResponse is the failure envelope for 4xx and 5xx.
type ErrorResponse struct {
	Code          int      `json:"code"`
	ErrorMessages []string `json:"errorMessages"`
}
