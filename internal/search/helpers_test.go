package search

import "mileage/pkg/seatsaero"

func ptr[T any](v T) *T {
	return &v
}

// availability returns a complete upstream row. Cabins default to unavailable,
// zero taxes and no direct flights; mutate the result for specific cases.
func availability(id string, mutate ...func(*seatsaero.Availability)) seatsaero.Availability {
	a := seatsaero.Availability{
		ID:      id,
		RouteID: "route-" + id,
		Route: &seatsaero.Route{
			ID:                 "route-" + id,
			OriginAirport:      "JFK",
			OriginRegion:       "North America",
			DestinationAirport: "LHR",
			DestinationRegion:  "Europe",
			NumDaysOut:         60,
			Distance:           3451,
			Source:             "american",
		},
		Date:       "2025-06-01",
		ParsedDate: "2025-06-01T00:00:00Z",

		YAvailable: ptr(true),
		WAvailable: ptr(false),
		JAvailable: ptr(true),
		FAvailable: ptr(false),

		YMileageCost: ptr(seatsaero.NumericString("30000")),
		WMileageCost: ptr(seatsaero.NumericString("0")),
		JMileageCost: ptr(seatsaero.NumericString("57500")),
		FMileageCost: ptr(seatsaero.NumericString("0")),

		YTotalTaxes: ptr(1234.0),
		WTotalTaxes: ptr(0.0),
		JTotalTaxes: ptr(56010.0),
		FTotalTaxes: ptr(0.0),

		YRemainingSeats: ptr(7),
		WRemainingSeats: ptr(0),
		JRemainingSeats: ptr(2),
		FRemainingSeats: ptr(0),

		YDirect: ptr(false),
		WDirect: ptr(false),
		JDirect: ptr(false),
		FDirect: ptr(false),

		TaxesCurrency: "USD",
		Source:        "american",
	}
	for _, m := range mutate {
		m(&a)
	}
	return a
}
