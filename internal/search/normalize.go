package search

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"mileage/pkg/seatsaero"
)

type normalizeStats struct {
	CoercionFailures int
}

// normalize maps upstream rows one-to-one, keeping upstream order. Any row
// missing its route or a cabin field fails the whole batch.
func normalize(records []seatsaero.Availability) ([]MileageEntry, normalizeStats, error) {
	var stats normalizeStats
	entries := make([]MileageEntry, 0, len(records))

	for i, r := range records {
		if err := checkRequired(r); err != nil {
			return nil, stats, fmt.Errorf("%w: record %d (%s): %v", ErrMalformedUpstreamResponse, i, r.ID, err)
		}

		entry := MileageEntry{
			ID:      r.ID,
			RouteID: r.RouteID,
			Route: MileageRoute{
				ID:                 r.Route.ID,
				OriginAirport:      r.Route.OriginAirport,
				OriginRegion:       r.Route.OriginRegion,
				DestinationAirport: r.Route.DestinationAirport,
				DestinationRegion:  r.Route.DestinationRegion,
				NumDaysOut:         r.Route.NumDaysOut,
				Distance:           r.Route.Distance,
				Source:             r.Route.Source,
			},
			Date:          r.Date,
			ParsedDate:    r.ParsedDate,
			TaxesCurrency: r.TaxesCurrency,

			IsEconomyAvailable:  *r.YAvailable,
			IsPremiumAvailable:  *r.WAvailable,
			IsBusinessAvailable: *r.JAvailable,
			IsFirstAvailable:    *r.FAvailable,

			EconomyMileageCost:  parseMileageCost(r.YMileageCost, &stats),
			PremiumMileageCost:  parseMileageCost(r.WMileageCost, &stats),
			BusinessMileageCost: parseMileageCost(r.JMileageCost, &stats),
			FirstMileageCost:    parseMileageCost(r.FMileageCost, &stats),

			EconomyTaxCost:  toMajorUnits(*r.YTotalTaxes),
			PremiumTaxCost:  toMajorUnits(*r.WTotalTaxes),
			BusinessTaxCost: toMajorUnits(*r.JTotalTaxes),
			FirstTaxCost:    toMajorUnits(*r.FTotalTaxes),

			EconomyRemainingSeats:  *r.YRemainingSeats,
			PremiumRemainingSeats:  *r.WRemainingSeats,
			BusinessRemainingSeats: *r.JRemainingSeats,
			FirstRemainingSeats:    *r.FRemainingSeats,

			EconomyDirect:  *r.YDirect,
			PremiumDirect:  *r.WDirect,
			BusinessDirect: *r.JDirect,
			FirstDirect:    *r.FDirect,
		}
		entries = append(entries, entry)
	}

	return entries, stats, nil
}

func checkRequired(r seatsaero.Availability) error {
	if r.Route == nil {
		return errors.New("missing Route")
	}

	required := []struct {
		name    string
		present bool
	}{
		{"YAvailable", r.YAvailable != nil},
		{"WAvailable", r.WAvailable != nil},
		{"JAvailable", r.JAvailable != nil},
		{"FAvailable", r.FAvailable != nil},
		{"YTotalTaxes", r.YTotalTaxes != nil},
		{"WTotalTaxes", r.WTotalTaxes != nil},
		{"JTotalTaxes", r.JTotalTaxes != nil},
		{"FTotalTaxes", r.FTotalTaxes != nil},
		{"YRemainingSeats", r.YRemainingSeats != nil},
		{"WRemainingSeats", r.WRemainingSeats != nil},
		{"JRemainingSeats", r.JRemainingSeats != nil},
		{"FRemainingSeats", r.FRemainingSeats != nil},
		{"YDirect", r.YDirect != nil},
		{"WDirect", r.WDirect != nil},
		{"JDirect", r.JDirect != nil},
		{"FDirect", r.FDirect != nil},
	}

	var missing []string
	for _, f := range required {
		if !f.present {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing %s", strings.Join(missing, ", "))
	}
	return nil
}

// toMajorUnits converts minor currency units (cents) to major units.
func toMajorUnits(minor float64) float64 {
	return minor / 100
}

// parseMileageCost reads the leading base-10 integer of the value, ignoring
// any trailing characters. Missing or non-numeric input yields NaN.
func parseMileageCost(raw *seatsaero.NumericString, stats *normalizeStats) MileageCost {
	if raw == nil {
		stats.CoercionFailures++
		return NaNMileageCost()
	}

	s := strings.TrimSpace(string(*raw))
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		stats.CoercionFailures++
		return NaNMileageCost()
	}

	// Digit runs past int64 still yield a (large) number.
	n, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		stats.CoercionFailures++
		return NaNMileageCost()
	}
	return MileageCost(n)
}
