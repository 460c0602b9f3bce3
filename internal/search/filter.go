package search

// applyFilters narrows entries by minimum fees, then maximum fees, then
// directness. A single qualifying cabin keeps the whole entry. Comparisons
// against NaN never match.
func applyFilters(entries []MileageEntry, opts FilterOptions) []MileageEntry {
	filtered := make([]MileageEntry, 0, len(entries))

	for _, e := range entries {
		if opts.matches(e) {
			filtered = append(filtered, e)
		}
	}

	return filtered
}

func (o FilterOptions) matches(e MileageEntry) bool {
	if o.MinimumFees != nil {
		lower := *o.MinimumFees
		if !anyTaxCost(e, func(cost float64) bool { return cost >= lower }) {
			return false
		}
	}

	if o.MaximumFees != nil {
		upper := *o.MaximumFees
		if !anyTaxCost(e, func(cost float64) bool { return cost <= upper }) {
			return false
		}
	}

	if o.OnlyDirectFlights {
		direct := false
		for _, d := range e.directFlags() {
			if d {
				direct = true
				break
			}
		}
		if !direct {
			return false
		}
	}

	return true
}

func anyTaxCost(e MileageEntry, pred func(float64) bool) bool {
	for _, cost := range e.taxCosts() {
		if pred(cost) {
			return true
		}
	}
	return false
}
