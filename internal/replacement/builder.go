package replacement

// BuildCashFlows constructs the year-indexed net cash flows for the strategy
// of keeping the existing machine for k years and then, if years remain,
// replacing it with the new machine.
//
// Timing convention, applied uniformly for every k: the operating cost for a
// machine's y-th year of service is recognized at the beginning of that year
// (year serviceStart+y-1 on the analysis timeline); the existing machine is
// salvaged at year k (year 0 when k is 0); the new machine is purchased at
// year k and salvaged at the horizon. When k equals the horizon the existing
// machine runs to the horizon, is salvaged there, and no purchase occurs.
//
// The returned sequence always has HorizonYears+1 entries covering years
// 0..HorizonYears, so sequences are directly comparable across strategies.
// PresentValue is left zero; discounting happens during evaluation.
func BuildCashFlows(p Parameters, k int) ([]CashFlowEntry, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if k < 0 || k > p.HorizonYears {
		return nil, &StrategyRangeError{KeepYears: k, HorizonYears: p.HorizonYears}
	}

	amounts := make([]float64, p.HorizonYears+1)

	// Existing machine runs for service years 1..k.
	for y := 1; y <= k; y++ {
		amounts[y-1] += p.Existing.OperatingCost.ForYear(y)
	}

	// One salvage recovery for the existing machine, at the moment it stops
	// being used.
	amounts[k] -= p.Existing.SalvageValue(k)

	if k < p.HorizonYears {
		amounts[k] += p.New.PurchaseCost

		remaining := p.HorizonYears - k
		for y := 1; y <= remaining; y++ {
			amounts[k+y-1] += p.New.OperatingCost.ForYear(y)
		}

		// One salvage recovery for the new machine, at the horizon.
		amounts[p.HorizonYears] -= p.New.SalvageValue(remaining)
	}

	entries := make([]CashFlowEntry, len(amounts))
	for year, amount := range amounts {
		entries[year] = CashFlowEntry{Year: year, Amount: amount}
	}
	return entries, nil
}
