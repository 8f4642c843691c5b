package replacement

import (
	"sort"

	"go.uber.org/zap"

	"github.com/optimach/optimach/pkg/presentworth"
)

// Evaluate builds and discounts the cash flows of every feasible strategy and
// returns the full result set. Feasible keep-durations are 0..horizon, capped
// by the existing machine's remaining service life when one is set.
//
// The evaluation is a pure function of its parameters: identical inputs
// produce identical results, and concurrent calls are safe since no state is
// shared between invocations.
func Evaluate(logger *zap.Logger, p Parameters) (*Analysis, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	maxKeep := p.MaxKeepYears()
	results := make([]StrategyResult, 0, maxKeep+1)
	for k := 0; k <= maxKeep; k++ {
		entries, err := BuildCashFlows(p, k)
		if err != nil {
			return nil, err
		}

		pwc := 0.0
		for i := range entries {
			entries[i].PresentValue = presentworth.Discount(entries[i].Amount, p.InterestRate, entries[i].Year)
			pwc += entries[i].PresentValue
		}

		logger.Debug("evaluated strategy",
			zap.String("op", "replacement.Evaluate"),
			zap.Int("keepYears", k),
			zap.Float64("presentWorthCost", pwc),
		)

		results = append(results, StrategyResult{
			KeepYears:        k,
			CashFlows:        entries,
			PresentWorthCost: pwc,
			NetPresentValue:  -pwc,
		})
	}

	// Stable sort over k-ascending input resolves PWC ties to the smaller k.
	ranked := make([]StrategyResult, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].PresentWorthCost < ranked[j].PresentWorthCost
	})

	analysis := &Analysis{
		Results:      results,
		Ranked:       ranked,
		Recommended:  ranked[0],
		MaxKeepYears: maxKeep,
	}

	logger.Info("replacement analysis complete",
		zap.String("op", "replacement.Evaluate"),
		zap.Int("strategies", len(results)),
		zap.Int("recommendedKeepYears", analysis.Recommended.KeepYears),
		zap.Float64("presentWorthCost", analysis.Recommended.PresentWorthCost),
	)

	return analysis, nil
}
