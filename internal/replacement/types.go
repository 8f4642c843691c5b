// Package replacement implements the present-worth replacement analysis
// engine: it enumerates every feasible keep-then-replace strategy for an
// existing machine, builds the strategy's year-indexed cash flows, discounts
// them to time zero, and ranks strategies by present-worth cost.
package replacement

import (
	"github.com/optimach/optimach/pkg/schedule"
)

// MachineProfile holds the economic data for one machine.
type MachineProfile struct {
	Name string

	// PurchaseCost is the outlay to acquire the machine. Zero for a machine
	// that is already owned.
	PurchaseCost float64

	// CurrentValue is the resale value of the machine today. For a new
	// machine this is normally the purchase cost.
	CurrentValue float64

	OperatingCost schedule.OperatingCost
	Depreciation  schedule.Depreciation

	// SalvageTable optionally overrides the depreciation-derived residual
	// value; SalvageTable[n] is the value recovered when the machine is
	// disposed of after n years of service within this analysis. The last
	// entry carries forward.
	SalvageTable []float64

	// MaxServiceYears caps how many more years the machine can be used.
	// Zero means no cap.
	MaxServiceYears int
}

// SalvageValue returns the value recovered when the machine is disposed of
// after the given number of service years.
func (m MachineProfile) SalvageValue(serviceYears int) float64 {
	if len(m.SalvageTable) > 0 {
		idx := serviceYears
		if idx >= len(m.SalvageTable) {
			idx = len(m.SalvageTable) - 1
		}
		if idx < 0 {
			idx = 0
		}
		return m.SalvageTable[idx]
	}
	base := m.CurrentValue
	if base == 0 {
		base = m.PurchaseCost
	}
	return schedule.ResidualValue(base, m.Depreciation, serviceYears)
}

// Parameters is the immutable input bundle for one analysis run.
type Parameters struct {
	// InterestRate is the annual discount rate as a fraction, e.g. 0.10.
	InterestRate float64

	// HorizonYears is the fixed planning horizon all strategies are
	// compared over.
	HorizonYears int

	Existing MachineProfile
	New      MachineProfile
}

// MaxKeepYears returns the largest feasible k: the existing machine cannot be
// kept past the horizon nor past its remaining service life.
func (p Parameters) MaxKeepYears() int {
	max := p.HorizonYears
	if p.Existing.MaxServiceYears > 0 && p.Existing.MaxServiceYears < max {
		max = p.Existing.MaxServiceYears
	}
	return max
}

// CashFlowEntry is the net cash flow recognized at the beginning of a given
// year of the analysis timeline. Costs are positive; salvage recoveries are
// negative.
type CashFlowEntry struct {
	Year   int     `json:"year"`
	Amount float64 `json:"amount"`

	// PresentValue is the entry's amount discounted to year 0. It is filled
	// in during evaluation; BuildCashFlows leaves it zero.
	PresentValue float64 `json:"presentValue"`
}

// StrategyResult holds the outcome of evaluating one keep-then-replace
// strategy. Results are value objects; they do not share state with the
// evaluator or with each other.
type StrategyResult struct {
	// KeepYears is k, the number of years the existing machine is kept
	// before replacement. k equal to the horizon means it is never replaced.
	KeepYears int `json:"keepYears"`

	// CashFlows has exactly HorizonYears+1 entries covering years
	// 0..HorizonYears, ordered by year ascending, with flows netted per year.
	CashFlows []CashFlowEntry `json:"cashFlows"`

	// PresentWorthCost is the discounted total cost of the strategy; lower
	// is better.
	PresentWorthCost float64 `json:"presentWorthCost"`

	// NetPresentValue is the inflow-positive view of the same total,
	// i.e. -PresentWorthCost. Typically negative for a net cost.
	NetPresentValue float64 `json:"netPresentValue"`
}

// Analysis is the full result set for one evaluation.
type Analysis struct {
	// Results holds one StrategyResult per feasible k, ordered by k
	// ascending.
	Results []StrategyResult `json:"results"`

	// Ranked holds the same results ordered by PresentWorthCost ascending,
	// ties broken by smaller k.
	Ranked []StrategyResult `json:"ranked"`

	// Recommended is the minimum-cost strategy, Ranked[0].
	Recommended StrategyResult `json:"recommended"`

	// MaxKeepYears is the largest k that was evaluated. It is less than the
	// horizon when the existing machine's remaining service life caps it.
	MaxKeepYears int `json:"maxKeepYears"`
}
