package config

import (
	"github.com/optimach/optimach/internal/replacement"
	"github.com/optimach/optimach/pkg/constants"
	"github.com/optimach/optimach/pkg/schedule"
)

// Parameters converts the configuration into the engine's immutable input
// bundle, applying the documented defaults (5-year horizon, 10% rate) for
// anything left unset. Defaults live here rather than in process-wide state
// so every analysis run is self-contained.
func (c *Configuration) Parameters() replacement.Parameters {
	rate := constants.DefaultInterestRate
	if c.Analysis.InterestRate != nil {
		rate = *c.Analysis.InterestRate
	}

	horizon := c.Analysis.HorizonYears
	if horizon == 0 {
		horizon = constants.DefaultHorizonYears
	}

	return replacement.Parameters{
		InterestRate: rate,
		HorizonYears: horizon,
		Existing:     machineProfile(c.ExistingMachine),
		New:          machineProfile(c.NewMachine),
	}
}

func machineProfile(m MachineConfig) replacement.MachineProfile {
	return replacement.MachineProfile{
		Name:         m.Name,
		PurchaseCost: m.PurchaseCost,
		CurrentValue: m.CurrentValue,
		OperatingCost: schedule.OperatingCost{
			FirstYear:      m.OperatingCost.FirstYear,
			AnnualIncrease: m.OperatingCost.AnnualIncrease,
			Explicit:       m.OperatingCost.Schedule,
		},
		Depreciation: schedule.Depreciation{
			Annual:   m.Depreciation.Annual,
			Explicit: m.Depreciation.Schedule,
		},
		SalvageTable:    m.SalvageValues,
		MaxServiceYears: m.MaxServiceYears,
	}
}
