package config

import (
	"testing"

	"github.com/optimach/optimach/pkg/constants"
)

func TestParametersAppliesDefaults(t *testing.T) {
	conf := Configuration{
		ExistingMachine: MachineConfig{CurrentValue: 2500},
		NewMachine:      MachineConfig{PurchaseCost: 4000},
	}

	params := conf.Parameters()

	if params.InterestRate != constants.DefaultInterestRate {
		t.Errorf("InterestRate = %v, expected default %v", params.InterestRate, constants.DefaultInterestRate)
	}
	if params.HorizonYears != constants.DefaultHorizonYears {
		t.Errorf("HorizonYears = %d, expected default %d", params.HorizonYears, constants.DefaultHorizonYears)
	}
}

func TestParametersKeepsExplicitZeroRate(t *testing.T) {
	zero := 0.0
	conf := Configuration{
		Analysis: AnalysisConfig{InterestRate: &zero, HorizonYears: 3},
	}

	params := conf.Parameters()

	if params.InterestRate != 0.0 {
		t.Errorf("InterestRate = %v, expected explicit 0.0 to survive defaulting", params.InterestRate)
	}
	if params.HorizonYears != 3 {
		t.Errorf("HorizonYears = %d, expected 3", params.HorizonYears)
	}
}

func TestParametersConvertsSchedules(t *testing.T) {
	conf := Configuration{
		ExistingMachine: MachineConfig{
			Name:            "press",
			CurrentValue:    6000,
			OperatingCost:   OperatingCostConfig{FirstYear: 9000, AnnualIncrease: 2000},
			Depreciation:    DepreciationConfig{Annual: 2000},
			MaxServiceYears: 3,
		},
		NewMachine: MachineConfig{
			PurchaseCost:  22000,
			OperatingCost: OperatingCostConfig{Schedule: []float64{6000, 7000}},
			Depreciation:  DepreciationConfig{Schedule: []float64{3000, 3000, 4000}},
			SalvageValues: []float64{22000, 19000},
		},
	}

	params := conf.Parameters()

	if params.Existing.OperatingCost.ForYear(2) != 11000 {
		t.Errorf("existing operating cost year 2 = %v, expected 11000", params.Existing.OperatingCost.ForYear(2))
	}
	if params.Existing.SalvageValue(3) != 0 {
		t.Errorf("existing salvage after 3 years = %v, expected 0", params.Existing.SalvageValue(3))
	}
	if params.New.OperatingCost.ForYear(1) != 6000 {
		t.Errorf("new operating cost year 1 = %v, expected 6000", params.New.OperatingCost.ForYear(1))
	}
	if params.New.SalvageValue(1) != 19000 {
		t.Errorf("new salvage after 1 year = %v, expected table value 19000", params.New.SalvageValue(1))
	}
	if params.Existing.MaxServiceYears != 3 {
		t.Errorf("MaxServiceYears = %d, expected 3", params.Existing.MaxServiceYears)
	}
}
