package replacement

import (
	"fmt"

	"github.com/optimach/optimach/pkg/presentworth"
)

// Validate checks the parameters against the constraints the engine depends
// on. It returns a *ConfigurationError describing the first violation found,
// or nil when the parameters are analyzable.
func (p Parameters) Validate() error {
	if p.HorizonYears < 1 {
		return &ConfigurationError{
			Field:  "horizonYears",
			Reason: fmt.Sprintf("must be at least 1, got %d", p.HorizonYears),
		}
	}
	if err := presentworth.ValidateRate(p.InterestRate); err != nil {
		return &ConfigurationError{Field: "interestRate", Reason: err.Error()}
	}
	if err := validateMachine("existingMachine", p.Existing, p.HorizonYears); err != nil {
		return err
	}
	return validateMachine("newMachine", p.New, p.HorizonYears)
}

func validateMachine(field string, m MachineProfile, horizonYears int) error {
	if m.PurchaseCost < 0 {
		return &ConfigurationError{
			Field:  field + ".purchaseCost",
			Reason: fmt.Sprintf("must not be negative, got %v", m.PurchaseCost),
		}
	}
	if m.CurrentValue < 0 {
		return &ConfigurationError{
			Field:  field + ".currentValue",
			Reason: fmt.Sprintf("must not be negative, got %v", m.CurrentValue),
		}
	}
	if err := m.OperatingCost.Validate(horizonYears); err != nil {
		return &ConfigurationError{Field: field + ".operatingCost", Reason: err.Error()}
	}
	if m.Depreciation.Annual < 0 {
		return &ConfigurationError{
			Field:  field + ".depreciation",
			Reason: fmt.Sprintf("annual amount must not be negative, got %v", m.Depreciation.Annual),
		}
	}
	for i, amount := range m.Depreciation.Explicit {
		if amount < 0 {
			return &ConfigurationError{
				Field:  field + ".depreciation",
				Reason: fmt.Sprintf("schedule entry %d must not be negative, got %v", i, amount),
			}
		}
	}
	for i, value := range m.SalvageTable {
		if value < 0 {
			return &ConfigurationError{
				Field:  field + ".salvageValues",
				Reason: fmt.Sprintf("entry %d must not be negative, got %v", i, value),
			}
		}
	}
	if m.MaxServiceYears < 0 {
		return &ConfigurationError{
			Field:  field + ".maxServiceYears",
			Reason: fmt.Sprintf("must not be negative, got %d", m.MaxServiceYears),
		}
	}
	return nil
}
