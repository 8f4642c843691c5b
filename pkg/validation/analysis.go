package validation

import (
	"fmt"

	"github.com/optimach/optimach/internal/replacement"
)

// AnalysisWarnings inspects economic parameters for configurations that are
// legal but likely mistakes. Hard rejections are the engine's job; these are
// surfaced to the user before evaluation runs.
func AnalysisWarnings(p replacement.Parameters) []string {
	var warnings []string

	if p.InterestRate < 0 && p.InterestRate > -1 {
		warnings = append(warnings,
			fmt.Sprintf("Interest rate %.4f is negative - future costs will be weighted more heavily than immediate ones", p.InterestRate))
	}
	if p.InterestRate > 1 {
		warnings = append(warnings,
			fmt.Sprintf("Interest rate %.4f exceeds 100%% per year - verify it was entered as a fraction (e.g. 0.10 for 10%%)", p.InterestRate))
	}

	if max := p.MaxKeepYears(); max < p.HorizonYears {
		warnings = append(warnings,
			fmt.Sprintf("Existing machine '%s' can only be used for %d more year(s) - strategies keeping it longer will not be evaluated",
				machineLabel(p.Existing), max))
	}

	warnings = append(warnings, machineWarnings(p.Existing, "Existing machine", p.HorizonYears)...)
	warnings = append(warnings, machineWarnings(p.New, "New machine", p.HorizonYears)...)

	return warnings
}

func machineWarnings(m replacement.MachineProfile, role string, horizonYears int) []string {
	var warnings []string

	if m.PurchaseCost > 0 {
		if salvage := m.SalvageValue(horizonYears); salvage > m.PurchaseCost {
			warnings = append(warnings,
				fmt.Sprintf("%s '%s' recovers more at disposal (%.2f) than it costs to buy (%.2f)",
					role, machineLabel(m), salvage, m.PurchaseCost))
		}
	}

	if len(m.SalvageTable) > 0 && len(m.SalvageTable) <= horizonYears {
		warnings = append(warnings,
			fmt.Sprintf("%s '%s' salvage table covers %d year(s) of a %d-year horizon - the final value carries forward",
				role, machineLabel(m), len(m.SalvageTable)-1, horizonYears))
	}

	return warnings
}

func machineLabel(m replacement.MachineProfile) string {
	if m.Name != "" {
		return m.Name
	}
	return "unnamed"
}
