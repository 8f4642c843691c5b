package validation

import (
	"strings"
	"testing"

	"github.com/optimach/optimach/internal/replacement"
	"github.com/optimach/optimach/pkg/schedule"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{name: "Pretty format", format: "pretty", wantErr: false},
		{name: "CSV format", format: "csv", wantErr: false},
		{name: "Unknown format", format: "xml", wantErr: true},
		{name: "Empty format", format: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func baseParams() replacement.Parameters {
	return replacement.Parameters{
		InterestRate: 0.10,
		HorizonYears: 5,
		Existing: replacement.MachineProfile{
			Name:          "press",
			CurrentValue:  6000,
			OperatingCost: schedule.OperatingCost{FirstYear: 9000},
			Depreciation:  schedule.Depreciation{Annual: 2000},
		},
		New: replacement.MachineProfile{
			Name:          "new-press",
			PurchaseCost:  22000,
			OperatingCost: schedule.OperatingCost{FirstYear: 6000},
			Depreciation:  schedule.Depreciation{Annual: 3000},
		},
	}
}

func TestAnalysisWarningsCleanConfiguration(t *testing.T) {
	if warnings := AnalysisWarnings(baseParams()); len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}
}

func TestAnalysisWarnings(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*replacement.Parameters)
		contains string
	}{
		{
			name:     "Negative rate",
			mutate:   func(p *replacement.Parameters) { p.InterestRate = -0.05 },
			contains: "negative",
		},
		{
			name:     "Rate above 100%",
			mutate:   func(p *replacement.Parameters) { p.InterestRate = 10 },
			contains: "fraction",
		},
		{
			name:     "Service life caps strategies",
			mutate:   func(p *replacement.Parameters) { p.Existing.MaxServiceYears = 3 },
			contains: "will not be evaluated",
		},
		{
			name: "Salvage exceeds purchase cost",
			mutate: func(p *replacement.Parameters) {
				p.New.SalvageTable = []float64{25000, 25000}
			},
			contains: "recovers more",
		},
		{
			name: "Short salvage table",
			mutate: func(p *replacement.Parameters) {
				p.New.SalvageTable = []float64{22000, 19000}
			},
			contains: "carries forward",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := baseParams()
			tt.mutate(&p)
			warnings := AnalysisWarnings(p)
			found := false
			for _, warning := range warnings {
				if strings.Contains(warning, tt.contains) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("expected a warning containing %q, got %v", tt.contains, warnings)
			}
		})
	}
}
