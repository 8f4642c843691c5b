package config

import (
	"os"
	"path/filepath"
	"testing"
)

const exampleConfig = `analysis:
  interestRate: 0.10
  horizonYears: 5
existingMachine:
  name: existing-press
  currentValue: 6000
  depreciation:
    annual: 2000
  operatingCost:
    firstYear: 9000
    annualIncrease: 2000
  maxServiceYears: 3
newMachine:
  name: replacement-press
  purchaseCost: 22000
  depreciation:
    schedule: [3000, 3000, 4000]
  operatingCost:
    firstYear: 6000
    annualIncrease: 1000
logging:
  level: debug
  format: console
output:
  format: csv
  allStrategies: true
`

func TestLoadConfiguration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(exampleConfig), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Analysis.InterestRate == nil || *conf.Analysis.InterestRate != 0.10 {
		t.Errorf("InterestRate = %v, expected 0.10", conf.Analysis.InterestRate)
	}
	if conf.Analysis.HorizonYears != 5 {
		t.Errorf("HorizonYears = %d, expected 5", conf.Analysis.HorizonYears)
	}
	if conf.ExistingMachine.Name != "existing-press" {
		t.Errorf("ExistingMachine.Name = %q, expected existing-press", conf.ExistingMachine.Name)
	}
	if conf.ExistingMachine.MaxServiceYears != 3 {
		t.Errorf("MaxServiceYears = %d, expected 3", conf.ExistingMachine.MaxServiceYears)
	}
	if conf.NewMachine.PurchaseCost != 22000 {
		t.Errorf("NewMachine.PurchaseCost = %v, expected 22000", conf.NewMachine.PurchaseCost)
	}
	if len(conf.NewMachine.Depreciation.Schedule) != 3 {
		t.Errorf("Depreciation.Schedule length = %d, expected 3", len(conf.NewMachine.Depreciation.Schedule))
	}
	if conf.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, expected debug", conf.Logging.Level)
	}
	if conf.Output.Format != "csv" || !conf.Output.AllStrategies {
		t.Errorf("Output = %+v, expected csv with allStrategies", conf.Output)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	_, err := LoadConfiguration(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadConfigurationBytes(t *testing.T) {
	conf, err := LoadConfigurationBytes([]byte(exampleConfig))
	if err != nil {
		t.Fatalf("LoadConfigurationBytes() error = %v", err)
	}
	if conf.NewMachine.OperatingCost.FirstYear != 6000 {
		t.Errorf("OperatingCost.FirstYear = %v, expected 6000", conf.NewMachine.OperatingCost.FirstYear)
	}
}

func TestLoadConfigurationBytesAcceptsJSON(t *testing.T) {
	// JSON is a subset of YAML; the server relies on this.
	body := []byte(`{"analysis": {"interestRate": 0.05, "horizonYears": 3}, "newMachine": {"purchaseCost": 1000}}`)
	conf, err := LoadConfigurationBytes(body)
	if err != nil {
		t.Fatalf("LoadConfigurationBytes() error = %v", err)
	}
	if conf.Analysis.InterestRate == nil || *conf.Analysis.InterestRate != 0.05 {
		t.Errorf("InterestRate = %v, expected 0.05", conf.Analysis.InterestRate)
	}
	if conf.Analysis.HorizonYears != 3 {
		t.Errorf("HorizonYears = %d, expected 3", conf.Analysis.HorizonYears)
	}
}

func TestLoadConfigurationBytesRejectsGarbage(t *testing.T) {
	if _, err := LoadConfigurationBytes([]byte("::: not yaml :::")); err == nil {
		t.Error("expected error for malformed configuration")
	}
}
