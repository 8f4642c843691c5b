// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/optimach/optimach/pkg/validation"
)

// Configuration holds all configuration for optimach.
type Configuration struct {
	Analysis        AnalysisConfig `yaml:"analysis"`
	ExistingMachine MachineConfig  `yaml:"existingMachine"`
	NewMachine      MachineConfig  `yaml:"newMachine"`
	Logging         LoggingConfig  `yaml:"logging,omitempty"`
	Output          OutputConfig   `yaml:"output,omitempty"`
	Server          ServerConfig   `yaml:"server,omitempty"`
}

// AnalysisConfig holds the shared economic assumptions for the analysis.
// InterestRate is a pointer so a configured rate of zero can be told apart
// from an absent one.
type AnalysisConfig struct {
	InterestRate *float64 `yaml:"interestRate,omitempty"`
	HorizonYears int      `yaml:"horizonYears,omitempty"`
}

// MachineConfig describes one machine's economics.
type MachineConfig struct {
	Name            string              `yaml:"name,omitempty"`
	PurchaseCost    float64             `yaml:"purchaseCost,omitempty"`
	CurrentValue    float64             `yaml:"currentValue,omitempty"`
	OperatingCost   OperatingCostConfig `yaml:"operatingCost,omitempty"`
	Depreciation    DepreciationConfig  `yaml:"depreciation,omitempty"`
	SalvageValues   []float64           `yaml:"salvageValues,omitempty"`
	MaxServiceYears int                 `yaml:"maxServiceYears,omitempty"`
}

// OperatingCostConfig is either an explicit per-year schedule or a first-year
// cost with a constant annual increase.
type OperatingCostConfig struct {
	FirstYear      float64   `yaml:"firstYear,omitempty"`
	AnnualIncrease float64   `yaml:"annualIncrease,omitempty"`
	Schedule       []float64 `yaml:"schedule,omitempty"`
}

// DepreciationConfig is either an explicit per-year schedule or a constant
// annual amount.
type DepreciationConfig struct {
	Annual   float64   `yaml:"annual,omitempty"`
	Schedule []float64 `yaml:"schedule,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv

	// AllStrategies includes the cash-flow detail table for every strategy,
	// not just the recommended one.
	AllStrategies bool `yaml:"allStrategies,omitempty"`
}

// ServerConfig holds web server configuration options
type ServerConfig struct {
	Address            string `yaml:"address,omitempty"`
	MaxUploadSizeBytes int64  `yaml:"maxUploadSizeBytes,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// LoadConfigurationBytes parses an in-memory configuration document. JSON
// bodies parse too since JSON is a subset of YAML, which lets the server use
// one decode path for uploads and API requests.
func LoadConfigurationBytes(data []byte) (*Configuration, error) {
	var configuration Configuration
	if err := yaml.Unmarshal(data, &configuration); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}
	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Hard errors are left to the engine's parameter
// validation.
func (c *Configuration) ValidateConfiguration() []string {
	return validation.AnalysisWarnings(c.Parameters())
}
