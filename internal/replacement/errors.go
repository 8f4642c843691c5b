package replacement

import "fmt"

// ConfigurationError reports economic parameters that cannot be analyzed:
// a horizon below one year, a discount rate at or below -1, or negative cost
// inputs. It rejects the entire analysis before any strategy is built.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// StrategyRangeError reports a keep-duration outside [0, horizon] requested
// of BuildCashFlows directly. The evaluator never requests one, so seeing
// this error indicates a caller bug rather than bad user input.
type StrategyRangeError struct {
	KeepYears    int
	HorizonYears int
}

func (e *StrategyRangeError) Error() string {
	return fmt.Sprintf("keep duration %d outside valid range [0, %d]", e.KeepYears, e.HorizonYears)
}
