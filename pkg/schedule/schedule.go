// Package schedule models per-year cost and value schedules for a machine:
// operating costs that escalate over service life and residual values that
// decline with accumulated depreciation.
package schedule

import (
	"fmt"

	"github.com/optimach/optimach/pkg/mathutil"
)

// OperatingCost describes what a machine costs to run in each year of its
// service life. When Explicit is non-empty it takes precedence; the final
// explicit value carries forward for any service year past the end of the
// list. Otherwise the cost is FirstYear plus AnnualIncrease for every
// subsequent year.
type OperatingCost struct {
	FirstYear      float64
	AnnualIncrease float64
	Explicit       []float64
}

// ForYear returns the operating cost for the given 1-based service year.
func (oc OperatingCost) ForYear(serviceYear int) float64 {
	if serviceYear < 1 {
		return 0
	}
	if len(oc.Explicit) > 0 {
		if serviceYear > len(oc.Explicit) {
			return oc.Explicit[len(oc.Explicit)-1]
		}
		return oc.Explicit[serviceYear-1]
	}
	return oc.FirstYear + float64(serviceYear-1)*oc.AnnualIncrease
}

// Validate rejects schedules that would produce a negative operating cost
// within the given number of service years.
func (oc OperatingCost) Validate(serviceYears int) error {
	for y := 1; y <= serviceYears; y++ {
		if cost := oc.ForYear(y); cost < 0 {
			return fmt.Errorf("operating cost for service year %d is negative (%v)", y, cost)
		}
	}
	return nil
}

// Depreciation describes how much value a machine loses in each year of
// service. When Explicit is non-empty it takes precedence; the final explicit
// value carries forward past the end of the list. Otherwise Annual applies
// every year.
type Depreciation struct {
	Annual   float64
	Explicit []float64
}

// Cumulative returns the total value lost over the given number of service
// years.
func (d Depreciation) Cumulative(serviceYears int) float64 {
	if serviceYears <= 0 {
		return 0
	}
	if len(d.Explicit) == 0 {
		return float64(serviceYears) * d.Annual
	}
	total := 0.0
	for y := 0; y < serviceYears; y++ {
		if y < len(d.Explicit) {
			total += d.Explicit[y]
		} else {
			total += d.Explicit[len(d.Explicit)-1]
		}
	}
	return total
}

// ResidualValue returns what an asset worth initialValue is worth after the
// given number of service years, never dropping below zero.
func ResidualValue(initialValue float64, d Depreciation, serviceYears int) float64 {
	return mathutil.ClampNonNegative(initialValue - d.Cumulative(serviceYears))
}
