// Package presentworth provides discounting utilities for converting future
// cash flows to their value at time zero.
//
// Timeline convention: t is measured in whole years, with t = 0 meaning the
// beginning of year 1. A flow at the beginning of year y occurs at t = y-1;
// a flow at the end of year y occurs at t = y.
package presentworth

import (
	"fmt"
	"math"
)

// Factor returns the single-payment present-worth factor 1/(1+rate)^year.
// The rate must be greater than -1 for the factor to stay finite and positive.
func Factor(rate float64, year int) float64 {
	return 1.0 / math.Pow(1.0+rate, float64(year))
}

// Discount returns the present value at t=0 of an amount occurring at the
// given year, discounted at the given annual rate.
func Discount(amount, rate float64, year int) float64 {
	return amount * Factor(rate, year)
}

// ValidateRate checks that a discount rate keeps every factor finite and
// positive.
func ValidateRate(rate float64) error {
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return fmt.Errorf("interest rate must be a finite number, got %v", rate)
	}
	if rate <= -1.0 {
		return fmt.Errorf("interest rate must be greater than -1, got %v", rate)
	}
	return nil
}
