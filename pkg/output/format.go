// Package output provides utilities for formatting and displaying analysis results.
package output

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/optimach/optimach/internal/replacement"
)

func newEnglishPrinter() *message.Printer {
	return message.NewPrinter(language.English)
}

// money renders a currency amount rounded to whole cents with English digit
// grouping. Rounding goes through decimal so float dust from the discounting
// arithmetic never shows up in a table.
func money(p *message.Printer, val float64) string {
	cents, _ := decimal.NewFromFloat(val).Round(2).Float64()
	return p.Sprintf("%.2f", cents)
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(analysis *replacement.Analysis, interestRate float64, allStrategies bool) {
	p := newEnglishPrinter()

	fmt.Printf("--- Strategy summary at %.1f%% (ranked by present worth cost) ---\n", interestRate*100)
	fmt.Printf("Keep existing (years) | PW Cost       | NPV\n")
	fmt.Printf("_____________________ | _______       | ___\n")
	for _, result := range analysis.Ranked {
		fmt.Printf("%21d | $%s | $%s\n",
			result.KeepYears, money(p, result.PresentWorthCost), money(p, result.NetPresentValue))
	}
	fmt.Printf("\n")

	if allStrategies {
		for _, result := range analysis.Results {
			printDetail(p, result, "strategy")
		}
	} else {
		printDetail(p, analysis.Recommended, "recommended strategy")
	}

	fmt.Printf("%s\n", Recommendation(analysis, interestRate))
}

func printDetail(p *message.Printer, result replacement.StrategyResult, label string) {
	fmt.Printf("--- Cash flows for %s (keep existing %d year(s)) ---\n", label, result.KeepYears)
	fmt.Printf("Year | Cash Flow     | Present Value\n")
	fmt.Printf("____ | _________     | _____________\n")
	for _, entry := range result.CashFlows {
		fmt.Printf("%4d | $%s | $%s\n", entry.Year, money(p, entry.Amount), money(p, entry.PresentValue))
	}
	fmt.Printf("\n")
}

// CsvFormat outputs in comma-separated value format: the ranked summary
// followed by the cash-flow detail for the recommended strategy, or for every
// strategy when requested.
func CsvFormat(analysis *replacement.Analysis, allStrategies bool) {
	fmt.Printf("\"keepYears\",\"presentWorthCost\",\"netPresentValue\"\n")
	for _, result := range analysis.Ranked {
		fmt.Printf("\"%d\",\"%.2f\",\"%.2f\"\n",
			result.KeepYears, result.PresentWorthCost, result.NetPresentValue)
	}
	fmt.Printf("\n")

	detailed := []replacement.StrategyResult{analysis.Recommended}
	if allStrategies {
		detailed = analysis.Results
	}
	fmt.Printf("\"keepYears\",\"year\",\"cashFlow\",\"presentValue\"\n")
	for _, result := range detailed {
		for _, entry := range result.CashFlows {
			fmt.Printf("\"%d\",\"%d\",\"%.2f\",\"%.2f\"\n",
				result.KeepYears, entry.Year, entry.Amount, entry.PresentValue)
		}
	}
}

// Recommendation derives the human-readable decision sentence from the
// top-ranked strategy.
func Recommendation(analysis *replacement.Analysis, interestRate float64) string {
	best := analysis.Recommended
	horizonYears := len(best.CashFlows) - 1
	p := newEnglishPrinter()
	cost := money(p, best.PresentWorthCost)

	switch {
	case best.KeepYears == 0:
		return fmt.Sprintf("At an interest rate of %.1f%%, sell the existing machine now and purchase a new one immediately (present worth cost $%s).",
			interestRate*100, cost)
	case best.KeepYears == horizonYears:
		return fmt.Sprintf("At an interest rate of %.1f%%, keep the existing machine for the full %d-year horizon; a new machine is never purchased (present worth cost $%s).",
			interestRate*100, horizonYears, cost)
	default:
		return fmt.Sprintf("At an interest rate of %.1f%%, keep the existing machine for %d year(s) and purchase a new machine at the beginning of year %d (present worth cost $%s).",
			interestRate*100, best.KeepYears, best.KeepYears+1, cost)
	}
}
