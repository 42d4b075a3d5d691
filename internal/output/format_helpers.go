package output

import (
	"math"
	"strconv"

	"github.com/rpgo/rental-calculator/pkg/decimal"
)

// FormatCurrency formats an amount as en-US currency with cents, e.g. -$1,234.56.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount float64) string {
	if !finite(amount) {
		return notAvailable
	}
	return decimal.NewMoney(amount).Format()
}

// FormatCompactCurrency abbreviates large amounts, e.g. $1.2M.
func FormatCompactCurrency(amount float64) string {
	if !finite(amount) {
		return notAvailable
	}
	return decimal.NewMoney(amount).FormatCompact()
}

// FormatPercentage formats a per-hundred value with 2 decimals, e.g. 12.34%.
// CAGR is undefined when final wealth is negative and renders as n/a.
func FormatPercentage(value float64) string {
	if !finite(value) {
		return notAvailable
	}
	return decimal.FormatPercent(value, 2)
}

// formatPlain renders an amount with 2 fixed decimals for machine-readable columns.
// Undefined values are left empty.
func formatPlain(amount float64) string {
	if !finite(amount) {
		return ""
	}
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

const notAvailable = "n/a"

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
