package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// Format renders the amount as en-US currency with cents, e.g. -$1,234.56
func (m Money) Format() string {
	return currency(m.Decimal, 2)
}

// FormatWhole renders the amount as en-US currency without cents, e.g. $1,235
func (m Money) FormatWhole() string {
	return currency(m.Decimal, 0)
}

// FormatCompact abbreviates large amounts: $1.2M, $350K. Smaller amounts use FormatWhole.
func (m Money) FormatCompact() string {
	abs := m.Decimal.Abs()
	switch {
	case abs.GreaterThanOrEqual(decimal.NewFromInt(1_000_000)):
		return signed(m.Decimal, "$"+abs.Div(decimal.NewFromInt(1_000_000)).StringFixed(1)+"M")
	case abs.GreaterThanOrEqual(decimal.NewFromInt(1_000)):
		return signed(m.Decimal, "$"+abs.Div(decimal.NewFromInt(1_000)).StringFixed(0)+"K")
	default:
		return m.FormatWhole()
	}
}

// FormatPercent renders a per-hundred value with a fixed number of decimals, e.g. 12.34%
func FormatPercent(value float64, places int32) string {
	return decimal.NewFromFloat(value).StringFixed(places) + "%"
}

func currency(d decimal.Decimal, places int32) string {
	s := d.Abs().StringFixed(places)
	intPart, frac, hasFrac := strings.Cut(s, ".")
	out := "$" + group(intPart)
	if hasFrac {
		out += "." + frac
	}
	// a value that rounds to zero is shown unsigned
	if d.Round(places).IsZero() {
		return out
	}
	return signed(d, out)
}

func signed(d decimal.Decimal, s string) string {
	if d.IsNegative() {
		return "-" + s
	}
	return s
}

// group inserts thousands separators into a string of digits
func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
