package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round2 rounds a value to two decimal places (half away from zero).
func Round2(value float64) float64 {
	return Money(value).InexactFloat64()
}

// IsFinite reports whether value is neither NaN nor an infinity.
func IsFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}

// Money converts a float amount into a decimal rounded to cents.
func Money(value float64) decimal.Decimal {
	if !IsFinite(value) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(value).Round(2)
}

// FormatMoney renders an amount as "$1,234.56".
func FormatMoney(value float64) string {
	d := Money(value)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	s := d.StringFixed(2)
	whole, frac := s[:len(s)-3], s[len(s)-2:]
	return sign + "$" + groupThousands(whole) + "." + frac
}

// FormatPercent renders a decimal rate (0.0599) as "5.99%".
func FormatPercent(rate float64) string {
	return decimal.NewFromFloat(rate).Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}
	head := len(s) % 3
	out := make([]byte, 0, len(s)+len(s)/3)
	if head > 0 {
		out = append(out, s[:head]...)
	}
	for i := head; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
