// Package numeric provides the shared numeric primitives used by the
// analytics core: safe division, clamping, half-up rounding, and the
// percentage convention every downstream metric relies on.
package numeric

import (
	"fmt"
	"math"
)

// SafeDivide returns n/d, or 0 when the denominator is zero.
func SafeDivide(n, d float64) float64 {
	if d == 0 {
		return 0
	}
	return n / d
}

// Clamp bounds v into [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RoundTo rounds v to the given number of decimal places using half-up
// rounding via scale-multiply-round-divide.
func RoundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}

// Percent converts the ratio n/d into a percentage rounded to two decimal
// places. The raw ratio is scaled by 10000 before rounding so fixtures stay
// bit-for-bit stable: round(x*10000)/100.
func Percent(n, d float64) float64 {
	if d == 0 {
		return 0
	}
	return math.Round(n/d*10000) / 100
}

// FormatCurrency renders a monetary amount with two decimals, e.g. "$1250.50".
func FormatCurrency(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// FormatPercent renders a percentage with two decimals and a trailing sign.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}
