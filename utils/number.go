package utils

import (
	"github.com/shopspring/decimal"
)

// FloorMul multiplies value by every factor in decimal arithmetic and floors
// the result, so 1000000 * 0.35 is exactly 350000 rather than 349999.
func FloorMul(value int64, factors ...float64) int64 {
	d := decimal.NewFromInt(value)
	for _, f := range factors {
		d = d.Mul(decimal.NewFromFloat(f))
	}
	return d.Floor().IntPart()
}

// FloorShare is floor(value / parts * factor). parts <= 0 yields 0.
func FloorShare(value, parts int64, factor float64) int64 {
	if parts <= 0 {
		return 0
	}
	d := decimal.NewFromInt(value).
		Div(decimal.NewFromInt(parts)).
		Mul(decimal.NewFromFloat(factor))
	return d.Floor().IntPart()
}

// FloorDiv is floor(a / b) with a zero divisor mapped to 0.
func FloorDiv(a, b int64) int64 {
	if b == 0 {
		return 0
	}
	return decimal.NewFromInt(a).Div(decimal.NewFromInt(b)).Floor().IntPart()
}

// Complement returns 1 - f without float cancellation error.
func Complement(f float64) float64 {
	return decimal.NewFromInt(1).Sub(decimal.NewFromFloat(f)).InexactFloat64()
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MinInt64 returns the smaller of a and b.
func MinInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

// Product multiplies factors in decimal arithmetic, so 0.9 * 1.1 is 0.99.
func Product(factors ...float64) float64 {
	d := decimal.NewFromInt(1)
	for _, f := range factors {
		d = d.Mul(decimal.NewFromFloat(f))
	}
	return d.InexactFloat64()
}
