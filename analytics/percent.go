package analytics

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

func ratio(part, total int64) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(part).Mul(hundred).Div(decimal.NewFromInt(total))
}

// Percent returns part as a percentage of total rounded to one decimal place.
// A zero total yields 0.
func Percent(part, total int64) float64 {
	return ratio(part, total).Round(1).InexactFloat64()
}

// FormatPercent renders Percent with exactly one decimal place, e.g. "85.0".
func FormatPercent(part, total int64) string {
	return ratio(part, total).StringFixed(1)
}

// floorPercent is the whole-number percentage used by progress bars.
func floorPercent(part, total int64) int64 {
	return ratio(part, total).Floor().IntPart()
}
