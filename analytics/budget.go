package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/shubhamnexus/samparkmain-dashboard/models"
	"github.com/shubhamnexus/samparkmain-dashboard/utils"
)

// DefaultUtilization applies to periods that do not configure their own rate.
const DefaultUtilization = 0.70

const (
	spendLow  = 0.9
	spendHigh = 1.1

	summaryUtilization = 0.75
)

type category struct {
	name        string
	description string
	share       float64
}

// budgetCategories must sum to exactly 1.0.
var budgetCategories = []category{
	{"Teacher Training", "Professional development and training programs", 0.20},
	{"Learning Materials", "Textbooks, digital resources, and educational kits", 0.35},
	{"Infrastructure", "Classroom improvements and technology setup", 0.25},
	{"Monitoring", "Program evaluation and quality assurance", 0.12},
	{"Miscellaneous", "Administrative and operational expenses", 0.08},
}

// UtilizationRate is the nominal share of the budget spent within a period.
func UtilizationRate(p models.Period) float64 {
	if p.Utilization > 0 {
		return p.Utilization
	}
	return DefaultUtilization
}

// DeriveBudget splits a budget into utilized and remaining parts around a
// jittered utilization, then allocates it across the fixed categories. Each
// category draws its own spend jitter.
func DeriveBudget(base models.BaseTotals, period models.Period, j utils.Jitter) models.BudgetBreakdown {
	rate := UtilizationRate(period)
	actual := decimal.NewFromFloat(rate).Mul(decimal.NewFromFloat(j.Factor(spendLow, spendHigh)))
	total := decimal.NewFromInt(base.Budget)

	out := models.BudgetBreakdown{
		Total:           base.Budget,
		UtilizationRate: rate,
		Utilization:     actual.InexactFloat64(),
		Utilized:        total.Mul(actual).Floor().IntPart(),
		Remaining:       total.Mul(decimal.NewFromInt(1).Sub(actual)).Floor().IntPart(),
	}
	out.UtilizedPercent = FormatPercent(out.Utilized, out.Total)

	out.Categories = make([]models.BudgetCategory, 0, len(budgetCategories))
	for _, c := range budgetCategories {
		allocated := utils.FloorMul(base.Budget, c.share)
		out.Categories = append(out.Categories, models.BudgetCategory{
			Name:        c.name,
			Description: c.description,
			Share:       c.share,
			Allocated:   allocated,
			Spent:       utils.FloorMul(allocated, rate, j.Factor(spendLow, spendHigh)),
		})
	}
	return out
}

// summaryBudget is the fixed 75/25 split shown on the summary panel.
func summaryBudget(base models.BaseTotals) models.BudgetBreakdown {
	out := models.BudgetBreakdown{
		Total:           base.Budget,
		UtilizationRate: summaryUtilization,
		Utilization:     summaryUtilization,
		Utilized:        utils.FloorMul(base.Budget, summaryUtilization),
		Remaining:       utils.FloorMul(base.Budget, utils.Complement(summaryUtilization)),
	}
	out.UtilizedPercent = FormatPercent(out.Utilized, out.Total)
	for _, c := range budgetCategories {
		allocated := utils.FloorMul(base.Budget, c.share)
		out.Categories = append(out.Categories, models.BudgetCategory{
			Name:        c.name,
			Description: c.description,
			Share:       c.share,
			Allocated:   allocated,
			Spent:       utils.FloorMul(allocated, summaryUtilization),
		})
	}
	return out
}
