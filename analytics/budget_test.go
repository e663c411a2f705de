package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubhamnexus/samparkmain-dashboard/models"
	"github.com/shubhamnexus/samparkmain-dashboard/utils"
)

var q4 = models.Period{ID: "Q4", Utilization: 0.85, Months: []string{"Oct", "Nov", "Dec"}}

func TestDeriveBudget_Q4Example(t *testing.T) {
	got := DeriveBudget(models.BaseTotals{Budget: 1000000}, q4, utils.Neutral)

	assert.Equal(t, int64(1000000), got.Total)
	assert.Equal(t, 0.85, got.UtilizationRate)
	assert.Equal(t, int64(850000), got.Utilized)
	assert.Equal(t, int64(150000), got.Remaining)
	assert.Equal(t, "85.0", got.UtilizedPercent)

	require.Len(t, got.Categories, 5)
	lm := got.Categories[1]
	assert.Equal(t, "Learning Materials", lm.Name)
	assert.Equal(t, int64(350000), lm.Allocated)
	assert.Equal(t, int64(297500), lm.Spent)
}

func TestDeriveBudget_CategoriesPartitionBudget(t *testing.T) {
	got := DeriveBudget(models.BaseTotals{Budget: 1000000}, q4, utils.Neutral)

	var allocated int64
	var share float64
	for _, c := range got.Categories {
		allocated += c.Allocated
		share += c.Share
	}
	assert.Equal(t, int64(1000000), allocated)
	assert.InDelta(t, 1.0, share, 1e-9)
	assert.Equal(t, []string{"Teacher Training", "Learning Materials", "Infrastructure", "Monitoring", "Miscellaneous"},
		[]string{got.Categories[0].Name, got.Categories[1].Name, got.Categories[2].Name, got.Categories[3].Name, got.Categories[4].Name})
}

func TestDeriveBudget_SeededBounds(t *testing.T) {
	base := models.BaseTotals{Budget: 20800000}
	for seed := uint64(0); seed < 100; seed++ {
		got := DeriveBudget(base, q4, utils.NewSeededJitter(seed))

		sum := got.Utilized + got.Remaining
		assert.GreaterOrEqual(t, sum, base.Budget-1)
		assert.LessOrEqual(t, sum, base.Budget)
		assert.GreaterOrEqual(t, got.Utilization, 0.85*0.9-1e-9)
		assert.Less(t, got.Utilization, 0.85*1.1+1e-9)
		for _, c := range got.Categories {
			assert.GreaterOrEqual(t, c.Spent, int64(0))
			assert.LessOrEqual(t, c.Spent, c.Allocated)
		}
	}
}

func TestDeriveBudget_ZeroBudget(t *testing.T) {
	got := DeriveBudget(models.BaseTotals{}, q4, utils.Neutral)
	assert.Zero(t, got.Utilized)
	assert.Zero(t, got.Remaining)
	assert.Equal(t, "0.0", got.UtilizedPercent)
}

func TestUtilizationRate(t *testing.T) {
	assert.Equal(t, 0.85, UtilizationRate(q4))
	assert.Equal(t, DefaultUtilization, UtilizationRate(models.Period{ID: "custom"}))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 33.3, Percent(1, 3))
	assert.Equal(t, 66.7, Percent(2, 3))
	assert.Equal(t, 100.0, Percent(5, 5))
	assert.Equal(t, 0.0, Percent(5, 0))

	assert.Equal(t, "66.7", FormatPercent(2, 3))
	assert.Equal(t, "0.0", FormatPercent(0, 0))
	assert.Equal(t, "20.0", FormatPercent(2, 10))
}
