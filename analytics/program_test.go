package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shubhamnexus/samparkmain-dashboard/dataset"
	"github.com/shubhamnexus/samparkmain-dashboard/models"
)

func TestProgramProgress(t *testing.T) {
	c := dataset.MustDefaultCatalog()

	assert.Equal(t, 0.25, ProgramProgress(c, models.FilterSelection{Partner: "all", State: "andhra-pradesh", Period: "Q1"}))
	assert.Equal(t, 0.7, ProgramProgress(c, models.FilterSelection{Partner: "all", State: "all", Period: "all"}))
	assert.InDelta(t, 0.5*0.95*1.1, ProgramProgress(c, models.FilterSelection{Partner: "brightfuture", State: "kerala", Period: "Q2"}), 1e-12)

	// 0.9 * 1.1 * 1.15 exceeds one and is clamped.
	assert.Equal(t, 1.0, ProgramProgress(c, models.FilterSelection{Partner: "edutech", State: "maharashtra", Period: "Q4"}))
}

func TestDeriveProgram(t *testing.T) {
	c := dataset.MustDefaultCatalog()
	sel := models.FilterSelection{Partner: "all", State: "andhra-pradesh", Period: "Q1"}
	base := models.BaseTotals{Schools: 1000, Students: 100, Teachers: 50, Kits: 10}

	got := DeriveProgram(c, sel, base)
	assert.Equal(t, 0.25, got.Progress)
	assert.Equal(t, models.AssetDeployment{Total: 10, Deployed: 2, Remaining: 7, Percent: "20.0"}, got.AssetsToDeploy)
	assert.Equal(t, models.Progress{Total: 1000, Done: 250, Percent: "25.0"}, got.Schools)
	assert.Equal(t, models.Progress{Total: 200, Done: 50, Percent: "25.0"}, got.Sparks)
	assert.Equal(t, int64(12), got.Teachers.Done)
}

func TestDeriveProgram_ClampedNeverExceedsTotal(t *testing.T) {
	c := dataset.MustDefaultCatalog()
	sel := models.FilterSelection{Partner: "edutech", State: "maharashtra", Period: "Q4"}
	base := c.FilteredData(sel)

	got := DeriveProgram(c, sel, base)
	assert.Equal(t, got.Schools.Total, got.Schools.Done)
	assert.Equal(t, int64(0), got.AssetsToDeploy.Remaining)
	assert.Equal(t, "100.0", got.Kits.Percent)
}
