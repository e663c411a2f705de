package analytics

import (
	"github.com/shubhamnexus/samparkmain-dashboard/dataset"
	"github.com/shubhamnexus/samparkmain-dashboard/models"
	"github.com/shubhamnexus/samparkmain-dashboard/utils"
)

// DeriveGoals assembles the goals panel: budget, program progress and both
// coverage tables for one selection.
func DeriveGoals(c *dataset.Catalog, sel models.FilterSelection, j utils.Jitter) models.GoalsResponse {
	sel, fallbacks := c.Resolve(sel)
	period, _ := c.Period(sel.Period)
	totals := c.FilteredData(sel)
	_, blocks := BlockCoverage(c, sel, j)

	return models.GoalsResponse{
		Selection: sel,
		Fallbacks: fallbacks,
		Budget:    DeriveBudget(totals, period, j),
		Program:   DeriveProgram(c, sel, totals),
		Districts: DistrictCoverage(c, sel, j),
		Blocks:    blocks,
	}
}
