package analytics

import (
	"github.com/shubhamnexus/samparkmain-dashboard/dataset"
	"github.com/shubhamnexus/samparkmain-dashboard/models"
	"github.com/shubhamnexus/samparkmain-dashboard/utils"
)

// ProgramProgress combines the period's nominal progress with the partner
// and state factors, clamped to [0, 1].
func ProgramProgress(c *dataset.Catalog, sel models.FilterSelection) float64 {
	sel, _ = c.Resolve(sel)
	period, _ := c.Period(sel.Period)
	partner, _ := c.Partner(sel.Partner)
	state := c.Profile(sel.State)

	progress := utils.Product(period.Progress, partner.ProgressFactor, state.ProgressFactor)
	return utils.Clamp(progress, 0, 1)
}

// DeriveProgram reports how far each deliverable has got for a selection.
func DeriveProgram(c *dataset.Catalog, sel models.FilterSelection, base models.BaseTotals) models.ProgramMetrics {
	p := ProgramProgress(c, sel)
	deployed := utils.FloorMul(base.Kits, p)
	sparks := base.Students * 2

	return models.ProgramMetrics{
		Progress: p,
		AssetsToDeploy: models.AssetDeployment{
			Total:     base.Kits,
			Deployed:  deployed,
			Remaining: utils.FloorMul(base.Kits, utils.Complement(p)),
			Percent:   FormatPercent(deployed, base.Kits),
		},
		Schools:  progressOf(base.Schools, p),
		Students: progressOf(base.Students, p),
		Sparks:   progressOf(sparks, p),
		Kits:     progressOf(base.Kits, p),
		Teachers: progressOf(base.Teachers, p),
	}
}

func progressOf(total int64, p float64) models.Progress {
	done := utils.FloorMul(total, p)
	return models.Progress{
		Total:   total,
		Done:    done,
		Percent: FormatPercent(done, total),
	}
}
