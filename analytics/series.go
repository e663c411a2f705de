package analytics

import (
	"github.com/shubhamnexus/samparkmain-dashboard/dataset"
	"github.com/shubhamnexus/samparkmain-dashboard/drilldown"
	"github.com/shubhamnexus/samparkmain-dashboard/models"
	"github.com/shubhamnexus/samparkmain-dashboard/utils"
)

const (
	rampLow  = 0.95
	rampHigh = 1.05

	coverageLow  = 0.8
	coverageHigh = 1.2
)

// BudgetTrend spreads the selection's budget evenly over the period's months
// and jitters the monthly spend around the utilization rate.
func BudgetTrend(c *dataset.Catalog, sel models.FilterSelection, j utils.Jitter) []models.BudgetPoint {
	sel, _ = c.Resolve(sel)
	period, _ := c.Period(sel.Period)
	totals := c.FilteredData(sel)
	rate := UtilizationRate(period)

	monthly := utils.FloorDiv(totals.Budget, int64(len(period.Months)))
	points := make([]models.BudgetPoint, 0, len(period.Months))
	for _, m := range period.Months {
		points = append(points, models.BudgetPoint{
			Month:  m,
			Budget: monthly,
			Spent:  utils.FloorMul(monthly, rate, j.Factor(spendLow, spendHigh)),
		})
	}
	return points
}

// PerformanceTrend is a cumulative ramp towards the selection's totals.
func PerformanceTrend(c *dataset.Catalog, sel models.FilterSelection, j utils.Jitter) []models.PerformancePoint {
	sel, _ = c.Resolve(sel)
	period, _ := c.Period(sel.Period)
	totals := c.FilteredData(sel)
	n := int64(len(period.Months))

	points := make([]models.PerformancePoint, 0, n)
	for i, m := range period.Months {
		step := int64(i + 1)
		points = append(points, models.PerformancePoint{
			Month:    m,
			Students: utils.FloorShare(totals.Students*step, n, j.Factor(rampLow, rampHigh)),
			Teachers: utils.FloorShare(totals.Teachers*step, n, j.Factor(rampLow, rampHigh)),
			Schools:  utils.FloorShare(totals.Schools*step, n, j.Factor(rampLow, rampHigh)),
		})
	}
	return points
}

// DistrictCoverage reports program coverage for each listed district of the
// selected state. District figures are scaled by the partner's share.
func DistrictCoverage(c *dataset.Catalog, sel models.FilterSelection, j utils.Jitter) []models.CoverageRow {
	sel, _ = c.Resolve(sel)
	partner, _ := c.Partner(sel.Partner)
	progress := ProgramProgress(c, sel)

	districts := c.Profile(sel.State).Overview.Districts
	rows := make([]models.CoverageRow, 0, len(districts))
	for _, d := range districts {
		rows = append(rows, coverageRow(d.Name,
			utils.FloorMul(d.Schools, partner.Share),
			utils.FloorMul(d.Students, partner.Share),
			progress, j))
	}
	return rows
}

// BlockCoverage expands the selected state's largest district into blocks
// and reports coverage for each of them. It also returns the expanded
// district's code.
func BlockCoverage(c *dataset.Catalog, sel models.FilterSelection, j utils.Jitter) (string, []models.CoverageRow) {
	sel, _ = c.Resolve(sel)
	partner, _ := c.Partner(sel.Partner)
	progress := ProgramProgress(c, sel)
	profile := c.Profile(sel.State)

	largest, ok := largestDistrict(profile.Overview.Districts)
	if !ok {
		return "", nil
	}
	details := drilldown.ExpandDistrict(largest, profile.Overview, j)
	rows := make([]models.CoverageRow, 0, len(details.Blocks))
	for _, b := range details.Blocks {
		rows = append(rows, coverageRow(b.Name,
			utils.FloorMul(b.Schools, partner.Share),
			utils.FloorMul(b.Students, partner.Share),
			progress, j))
	}
	return largest.Code, rows
}

func largestDistrict(districts []models.District) (models.District, bool) {
	if len(districts) == 0 {
		return models.District{}, false
	}
	best := districts[0]
	for _, d := range districts[1:] {
		if d.Schools > best.Schools {
			best = d
		}
	}
	return best, true
}

// coverageRow never reports more covered than total.
func coverageRow(name string, schools, students int64, progress float64, j utils.Jitter) models.CoverageRow {
	covered := utils.MinInt64(schools, utils.FloorMul(schools, progress, j.Factor(coverageLow, coverageHigh)))
	reached := utils.MinInt64(students, utils.FloorMul(students, progress, j.Factor(coverageLow, coverageHigh)))
	return models.CoverageRow{
		Name:            name,
		Coverage:        Percent(covered, schools),
		CoveredSchools:  covered,
		TotalSchools:    schools,
		CoveredStudents: reached,
		TotalStudents:   students,
	}
}
