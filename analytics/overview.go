package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/shubhamnexus/samparkmain-dashboard/dataset"
	"github.com/shubhamnexus/samparkmain-dashboard/models"
	"github.com/shubhamnexus/samparkmain-dashboard/utils"
)

const (
	targetHeadroom   = 1.2
	sparksPerStudent = 2
	sparksTarget     = 2.2
	kitsPerSTV       = 2
	acceptanceRate   = 92
	auditShare       = 0.8
	schoolsPerMeet   = 100

	usageLow  = 0.9
	usageHigh = 1.1
)

var (
	classSplit = []category{
		{name: "FLN", share: 0.40},
		{name: "Class 6-8", share: 0.35},
		{name: "Others", share: 0.25},
	}
	monitoringEvents = []models.MonitoringEvent{
		{Date: "2023-01-15", Event: "Initial Assessment", Status: "completed"},
		{Date: "2023-03-20", Event: "Mid-term Review", Status: "completed"},
		{Date: "2023-06-10", Event: "Progress Evaluation", Status: "completed"},
		{Date: "2023-09-05", Event: "Quality Check", Status: "pending"},
		{Date: "2023-12-15", Event: "Final Review", Status: "upcoming"},
	}
	// Month-index multipliers for the training trend and for classroom usage.
	trainingSeason = map[int]float64{5: 1.2, 6: 1.3, 11: 1.15}
	usageSeason    = map[int]float64{5: 0.8, 6: 0.7, 11: 0.9}
)

// DeriveOverview builds the overview panel from the selected state's static
// figures. Only the budget trend depends on partner and period.
func DeriveOverview(c *dataset.Catalog, sel models.FilterSelection, j utils.Jitter) models.Overview {
	sel, fallbacks := c.Resolve(sel)
	ov := c.Profile(sel.State).Overview

	return models.Overview{
		Selection:       sel,
		Fallbacks:       fallbacks,
		Totals:          c.FilteredData(sel),
		Budget:          BudgetTrend(c, sel, j),
		State:           ov,
		TeacherTraining: teacherTraining(ov, j),
		ClassroomImpact: classroomImpact(ov, j),
		AssetInfo:       assetInfo(ov),
		Monitoring: models.ProgramMonitoring{
			SchoolAudits:     utils.FloorMul(ov.DistrictSchools(), auditShare),
			StateMeetings:    utils.FloorDiv(ov.DistrictSchools(), schoolsPerMeet),
			MonitoringEvents: append([]models.MonitoringEvent(nil), monitoringEvents...),
		},
		AssetTrend: assetTrend(ov),
	}
}

func season(table map[int]float64, i int) float64 {
	if f, ok := table[i]; ok {
		return f
	}
	return 1
}

func teacherTraining(ov models.StateOverview, j utils.Jitter) models.TeacherTraining {
	trained := ov.TeachersTrained
	target := utils.FloorMul(trained, targetHeadroom)
	n := int64(len(ov.SchoolVisits))

	trend := make([]models.RatePoint, 0, n)
	for i, v := range ov.SchoolVisits {
		var rate int64
		if target > 0 {
			r := decimal.NewFromInt(trained * 100 * int64(i+1)).
				Div(decimal.NewFromInt(target * n)).
				Mul(decimal.NewFromFloat(season(trainingSeason, i))).
				Mul(decimal.NewFromFloat(j.Factor(rampLow, rampHigh)))
			rate = r.Floor().IntPart()
		}
		if rate > 100 {
			rate = 100
		}
		trend = append(trend, models.RatePoint{Month: v.Month, Rate: rate})
	}

	return models.TeacherTraining{
		Trained: trained,
		Target:  target,
		Feedback: models.Feedback{
			Positive: utils.FloorMul(trained, 0.85),
			Neutral:  utils.FloorMul(trained, 0.10),
			Negative: utils.FloorMul(trained, 0.05),
		},
		AcceptanceRate: acceptanceRate,
		Trend:          trend,
	}
}

// classroomImpact treats every student of the listed districts as a
// registered user.
func classroomImpact(ov models.StateOverview, j utils.Jitter) models.ClassroomImpact {
	users := ov.DistrictStudents()

	trend := make([]models.UsagePoint, 0, len(ov.SchoolVisits))
	for i, v := range ov.SchoolVisits {
		growth := decimal.NewFromFloat(0.6).Add(
			decimal.NewFromInt(int64(i)).Div(decimal.NewFromInt(12)).Mul(decimal.NewFromFloat(0.4)))
		active := decimal.NewFromInt(users).
			Mul(decimal.NewFromFloat(season(usageSeason, i))).
			Mul(decimal.NewFromFloat(j.Factor(usageLow, usageHigh))).
			Mul(growth).
			Floor().IntPart()
		trend = append(trend, models.UsagePoint{
			Month:         v.Month,
			ActiveUsers:   active,
			ResourceUsage: utils.FloorMul(active, resourceShare),
		})
	}

	return models.ClassroomImpact{
		RegisteredUsers:     users,
		ResourcesUsed:       utils.FloorMul(users, resourceShare),
		SubjectDistribution: chartItems(users, subjectSplit),
		ClassDistribution:   chartItems(users, classSplit),
		Trend:               trend,
	}
}

func assetInfo(ov models.StateOverview) models.AssetInfo {
	kits := ov.STVInstalled * kitsPerSTV
	sparks := ov.DistrictStudents() * sparksPerStudent
	return models.AssetInfo{
		Kits:      assetProgress(kits, utils.FloorMul(kits, targetHeadroom)),
		SamparkTV: assetProgress(ov.STVInstalled, utils.FloorMul(ov.STVInstalled, targetHeadroom)),
		Sparks:    assetProgress(sparks, utils.FloorMul(ov.DistrictStudents(), sparksTarget)),
	}
}

func assetProgress(distributed, target int64) models.AssetProgress {
	return models.AssetProgress{
		Distributed: distributed,
		Target:      target,
		Progress:    floorPercent(distributed, target),
	}
}

// assetTrend ramps linearly to the current distribution over the visit months.
func assetTrend(ov models.StateOverview) []models.AssetTrendPoint {
	n := int64(len(ov.SchoolVisits))
	students := ov.DistrictStudents()
	points := make([]models.AssetTrendPoint, 0, n)
	for i, v := range ov.SchoolVisits {
		step := int64(i + 1)
		points = append(points, models.AssetTrendPoint{
			Month:     v.Month,
			Kits:      utils.FloorShare(ov.STVInstalled*kitsPerSTV*step, n, 1),
			SamparkTV: utils.FloorShare(ov.STVInstalled*step, n, 1),
			Sparks:    utils.FloorShare(students*sparksPerStudent*step, n, 1),
		})
	}
	return points
}
