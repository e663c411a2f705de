package analytics

import (
	"github.com/shubhamnexus/samparkmain-dashboard/dataset"
	"github.com/shubhamnexus/samparkmain-dashboard/models"
	"github.com/shubhamnexus/samparkmain-dashboard/utils"
)

const (
	maleShare     = 0.52
	trainedShare  = 0.8
	pendingSMTV   = 0.3
	resourceShare = 0.7
)

var (
	schoolTypes = []category{
		{"Government", "Public schools under government management", 0.7},
		{"Private", "Private schools and aided institutions", 0.3},
	}
	gradeBands = []category{
		{"Elementary", "Grades 1-5", 0.4},
		{"Middle School", "Grades 6-8", 0.3},
		{"High School", "Grades 9-12", 0.3},
	}
	teacherSubjects = []category{
		{"Mathematics", "Math and quantitative skills", 0.3},
		{"Science", "Physics, Chemistry, Biology", 0.25},
		{"Languages", "English and regional languages", 0.25},
		{"Social Studies", "History, Geography, Civics", 0.2},
	}
	subjectSplit = []category{
		{name: "English", share: 0.35},
		{name: "Mathematics", share: 0.30},
		{name: "Science", share: 0.25},
		{name: "Other", share: 0.10},
	}
)

// DeriveSummary builds the summary panel: fixed-ratio breakdowns of the
// selection's totals plus the budget and performance trends.
func DeriveSummary(c *dataset.Catalog, sel models.FilterSelection, j utils.Jitter) models.ProgramSummary {
	sel, fallbacks := c.Resolve(sel)
	totals := c.FilteredData(sel)
	profile := c.Profile(sel.State)
	stv := profile.Overview.STVInstalled

	return models.ProgramSummary{
		Selection: sel,
		Fallbacks: fallbacks,
		Totals:    totals,
		Budget:    summaryBudget(totals),
		Schools: models.SchoolsSummary{
			Total:     totals.Schools,
			Urban:     utils.FloorMul(totals.Schools, profile.UrbanShare),
			Rural:     utils.FloorMul(totals.Schools, utils.Complement(profile.UrbanShare)),
			Breakdown: shareItems(totals.Schools, schoolTypes),
		},
		Students: models.StudentsSummary{
			Total:     totals.Students,
			Male:      utils.FloorMul(totals.Students, maleShare),
			Female:    utils.FloorMul(totals.Students, utils.Complement(maleShare)),
			Breakdown: shareItems(totals.Students, gradeBands),
		},
		Teachers: models.TeachersSummary{
			Total:     totals.Teachers,
			Trained:   utils.FloorMul(totals.Teachers, trainedShare),
			Pending:   utils.FloorMul(totals.Teachers, utils.Complement(trainedShare)),
			Breakdown: shareItems(totals.Teachers, teacherSubjects),
		},
		SMTV: []models.ChartItem{
			{Name: "Pending", Value: utils.FloorMul(stv, pendingSMTV)},
			{Name: "Installed", Value: stv},
		},
		ResourceUsage: chartItems(utils.FloorMul(profile.Overview.DistrictStudents(), resourceShare), subjectSplit),
		BudgetTrend:   BudgetTrend(c, sel, j),
		Performance:   PerformanceTrend(c, sel, j),
	}
}

func shareItems(total int64, cats []category) []models.ShareItem {
	items := make([]models.ShareItem, 0, len(cats))
	for _, c := range cats {
		items = append(items, models.ShareItem{
			Name:        c.name,
			Description: c.description,
			Share:       c.share,
			Count:       utils.FloorMul(total, c.share),
		})
	}
	return items
}

func chartItems(total int64, cats []category) []models.ChartItem {
	items := make([]models.ChartItem, 0, len(cats))
	for _, c := range cats {
		items = append(items, models.ChartItem{Name: c.name, Value: utils.FloorMul(total, c.share)})
	}
	return items
}
