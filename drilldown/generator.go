package drilldown

import (
	"fmt"

	"github.com/shubhamnexus/samparkmain-dashboard/models"
	"github.com/shubhamnexus/samparkmain-dashboard/utils"
)

// Jitter ranges used when splitting a parent's figures across its children.
const (
	shareLow  = 0.8
	shareHigh = 1.2

	trainedLow  = 0.7
	trainedHigh = 1.0

	smtvChance  = 0.7
	lessonLimit = 10
	lessonsBar  = 5
)

// ExpandDistrict materializes up to models.MaxChildren synthetic blocks for a
// district. School counts are an even share of the district's schools scaled
// by an independent factor per block; students and teachers follow the
// district's per-school ratios. Asset and monitoring figures are the state's
// per-district average, again jittered per block.
//
// The returned totals are summed over the generated blocks and will usually
// differ from the district's own figures.
func ExpandDistrict(d models.District, state models.StateOverview, j utils.Jitter) models.DistrictDetails {
	n := d.BlockCount()
	avgSchools := utils.FloorDiv(d.Schools, int64(n))
	districts := state.TotalDistricts
	visits := state.TotalVisits()

	blocks := make([]models.Block, 0, n)
	for i := 0; i < n; i++ {
		schools := utils.FloorMul(avgSchools, j.Factor(shareLow, shareHigh))
		blocks = append(blocks, models.Block{
			Code:                        fmt.Sprintf("%sB%02d", d.Code, i+1),
			Name:                        fmt.Sprintf("Block %d", i+1),
			Schools:                     schools,
			Students:                    perSchool(d.Students, d.Schools, schools),
			Teachers:                    perSchool(d.Teachers, d.Schools, schools),
			SMTVInstalled:               utils.FloorShare(state.STVInstalled, districts, j.Factor(shareLow, shareHigh)),
			TeachersTrained:             utils.FloorShare(state.TeachersTrained, districts, j.Factor(shareLow, shareHigh)),
			TotalMeetings:               utils.FloorShare(state.TotalMeetings, districts, j.Factor(shareLow, shareHigh)),
			SchoolVisits:                utils.FloorShare(visits, districts, j.Factor(shareLow, shareHigh)),
			SchoolsWithMoreThan5Lessons: utils.FloorShare(state.Lessons.MoreThan5, districts, j.Factor(shareLow, shareHigh)),
		})
	}

	details := models.DistrictDetails{
		Code:   d.Code,
		Name:   d.Name,
		Blocks: blocks,
	}
	details.TotalStats.TotalBlocks = n
	for _, b := range blocks {
		details.TotalStats.SMTVInstalled += b.SMTVInstalled
		details.TotalStats.TeachersTrained += b.TeachersTrained
		details.TotalStats.TotalMeetings += b.TotalMeetings
		details.TotalStats.SchoolVisits += b.SchoolVisits
		details.TotalStats.SchoolsWithMoreThan5Lessons += b.SchoolsWithMoreThan5Lessons
	}
	return details
}

// ExpandBlock materializes up to models.MaxChildren synthetic schools for a
// block and splits the block's totals evenly among the generated schools.
// Each school independently has SMTV installed with probability 0.7 and
// between 0 and 9 completed lessons.
func ExpandBlock(b models.Block, j utils.Jitter) models.BlockDetails {
	n := int(b.Schools)
	if n > models.MaxChildren {
		n = models.MaxChildren
	}
	if n < 0 {
		n = 0
	}
	avgStudents := utils.FloorDiv(b.Students, int64(n))
	avgTeachers := utils.FloorDiv(b.Teachers, int64(n))

	schools := make([]models.School, 0, n)
	for i := 0; i < n; i++ {
		teachers := utils.FloorMul(avgTeachers, j.Factor(shareLow, shareHigh))
		school := models.School{
			Code:     fmt.Sprintf("%sS%03d", b.Code, i+1),
			Name:     fmt.Sprintf("School %d", i+1),
			Students: utils.FloorMul(avgStudents, j.Factor(shareLow, shareHigh)),
			Teachers: teachers,
		}
		school.SMTVInstalled = j.Chance(smtvChance)
		school.TeachersTrained = utils.FloorMul(teachers, j.Factor(trainedLow, trainedHigh))
		school.TotalMeetings = utils.FloorShare(b.TotalMeetings, int64(n), j.Factor(shareLow, shareHigh))
		school.SchoolVisits = utils.FloorShare(b.SchoolVisits, int64(n), j.Factor(shareLow, shareHigh))
		school.LessonsCompleted = j.Intn(lessonLimit)
		schools = append(schools, school)
	}

	details := models.BlockDetails{
		Code:    b.Code,
		Name:    b.Name,
		Schools: schools,
	}
	details.TotalStats.TotalSchools = n
	for _, s := range schools {
		if s.SMTVInstalled {
			details.TotalStats.SMTVInstalled++
		}
		if s.LessonsCompleted > lessonsBar {
			details.TotalStats.SchoolsWithMoreThan5Lessons++
		}
		details.TotalStats.TeachersTrained += s.TeachersTrained
		details.TotalStats.TotalMeetings += s.TotalMeetings
		details.TotalStats.SchoolVisits += s.SchoolVisits
	}
	return details
}

// perSchool scales a district total to a block by the block's school count.
func perSchool(total, schools, blockSchools int64) int64 {
	return utils.FloorShare(total*blockSchools, schools, 1)
}
