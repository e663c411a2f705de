package models

// District is a static district record. Blocks is the true upstream block
// count; drill-down never materializes more than MaxChildren of them.
type District struct {
	Code     string `json:"code" yaml:"code"`
	Name     string `json:"name" yaml:"name"`
	Blocks   int    `json:"blocks" yaml:"blocks"`
	Schools  int64  `json:"schools" yaml:"schools"`
	Students int64  `json:"students" yaml:"students"`
	Teachers int64  `json:"teachers" yaml:"teachers"`
}

// MaxChildren caps how many children a drill-down level generates.
const MaxChildren = 10

// BlockCount is the number of blocks a drill-down of this district yields.
func (d District) BlockCount() int {
	if d.Blocks > MaxChildren {
		return MaxChildren
	}
	if d.Blocks < 0 {
		return 0
	}
	return d.Blocks
}

type MonthlyVisits struct {
	Month  string `json:"month" yaml:"month"`
	Visits int64  `json:"visits" yaml:"visits"`
}

type LessonsData struct {
	MoreThan5 int64 `json:"more_than_5" yaml:"more_than_5"`
	LessThan5 int64 `json:"less_than_5" yaml:"less_than_5"`
}

// StateOverview holds the asset and monitoring figures of one state.
type StateOverview struct {
	TotalDistricts  int64           `json:"total_districts" yaml:"total_districts"`
	STVInstalled    int64           `json:"stv_installed" yaml:"stv_installed"`
	TeachersTrained int64           `json:"teachers_trained" yaml:"teachers_trained"`
	TotalMeetings   int64           `json:"total_meetings" yaml:"total_meetings"`
	SchoolVisits    []MonthlyVisits `json:"school_visits" yaml:"school_visits"`
	Lessons         LessonsData     `json:"lessons" yaml:"lessons"`
	Districts       []District      `json:"districts" yaml:"districts"`
}

// TotalVisits sums the monthly school visits.
func (o StateOverview) TotalVisits() int64 {
	var total int64
	for _, v := range o.SchoolVisits {
		total += v.Visits
	}
	return total
}

// DistrictStudents sums students over the listed districts.
func (o StateOverview) DistrictStudents() int64 {
	var total int64
	for _, d := range o.Districts {
		total += d.Students
	}
	return total
}

// DistrictSchools sums schools over the listed districts.
func (o StateOverview) DistrictSchools() int64 {
	var total int64
	for _, d := range o.Districts {
		total += d.Schools
	}
	return total
}

type DistrictListResponse struct {
	State     string     `json:"state"`
	Label     string     `json:"label"`
	Districts []District `json:"districts"`
	Borrowed  bool       `json:"borrowed,omitempty"`
}
