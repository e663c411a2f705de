package models

type Block struct {
	Code                        string `json:"code"`
	Name                        string `json:"name"`
	Schools                     int64  `json:"schools"`
	Students                    int64  `json:"students"`
	Teachers                    int64  `json:"teachers"`
	SMTVInstalled               int64  `json:"smtv_installed"`
	TeachersTrained             int64  `json:"teachers_trained"`
	TotalMeetings               int64  `json:"total_meetings"`
	SchoolVisits                int64  `json:"school_visits"`
	SchoolsWithMoreThan5Lessons int64  `json:"schools_with_more_than_5_lessons"`
}

type School struct {
	Code             string `json:"code"`
	Name             string `json:"name"`
	Students         int64  `json:"students"`
	Teachers         int64  `json:"teachers"`
	SMTVInstalled    bool   `json:"smtv_installed"`
	TeachersTrained  int64  `json:"teachers_trained"`
	TotalMeetings    int64  `json:"total_meetings"`
	SchoolVisits     int64  `json:"school_visits"`
	LessonsCompleted int    `json:"lessons_completed"`
}

// DistrictStats totals are summed over the generated blocks, not copied from
// the district record.
type DistrictStats struct {
	SMTVInstalled               int64 `json:"smtv_installed"`
	TeachersTrained             int64 `json:"teachers_trained"`
	TotalMeetings               int64 `json:"total_meetings"`
	SchoolVisits                int64 `json:"school_visits"`
	SchoolsWithMoreThan5Lessons int64 `json:"schools_with_more_than_5_lessons"`
	TotalBlocks                 int   `json:"total_blocks"`
}

type DistrictDetails struct {
	Code       string        `json:"code"`
	Name       string        `json:"name"`
	Blocks     []Block       `json:"blocks"`
	TotalStats DistrictStats `json:"total_stats"`
}

type BlockStats struct {
	TotalSchools                int   `json:"total_schools"`
	SMTVInstalled               int64 `json:"smtv_installed"`
	TeachersTrained             int64 `json:"teachers_trained"`
	TotalMeetings               int64 `json:"total_meetings"`
	SchoolVisits                int64 `json:"school_visits"`
	SchoolsWithMoreThan5Lessons int64 `json:"schools_with_more_than_5_lessons"`
}

type BlockDetails struct {
	Code       string     `json:"code"`
	Name       string     `json:"name"`
	Schools    []School   `json:"schools"`
	TotalStats BlockStats `json:"total_stats"`
}

// DrillView is the navigator's current level and whatever it has materialized.
type DrillView struct {
	SessionID string           `json:"session_id,omitempty"`
	Level     string           `json:"level"`
	State     string           `json:"state"`
	Seed      uint64           `json:"seed"`
	Districts []District       `json:"districts,omitempty"`
	District  *DistrictDetails `json:"district,omitempty"`
	Block     *BlockDetails    `json:"block,omitempty"`
}
