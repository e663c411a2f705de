package models

type Feedback struct {
	Positive int64 `json:"positive"`
	Neutral  int64 `json:"neutral"`
	Negative int64 `json:"negative"`
}

type RatePoint struct {
	Month string `json:"month"`
	Rate  int64  `json:"rate"`
}

type TeacherTraining struct {
	Trained        int64       `json:"trained"`
	Target         int64       `json:"target"`
	Feedback       Feedback    `json:"feedback"`
	AcceptanceRate int64       `json:"acceptance_rate"`
	Trend          []RatePoint `json:"trend"`
}

type UsagePoint struct {
	Month         string `json:"month"`
	ActiveUsers   int64  `json:"active_users"`
	ResourceUsage int64  `json:"resource_usage"`
}

type ClassroomImpact struct {
	RegisteredUsers     int64        `json:"registered_users"`
	ResourcesUsed       int64        `json:"resources_used"`
	SubjectDistribution []ChartItem  `json:"subject_distribution"`
	ClassDistribution   []ChartItem  `json:"class_distribution"`
	Trend               []UsagePoint `json:"trend"`
}

type AssetProgress struct {
	Distributed int64 `json:"distributed"`
	Target      int64 `json:"target"`
	Progress    int64 `json:"progress"`
}

type AssetInfo struct {
	Kits      AssetProgress `json:"kits"`
	SamparkTV AssetProgress `json:"sampark_tv"`
	Sparks    AssetProgress `json:"sparks"`
}

type MonitoringEvent struct {
	Date   string `json:"date"`
	Event  string `json:"event"`
	Status string `json:"status"`
}

type ProgramMonitoring struct {
	SchoolAudits     int64             `json:"school_audits"`
	StateMeetings    int64             `json:"state_meetings"`
	MonitoringEvents []MonitoringEvent `json:"monitoring_events"`
}

type AssetTrendPoint struct {
	Month     string `json:"month"`
	Kits      int64  `json:"kits"`
	SamparkTV int64  `json:"sampark_tv"`
	Sparks    int64  `json:"sparks"`
}

type Overview struct {
	Selection       FilterSelection   `json:"selection"`
	Fallbacks       []Fallback        `json:"fallbacks,omitempty"`
	Seed            uint64            `json:"seed"`
	Totals          BaseTotals        `json:"totals"`
	Budget          []BudgetPoint     `json:"budget_trend"`
	State           StateOverview     `json:"state"`
	TeacherTraining TeacherTraining   `json:"teacher_training"`
	ClassroomImpact ClassroomImpact   `json:"classroom_impact"`
	AssetInfo       AssetInfo         `json:"asset_info"`
	Monitoring      ProgramMonitoring `json:"program_monitoring"`
	AssetTrend      []AssetTrendPoint `json:"asset_distribution_trend"`
}
