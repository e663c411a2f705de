package models

// ChartItem is a single named value for pie and bar charts.
type ChartItem struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

type ShareItem struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Share       float64 `json:"share"`
	Count       int64   `json:"count"`
}

type SchoolsSummary struct {
	Total     int64       `json:"total"`
	Urban     int64       `json:"urban"`
	Rural     int64       `json:"rural"`
	Breakdown []ShareItem `json:"breakdown"`
}

type StudentsSummary struct {
	Total     int64       `json:"total"`
	Male      int64       `json:"male"`
	Female    int64       `json:"female"`
	Breakdown []ShareItem `json:"breakdown"`
}

type TeachersSummary struct {
	Total     int64       `json:"total"`
	Trained   int64       `json:"trained"`
	Pending   int64       `json:"pending"`
	Breakdown []ShareItem `json:"breakdown"`
}

type ProgramSummary struct {
	Selection     FilterSelection    `json:"selection"`
	Fallbacks     []Fallback         `json:"fallbacks,omitempty"`
	Seed          uint64             `json:"seed"`
	Totals        BaseTotals         `json:"totals"`
	Budget        BudgetBreakdown    `json:"budget"`
	Schools       SchoolsSummary     `json:"schools"`
	Students      StudentsSummary    `json:"students"`
	Teachers      TeachersSummary    `json:"teachers"`
	SMTV          []ChartItem        `json:"smtv"`
	ResourceUsage []ChartItem        `json:"resource_usage"`
	BudgetTrend   []BudgetPoint      `json:"budget_trend"`
	Performance   []PerformancePoint `json:"performance_trend"`
}
