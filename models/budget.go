package models

type BudgetCategory struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Share       float64 `json:"share"`
	Allocated   int64   `json:"allocated"`
	Spent       int64   `json:"spent"`
}

// BudgetBreakdown partitions a budget into categories. Category spend carries
// its own jitter, so the spent column need not sum to Utilized.
type BudgetBreakdown struct {
	Total           int64            `json:"total"`
	UtilizationRate float64          `json:"utilization_rate"`
	Utilization     float64          `json:"utilization"`
	Utilized        int64            `json:"utilized"`
	Remaining       int64            `json:"remaining"`
	UtilizedPercent string           `json:"utilized_percent"`
	Categories      []BudgetCategory `json:"categories"`
}

type BudgetPoint struct {
	Month  string `json:"month"`
	Budget int64  `json:"budget"`
	Spent  int64  `json:"spent"`
}

type PerformancePoint struct {
	Month    string `json:"month"`
	Students int64  `json:"students"`
	Teachers int64  `json:"teachers"`
	Schools  int64  `json:"schools"`
}

type CoverageRow struct {
	Name            string  `json:"name"`
	Coverage        float64 `json:"coverage"`
	CoveredSchools  int64   `json:"covered_schools"`
	TotalSchools    int64   `json:"total_schools"`
	CoveredStudents int64   `json:"covered_students"`
	TotalStudents   int64   `json:"total_students"`
}

type BudgetResponse struct {
	Selection FilterSelection `json:"selection"`
	Fallbacks []Fallback      `json:"fallbacks,omitempty"`
	Seed      uint64          `json:"seed"`
	Breakdown BudgetBreakdown `json:"breakdown"`
	Trend     []BudgetPoint   `json:"trend"`
}

type PerformanceResponse struct {
	Selection FilterSelection    `json:"selection"`
	Fallbacks []Fallback         `json:"fallbacks,omitempty"`
	Seed      uint64             `json:"seed"`
	Trend     []PerformancePoint `json:"trend"`
}

// CoverageResponse lists coverage rows. District is set for block coverage
// and names the district that was expanded.
type CoverageResponse struct {
	Selection FilterSelection `json:"selection"`
	Fallbacks []Fallback      `json:"fallbacks,omitempty"`
	Seed      uint64          `json:"seed"`
	District  string          `json:"district,omitempty"`
	Rows      []CoverageRow   `json:"rows"`
}
