package models

// Progress is a total/done pair with its display percentage.
type Progress struct {
	Total   int64  `json:"total"`
	Done    int64  `json:"done"`
	Percent string `json:"percent"`
}

type AssetDeployment struct {
	Total     int64  `json:"total"`
	Deployed  int64  `json:"deployed"`
	Remaining int64  `json:"remaining"`
	Percent   string `json:"percent"`
}

type ProgramMetrics struct {
	Progress       float64         `json:"progress"`
	AssetsToDeploy AssetDeployment `json:"assets_to_deploy"`
	Schools        Progress        `json:"schools"`
	Students       Progress        `json:"students"`
	Sparks         Progress        `json:"sparks"`
	Kits           Progress        `json:"kits"`
	Teachers       Progress        `json:"teachers"`
}

type GoalsResponse struct {
	Selection FilterSelection `json:"selection"`
	Fallbacks []Fallback      `json:"fallbacks,omitempty"`
	Seed      uint64          `json:"seed"`
	Budget    BudgetBreakdown `json:"budget"`
	Program   ProgramMetrics  `json:"program"`
	Districts []CoverageRow   `json:"districts"`
	Blocks    []CoverageRow   `json:"blocks"`
}
