package models

// FilterSelection is the partner/state/period triple every dashboard panel is
// filtered by.
type FilterSelection struct {
	Partner string `json:"partner"`
	State   string `json:"state"`
	Period  string `json:"period"`
}

// Fallback records a selection field that was replaced by its default.
type Fallback struct {
	Field     string `json:"field"`
	Requested string `json:"requested"`
	Used      string `json:"used"`
}

type Partner struct {
	ID             string  `json:"id" yaml:"id"`
	Label          string  `json:"label" yaml:"label"`
	Share          float64 `json:"share" yaml:"share"`
	ProgressFactor float64 `json:"progress_factor" yaml:"progress_factor"`
}

type Period struct {
	ID           string   `json:"id" yaml:"id"`
	Label        string   `json:"label" yaml:"label"`
	BudgetFactor float64  `json:"budget_factor" yaml:"budget_factor"`
	Utilization  float64  `json:"utilization" yaml:"utilization"`
	Progress     float64  `json:"progress" yaml:"progress"`
	Months       []string `json:"months" yaml:"months"`
}

// StateOption is the selector entry for a state, without its data tables.
type StateOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type ReferenceResponse struct {
	Partners []Partner     `json:"partners"`
	States   []StateOption `json:"states"`
	Periods  []Period      `json:"periods"`
}
