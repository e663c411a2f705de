package models

// BaseTotals are the headline figures for one filter selection.
type BaseTotals struct {
	Budget   int64 `json:"budget"`
	Schools  int64 `json:"schools"`
	Students int64 `json:"students"`
	Teachers int64 `json:"teachers"`
	Kits     int64 `json:"kits"`
}

type FilteredResponse struct {
	Selection FilterSelection `json:"selection"`
	Fallbacks []Fallback      `json:"fallbacks,omitempty"`
	Seed      uint64          `json:"seed"`
	Totals    BaseTotals      `json:"totals"`
}
