package entities

// PriceSummary is shown on the price summary step.
type PriceSummary struct {
	TourType      TourType `json:"tour_type"`
	TourName      string   `json:"tour_name"`
	UnitPrice     float64  `json:"unit_price"`
	Days          int      `json:"days,omitempty"`
	Adults        int      `json:"adults"`
	Children      int      `json:"children"`
	AdultsTotal   float64  `json:"adults_total"`
	ChildrenTotal float64  `json:"children_total"`
	Total         float64  `json:"total"`
}
