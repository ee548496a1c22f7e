package models

// DescriptorResponse is the display metadata of a quadrant.
type DescriptorResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// QuadrantSummaryResponse describes one populated bucket in the matrix.
type QuadrantSummaryResponse struct {
	Key        string             `json:"key"`
	Descriptor DescriptorResponse `json:"descriptor"`
	Count      int                `json:"count"`
}

// MatrixResponse lists the populated buckets in classification order.
type MatrixResponse struct {
	BusinessValues []string                  `json:"business_values"`
	Feasibilities  []string                  `json:"feasibilities"`
	Quadrants      []QuadrantSummaryResponse `json:"quadrants"`
	Total          int                       `json:"total"`
}

// QuadrantResponse contains the scenarios of a single bucket.
type QuadrantResponse struct {
	Key        string              `json:"key"`
	Descriptor DescriptorResponse  `json:"descriptor"`
	Count      int                 `json:"count"`
	Scenarios  []map[string]string `json:"scenarios"`
	Guidance   []string            `json:"guidance,omitempty"`
}

// SummaryResponse carries the headline statistics of the dataset.
type SummaryResponse struct {
	Total             int `json:"total"`
	HighBusinessValue int `json:"high_business_value"`
	HighFeasibility   int `json:"high_feasibility"`
	QuickWins         int `json:"quick_wins"`
}
