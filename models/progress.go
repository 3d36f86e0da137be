package models

// ProgressSeries is the response body of GET /progress: parallel slices of
// date labels and scores, oldest first. When no history exists Empty is set
// and the slices are omitted.
type ProgressSeries struct {
	Dates       []string  `json:"dates,omitempty"`
	Confidence  []float64 `json:"confidence,omitempty"`
	Clarity     []float64 `json:"clarity,omitempty"`
	Nervousness []float64 `json:"nervousness,omitempty"`
	Empty       bool      `json:"empty,omitempty"`
	Message     string    `json:"message,omitempty"`
}
