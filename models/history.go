package models

import "time"

// Scores groups the three headline ratings of one analysis.
type Scores struct {
	Nervousness float64 `json:"nervousness"`
	Confidence  float64 `json:"confidence"`
	Clarity     float64 `json:"clarity"`
}

// HistoryItem is one persisted analysis, retrievable by ID. Items are never
// mutated after creation.
type HistoryItem struct {
	ID             string    `json:"id"`
	Timestamp      time.Time `json:"timestamp"`
	Script         string    `json:"script"`
	Scores         Scores    `json:"scores"`
	Issues         []string  `json:"issues"`
	ImprovedScript string    `json:"improved_script,omitempty"`
	SpeakingTips   []string  `json:"speaking_tips,omitempty"`
}
