package coach

import (
	"time"

	"speechcoach/models"
)

// HistoryEntry is the compact listing form of one completed analysis.
// Entries without an AnalysisID were produced while persistence was
// unavailable and cannot be reloaded later.
type HistoryEntry struct {
	AnalysisID  string
	Date        string
	Time        string
	Confidence  float64
	Nervousness float64
	Clarity     float64
}

// Retrievable reports whether the entry can be loaded back from the gateway.
func (e HistoryEntry) Retrievable() bool {
	return e.AnalysisID != ""
}

// HistoryList is the in-session list of completed analyses, newest first.
// Entries are never mutated once appended.
type HistoryList struct {
	entries []HistoryEntry
}

// Append records a freshly completed analysis at the head of the list and
// returns the entry.
func (l *HistoryList) Append(result *models.AnalysisResult, now time.Time) HistoryEntry {
	entry := HistoryEntry{
		AnalysisID:  result.AnalysisID,
		Date:        now.Format("Jan 2, 2006"),
		Time:        now.Format("15:04"),
		Confidence:  result.ConfidenceScore,
		Nervousness: result.NervousnessScore,
		Clarity:     result.ClarityScore,
	}
	l.entries = append([]HistoryEntry{entry}, l.entries...)
	return entry
}

// Entries returns the list newest first.
func (l *HistoryList) Entries() []HistoryEntry {
	out := make([]HistoryEntry, len(l.entries))
	copy(out, l.entries)
	return out
}
