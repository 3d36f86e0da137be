package coach

import (
	"testing"
	"time"

	"speechcoach/models"
)

func TestHistoryListNewestFirst(t *testing.T) {
	var list HistoryList
	now := time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)

	list.Append(&models.AnalysisResult{AnalysisID: "first", ConfidenceScore: 60}, now)
	list.Append(&models.AnalysisResult{AnalysisID: "second", ConfidenceScore: 75}, now.Add(time.Hour))

	entries := list.Entries()
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].AnalysisID != "second" || entries[1].AnalysisID != "first" {
		t.Errorf("order = %q, %q, want newest first", entries[0].AnalysisID, entries[1].AnalysisID)
	}
	if entries[1].Date != "Mar 15, 2026" || entries[1].Time != "14:30" {
		t.Errorf("stamp = %q %q", entries[1].Date, entries[1].Time)
	}
}

func TestHistoryEntryRetrievable(t *testing.T) {
	var list HistoryList
	now := time.Now()

	saved := list.Append(&models.AnalysisResult{AnalysisID: "abc"}, now)
	unsaved := list.Append(&models.AnalysisResult{}, now)

	if !saved.Retrievable() {
		t.Error("entry with an ID reported not retrievable")
	}
	if unsaved.Retrievable() {
		t.Error("entry without an ID reported retrievable")
	}
}
