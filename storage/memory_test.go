package storage

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"speechcoach/models"
)

func item(id string, ts time.Time) models.HistoryItem {
	return models.HistoryItem{
		ID:        id,
		Timestamp: ts,
		Script:    "script " + id,
		Scores:    models.Scores{Nervousness: 40, Confidence: 70, Clarity: 80},
	}
}

func TestMemoryStoreAppendGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	want := item("a", time.Now())
	if err := store.Append(ctx, want); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, err := store.Get(ctx, "a")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Script != want.Script || got.Scores != want.Scores {
		t.Errorf("Get = %+v, want %+v", got, want)
	}
}

func TestMemoryStoreGetNotFound(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.Get(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreRecentWindow(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 25; i++ {
		if err := store.Append(ctx, item(fmt.Sprintf("i%d", i), base.AddDate(0, 0, i))); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	recent, err := store.Recent(ctx, 20)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 20 {
		t.Fatalf("len(recent) = %d, want 20", len(recent))
	}
	if recent[0].ID != "i5" {
		t.Errorf("recent[0].ID = %q, want i5 (oldest retained)", recent[0].ID)
	}
	if recent[19].ID != "i24" {
		t.Errorf("recent[19].ID = %q, want i24 (newest last)", recent[19].ID)
	}
	for i := 1; i < len(recent); i++ {
		if recent[i].Timestamp.Before(recent[i-1].Timestamp) {
			t.Fatalf("recent not in chronological order at %d", i)
		}
	}
}

func TestSeedDemo(t *testing.T) {
	store := NewMemoryStore()
	if err := SeedDemo(store, time.Now()); err != nil {
		t.Fatalf("SeedDemo: %v", err)
	}

	items, err := store.Recent(context.Background(), 0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(items) != 10 {
		t.Fatalf("len(items) = %d, want 10", len(items))
	}
	for _, it := range items {
		for name, score := range map[string]float64{
			"confidence":  it.Scores.Confidence,
			"clarity":     it.Scores.Clarity,
			"nervousness": it.Scores.Nervousness,
		} {
			if score < 30 || score > 95 {
				t.Errorf("seed %s = %v, out of [30,95]", name, score)
			}
		}
	}
}
