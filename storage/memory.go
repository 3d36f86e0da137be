package storage

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"speechcoach/models"
)

// MemoryStore keeps history in process memory, in insertion order.
type MemoryStore struct {
	mu    sync.RWMutex
	items []models.HistoryItem
	byID  map[string]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[string]int)}
}

func (s *MemoryStore) Append(_ context.Context, item models.HistoryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[item.ID] = len(s.items)
	s.items = append(s.items, item)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*models.HistoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	item := s.items[idx]
	return &item, nil
}

func (s *MemoryStore) Recent(_ context.Context, limit int) ([]models.HistoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := s.items
	if limit > 0 && len(items) > limit {
		items = items[len(items)-limit:]
	}
	out := make([]models.HistoryItem, len(items))
	copy(out, items)
	return out, nil
}

// SeedDemo fills the store with ten sample analyses spread over the last
// thirty days, with a gently improving trend. Useful for trying the progress
// chart before running real analyses.
func SeedDemo(store HistoryStore, now time.Time) error {
	rng := rand.New(rand.NewSource(now.UnixNano()))
	for i := 0; i < 10; i++ {
		daysAgo := 30 - i*3
		item := models.HistoryItem{
			ID:        uuid.NewString(),
			Timestamp: now.AddDate(0, 0, -daysAgo),
			Script:    "Sample script",
			Scores: models.Scores{
				Confidence:  bounded(float64(60+i*2+rng.Intn(11)-5), 30, 95),
				Clarity:     bounded(float64(55+i*2+rng.Intn(11)-5), 30, 95),
				Nervousness: bounded(float64(40+rng.Intn(11)-5)-float64(i)*1.5, 30, 95),
			},
			Issues:         []string{"Sample issue 1", "Sample issue 2"},
			ImprovedScript: "Sample improved script",
		}
		if err := store.Append(context.Background(), item); err != nil {
			return err
		}
	}
	return nil
}

func bounded(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
