// Package storage persists analysis history. The gateway runs against the
// in-memory store unless Supabase credentials are configured.
package storage

import (
	"context"
	"errors"

	"speechcoach/models"
)

// ErrNotFound is returned when no history item exists for an ID.
var ErrNotFound = errors.New("storage: analysis not found")

// HistoryStore is the persistence contract for analysis history. Items are
// append-only.
type HistoryStore interface {
	// Append stores a new history item.
	Append(ctx context.Context, item models.HistoryItem) error
	// Get returns the item with the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*models.HistoryItem, error)
	// Recent returns up to limit items in chronological order, oldest
	// first, keeping the most recent ones when the store holds more.
	Recent(ctx context.Context, limit int) ([]models.HistoryItem, error)
}
