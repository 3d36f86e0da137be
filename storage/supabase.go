package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	supa "github.com/supabase-community/supabase-go"

	"speechcoach/models"
)

const historyTable = "analysis_history"

// SupabaseStore persists history in a Supabase (PostgREST) table. The table
// mirrors models.HistoryItem column for column, with scores stored as JSONB.
type SupabaseStore struct {
	client *supa.Client
}

// NewSupabaseStore connects to a Supabase project. The service key is
// required; the anonymous key cannot insert rows.
func NewSupabaseStore(url, key string) (*SupabaseStore, error) {
	client, err := supa.NewClient(url, key, nil)
	if err != nil {
		return nil, fmt.Errorf("storage: init supabase client: %w", err)
	}
	return &SupabaseStore{client: client}, nil
}

type historyRow struct {
	ID             string          `json:"id"`
	Timestamp      string          `json:"timestamp"`
	Script         string          `json:"script"`
	Scores         json.RawMessage `json:"scores"`
	Issues         json.RawMessage `json:"issues,omitempty"`
	ImprovedScript string          `json:"improved_script,omitempty"`
	SpeakingTips   json.RawMessage `json:"speaking_tips,omitempty"`
}

func toRow(item models.HistoryItem) (historyRow, error) {
	scores, err := json.Marshal(item.Scores)
	if err != nil {
		return historyRow{}, err
	}
	issues, err := json.Marshal(item.Issues)
	if err != nil {
		return historyRow{}, err
	}
	tips, err := json.Marshal(item.SpeakingTips)
	if err != nil {
		return historyRow{}, err
	}
	return historyRow{
		ID:             item.ID,
		Timestamp:      item.Timestamp.Format(time.RFC3339Nano),
		Script:         item.Script,
		Scores:         scores,
		Issues:         issues,
		ImprovedScript: item.ImprovedScript,
		SpeakingTips:   tips,
	}, nil
}

func fromRow(row historyRow) (models.HistoryItem, error) {
	item := models.HistoryItem{
		ID:             row.ID,
		Script:         row.Script,
		ImprovedScript: row.ImprovedScript,
	}
	if err := item.Timestamp.UnmarshalText([]byte(row.Timestamp)); err != nil {
		return item, fmt.Errorf("storage: parse timestamp for %s: %w", row.ID, err)
	}
	if err := json.Unmarshal(row.Scores, &item.Scores); err != nil {
		return item, err
	}
	if len(row.Issues) > 0 {
		if err := json.Unmarshal(row.Issues, &item.Issues); err != nil {
			return item, err
		}
	}
	if len(row.SpeakingTips) > 0 {
		if err := json.Unmarshal(row.SpeakingTips, &item.SpeakingTips); err != nil {
			return item, err
		}
	}
	return item, nil
}

func (s *SupabaseStore) Append(_ context.Context, item models.HistoryItem) error {
	row, err := toRow(item)
	if err != nil {
		return err
	}
	_, _, err = s.client.From(historyTable).
		Insert(row, false, "", "representation", "").
		Execute()
	if err != nil {
		return fmt.Errorf("storage: insert history item: %w", err)
	}
	return nil
}

func (s *SupabaseStore) Get(_ context.Context, id string) (*models.HistoryItem, error) {
	body, _, err := s.client.From(historyTable).
		Select("*", "", false).
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("storage: fetch history item: %w", err)
	}

	var rows []historyRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("storage: decode history item: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	item, err := fromRow(rows[0])
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *SupabaseStore) Recent(_ context.Context, limit int) ([]models.HistoryItem, error) {
	body, _, err := s.client.From(historyTable).
		Select("*", "", false).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("storage: fetch history: %w", err)
	}

	var rows []historyRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("storage: decode history: %w", err)
	}

	items := make([]models.HistoryItem, 0, len(rows))
	for _, row := range rows {
		item, err := fromRow(row)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Timestamp.Before(items[j].Timestamp) })
	if limit > 0 && len(items) > limit {
		items = items[len(items)-limit:]
	}
	return items, nil
}
