// Package store persists whole per-user documents. Saves are upserts that
// merge top-level fields into any existing document; the last write wins.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/model"
)

// DocumentStore loads and saves a user's whole document.
type DocumentStore interface {
	// Load returns ok=false when the user has no document yet.
	Load(ctx context.Context, userID string) (data *model.UserData, ok bool, err error)
	Save(ctx context.Context, userID string, data *model.UserData) error
}

const updatedAtField = "updatedAt"

// mergeDocument overlays the fields of data onto existing, which may be empty,
// and stamps updatedAt.
func mergeDocument(existing []byte, data *model.UserData, now time.Time) ([]byte, error) {
	merged := map[string]json.RawMessage{}
	if len(existing) > 0 {
		if err := json.Unmarshal(existing, &merged); err != nil {
			return nil, fmt.Errorf("decode stored document: %w", err)
		}
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("split document fields: %w", err)
	}
	for k, v := range fields {
		merged[k] = v
	}
	stamp, err := json.Marshal(now.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", updatedAtField, err)
	}
	merged[updatedAtField] = stamp
	out, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("encode merged document: %w", err)
	}
	return out, nil
}

func decodeDocument(body []byte) (*model.UserData, error) {
	data := model.NewUserData()
	if err := json.Unmarshal(body, data); err != nil {
		return nil, fmt.Errorf("decode user document: %w", err)
	}
	data.Normalize()
	return data, nil
}
