package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/model"
)

// SQLiteStore keeps documents in the user_documents table.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db, now: time.Now}
}

func (s *SQLiteStore) Load(ctx context.Context, userID string) (*model.UserData, bool, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, false, fmt.Errorf("user id is required")
	}
	var body string
	err := s.db.QueryRowContext(ctx, `SELECT body FROM user_documents WHERE user_id = ?`, userID).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load document for %s: %w", userID, err)
	}
	data, err := decodeDocument([]byte(body))
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (s *SQLiteStore) Save(ctx context.Context, userID string, data *model.UserData) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return fmt.Errorf("user id is required")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var existing string
	err = tx.QueryRowContext(ctx, `SELECT body FROM user_documents WHERE user_id = ?`, userID).Scan(&existing)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("read document for %s: %w", userID, err)
	}
	body, err := mergeDocument([]byte(existing), data, s.now())
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `
INSERT INTO user_documents(user_id, body, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(user_id) DO UPDATE SET body=excluded.body, updated_at=excluded.updated_at
`, userID, string(body)); err != nil {
		return fmt.Errorf("save document for %s: %w", userID, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit document for %s: %w", userID, err)
	}
	return nil
}
