package service_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/db"
	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/model"
	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/service"
	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/store"
)

var fixedNow = time.Date(2026, 3, 10, 12, 30, 0, 0, time.UTC)

const today = "2026-03-10"

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "caltrack.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	t.Cleanup(func() { _ = sqldb.Close() })
	return sqldb
}

func newTestSession(t *testing.T) (*service.Session, store.DocumentStore) {
	t.Helper()
	st := store.NewSQLiteStore(newTestDB(t))
	return openTestSession(t, st), st
}

func openTestSession(t *testing.T, st store.DocumentStore) *service.Session {
	t.Helper()
	s, err := service.OpenSession(context.Background(), st, "user-1", nil)
	if err != nil {
		t.Fatalf("open session: %v", err)
	}
	s.SetClock(func() time.Time { return fixedNow })
	return s
}

func addTestProfile(t *testing.T, s *service.Session) *model.Profile {
	t.Helper()
	p, err := s.CreateProfile(context.Background(), service.ProfileInput{
		Name:          "Sam",
		Gender:        "male",
		Age:           30,
		Weight:        79.5,
		Height:        160,
		ActivityLevel: "Moderately active",
	})
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}
	return p
}

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

// flakyStore wraps a real store and fails every Save while broken is set.
type flakyStore struct {
	store.DocumentStore
	broken bool
}

var errStoreDown = errors.New("store unavailable")

func (f *flakyStore) Save(ctx context.Context, userID string, data *model.UserData) error {
	if f.broken {
		return errStoreDown
	}
	return f.DocumentStore.Save(ctx, userID, data)
}
