package store_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/db"
	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/model"
	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/store"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	sqldb, err := db.Open(filepath.Join(t.TempDir(), "caltrack.db"))
	require.NoError(t, err)
	require.NoError(t, db.ApplyMigrations(sqldb))
	t.Cleanup(func() { _ = sqldb.Close() })
	return sqldb
}

func sampleDocument() *model.UserData {
	data := model.NewUserData()
	data.Profiles = append(data.Profiles, model.Profile{ID: "profile_1", Name: "Ava", Gender: model.GenderFemale, Age: 28, Weight: 60, Height: 165})
	data.CurrentProfileID = "profile_1"
	data.FoodEntries["profile_1"] = map[string][]model.FoodEntry{
		"2026-03-01": {{ID: "food_1", Name: "Apple", Meal: model.MealSnack, Quantity: 1, CaloriesPerUnit: 95, TotalCalories: 95}},
	}
	return data
}

func TestSQLiteStoreLoadMissingDocument(t *testing.T) {
	t.Parallel()
	s := store.NewSQLiteStore(newTestDB(t))

	data, ok, err := s.Load(context.Background(), "user-1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, data)
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := store.NewSQLiteStore(newTestDB(t))

	require.NoError(t, s.Save(ctx, "user-1", sampleDocument()))
	got, ok, err := s.Load(ctx, "user-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "profile_1", got.CurrentProfileID)
	require.Len(t, got.Profiles, 1)
	assert.Equal(t, 95, got.FoodEntries["profile_1"]["2026-03-01"][0].TotalCalories)
	assert.NotNil(t, got.Ingredients)
	assert.NotNil(t, got.ExerciseEntries)
}

func TestSQLiteStoreSaveMergesTopLevelFields(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	sqldb := newTestDB(t)
	s := store.NewSQLiteStore(sqldb)

	_, err := sqldb.Exec(`INSERT INTO user_documents(user_id, body) VALUES(?, ?)`, "user-1", `{"theme":"dark","profiles":[{"id":"old"}]}`)
	require.NoError(t, err)

	require.NoError(t, s.Save(ctx, "user-1", sampleDocument()))

	var body string
	require.NoError(t, sqldb.QueryRow(`SELECT body FROM user_documents WHERE user_id = ?`, "user-1").Scan(&body))
	assert.Equal(t, "dark", gjson.Get(body, "theme").String())
	assert.Equal(t, "profile_1", gjson.Get(body, "profiles.0.id").String())
	assert.Equal(t, int64(1), gjson.Get(body, "profiles.#").Int())
	assert.True(t, gjson.Get(body, "updatedAt").Exists())
}

func TestSQLiteStoreIsolatesUsers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := store.NewSQLiteStore(newTestDB(t))

	require.NoError(t, s.Save(ctx, "user-1", sampleDocument()))
	_, ok, err := s.Load(ctx, "user-2")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = s.Load(ctx, " ")
	assert.Error(t, err)
}
