package service

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/ledger"
)

const (
	ConfigSearchLimit = "search_limit"
	ConfigTrendWindow = "trend_window"
)

var configValidators = map[string]func(string) error{
	ConfigSearchLimit: func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return ledger.Invalidf("%s must be a positive integer", ConfigSearchLimit)
		}
		return nil
	},
	ConfigTrendWindow: func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil || (n != TrendWeek && n != TrendMonth) {
			return ledger.Invalidf("%s must be %d or %d", ConfigTrendWindow, TrendWeek, TrendMonth)
		}
		return nil
	},
}

func SetConfig(ctx context.Context, db *sql.DB, key, value string) error {
	key = strings.TrimSpace(strings.ToLower(key))
	value = strings.TrimSpace(value)
	validate, ok := configValidators[key]
	if !ok {
		return ledger.Invalidf("unknown config key %q (use %s or %s)", key, ConfigSearchLimit, ConfigTrendWindow)
	}
	if err := validate(value); err != nil {
		return err
	}
	_, err := db.ExecContext(ctx, `
INSERT INTO app_config(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, value)
	if err != nil {
		return fmt.Errorf("set config %q: %w", key, err)
	}
	return nil
}

func GetConfig(ctx context.Context, db *sql.DB, key string) (string, bool, error) {
	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		return "", false, ledger.Invalidf("config key is required")
	}
	var value string
	err := db.QueryRowContext(ctx, `SELECT value FROM app_config WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get config %q: %w", key, err)
	}
	return value, true, nil
}

func ListConfig(ctx context.Context, db *sql.DB) (map[string]string, error) {
	rows, err := db.QueryContext(ctx, `SELECT key, value FROM app_config ORDER BY key ASC`)
	if err != nil {
		return nil, fmt.Errorf("list config: %w", err)
	}
	defer rows.Close()
	out := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan config: %w", err)
		}
		out[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate config: %w", err)
	}
	return out, nil
}

// ConfigInt reads an integer setting, returning fallback when it is unset or
// unreadable.
func ConfigInt(ctx context.Context, db *sql.DB, key string, fallback int) int {
	value, ok, err := GetConfig(ctx, db, key)
	if err != nil || !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
