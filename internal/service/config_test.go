package service_test

import (
	"context"
	"testing"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/ledger"
	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/service"
)

func TestConfigDefaultsAndUpdates(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	ctx := context.Background()

	if got := service.ConfigInt(ctx, db, service.ConfigSearchLimit, 0); got != 8 {
		t.Fatalf("expected seeded search limit 8, got %d", got)
	}
	if err := service.SetConfig(ctx, db, "SEARCH_LIMIT", " 12 "); err != nil {
		t.Fatalf("set config: %v", err)
	}
	value, ok, err := service.GetConfig(ctx, db, service.ConfigSearchLimit)
	if err != nil || !ok || value != "12" {
		t.Fatalf("unexpected config value %q ok=%v err=%v", value, ok, err)
	}
	if err := service.SetConfig(ctx, db, service.ConfigTrendWindow, "30"); err != nil {
		t.Fatalf("set trend window: %v", err)
	}
	all, err := service.ListConfig(ctx, db)
	if err != nil {
		t.Fatalf("list config: %v", err)
	}
	if all[service.ConfigTrendWindow] != "30" || len(all) != 2 {
		t.Fatalf("unexpected config map: %+v", all)
	}
}

func TestConfigRejectsInvalidValues(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	ctx := context.Background()
	for _, kv := range [][2]string{
		{"search_limit", "0"},
		{"search_limit", "many"},
		{"trend_window", "14"},
		{"theme", "dark"},
	} {
		if err := service.SetConfig(ctx, db, kv[0], kv[1]); !ledger.IsValidation(err) {
			t.Fatalf("expected validation error for %s=%s, got %v", kv[0], kv[1], err)
		}
	}
	if _, ok, err := service.GetConfig(ctx, db, "theme"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}
}
