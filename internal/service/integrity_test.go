package service_test

import (
	"context"
	"testing"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/model"
	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/service"
)

func TestRunDoctorHealthy(t *testing.T) {
	t.Parallel()
	s, _ := newTestSession(t)
	addTestProfile(t, s)
	report, err := s.RunDoctor(context.Background(), false)
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if !report.Healthy() {
		t.Fatalf("expected healthy report, got %+v", report)
	}
}

func TestRunDoctorFindsAndFixes(t *testing.T) {
	t.Parallel()
	s, st := newTestSession(t)
	ctx := context.Background()
	raw := []byte(`{
  "profiles": [{"id": "profile_a", "name": "A", "gender": "female", "age": 30, "weight": 60, "height": 165}],
  "currentProfileId": "profile_gone",
  "foodEntries": {
    "profile_a": {"2026-03-01": [
      {"id": "food_1", "name": "Bowl", "meal": "Lunch", "quantity": 1, "caloriesPerUnit": 0, "totalCalories": 0, "ingredients": []},
      {"id": "food_2", "name": "Refund", "meal": "Snack", "quantity": 1, "caloriesPerUnit": 0, "totalCalories": -20}
    ]},
    "profile_gone": {"2026-03-01": [{"id": "food_3", "name": "Toast", "meal": "Breakfast", "quantity": 1, "caloriesPerUnit": 79, "totalCalories": 79}]}
  },
  "exerciseEntries": {"profile_old": {}}
}`)
	// Import clears a dangling selection, so reintroduce it directly.
	if _, err := s.Import(ctx, raw, service.FormatJSON, service.ImportOptions{Mode: service.ImportModeReplace}); err != nil {
		t.Fatalf("import: %v", err)
	}
	s.Data().CurrentProfileID = "profile_gone"

	report, err := s.RunDoctor(ctx, false)
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if report.OrphanProfiles != 2 || report.EmptyCompositions != 1 || report.NegativeTotals != 1 || !report.DanglingCurrent {
		t.Fatalf("unexpected report: %+v", report)
	}
	if len(report.Issues) != 5 {
		t.Fatalf("expected 5 issues, got %+v", report.Issues)
	}

	fixed, err := s.RunDoctor(ctx, true)
	if err != nil {
		t.Fatalf("doctor fix: %v", err)
	}
	if fixed.Fixed != 3 {
		t.Fatalf("expected 3 fixes, got %d", fixed.Fixed)
	}
	reopened := openTestSession(t, st)
	if _, ok := reopened.Data().FoodEntries["profile_gone"]; ok {
		t.Fatalf("expected orphan subtree removed")
	}
	if reopened.Data().CurrentProfileID != "" {
		t.Fatalf("expected dangling selection cleared")
	}
	after, err := reopened.RunDoctor(ctx, false)
	if err != nil {
		t.Fatalf("doctor after fix: %v", err)
	}
	if after.OrphanProfiles != 0 || after.DanglingCurrent {
		t.Fatalf("expected orphans fixed, got %+v", after)
	}
	if got := reopened.Data().FoodEntries["profile_a"]["2026-03-01"]; len(got) != 2 || got[0].Meal != model.MealLunch {
		t.Fatalf("valid profile entries must be kept, got %+v", got)
	}
}
