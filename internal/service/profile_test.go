package service_test

import (
	"context"
	"testing"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/ledger"
	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/model"
	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/service"
)

func TestCreateProfileBecomesCurrent(t *testing.T) {
	t.Parallel()
	s, st := newTestSession(t)
	p := addTestProfile(t, s)

	current, ok := s.CurrentProfile()
	if !ok || current.ID != p.ID {
		t.Fatalf("expected new profile to be current, got %+v", current)
	}
	if p.ActivityLevel != model.ActivityModeratelyActive {
		t.Fatalf("unexpected activity level %q", p.ActivityLevel)
	}

	reopened := openTestSession(t, st)
	if reopened.Data().CurrentProfileID != p.ID {
		t.Fatalf("expected current profile to persist, got %q", reopened.Data().CurrentProfileID)
	}
}

func TestUpdateProfileKeepsIdentity(t *testing.T) {
	t.Parallel()
	s, _ := newTestSession(t)
	p := addTestProfile(t, s)
	id, created := p.ID, p.CreatedAt

	updated, err := s.UpdateProfile(context.Background(), "sam", service.ProfileInput{Name: "Sam", Gender: "male", Age: 31, Weight: 78, Height: 160})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.ID != id || !updated.CreatedAt.Equal(created) || updated.Age != 31 || updated.ActivityLevel != "" {
		t.Fatalf("unexpected updated profile: %+v", updated)
	}
}

func TestDeleteProfileCascades(t *testing.T) {
	t.Parallel()
	s, _ := newTestSession(t)
	ctx := context.Background()
	p := addTestProfile(t, s)
	if _, err := s.AddFood(ctx, service.AddFoodInput{Name: "Apple (medium)"}); err != nil {
		t.Fatalf("add food: %v", err)
	}
	if _, err := s.AddExercise(ctx, service.AddExerciseInput{Name: "Yoga", Duration: 20}); err != nil {
		t.Fatalf("add exercise: %v", err)
	}

	if err := s.DeleteProfile(ctx, p.ID); err != nil {
		t.Fatalf("delete profile: %v", err)
	}
	if _, ok := s.Data().FoodEntries[p.ID]; ok {
		t.Fatalf("expected food subtree removed")
	}
	if _, ok := s.Data().ExerciseEntries[p.ID]; ok {
		t.Fatalf("expected exercise subtree removed")
	}
	if s.Data().CurrentProfileID != "" {
		t.Fatalf("expected current profile cleared")
	}
}

func TestSwitchProfile(t *testing.T) {
	t.Parallel()
	s, _ := newTestSession(t)
	ctx := context.Background()
	first := addTestProfile(t, s)
	second, err := s.CreateProfile(ctx, service.ProfileInput{Name: "Ava", Gender: "female", Age: 28, Weight: 60, Height: 165})
	if err != nil {
		t.Fatalf("create second profile: %v", err)
	}
	if s.Data().CurrentProfileID != second.ID {
		t.Fatalf("expected second profile current")
	}
	if err := s.SwitchProfile(ctx, "Sam"); err != nil {
		t.Fatalf("switch by name: %v", err)
	}
	if s.Data().CurrentProfileID != first.ID {
		t.Fatalf("expected first profile current after switch")
	}
	if err := s.SwitchProfile(ctx, ""); err != nil {
		t.Fatalf("clear selection: %v", err)
	}
	if _, ok := s.CurrentProfile(); ok {
		t.Fatalf("expected no current profile")
	}
	if err := s.SwitchProfile(ctx, "nobody"); !ledger.IsValidation(err) {
		t.Fatalf("expected validation error for unknown profile, got %v", err)
	}
}

func TestCreateProfileValidation(t *testing.T) {
	t.Parallel()
	s, _ := newTestSession(t)
	cases := []service.ProfileInput{
		{Name: "X", Gender: "other", Age: 30, Weight: 70, Height: 170},
		{Name: "X", Gender: "male", Age: 0, Weight: 70, Height: 170},
		{Name: "X", Gender: "male", Age: 30, Weight: -1, Height: 170},
		{Name: "X", Gender: "male", Age: 30, Weight: 70, Height: 0},
		{Name: "X", Gender: "male", Age: 30, Weight: 70, Height: 170, ActivityLevel: "couch"},
	}
	for _, in := range cases {
		if _, err := s.CreateProfile(context.Background(), in); !ledger.IsValidation(err) {
			t.Fatalf("expected validation error for %+v, got %v", in, err)
		}
	}
}
