package service

import (
	"context"
	"strings"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/ledger"
	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/model"
)

type AddExerciseInput struct {
	Name     string
	Duration int
	// Calories overrides the MET estimate when set.
	Calories *int
	Date     string
}

// AddExercise logs a workout for the current profile. Built-in exercises are
// estimated from their MET value and the profile weight; anything else falls
// back to a flat per-minute rate.
func (s *Session) AddExercise(ctx context.Context, in AddExerciseInput) (*model.ExerciseEntry, error) {
	p, err := s.requireProfile()
	if err != nil {
		return nil, err
	}
	date, err := s.resolveDate(in.Date)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ledger.Invalidf("exercise name is required")
	}
	if err := validatePositiveInt("duration", in.Duration); err != nil {
		return nil, err
	}
	var met float64
	if ex, ok := ledger.FindExercise(name); ok {
		name = ex.Name
		met = ex.MET
	}
	burned := ledger.EstimateExerciseCalories(met, p.Weight, in.Duration)
	if in.Calories != nil {
		if *in.Calories < 0 {
			return nil, ledger.Invalidf("calories must be >= 0")
		}
		burned = *in.Calories
	}
	entry := model.ExerciseEntry{
		ID:             ledger.NewID("exercise"),
		Name:           name,
		Duration:       in.Duration,
		CaloriesBurned: burned,
		MET:            met,
		Date:           date,
		Timestamp:      s.now().UTC(),
	}
	ledger.AddExerciseEntry(s.data.ExerciseEntries, p.ID, date, entry)
	return &entry, s.save(ctx)
}

func (s *Session) DeleteExercise(ctx context.Context, date, id string) error {
	p, err := s.requireProfile()
	if err != nil {
		return err
	}
	date, err = s.resolveDate(date)
	if err != nil {
		return err
	}
	if ledger.RemoveExerciseEntry(s.data.ExerciseEntries, p.ID, date, id) == 0 {
		return ledger.Invalidf("exercise entry %q not found on %s", id, date)
	}
	return s.save(ctx)
}

func (s *Session) ExerciseEntries(date string) ([]model.ExerciseEntry, error) {
	p, err := s.requireProfile()
	if err != nil {
		return nil, err
	}
	date, err = s.resolveDate(date)
	if err != nil {
		return nil, err
	}
	entries := s.data.ExerciseEntries[p.ID][date]
	if entries == nil {
		return []model.ExerciseEntry{}, nil
	}
	return entries, nil
}
