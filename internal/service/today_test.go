package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/ledger"
	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/service"
)

func TestDaySummary(t *testing.T) {
	t.Parallel()
	s, _ := newTestSession(t)
	addTestProfile(t, s)
	ctx := context.Background()

	_, err := s.AddFood(ctx, service.AddFoodInput{Name: "Apple (medium)"})
	require.NoError(t, err)
	_, err = s.AddFood(ctx, service.AddFoodInput{Name: "Egg (large)", Quantity: 2, Meal: "Breakfast"})
	require.NoError(t, err)
	_, err = s.AddExercise(ctx, service.AddExerciseInput{Name: "Yoga", Duration: 30})
	require.NoError(t, err)

	summary, err := s.DaySummary("")
	require.NoError(t, err)
	assert.Equal(t, today, summary.Date)
	assert.Equal(t, 251, summary.Consumed)
	assert.Equal(t, 99, summary.Burned)
	assert.Equal(t, 1650, summary.BMR)
	assert.Greater(t, summary.TDEE, summary.BMR)
	assert.Equal(t, 251-99-1650, summary.Net)
	assert.Equal(t, ledger.LabelDeficit, summary.Label)
	assert.Equal(t, ledger.MealTotals{Breakfast: 156, Lunch: 95}, summary.Meals)
	assert.Len(t, summary.Food, 2)
	assert.Len(t, summary.Exercise, 1)
}

func TestDaySummaryEmptyDay(t *testing.T) {
	t.Parallel()
	s, _ := newTestSession(t)
	addTestProfile(t, s)

	summary, err := s.DaySummary("2026-01-01")
	require.NoError(t, err)
	assert.Zero(t, summary.Consumed)
	assert.Equal(t, -1650, summary.Net)
	assert.NotNil(t, summary.Food)
	assert.NotNil(t, summary.Exercise)
}

func TestTrendWindow(t *testing.T) {
	t.Parallel()
	s, _ := newTestSession(t)
	addTestProfile(t, s)
	ctx := context.Background()

	_, err := s.AddFood(ctx, service.AddFoodInput{Name: "Pasta", Date: "2026-03-08", CaloriesPerUnit: floatPtr(2000)})
	require.NoError(t, err)
	_, err = s.AddFood(ctx, service.AddFoodInput{Name: "Salad", CaloriesPerUnit: floatPtr(1500)})
	require.NoError(t, err)
	_, err = s.AddFood(ctx, service.AddFoodInput{Name: "Old feast", Date: "2026-02-01", CaloriesPerUnit: floatPtr(4000)})
	require.NoError(t, err)

	report, err := s.Trend("", service.TrendWeek)
	require.NoError(t, err)
	require.Len(t, report.Points, 2)
	assert.Equal(t, "2026-03-08", report.Points[0].Date)
	assert.Equal(t, 350, report.Points[0].Net)
	assert.Equal(t, -150, report.Points[1].Net)
	assert.Equal(t, 200, report.Total)
	assert.Equal(t, ledger.LabelSurplus, report.Label)

	month, err := s.Trend(today, service.TrendMonth)
	require.NoError(t, err)
	assert.Len(t, month.Points, 2)

	_, err = s.Trend("", 14)
	assert.True(t, ledger.IsValidation(err))
}
