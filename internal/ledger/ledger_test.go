package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/ledger"
	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/model"
)

func TestTotalsAreZeroForAbsentSlots(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, ledger.TotalConsumed(model.FoodLedger{}, "profile_x", "2026-03-01"))
	assert.Equal(t, 0, ledger.TotalBurned(model.ExerciseLedger{}, "profile_x", "2026-03-01"))
	assert.Equal(t, ledger.MealTotals{}, ledger.DayMealTotals(model.FoodLedger{}, "profile_x", "2026-03-01"))
}

func TestAddFoodEntryPreservesInsertionOrder(t *testing.T) {
	t.Parallel()
	l := model.FoodLedger{}
	for _, id := range []string{"a", "b", "c"} {
		ledger.AddFoodEntry(l, "p1", "2026-03-01", model.FoodEntry{ID: id, Meal: model.MealLunch, TotalCalories: 100})
	}
	entries := l["p1"]["2026-03-01"]
	require.Len(t, entries, 3)
	assert.Equal(t, "a", entries[0].ID)
	assert.Equal(t, "c", entries[2].ID)
	assert.Equal(t, 300, ledger.TotalConsumed(l, "p1", "2026-03-01"))
}

func TestAddEntryFillsNullProfileSlot(t *testing.T) {
	t.Parallel()
	food := model.FoodLedger{"p1": nil}
	ledger.AddFoodEntry(food, "p1", "2026-03-01", model.FoodEntry{ID: "a", TotalCalories: 120})
	assert.Equal(t, 120, ledger.TotalConsumed(food, "p1", "2026-03-01"))

	exercise := model.ExerciseLedger{"p1": nil}
	ledger.AddExerciseEntry(exercise, "p1", "2026-03-01", model.ExerciseEntry{ID: "b", CaloriesBurned: 90})
	assert.Equal(t, 90, ledger.TotalBurned(exercise, "p1", "2026-03-01"))
}

func TestRemoveFoodEntryRemovesAllMatches(t *testing.T) {
	t.Parallel()
	l := model.FoodLedger{}
	ledger.AddFoodEntry(l, "p1", "2026-03-01", model.FoodEntry{ID: "dup", TotalCalories: 100})
	ledger.AddFoodEntry(l, "p1", "2026-03-01", model.FoodEntry{ID: "keep", TotalCalories: 50})
	ledger.AddFoodEntry(l, "p1", "2026-03-01", model.FoodEntry{ID: "dup", TotalCalories: 200})

	assert.Equal(t, 2, ledger.RemoveFoodEntry(l, "p1", "2026-03-01", "dup"))
	assert.Equal(t, 50, ledger.TotalConsumed(l, "p1", "2026-03-01"))
	assert.Equal(t, 0, ledger.RemoveFoodEntry(l, "p1", "2026-03-02", "keep"))
}

func TestMealTotalsDropUnknownMeals(t *testing.T) {
	t.Parallel()
	l := model.FoodLedger{}
	ledger.AddFoodEntry(l, "p1", "d", model.FoodEntry{ID: "1", Meal: model.MealBreakfast, TotalCalories: 300})
	ledger.AddFoodEntry(l, "p1", "d", model.FoodEntry{ID: "2", Meal: model.MealSnack, TotalCalories: 120})
	ledger.AddFoodEntry(l, "p1", "d", model.FoodEntry{ID: "3", Meal: "Brunch", TotalCalories: 500})
	ledger.AddFoodEntry(l, "p1", "d", model.FoodEntry{ID: "4", Meal: model.MealDinner, TotalCalories: 700})

	totals := ledger.DayMealTotals(l, "p1", "d")
	assert.Equal(t, ledger.MealTotals{Breakfast: 300, Dinner: 700, Snack: 120}, totals)
	assert.Equal(t, 1620, ledger.TotalConsumed(l, "p1", "d"))
	assert.Len(t, l["p1"]["d"], 4)
}

func TestDeleteProfileEntriesCascades(t *testing.T) {
	t.Parallel()
	food := model.FoodLedger{}
	exercise := model.ExerciseLedger{}
	ledger.AddFoodEntry(food, "p1", "2026-03-01", model.FoodEntry{ID: "f", TotalCalories: 400})
	ledger.AddExerciseEntry(exercise, "p1", "2026-03-01", model.ExerciseEntry{ID: "e", CaloriesBurned: 200})
	ledger.AddFoodEntry(food, "p2", "2026-03-01", model.FoodEntry{ID: "g", TotalCalories: 100})

	ledger.DeleteProfileEntries(food, exercise, "p1")

	assert.Equal(t, 0, ledger.TotalConsumed(food, "p1", "2026-03-01"))
	assert.Equal(t, 0, ledger.TotalBurned(exercise, "p1", "2026-03-01"))
	assert.Equal(t, 100, ledger.TotalConsumed(food, "p2", "2026-03-01"))
	_, ok := food["p1"]
	assert.False(t, ok)
}

func TestNewSimpleFoodEntry(t *testing.T) {
	t.Parallel()
	e, err := ledger.NewSimpleFoodEntry("Egg (large)", model.MealBreakfast, "2026-03-01", 2.5, "piece", 78)
	require.NoError(t, err)
	assert.Equal(t, 195, e.TotalCalories)
	assert.False(t, e.IsCustomFood)

	_, err = ledger.NewSimpleFoodEntry("Egg", model.MealBreakfast, "2026-03-01", 0, "piece", 78)
	assert.True(t, ledger.IsValidation(err))
	_, err = ledger.NewSimpleFoodEntry("Egg", model.MealBreakfast, "2026-03-01", 1, "piece", -1)
	assert.True(t, ledger.IsValidation(err))
}

func TestParseMealAndDefaultMeal(t *testing.T) {
	t.Parallel()
	m, err := ledger.ParseMeal("dinner")
	require.NoError(t, err)
	assert.Equal(t, model.MealDinner, m)
	_, err = ledger.ParseMeal("brunch")
	assert.Error(t, err)

	assert.Equal(t, model.MealSnack, ledger.DefaultMeal(4))
	assert.Equal(t, model.MealBreakfast, ledger.DefaultMeal(5))
	assert.Equal(t, model.MealLunch, ledger.DefaultMeal(11))
	assert.Equal(t, model.MealDinner, ledger.DefaultMeal(21))
	assert.Equal(t, model.MealSnack, ledger.DefaultMeal(22))
}
