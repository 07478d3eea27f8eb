package ledger

import (
	"strings"
	"time"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/model"
)

// MealTotals holds the calories of one day split by meal.
type MealTotals struct {
	Breakfast int `json:"breakfast"`
	Lunch     int `json:"lunch"`
	Dinner    int `json:"dinner"`
	Snack     int `json:"snack"`
}

// ParseMeal accepts a meal name in any case.
func ParseMeal(s string) (model.Meal, error) {
	for _, m := range model.Meals {
		if strings.EqualFold(string(m), strings.TrimSpace(s)) {
			return m, nil
		}
	}
	return "", invalidf("invalid meal %q (use Breakfast, Lunch, Dinner or Snack)", s)
}

// DefaultMeal picks the meal for a time of day.
func DefaultMeal(hour int) model.Meal {
	switch {
	case hour >= 5 && hour < 11:
		return model.MealBreakfast
	case hour >= 11 && hour < 17:
		return model.MealLunch
	case hour >= 17 && hour < 22:
		return model.MealDinner
	default:
		return model.MealSnack
	}
}

// NewSimpleFoodEntry builds a quantity × calories-per-unit entry.
func NewSimpleFoodEntry(name string, meal model.Meal, date string, quantity float64, unit string, caloriesPerUnit float64) (model.FoodEntry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.FoodEntry{}, invalidf("food name is required")
	}
	if quantity <= 0 {
		return model.FoodEntry{}, invalidf("quantity must be > 0")
	}
	if caloriesPerUnit < 0 {
		return model.FoodEntry{}, invalidf("calories must be >= 0")
	}
	return model.FoodEntry{
		ID:              NewID("food"),
		Name:            name,
		Meal:            meal,
		Quantity:        quantity,
		Unit:            strings.TrimSpace(unit),
		CaloriesPerUnit: caloriesPerUnit,
		TotalCalories:   Round(quantity * caloriesPerUnit),
		Date:            date,
		Timestamp:       time.Now().UTC(),
	}, nil
}

func AddFoodEntry(l model.FoodLedger, profileID, date string, entry model.FoodEntry) {
	days := l[profileID]
	if days == nil {
		days = map[string][]model.FoodEntry{}
		l[profileID] = days
	}
	days[date] = append(days[date], entry)
}

// RemoveFoodEntry drops every entry with entryID from the slot and reports
// how many were removed.
func RemoveFoodEntry(l model.FoodLedger, profileID, date, entryID string) int {
	entries, ok := l[profileID][date]
	if !ok {
		return 0
	}
	kept := make([]model.FoodEntry, 0, len(entries))
	for _, e := range entries {
		if e.ID != entryID {
			kept = append(kept, e)
		}
	}
	l[profileID][date] = kept
	return len(entries) - len(kept)
}

func AddExerciseEntry(l model.ExerciseLedger, profileID, date string, entry model.ExerciseEntry) {
	days := l[profileID]
	if days == nil {
		days = map[string][]model.ExerciseEntry{}
		l[profileID] = days
	}
	days[date] = append(days[date], entry)
}

func RemoveExerciseEntry(l model.ExerciseLedger, profileID, date, entryID string) int {
	entries, ok := l[profileID][date]
	if !ok {
		return 0
	}
	kept := make([]model.ExerciseEntry, 0, len(entries))
	for _, e := range entries {
		if e.ID != entryID {
			kept = append(kept, e)
		}
	}
	l[profileID][date] = kept
	return len(entries) - len(kept)
}

func TotalConsumed(l model.FoodLedger, profileID, date string) int {
	total := 0
	for _, e := range l[profileID][date] {
		total += e.TotalCalories
	}
	return total
}

func TotalBurned(l model.ExerciseLedger, profileID, date string) int {
	total := 0
	for _, e := range l[profileID][date] {
		total += e.CaloriesBurned
	}
	return total
}

// DayMealTotals sums a day's entries per meal. Entries tagged with anything
// other than the four meals are stored but not counted.
func DayMealTotals(l model.FoodLedger, profileID, date string) MealTotals {
	var t MealTotals
	for _, e := range l[profileID][date] {
		switch e.Meal {
		case model.MealBreakfast:
			t.Breakfast += e.TotalCalories
		case model.MealLunch:
			t.Lunch += e.TotalCalories
		case model.MealDinner:
			t.Dinner += e.TotalCalories
		case model.MealSnack:
			t.Snack += e.TotalCalories
		}
	}
	return t
}

// DeleteProfileEntries removes a profile's whole subtree from both ledgers.
func DeleteProfileEntries(food model.FoodLedger, exercise model.ExerciseLedger, profileID string) {
	delete(food, profileID)
	delete(exercise, profileID)
}

func equalFoldSpaces(a, b string) bool {
	norm := func(s string) string {
		return strings.ToLower(strings.Join(strings.FieldsFunc(s, func(r rune) bool {
			return r == ' ' || r == '_' || r == '-'
		}), " "))
	}
	return norm(a) == norm(b)
}
