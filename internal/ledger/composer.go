package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/model"
)

// NewID returns a prefixed unique identifier such as "food_6f1c...".
func NewID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}

// ProportionalCalories scales the per-100 base calories of an ingredient to
// amount grams or millilitres. It is defined for amount > 0; callers reject
// non-positive amounts before calling it.
func ProportionalCalories(ingredient model.Ingredient, amount float64) float64 {
	return ingredient.Calories * amount / 100
}

// PortionUnit is the measuring unit matching an ingredient's base unit.
func PortionUnit(base model.BaseUnit) string {
	if base == model.BaseUnit100ml {
		return "ml"
	}
	return "g"
}

// NewPortion snapshots amount of ingredient for a composed food.
func NewPortion(ingredient model.Ingredient, amount float64) (model.Portion, error) {
	if amount <= 0 {
		return model.Portion{}, invalidf("amount for %q must be > 0", ingredient.Name)
	}
	return model.Portion{
		Name:     ingredient.Name,
		Amount:   amount,
		Unit:     PortionUnit(ingredient.BaseUnit),
		Calories: ProportionalCalories(ingredient, amount),
	}, nil
}

// ComposeFood builds a composed food entry from ingredient portions. Portion
// calories keep their fractions; only the entry total is rounded.
func ComposeFood(name string, meal model.Meal, date string, portions []model.Portion) (model.FoodEntry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.FoodEntry{}, invalidf("food name is required")
	}
	if len(portions) == 0 {
		return model.FoodEntry{}, invalidf("empty composition")
	}
	sum := 0.0
	for _, p := range portions {
		sum += p.Calories
	}
	total := Round(sum)
	return model.FoodEntry{
		ID:              NewID("food"),
		Name:            name,
		Meal:            meal,
		Quantity:        1,
		Unit:            "serving",
		CaloriesPerUnit: float64(total),
		TotalCalories:   total,
		Date:            date,
		Timestamp:       time.Now().UTC(),
		IsCustomFood:    true,
		Ingredients:     append([]model.Portion(nil), portions...),
	}, nil
}
