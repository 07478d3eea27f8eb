package ledger

import (
	"regexp"
	"strings"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/model"
)

const DefaultSearchLimit = 8

var builtinFoods = []model.CommonFood{
	{Name: "Apple (medium)", Calories: 95, Unit: "piece", ServingSize: 1},
	{Name: "Banana (medium)", Calories: 105, Unit: "piece", ServingSize: 1},
	{Name: "White Rice (cooked)", Calories: 206, Unit: "cup", ServingSize: 1},
	{Name: "Chicken Breast (cooked)", Calories: 231, Unit: "100g", ServingSize: 100},
	{Name: "Bread (white slice)", Calories: 79, Unit: "slice", ServingSize: 1},
	{Name: "Egg (large)", Calories: 78, Unit: "piece", ServingSize: 1},
	{Name: "Milk (1 cup)", Calories: 149, Unit: "cup", ServingSize: 1},
	{Name: "Greek Yogurt", Calories: 100, Unit: "100g", ServingSize: 100},
	{Name: "Almonds", Calories: 576, Unit: "100g", ServingSize: 100},
	{Name: "Avocado", Calories: 234, Unit: "piece", ServingSize: 1},
}

var builtinExercises = []model.Exercise{
	{Name: "Walking (moderate)", MET: 3.5},
	{Name: "Running (6 mph)", MET: 9.8},
	{Name: "Cycling (moderate)", MET: 8.0},
	{Name: "Swimming", MET: 8.3},
	{Name: "Weight Training", MET: 6.0},
	{Name: "Yoga", MET: 2.5},
	{Name: "Basketball", MET: 8.0},
	{Name: "Tennis", MET: 7.3},
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// BuiltinFoods returns a copy of the fixed food list.
func BuiltinFoods() []model.CommonFood {
	return append([]model.CommonFood(nil), builtinFoods...)
}

// BuiltinExercises returns a copy of the fixed exercise list.
func BuiltinExercises() []model.Exercise {
	return append([]model.Exercise(nil), builtinExercises...)
}

// FindExercise matches a built-in exercise by case-insensitive name.
func FindExercise(name string) (model.Exercise, bool) {
	name = strings.TrimSpace(name)
	for _, ex := range builtinExercises {
		if strings.EqualFold(ex.Name, name) {
			return ex, true
		}
	}
	return model.Exercise{}, false
}

// BuiltinID derives the synthetic catalog id of a built-in food.
func BuiltinID(name string) string {
	return "common_" + strings.ToLower(whitespaceRun.ReplaceAllString(name, "_"))
}

func BuildCatalog(builtins []model.CommonFood, customFoods []model.CustomFood) []model.CatalogEntry {
	out := make([]model.CatalogEntry, 0, len(builtins)+len(customFoods))
	for _, f := range builtins {
		serving := f.ServingSize
		if serving == 0 {
			serving = 1
		}
		out = append(out, model.CatalogEntry{
			ID:          BuiltinID(f.Name),
			Name:        f.Name,
			Calories:    f.Calories,
			Unit:        f.Unit,
			ServingSize: serving,
		})
	}
	for _, f := range customFoods {
		out = append(out, model.CatalogEntry{
			ID:          f.ID,
			Name:        f.Name,
			Calories:    f.Calories,
			Unit:        f.Unit,
			ServingSize: f.ServingSize,
			IsCustom:    true,
		})
	}
	return out
}

func IsDuplicateFood(catalog []model.CatalogEntry, name string) bool {
	for _, e := range catalog {
		if strings.EqualFold(e.Name, name) {
			return true
		}
	}
	return false
}

// SearchCatalog returns entries whose name contains query, case-insensitively,
// in catalog order. A blank query matches nothing.
func SearchCatalog(catalog []model.CatalogEntry, query string, limit int) []model.CatalogEntry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []model.CatalogEntry{}
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	out := make([]model.CatalogEntry, 0, limit)
	for _, e := range catalog {
		if strings.Contains(strings.ToLower(e.Name), q) {
			out = append(out, e)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

// FindFood returns the last catalog entry named name, so custom foods shadow
// built-ins with the same name.
func FindFood(catalog []model.CatalogEntry, name string) (model.CatalogEntry, bool) {
	var found model.CatalogEntry
	ok := false
	for _, e := range catalog {
		if strings.EqualFold(e.Name, strings.TrimSpace(name)) {
			found = e
			ok = true
		}
	}
	return found, ok
}

// IngredientChoices lists the user's ingredients followed by the built-in
// foods measured per 100g.
func IngredientChoices(ingredients []model.Ingredient, builtins []model.CommonFood) []model.Ingredient {
	out := append([]model.Ingredient(nil), ingredients...)
	for _, f := range builtins {
		if f.Unit != string(model.BaseUnit100g) {
			continue
		}
		out = append(out, model.Ingredient{
			ID:       BuiltinID(f.Name),
			Name:     f.Name,
			Category: "Common Foods",
			Calories: f.Calories,
			BaseUnit: model.BaseUnit100g,
		})
	}
	return out
}
