package service

import (
	"context"
	"strings"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/ledger"
	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/model"
)

type AddFoodInput struct {
	Name string
	// Meal defaults to the meal for the current time of day.
	Meal     string
	Date     string
	Quantity float64
	Unit     string
	// CaloriesPerUnit falls back to the catalog entry named Name when nil.
	CaloriesPerUnit *float64
	// SaveAsCustom also stores the food in the catalog unless it is already there.
	SaveAsCustom bool
}

type AddFoodResult struct {
	Entry       model.FoodEntry
	SavedCustom *model.CustomFood
}

type PortionInput struct {
	Ingredient string
	Amount     float64
}

type ComposeFoodInput struct {
	Name     string
	Meal     string
	Date     string
	Portions []PortionInput
}

func (s *Session) AddFood(ctx context.Context, in AddFoodInput) (*AddFoodResult, error) {
	p, err := s.requireProfile()
	if err != nil {
		return nil, err
	}
	date, err := s.resolveDate(in.Date)
	if err != nil {
		return nil, err
	}
	meal, err := s.resolveMeal(in.Meal)
	if err != nil {
		return nil, err
	}
	catalog := s.Catalog()
	match, inCatalog := ledger.FindFood(catalog, in.Name)

	quantity := in.Quantity
	if quantity == 0 {
		quantity = 1
	}
	unit := strings.TrimSpace(in.Unit)
	if unit == "" && inCatalog {
		unit = match.Unit
	}
	var cpu float64
	switch {
	case in.CaloriesPerUnit != nil:
		cpu = *in.CaloriesPerUnit
	case inCatalog:
		cpu = match.Calories
	default:
		return nil, ledger.Invalidf("food %q is not in the catalog; pass calories explicitly", strings.TrimSpace(in.Name))
	}

	entry, err := ledger.NewSimpleFoodEntry(in.Name, meal, date, quantity, unit, cpu)
	if err != nil {
		return nil, err
	}
	entry.Timestamp = s.now().UTC()
	entry.IsCustomFood = inCatalog && match.IsCustom

	result := &AddFoodResult{}
	if in.SaveAsCustom && !ledger.IsDuplicateFood(catalog, entry.Name) {
		custom := model.CustomFood{
			ID:          ledger.NewID("custom"),
			Name:        entry.Name,
			Calories:    cpu,
			Unit:        orDefault(entry.Unit, "serving"),
			ServingSize: 1,
			CreatedAt:   entry.Timestamp,
		}
		s.data.CustomFoods = append(s.data.CustomFoods, custom)
		entry.IsCustomFood = true
		result.SavedCustom = &custom
	}
	ledger.AddFoodEntry(s.data.FoodEntries, p.ID, date, entry)
	result.Entry = entry
	return result, s.save(ctx)
}

// ComposeFood logs one serving built from ingredient portions. Ingredients
// are matched by id or name among the user's ingredients and the built-in
// foods measured per 100g.
func (s *Session) ComposeFood(ctx context.Context, in ComposeFoodInput) (*model.FoodEntry, error) {
	p, err := s.requireProfile()
	if err != nil {
		return nil, err
	}
	date, err := s.resolveDate(in.Date)
	if err != nil {
		return nil, err
	}
	meal, err := s.resolveMeal(in.Meal)
	if err != nil {
		return nil, err
	}
	choices := s.IngredientChoices()
	portions := make([]model.Portion, 0, len(in.Portions))
	for _, pi := range in.Portions {
		ing, ok := findIngredient(choices, pi.Ingredient)
		if !ok {
			return nil, ledger.Invalidf("ingredient %q not found", pi.Ingredient)
		}
		portion, err := ledger.NewPortion(ing, pi.Amount)
		if err != nil {
			return nil, err
		}
		portions = append(portions, portion)
	}
	entry, err := ledger.ComposeFood(in.Name, meal, date, portions)
	if err != nil {
		return nil, err
	}
	entry.Timestamp = s.now().UTC()
	ledger.AddFoodEntry(s.data.FoodEntries, p.ID, date, entry)
	return &entry, s.save(ctx)
}

func (s *Session) DeleteFood(ctx context.Context, date, id string) error {
	p, err := s.requireProfile()
	if err != nil {
		return err
	}
	date, err = s.resolveDate(date)
	if err != nil {
		return err
	}
	if ledger.RemoveFoodEntry(s.data.FoodEntries, p.ID, date, id) == 0 {
		return ledger.Invalidf("food entry %q not found on %s", id, date)
	}
	return s.save(ctx)
}

func (s *Session) FoodEntries(date string) ([]model.FoodEntry, error) {
	p, err := s.requireProfile()
	if err != nil {
		return nil, err
	}
	date, err = s.resolveDate(date)
	if err != nil {
		return nil, err
	}
	entries := s.data.FoodEntries[p.ID][date]
	if entries == nil {
		return []model.FoodEntry{}, nil
	}
	return entries, nil
}

func (s *Session) resolveMeal(meal string) (model.Meal, error) {
	if strings.TrimSpace(meal) == "" {
		return ledger.DefaultMeal(s.now().Hour()), nil
	}
	return ledger.ParseMeal(meal)
}

func findIngredient(choices []model.Ingredient, idOrName string) (model.Ingredient, bool) {
	for _, ing := range choices {
		if ing.ID == strings.TrimSpace(idOrName) {
			return ing, true
		}
	}
	for _, ing := range choices {
		if normalizeName(ing.Name) == normalizeName(idOrName) {
			return ing, true
		}
	}
	return model.Ingredient{}, false
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
