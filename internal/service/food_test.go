package service_test

import (
	"context"
	"testing"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/ledger"
	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/model"
	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/service"
)

func TestAddFoodUsesCatalogDefaults(t *testing.T) {
	t.Parallel()
	s, _ := newTestSession(t)
	p := addTestProfile(t, s)

	res, err := s.AddFood(context.Background(), service.AddFoodInput{Name: "banana (medium)", Quantity: 2})
	if err != nil {
		t.Fatalf("add food: %v", err)
	}
	e := res.Entry
	if e.TotalCalories != 210 || e.CaloriesPerUnit != 105 || e.Unit != "piece" {
		t.Fatalf("unexpected entry: %+v", e)
	}
	if e.Meal != model.MealLunch || e.Date != today {
		t.Fatalf("expected lunch today, got %s on %s", e.Meal, e.Date)
	}
	if got := s.Data().FoodEntries[p.ID][today]; len(got) != 1 {
		t.Fatalf("expected 1 stored entry, got %d", len(got))
	}
}

func TestAddFoodRoundsTotal(t *testing.T) {
	t.Parallel()
	s, _ := newTestSession(t)
	addTestProfile(t, s)

	res, err := s.AddFood(context.Background(), service.AddFoodInput{
		Name:            "Granola",
		Meal:            "breakfast",
		Date:            "2026-03-09",
		Quantity:        1.5,
		Unit:            "cup",
		CaloriesPerUnit: floatPtr(201),
	})
	if err != nil {
		t.Fatalf("add food: %v", err)
	}
	if res.Entry.TotalCalories != 302 {
		t.Fatalf("expected round(301.5)=302, got %d", res.Entry.TotalCalories)
	}
	if res.Entry.Meal != model.MealBreakfast {
		t.Fatalf("expected breakfast, got %s", res.Entry.Meal)
	}
	if res.SavedCustom != nil {
		t.Fatalf("did not ask to save as custom")
	}
}

func TestAddFoodSaveAsCustom(t *testing.T) {
	t.Parallel()
	s, _ := newTestSession(t)
	addTestProfile(t, s)
	ctx := context.Background()

	res, err := s.AddFood(ctx, service.AddFoodInput{Name: "Protein Bar", CaloriesPerUnit: floatPtr(220), Unit: "bar", SaveAsCustom: true})
	if err != nil {
		t.Fatalf("add food: %v", err)
	}
	if res.SavedCustom == nil || !res.Entry.IsCustomFood {
		t.Fatalf("expected custom food saved, got %+v", res)
	}
	if len(s.SearchFoods("protein", 0)) != 1 {
		t.Fatalf("expected saved food to be searchable")
	}

	again, err := s.AddFood(ctx, service.AddFoodInput{Name: "protein bar", SaveAsCustom: true})
	if err != nil {
		t.Fatalf("add food again: %v", err)
	}
	if again.SavedCustom != nil {
		t.Fatalf("duplicate food must not be saved twice")
	}
	if again.Entry.TotalCalories != 220 || !again.Entry.IsCustomFood {
		t.Fatalf("expected catalog defaults from custom food, got %+v", again.Entry)
	}
	if len(s.Data().CustomFoods) != 1 {
		t.Fatalf("expected one custom food, got %d", len(s.Data().CustomFoods))
	}
}

func TestAddFoodValidation(t *testing.T) {
	t.Parallel()
	s, _ := newTestSession(t)
	addTestProfile(t, s)
	ctx := context.Background()

	cases := []service.AddFoodInput{
		{Name: "", CaloriesPerUnit: floatPtr(100)},
		{Name: "Mystery stew"},
		{Name: "Soup", Quantity: -1, CaloriesPerUnit: floatPtr(100)},
		{Name: "Soup", CaloriesPerUnit: floatPtr(-5)},
		{Name: "Soup", Meal: "brunch", CaloriesPerUnit: floatPtr(100)},
		{Name: "Soup", Date: "10/03/2026", CaloriesPerUnit: floatPtr(100)},
	}
	for _, in := range cases {
		if _, err := s.AddFood(ctx, in); !ledger.IsValidation(err) {
			t.Fatalf("expected validation error for %+v, got %v", in, err)
		}
	}
	entries, err := s.FoodEntries("")
	if err != nil {
		t.Fatalf("list food: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries after rejected input, got %d", len(entries))
	}
}

func TestComposeFood(t *testing.T) {
	t.Parallel()
	s, _ := newTestSession(t)
	addTestProfile(t, s)
	ctx := context.Background()

	oats, err := s.AddIngredient(ctx, service.IngredientInput{Name: "Oats", Category: "Grains", Calories: 389})
	if err != nil {
		t.Fatalf("add ingredient: %v", err)
	}
	if _, err := s.AddIngredient(ctx, service.IngredientInput{Name: "Oat milk", Calories: 45, BaseUnit: "100ml"}); err != nil {
		t.Fatalf("add ingredient: %v", err)
	}

	entry, err := s.ComposeFood(ctx, service.ComposeFoodInput{
		Name: "Overnight oats",
		Meal: "Breakfast",
		Portions: []service.PortionInput{
			{Ingredient: oats.ID, Amount: 50},
			{Ingredient: "oat milk", Amount: 200},
			{Ingredient: "Greek Yogurt", Amount: 75},
		},
	})
	if err != nil {
		t.Fatalf("compose food: %v", err)
	}
	// 194.5 + 90 + 75 = 359.5
	if entry.TotalCalories != 360 || entry.Quantity != 1 || entry.CaloriesPerUnit != 360 {
		t.Fatalf("unexpected composed entry: %+v", entry)
	}
	if len(entry.Ingredients) != 3 || entry.Ingredients[1].Unit != "ml" || entry.Ingredients[0].Calories != 194.5 {
		t.Fatalf("unexpected portions: %+v", entry.Ingredients)
	}

	if _, err := s.UpdateIngredient(ctx, oats.ID, service.IngredientInput{Name: "Oats", Calories: 400}); err != nil {
		t.Fatalf("update ingredient: %v", err)
	}
	stored, _ := s.FoodEntries("")
	if stored[0].Ingredients[0].Calories != 194.5 {
		t.Fatalf("logged composition must keep its snapshot, got %+v", stored[0].Ingredients[0])
	}
}

func TestComposeFoodRejectsBadPortions(t *testing.T) {
	t.Parallel()
	s, _ := newTestSession(t)
	addTestProfile(t, s)
	ctx := context.Background()

	if _, err := s.ComposeFood(ctx, service.ComposeFoodInput{Name: "Nothing"}); !ledger.IsValidation(err) {
		t.Fatalf("expected empty composition error, got %v", err)
	}
	if _, err := s.ComposeFood(ctx, service.ComposeFoodInput{Name: "Bowl", Portions: []service.PortionInput{{Ingredient: "Almonds", Amount: 0}}}); !ledger.IsValidation(err) {
		t.Fatalf("expected zero amount error, got %v", err)
	}
	if _, err := s.ComposeFood(ctx, service.ComposeFoodInput{Name: "Bowl", Portions: []service.PortionInput{{Ingredient: "Unicorn", Amount: 10}}}); !ledger.IsValidation(err) {
		t.Fatalf("expected unknown ingredient error, got %v", err)
	}
	// Apple (medium) is measured per piece, so it is not an ingredient choice.
	if _, err := s.ComposeFood(ctx, service.ComposeFoodInput{Name: "Bowl", Portions: []service.PortionInput{{Ingredient: "Apple (medium)", Amount: 10}}}); !ledger.IsValidation(err) {
		t.Fatalf("expected per-piece food to be rejected, got %v", err)
	}
}

func TestDeleteFood(t *testing.T) {
	t.Parallel()
	s, _ := newTestSession(t)
	addTestProfile(t, s)
	ctx := context.Background()

	res, err := s.AddFood(ctx, service.AddFoodInput{Name: "Egg (large)", Quantity: 2})
	if err != nil {
		t.Fatalf("add food: %v", err)
	}
	if err := s.DeleteFood(ctx, "", res.Entry.ID); err != nil {
		t.Fatalf("delete food: %v", err)
	}
	if err := s.DeleteFood(ctx, "", res.Entry.ID); !ledger.IsValidation(err) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
	summary, err := s.DaySummary("")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Consumed != 0 {
		t.Fatalf("expected 0 consumed after delete, got %d", summary.Consumed)
	}
}
