package service

import (
	"context"
	"strings"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/ledger"
	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/model"
)

type CustomFoodInput struct {
	Name        string
	Calories    float64
	Unit        string
	ServingSize float64
}

// Catalog lists the built-in foods followed by the user's custom foods.
func (s *Session) Catalog() []model.CatalogEntry {
	return ledger.BuildCatalog(ledger.BuiltinFoods(), s.data.CustomFoods)
}

func (s *Session) SearchFoods(query string, limit int) []model.CatalogEntry {
	return ledger.SearchCatalog(s.Catalog(), query, limit)
}

func (s *Session) AddCustomFood(ctx context.Context, in CustomFoodInput) (*model.CustomFood, error) {
	food, err := buildCustomFood(in)
	if err != nil {
		return nil, err
	}
	if ledger.IsDuplicateFood(s.Catalog(), food.Name) {
		return nil, ledger.Invalidf("food %q already exists in the catalog", food.Name)
	}
	food.ID = ledger.NewID("custom")
	food.CreatedAt = s.now().UTC()
	s.data.CustomFoods = append(s.data.CustomFoods, food)
	return &s.data.CustomFoods[len(s.data.CustomFoods)-1], s.save(ctx)
}

// DeleteCustomFood removes a custom food. Built-in foods cannot be deleted.
func (s *Session) DeleteCustomFood(ctx context.Context, idOrName string) error {
	if strings.TrimSpace(idOrName) == "" {
		return ledger.Invalidf("food identifier is required")
	}
	idx := -1
	for i, f := range s.data.CustomFoods {
		if matchesIDOrName(f.ID, f.Name, idOrName) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ledger.Invalidf("custom food %q not found", idOrName)
	}
	s.data.CustomFoods = append(s.data.CustomFoods[:idx:idx], s.data.CustomFoods[idx+1:]...)
	return s.save(ctx)
}

func buildCustomFood(in CustomFoodInput) (model.CustomFood, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.CustomFood{}, ledger.Invalidf("food name is required")
	}
	if err := validateNonNegativeFloat("calories", in.Calories); err != nil {
		return model.CustomFood{}, err
	}
	unit := strings.TrimSpace(in.Unit)
	if unit == "" {
		unit = "serving"
	}
	serving := in.ServingSize
	if serving == 0 {
		serving = 1
	}
	if err := validatePositiveFloat("serving size", serving); err != nil {
		return model.CustomFood{}, err
	}
	return model.CustomFood{Name: name, Calories: in.Calories, Unit: unit, ServingSize: serving}, nil
}
