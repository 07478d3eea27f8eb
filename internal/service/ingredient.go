package service

import (
	"context"
	"strings"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/ledger"
	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/model"
)

type IngredientInput struct {
	Name     string
	Category string
	Calories float64
	BaseUnit string
	Protein  *float64
	Carbs    *float64
	Fat      *float64
}

func (s *Session) Ingredients() []model.Ingredient {
	return s.data.Ingredients
}

// IngredientChoices lists everything a composed food can be built from.
func (s *Session) IngredientChoices() []model.Ingredient {
	return ledger.IngredientChoices(s.data.Ingredients, ledger.BuiltinFoods())
}

func (s *Session) AddIngredient(ctx context.Context, in IngredientInput) (*model.Ingredient, error) {
	ing, err := buildIngredient(in)
	if err != nil {
		return nil, err
	}
	ing.ID = ledger.NewID("ingredient")
	ing.CreatedAt = s.now().UTC()
	s.data.Ingredients = append(s.data.Ingredients, ing)
	return &s.data.Ingredients[len(s.data.Ingredients)-1], s.save(ctx)
}

// UpdateIngredient rewrites an ingredient definition. Composed foods already
// logged keep the values they were built with.
func (s *Session) UpdateIngredient(ctx context.Context, idOrName string, in IngredientInput) (*model.Ingredient, error) {
	existing, err := s.resolveIngredient(idOrName)
	if err != nil {
		return nil, err
	}
	ing, err := buildIngredient(in)
	if err != nil {
		return nil, err
	}
	ing.ID = existing.ID
	ing.CreatedAt = existing.CreatedAt
	*existing = ing
	return existing, s.save(ctx)
}

func (s *Session) DeleteIngredient(ctx context.Context, idOrName string) error {
	existing, err := s.resolveIngredient(idOrName)
	if err != nil {
		return err
	}
	id := existing.ID
	kept := make([]model.Ingredient, 0, len(s.data.Ingredients))
	for _, ing := range s.data.Ingredients {
		if ing.ID != id {
			kept = append(kept, ing)
		}
	}
	s.data.Ingredients = kept
	return s.save(ctx)
}

func (s *Session) resolveIngredient(idOrName string) (*model.Ingredient, error) {
	if strings.TrimSpace(idOrName) == "" {
		return nil, ledger.Invalidf("ingredient identifier is required")
	}
	for i := range s.data.Ingredients {
		if matchesIDOrName(s.data.Ingredients[i].ID, s.data.Ingredients[i].Name, idOrName) {
			return &s.data.Ingredients[i], nil
		}
	}
	return nil, ledger.Invalidf("ingredient %q not found", idOrName)
}

func buildIngredient(in IngredientInput) (model.Ingredient, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Ingredient{}, ledger.Invalidf("ingredient name is required")
	}
	if err := validateNonNegativeFloat("calories", in.Calories); err != nil {
		return model.Ingredient{}, err
	}
	base := model.BaseUnit(strings.ToLower(strings.TrimSpace(in.BaseUnit)))
	if base == "" {
		base = model.BaseUnit100g
	}
	if base != model.BaseUnit100g && base != model.BaseUnit100ml {
		return model.Ingredient{}, ledger.Invalidf("invalid base unit %q (use 100g or 100ml)", in.BaseUnit)
	}
	for _, macro := range []struct {
		name  string
		value *float64
	}{{"protein", in.Protein}, {"carbs", in.Carbs}, {"fat", in.Fat}} {
		if macro.value != nil {
			if err := validateNonNegativeFloat(macro.name, *macro.value); err != nil {
				return model.Ingredient{}, err
			}
		}
	}
	return model.Ingredient{
		Name:     name,
		Category: strings.TrimSpace(in.Category),
		Calories: in.Calories,
		BaseUnit: base,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fat:      in.Fat,
	}, nil
}
