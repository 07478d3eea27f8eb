package service

import (
	"context"
	"strings"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/ledger"
	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/model"
)

type ProfileInput struct {
	Name          string
	Gender        string
	Age           int
	Weight        float64
	Height        int
	ActivityLevel string
}

func (s *Session) Profiles() []model.Profile {
	return s.data.Profiles
}

// CurrentProfile returns the selected profile. A current id that no longer
// matches a profile counts as no selection.
func (s *Session) CurrentProfile() (*model.Profile, bool) {
	if s.data.CurrentProfileID == "" {
		return nil, false
	}
	for i := range s.data.Profiles {
		if s.data.Profiles[i].ID == s.data.CurrentProfileID {
			return &s.data.Profiles[i], true
		}
	}
	return nil, false
}

func (s *Session) ResolveProfile(idOrName string) (*model.Profile, error) {
	idOrName = strings.TrimSpace(idOrName)
	if idOrName == "" {
		return nil, ledger.Invalidf("profile identifier is required")
	}
	for i := range s.data.Profiles {
		if s.data.Profiles[i].ID == idOrName {
			return &s.data.Profiles[i], nil
		}
	}
	var found *model.Profile
	for i := range s.data.Profiles {
		if normalizeName(s.data.Profiles[i].Name) == normalizeName(idOrName) {
			if found != nil {
				return nil, ledger.Invalidf("profile name %q is ambiguous; use the profile id", idOrName)
			}
			found = &s.data.Profiles[i]
		}
	}
	if found == nil {
		return nil, ledger.Invalidf("profile %q not found", idOrName)
	}
	return found, nil
}

// CreateProfile adds a profile and makes it the current one.
func (s *Session) CreateProfile(ctx context.Context, in ProfileInput) (*model.Profile, error) {
	p, err := buildProfile(in)
	if err != nil {
		return nil, err
	}
	p.ID = ledger.NewID("profile")
	p.CreatedAt = s.now().UTC()
	s.data.Profiles = append(s.data.Profiles, p)
	s.data.CurrentProfileID = p.ID
	created := &s.data.Profiles[len(s.data.Profiles)-1]
	return created, s.save(ctx)
}

func (s *Session) UpdateProfile(ctx context.Context, idOrName string, in ProfileInput) (*model.Profile, error) {
	existing, err := s.ResolveProfile(idOrName)
	if err != nil {
		return nil, err
	}
	p, err := buildProfile(in)
	if err != nil {
		return nil, err
	}
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	*existing = p
	return existing, s.save(ctx)
}

// DeleteProfile removes the profile together with all of its food and
// exercise entries, and clears the selection if it was current.
func (s *Session) DeleteProfile(ctx context.Context, idOrName string) error {
	p, err := s.ResolveProfile(idOrName)
	if err != nil {
		return err
	}
	id := p.ID
	kept := make([]model.Profile, 0, len(s.data.Profiles))
	for _, existing := range s.data.Profiles {
		if existing.ID != id {
			kept = append(kept, existing)
		}
	}
	s.data.Profiles = kept
	ledger.DeleteProfileEntries(s.data.FoodEntries, s.data.ExerciseEntries, id)
	if s.data.CurrentProfileID == id {
		s.data.CurrentProfileID = ""
	}
	return s.save(ctx)
}

// SwitchProfile selects a profile; an empty identifier clears the selection.
func (s *Session) SwitchProfile(ctx context.Context, idOrName string) error {
	if strings.TrimSpace(idOrName) == "" {
		s.data.CurrentProfileID = ""
		return s.save(ctx)
	}
	p, err := s.ResolveProfile(idOrName)
	if err != nil {
		return err
	}
	s.data.CurrentProfileID = p.ID
	return s.save(ctx)
}

func buildProfile(in ProfileInput) (model.Profile, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Profile{}, ledger.Invalidf("profile name is required")
	}
	gender := model.Gender(strings.ToLower(strings.TrimSpace(in.Gender)))
	if gender != model.GenderMale && gender != model.GenderFemale {
		return model.Profile{}, ledger.Invalidf("invalid gender %q (use male or female)", in.Gender)
	}
	if err := validatePositiveInt("age", in.Age); err != nil {
		return model.Profile{}, err
	}
	if err := validatePositiveFloat("weight", in.Weight); err != nil {
		return model.Profile{}, err
	}
	if err := validatePositiveInt("height", in.Height); err != nil {
		return model.Profile{}, err
	}
	p := model.Profile{
		Name:   name,
		Gender: gender,
		Age:    in.Age,
		Weight: in.Weight,
		Height: in.Height,
	}
	if level := strings.TrimSpace(in.ActivityLevel); level != "" {
		parsed, err := ledger.ParseActivityLevel(level)
		if err != nil {
			return model.Profile{}, err
		}
		p.ActivityLevel = parsed
	}
	return p, nil
}
