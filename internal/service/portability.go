package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/ledger"
	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/model"
)

type ExportFormat string

const (
	FormatJSON ExportFormat = "json"
	FormatYAML ExportFormat = "yaml"
)

type ImportMode string

const (
	ImportModeMerge   ImportMode = "merge"
	ImportModeReplace ImportMode = "replace"
)

type ImportOptions struct {
	Mode   ImportMode
	DryRun bool
}

type ImportReport struct {
	Mode      ImportMode `json:"mode"`
	Inserted  int        `json:"inserted"`
	Skipped   int        `json:"skipped"`
	Conflicts int        `json:"conflicts"`
	DryRun    bool       `json:"dry_run"`
	Warnings  []string   `json:"warnings,omitempty"`
}

func ParseFormat(s string) (ExportFormat, error) {
	switch ExportFormat(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", ledger.Invalidf("invalid format %q (use json or yaml)", s)
	}
}

// Export serialises the whole user document.
func (s *Session) Export(format ExportFormat) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		out, err := json.MarshalIndent(s.data, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json export: %w", err)
		}
		return append(out, '\n'), nil
	case FormatYAML:
		out, err := yaml.Marshal(s.data)
		if err != nil {
			return nil, fmt.Errorf("encode yaml export: %w", err)
		}
		return out, nil
	default:
		return nil, ledger.Invalidf("invalid format %q (use json or yaml)", format)
	}
}

// Import loads a previously exported document. Replace swaps the whole
// document; merge adds profiles, ingredients, custom foods and ledger entries
// whose ids are not already present.
func (s *Session) Import(ctx context.Context, raw []byte, format ExportFormat, opts ImportOptions) (ImportReport, error) {
	mode := opts.Mode
	if mode == "" {
		mode = ImportModeMerge
	}
	report := ImportReport{Mode: mode, DryRun: opts.DryRun}
	if mode != ImportModeMerge && mode != ImportModeReplace {
		return report, ledger.Invalidf("invalid import mode %q (use merge or replace)", opts.Mode)
	}
	incoming, err := decodeImport(raw, format)
	if err != nil {
		return report, err
	}

	var next *model.UserData
	if mode == ImportModeReplace {
		next = incoming
		report.Inserted = countRecords(incoming)
	} else {
		next, err = cloneUserData(s.data)
		if err != nil {
			return report, err
		}
		mergeUserData(next, incoming, &report)
	}
	if next.CurrentProfileID != "" && !hasProfile(next, next.CurrentProfileID) {
		report.Warnings = append(report.Warnings, fmt.Sprintf("current profile %q does not exist; selection cleared", next.CurrentProfileID))
		next.CurrentProfileID = ""
	}
	if opts.DryRun {
		return report, nil
	}
	s.data = next
	s.log.WithField("mode", mode).WithField("inserted", report.Inserted).Info("imported user document")
	return report, s.save(ctx)
}

func decodeImport(raw []byte, format ExportFormat) (*model.UserData, error) {
	data := &model.UserData{}
	switch format {
	case FormatJSON, "":
		if err := json.Unmarshal(raw, data); err != nil {
			return nil, ledger.Invalidf("parse json import: %v", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(raw, data); err != nil {
			return nil, ledger.Invalidf("parse yaml import: %v", err)
		}
	default:
		return nil, ledger.Invalidf("invalid format %q (use json or yaml)", format)
	}
	data.Normalize()
	return data, nil
}

func mergeUserData(dst, src *model.UserData, report *ImportReport) {
	profileIDs := map[string]bool{}
	for _, p := range dst.Profiles {
		profileIDs[p.ID] = true
	}
	for _, p := range src.Profiles {
		if profileIDs[p.ID] {
			report.Skipped++
			report.Conflicts++
			continue
		}
		dst.Profiles = append(dst.Profiles, p)
		profileIDs[p.ID] = true
		report.Inserted++
	}

	ingredientIDs := map[string]bool{}
	for _, ing := range dst.Ingredients {
		ingredientIDs[ing.ID] = true
	}
	for _, ing := range src.Ingredients {
		if ingredientIDs[ing.ID] {
			report.Skipped++
			continue
		}
		dst.Ingredients = append(dst.Ingredients, ing)
		ingredientIDs[ing.ID] = true
		report.Inserted++
	}

	customIDs := map[string]bool{}
	for _, f := range dst.CustomFoods {
		customIDs[f.ID] = true
	}
	for _, f := range src.CustomFoods {
		if customIDs[f.ID] {
			report.Skipped++
			continue
		}
		dst.CustomFoods = append(dst.CustomFoods, f)
		customIDs[f.ID] = true
		report.Inserted++
	}

	for _, profileID := range sortedKeys(src.FoodEntries) {
		days := src.FoodEntries[profileID]
		if !profileIDs[profileID] {
			skipOrphanSubtree(report, "food", profileID, days)
			continue
		}
		for date, entries := range days {
			seen := map[string]bool{}
			for _, e := range dst.FoodEntries[profileID][date] {
				seen[e.ID] = true
			}
			for _, e := range entries {
				if seen[e.ID] {
					report.Skipped++
					continue
				}
				ledger.AddFoodEntry(dst.FoodEntries, profileID, date, e)
				seen[e.ID] = true
				report.Inserted++
			}
		}
	}
	for _, profileID := range sortedKeys(src.ExerciseEntries) {
		days := src.ExerciseEntries[profileID]
		if !profileIDs[profileID] {
			skipOrphanSubtree(report, "exercise", profileID, days)
			continue
		}
		for date, entries := range days {
			seen := map[string]bool{}
			for _, e := range dst.ExerciseEntries[profileID][date] {
				seen[e.ID] = true
			}
			for _, e := range entries {
				if seen[e.ID] {
					report.Skipped++
					continue
				}
				ledger.AddExerciseEntry(dst.ExerciseEntries, profileID, date, e)
				seen[e.ID] = true
				report.Inserted++
			}
		}
	}

	if dst.CurrentProfileID == "" {
		dst.CurrentProfileID = src.CurrentProfileID
	}
}

// skipOrphanSubtree counts the entries of a ledger subtree whose profile is
// in neither document as skipped conflicts.
func skipOrphanSubtree[E any](report *ImportReport, kind, profileID string, days map[string][]E) {
	n := 0
	for _, entries := range days {
		n += len(entries)
	}
	report.Skipped += n
	report.Conflicts++
	report.Warnings = append(report.Warnings, fmt.Sprintf("skipped %d %s entries for unknown profile %q", n, kind, profileID))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func countRecords(d *model.UserData) int {
	n := len(d.Profiles) + len(d.Ingredients) + len(d.CustomFoods)
	for _, days := range d.FoodEntries {
		for _, entries := range days {
			n += len(entries)
		}
	}
	for _, days := range d.ExerciseEntries {
		for _, entries := range days {
			n += len(entries)
		}
	}
	return n
}

func cloneUserData(d *model.UserData) (*model.UserData, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("copy document: %w", err)
	}
	out := &model.UserData{}
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, fmt.Errorf("copy document: %w", err)
	}
	out.Normalize()
	return out, nil
}

func hasProfile(d *model.UserData, id string) bool {
	for _, p := range d.Profiles {
		if p.ID == id {
			return true
		}
	}
	return false
}
