package service

import (
	"context"
	"fmt"
	"sort"
)

type DoctorIssue struct {
	Kind   string `json:"kind"`
	Detail string `json:"detail"`
}

type DoctorReport struct {
	OrphanProfiles    int           `json:"orphan_profiles"`
	EmptyCompositions int           `json:"empty_compositions"`
	NegativeTotals    int           `json:"negative_totals"`
	DanglingCurrent   bool          `json:"dangling_current"`
	Issues            []DoctorIssue `json:"issues"`
	Fixed             int           `json:"fixed,omitempty"`
}

func (r DoctorReport) Healthy() bool {
	return len(r.Issues) == 0
}

// RunDoctor checks the document for ledger subtrees whose profile is gone,
// composed entries whose ingredient list is present but empty, negative totals and a current profile
// id that points nowhere. With fix it drops the orphaned subtrees and clears
// the dangling selection; the other findings are only reported.
func (s *Session) RunDoctor(ctx context.Context, fix bool) (DoctorReport, error) {
	report := DoctorReport{Issues: []DoctorIssue{}}
	known := map[string]bool{}
	for _, p := range s.data.Profiles {
		known[p.ID] = true
	}

	orphans := map[string]bool{}
	for id := range s.data.FoodEntries {
		if !known[id] {
			orphans[id] = true
		}
	}
	for id := range s.data.ExerciseEntries {
		if !known[id] {
			orphans[id] = true
		}
	}
	orphanIDs := make([]string, 0, len(orphans))
	for id := range orphans {
		orphanIDs = append(orphanIDs, id)
	}
	sort.Strings(orphanIDs)
	for _, id := range orphanIDs {
		report.OrphanProfiles++
		report.Issues = append(report.Issues, DoctorIssue{Kind: "orphan_profile", Detail: fmt.Sprintf("entries for missing profile %s", id)})
	}

	for profileID, days := range s.data.FoodEntries {
		for date, entries := range days {
			for _, e := range entries {
				if e.Ingredients != nil && len(e.Ingredients) == 0 {
					report.EmptyCompositions++
					report.Issues = append(report.Issues, DoctorIssue{Kind: "empty_composition", Detail: fmt.Sprintf("%s/%s food %s has no ingredients", profileID, date, e.ID)})
				}
				if e.TotalCalories < 0 {
					report.NegativeTotals++
					report.Issues = append(report.Issues, DoctorIssue{Kind: "negative_total", Detail: fmt.Sprintf("%s/%s food %s totals %d kcal", profileID, date, e.ID, e.TotalCalories)})
				}
			}
		}
	}
	for profileID, days := range s.data.ExerciseEntries {
		for date, entries := range days {
			for _, e := range entries {
				if e.CaloriesBurned < 0 {
					report.NegativeTotals++
					report.Issues = append(report.Issues, DoctorIssue{Kind: "negative_total", Detail: fmt.Sprintf("%s/%s exercise %s burns %d kcal", profileID, date, e.ID, e.CaloriesBurned)})
				}
			}
		}
	}

	if s.data.CurrentProfileID != "" && !known[s.data.CurrentProfileID] {
		report.DanglingCurrent = true
		report.Issues = append(report.Issues, DoctorIssue{Kind: "dangling_current", Detail: fmt.Sprintf("current profile %s does not exist", s.data.CurrentProfileID)})
	}

	if !fix || (report.OrphanProfiles == 0 && !report.DanglingCurrent) {
		return report, nil
	}
	for _, id := range orphanIDs {
		delete(s.data.FoodEntries, id)
		delete(s.data.ExerciseEntries, id)
		report.Fixed++
	}
	if report.DanglingCurrent {
		s.data.CurrentProfileID = ""
		report.Fixed++
	}
	return report, s.save(ctx)
}
