package service

import (
	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/ledger"
)

// Supported trend windows, in days.
const (
	TrendWeek  = 7
	TrendMonth = 30
)

// Trend summarises the days-long window ending at endDate (today when empty)
// for the current profile.
func (s *Session) Trend(endDate string, days int) (*ledger.TrendReport, error) {
	p, err := s.requireProfile()
	if err != nil {
		return nil, err
	}
	if days != TrendWeek && days != TrendMonth {
		return nil, ledger.Invalidf("trend window must be %d or %d days", TrendWeek, TrendMonth)
	}
	endDate, err = s.resolveDate(endDate)
	if err != nil {
		return nil, err
	}
	return ledger.Trend(s.data.FoodEntries, s.data.ExerciseEntries, *p, endDate, days)
}
