package service

import (
	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/ledger"
	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/model"
)

type DayStatus struct {
	Date      string                `json:"date"`
	ProfileID string                `json:"profile_id"`
	Consumed  int                   `json:"consumed"`
	Burned    int                   `json:"burned"`
	BMR       int                   `json:"bmr"`
	TDEE      int                   `json:"tdee"`
	Net       int                   `json:"net"`
	Label     string                `json:"label"`
	Meals     ledger.MealTotals     `json:"meals"`
	Food      []model.FoodEntry     `json:"food"`
	Exercise  []model.ExerciseEntry `json:"exercise"`
}

// DaySummary reports the current profile's energy balance for date, or for
// today when date is empty.
func (s *Session) DaySummary(date string) (*DayStatus, error) {
	p, err := s.requireProfile()
	if err != nil {
		return nil, err
	}
	date, err = s.resolveDate(date)
	if err != nil {
		return nil, err
	}
	consumed := ledger.TotalConsumed(s.data.FoodEntries, p.ID, date)
	burned := ledger.TotalBurned(s.data.ExerciseEntries, p.ID, date)
	net := ledger.NetEnergy(*p, consumed, burned)
	status := &DayStatus{
		Date:      date,
		ProfileID: p.ID,
		Consumed:  consumed,
		Burned:    burned,
		BMR:       ledger.Round(ledger.BMR(*p)),
		TDEE:      ledger.Round(ledger.TDEE(*p)),
		Net:       net,
		Label:     ledger.EnergyLabel(net),
		Meals:     ledger.DayMealTotals(s.data.FoodEntries, p.ID, date),
		Food:      s.data.FoodEntries[p.ID][date],
		Exercise:  s.data.ExerciseEntries[p.ID][date],
	}
	if status.Food == nil {
		status.Food = []model.FoodEntry{}
	}
	if status.Exercise == nil {
		status.Exercise = []model.ExerciseEntry{}
	}
	return status, nil
}
