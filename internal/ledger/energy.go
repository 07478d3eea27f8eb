package ledger

import (
	"fmt"
	"time"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/model"
)

const (
	LabelSurplus = "Surplus"
	LabelDeficit = "Deficit"

	defaultActivityMultiplier = 1.2
	fallbackKcalPerMinute     = 5
)

var activityMultipliers = map[model.ActivityLevel]float64{
	model.ActivitySedentary:        1.2,
	model.ActivityLightlyActive:    1.375,
	model.ActivityModeratelyActive: 1.55,
	model.ActivityVeryActive:       1.725,
	model.ActivitySuperActive:      1.9,
}

// BMR estimates resting energy expenditure with the Mifflin-St Jeor equation.
// Any gender other than male uses the female constant.
func BMR(p model.Profile) float64 {
	base := 10*p.Weight + 6.25*float64(p.Height) - 5*float64(p.Age)
	if p.Gender == model.GenderMale {
		return base + 5
	}
	return base - 161
}

// ActivityMultiplier returns the TDEE factor for level, 1.2 when unknown.
func ActivityMultiplier(level model.ActivityLevel) float64 {
	if m, ok := activityMultipliers[level]; ok {
		return m
	}
	return defaultActivityMultiplier
}

func ParseActivityLevel(s string) (model.ActivityLevel, error) {
	for _, l := range model.ActivityLevels {
		if string(l) == s {
			return l, nil
		}
	}
	for _, l := range model.ActivityLevels {
		if equalFoldSpaces(string(l), s) {
			return l, nil
		}
	}
	return "", invalidf("invalid activity level %q", s)
}

func TDEE(p model.Profile) float64 {
	return BMR(p) * ActivityMultiplier(p.ActivityLevel)
}

// NetEnergy is the day's balance against maintenance: exercise counts as
// extra expenditure on top of the rounded BMR.
func NetEnergy(p model.Profile, consumed, burned int) int {
	return consumed - burned - Round(BMR(p))
}

func EnergyLabel(net int) string {
	if net >= 0 {
		return LabelSurplus
	}
	return LabelDeficit
}

// EstimateExerciseCalories uses MET × kg × hours when met is known and falls
// back to five kcal per minute otherwise.
func EstimateExerciseCalories(met, weightKg float64, minutes int) int {
	if met > 0 {
		return Round(met * weightKg * float64(minutes) / 60)
	}
	return Round(float64(minutes) * fallbackKcalPerMinute)
}

type TrendPoint struct {
	Date     string `json:"date"`
	Consumed int    `json:"consumed"`
	Burned   int    `json:"burned"`
	Net      int    `json:"net"`
}

type TrendReport struct {
	EndDate string       `json:"end_date"`
	Days    int          `json:"days"`
	Points  []TrendPoint `json:"points"`
	Total   int          `json:"total"`
	Label   string       `json:"label"`
}

// Trend walks the days-long window ending at endDate. Days without any food
// or exercise calories are treated as missing data and skipped.
func Trend(food model.FoodLedger, exercise model.ExerciseLedger, p model.Profile, endDate string, days int) (*TrendReport, error) {
	if days <= 0 {
		return nil, invalidf("trend window must be > 0 days")
	}
	end, err := time.Parse(DateLayout, endDate)
	if err != nil {
		return nil, invalidf("invalid date %q (expected YYYY-MM-DD)", endDate)
	}
	bmr := Round(BMR(p))
	report := &TrendReport{EndDate: endDate, Days: days, Points: []TrendPoint{}}
	for i := days - 1; i >= 0; i-- {
		date := end.AddDate(0, 0, -i).Format(DateLayout)
		consumed := TotalConsumed(food, p.ID, date)
		burned := TotalBurned(exercise, p.ID, date)
		if consumed == 0 && burned == 0 {
			continue
		}
		net := consumed - burned - bmr
		report.Points = append(report.Points, TrendPoint{Date: date, Consumed: consumed, Burned: burned, Net: net})
		report.Total += net
	}
	report.Label = EnergyLabel(report.Total)
	return report, nil
}

const DateLayout = "2006-01-02"

// FormatBalance renders a net value as "Surplus 120 kcal" or "Deficit 150 kcal".
func FormatBalance(net int) string {
	if net < 0 {
		return fmt.Sprintf("%s %d kcal", LabelDeficit, -net)
	}
	return fmt.Sprintf("%s %d kcal", LabelSurplus, net)
}
