package model

import "time"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "Sedentary"
	ActivityLightlyActive    ActivityLevel = "Lightly active"
	ActivityModeratelyActive ActivityLevel = "Moderately active"
	ActivityVeryActive       ActivityLevel = "Very active"
	ActivitySuperActive      ActivityLevel = "Super active"
)

// ActivityLevels lists the known activity levels from least to most active.
var ActivityLevels = []ActivityLevel{
	ActivitySedentary,
	ActivityLightlyActive,
	ActivityModeratelyActive,
	ActivityVeryActive,
	ActivitySuperActive,
}

type BaseUnit string

const (
	BaseUnit100g  BaseUnit = "100g"
	BaseUnit100ml BaseUnit = "100ml"
)

// Meal is kept as a free string on stored entries; only the four constants
// below count toward meal totals.
type Meal string

const (
	MealBreakfast Meal = "Breakfast"
	MealLunch     Meal = "Lunch"
	MealDinner    Meal = "Dinner"
	MealSnack     Meal = "Snack"
)

var Meals = []Meal{MealBreakfast, MealLunch, MealDinner, MealSnack}

type Profile struct {
	ID            string        `json:"id" yaml:"id"`
	Name          string        `json:"name" yaml:"name"`
	Gender        Gender        `json:"gender" yaml:"gender"`
	Age           int           `json:"age" yaml:"age"`
	Weight        float64       `json:"weight" yaml:"weight"`
	Height        int           `json:"height" yaml:"height"`
	ActivityLevel ActivityLevel `json:"activityLevel,omitempty" yaml:"activityLevel,omitempty"`
	CreatedAt     time.Time     `json:"createdAt" yaml:"createdAt"`
}

type Ingredient struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Category  string    `json:"category" yaml:"category"`
	Calories  float64   `json:"calories" yaml:"calories"`
	BaseUnit  BaseUnit  `json:"baseUnit" yaml:"baseUnit"`
	Protein   *float64  `json:"protein,omitempty" yaml:"protein,omitempty"`
	Carbs     *float64  `json:"carbs,omitempty" yaml:"carbs,omitempty"`
	Fat       *float64  `json:"fat,omitempty" yaml:"fat,omitempty"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

type CommonFood struct {
	Name        string  `json:"name" yaml:"name"`
	Calories    float64 `json:"calories" yaml:"calories"`
	Unit        string  `json:"unit" yaml:"unit"`
	ServingSize float64 `json:"servingSize" yaml:"servingSize"`
}

type CustomFood struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Calories    float64   `json:"calories" yaml:"calories"`
	Unit        string    `json:"unit" yaml:"unit"`
	ServingSize float64   `json:"servingSize" yaml:"servingSize"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
}

// CatalogEntry is either a built-in food (IsCustom false) or a user-created
// custom food (IsCustom true).
type CatalogEntry struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Calories    float64 `json:"calories"`
	Unit        string  `json:"unit"`
	ServingSize float64 `json:"servingSize"`
	IsCustom    bool    `json:"isCustom"`
}

type Exercise struct {
	Name string  `json:"name"`
	MET  float64 `json:"met"`
}

// Portion is the snapshot of one ingredient inside a composed food entry.
type Portion struct {
	Name     string  `json:"name" yaml:"name"`
	Amount   float64 `json:"amount" yaml:"amount"`
	Unit     string  `json:"unit" yaml:"unit"`
	Calories float64 `json:"calories" yaml:"calories"`
}

type FoodEntry struct {
	ID              string    `json:"id" yaml:"id"`
	Name            string    `json:"name" yaml:"name"`
	Meal            Meal      `json:"meal" yaml:"meal"`
	Quantity        float64   `json:"quantity" yaml:"quantity"`
	Unit            string    `json:"unit,omitempty" yaml:"unit,omitempty"`
	CaloriesPerUnit float64   `json:"caloriesPerUnit" yaml:"caloriesPerUnit"`
	TotalCalories   int       `json:"totalCalories" yaml:"totalCalories"`
	Date            string    `json:"date" yaml:"date"`
	Timestamp       time.Time `json:"timestamp" yaml:"timestamp"`
	IsCustomFood    bool      `json:"isCustomFood" yaml:"isCustomFood"`
	Ingredients     []Portion `json:"ingredients,omitempty" yaml:"ingredients,omitempty"`
}

type ExerciseEntry struct {
	ID             string    `json:"id" yaml:"id"`
	Name           string    `json:"name" yaml:"name"`
	Duration       int       `json:"duration" yaml:"duration"`
	CaloriesBurned int       `json:"caloriesBurned" yaml:"caloriesBurned"`
	MET            float64   `json:"met" yaml:"met"`
	Date           string    `json:"date" yaml:"date"`
	Timestamp      time.Time `json:"timestamp" yaml:"timestamp"`
}

// FoodLedger is keyed by profile id, then by ISO date.
type FoodLedger map[string]map[string][]FoodEntry

// ExerciseLedger is keyed by profile id, then by ISO date.
type ExerciseLedger map[string]map[string][]ExerciseEntry

// UserData is the whole per-user document.
type UserData struct {
	Profiles         []Profile      `json:"profiles" yaml:"profiles"`
	CurrentProfileID string         `json:"currentProfileId" yaml:"currentProfileId"`
	FoodEntries      FoodLedger     `json:"foodEntries" yaml:"foodEntries"`
	ExerciseEntries  ExerciseLedger `json:"exerciseEntries" yaml:"exerciseEntries"`
	Ingredients      []Ingredient   `json:"ingredients" yaml:"ingredients"`
	CustomFoods      []CustomFood   `json:"customFoods" yaml:"customFoods"`
}

func NewUserData() *UserData {
	return &UserData{
		Profiles:        []Profile{},
		FoodEntries:     FoodLedger{},
		ExerciseEntries: ExerciseLedger{},
		Ingredients:     []Ingredient{},
		CustomFoods:     []CustomFood{},
	}
}

// Normalize replaces nil collections left by a partial document with empty
// ones, including null per-profile ledger slots.
func (d *UserData) Normalize() {
	if d.Profiles == nil {
		d.Profiles = []Profile{}
	}
	if d.FoodEntries == nil {
		d.FoodEntries = FoodLedger{}
	}
	if d.ExerciseEntries == nil {
		d.ExerciseEntries = ExerciseLedger{}
	}
	if d.Ingredients == nil {
		d.Ingredients = []Ingredient{}
	}
	if d.CustomFoods == nil {
		d.CustomFoods = []CustomFood{}
	}
	for id, days := range d.FoodEntries {
		if days == nil {
			d.FoodEntries[id] = map[string][]FoodEntry{}
		}
	}
	for id, days := range d.ExerciseEntries {
		if days == nil {
			d.ExerciseEntries[id] = map[string][]ExerciseEntry{}
		}
	}
}
