package logbook

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/2beens/fitquest/internal/calendar"

	"go.uber.org/multierr"
)

const (
	MinWeightKg = 20.0
	MaxWeightKg = 500.0
	MaxCalories = 10000
	MaxMacroG   = 1000.0
	MaxSteps    = 200000
)

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

type WeightEntry struct {
	ID       int       `json:"id"`
	UserKey  string    `json:"-"`
	WeightKg float64   `json:"weightKg"`
	LoggedAt time.Time `json:"loggedAt"`
}

func (e WeightEntry) Validate() error {
	if e.WeightKg < MinWeightKg || e.WeightKg > MaxWeightKg {
		return fmt.Errorf("weight must be between %.0f and %.0f kg", MinWeightKg, MaxWeightKg)
	}
	return nil
}

type MealEntry struct {
	ID          int       `json:"id"`
	UserKey     string    `json:"-"`
	Description string    `json:"description"`
	MealType    MealType  `json:"mealType"`
	Calories    int       `json:"calories"`
	ProteinG    float64   `json:"proteinG"`
	CarbsG      float64   `json:"carbsG"`
	FatG        float64   `json:"fatG"`
	LoggedAt    time.Time `json:"loggedAt"`
}

func (e *MealEntry) normalize() {
	e.Description = strings.TrimSpace(e.Description)
	e.MealType = MealType(strings.ToLower(strings.TrimSpace(string(e.MealType))))
	if e.MealType == "" {
		e.MealType = MealSnack
	}
}

func (e MealEntry) Validate() error {
	var err error
	if e.Description == "" {
		err = multierr.Append(err, errors.New("description is required"))
	}
	if !slices.Contains(MealTypes, e.MealType) {
		err = multierr.Append(err, fmt.Errorf("meal type must be one of %v", MealTypes))
	}
	if e.Calories < 0 || e.Calories > MaxCalories {
		err = multierr.Append(err, fmt.Errorf("calories must be between 0 and %d", MaxCalories))
	}
	macros := []struct {
		name  string
		value float64
	}{{"protein", e.ProteinG}, {"carbs", e.CarbsG}, {"fat", e.FatG}}
	for _, m := range macros {
		if m.value < 0 || m.value > MaxMacroG {
			err = multierr.Append(err, fmt.Errorf("%s must be between 0 and %.0f g", m.name, MaxMacroG))
		}
	}
	return err
}

// StepEntry is the step count of one local day.
type StepEntry struct {
	ID       int
	UserKey  string
	Steps    int
	Date     time.Time
	LoggedAt time.Time
}

func (e StepEntry) Validate() error {
	if e.Steps < 0 || e.Steps > MaxSteps {
		return fmt.Errorf("steps must be between 0 and %d", MaxSteps)
	}
	return nil
}

func (e StepEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID       int       `json:"id"`
		Steps    int       `json:"steps"`
		Date     string    `json:"date"`
		LoggedAt time.Time `json:"loggedAt"`
	}{
		ID:       e.ID,
		Steps:    e.Steps,
		Date:     calendar.Format(e.Date),
		LoggedAt: e.LoggedAt,
	})
}

// Day is everything logged on one local day.
type Day struct {
	Date          string        `json:"date"`
	Weights       []WeightEntry `json:"weights"`
	Meals         []MealEntry   `json:"meals"`
	Steps         int           `json:"steps"`
	TotalCalories int           `json:"totalCalories"`
	TotalProteinG float64       `json:"totalProteinG"`
	TotalCarbsG   float64       `json:"totalCarbsG"`
	TotalFatG     float64       `json:"totalFatG"`
}

func newDay(date time.Time, weights []WeightEntry, meals []MealEntry, steps []StepEntry) *Day {
	d := &Day{
		Date:    calendar.Format(date),
		Weights: weights,
		Meals:   meals,
	}
	if d.Weights == nil {
		d.Weights = make([]WeightEntry, 0)
	}
	if d.Meals == nil {
		d.Meals = make([]MealEntry, 0)
	}
	for _, m := range meals {
		d.TotalCalories += m.Calories
		d.TotalProteinG += m.ProteinG
		d.TotalCarbsG += m.CarbsG
		d.TotalFatG += m.FatG
	}
	// steps come ordered by logged_at; the latest report of a day wins
	if len(steps) > 0 {
		d.Steps = steps[len(steps)-1].Steps
	}
	return d
}
