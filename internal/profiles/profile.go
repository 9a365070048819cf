package profiles

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"go.uber.org/multierr"
)

var Genders = []string{"male", "female", "other"}

var ActivityLevels = []string{"sedentary", "light", "moderate", "active", "very_active"}

var FitnessGoals = []string{"lose_weight", "maintain", "gain_muscle", "improve_endurance", "general_fitness"}

type UserProfile struct {
	UserKey       string    `json:"-"`
	HeightCm      float64   `json:"heightCm"`
	Age           int       `json:"age"`
	Gender        string    `json:"gender"`
	ActivityLevel string    `json:"activityLevel"`
	FitnessGoal   string    `json:"fitnessGoal"`
	Timezone      string    `json:"timezone"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (p *UserProfile) normalize() {
	p.Gender = strings.ToLower(strings.TrimSpace(p.Gender))
	p.ActivityLevel = strings.ToLower(strings.TrimSpace(p.ActivityLevel))
	p.FitnessGoal = strings.ToLower(strings.TrimSpace(p.FitnessGoal))
	p.Timezone = strings.TrimSpace(p.Timezone)
	if p.Timezone == "" {
		p.Timezone = "UTC"
	}
}

// Validate reports every invalid field at once.
func (p UserProfile) Validate() error {
	var err error
	if p.Age < 13 || p.Age > 120 {
		err = multierr.Append(err, fmt.Errorf("age must be between 13 and 120, got %d", p.Age))
	}
	if p.HeightCm < 50 || p.HeightCm > 272 {
		err = multierr.Append(err, fmt.Errorf("height must be between 50 and 272 cm, got %.1f", p.HeightCm))
	}
	if !slices.Contains(Genders, p.Gender) {
		err = multierr.Append(err, fmt.Errorf("invalid gender: %q", p.Gender))
	}
	if !slices.Contains(ActivityLevels, p.ActivityLevel) {
		err = multierr.Append(err, fmt.Errorf("invalid activity level: %q", p.ActivityLevel))
	}
	if !slices.Contains(FitnessGoals, p.FitnessGoal) {
		err = multierr.Append(err, fmt.Errorf("invalid fitness goal: %q", p.FitnessGoal))
	}
	if _, tzErr := time.LoadLocation(p.Timezone); tzErr != nil {
		err = multierr.Append(err, fmt.Errorf("invalid timezone: %q", p.Timezone))
	}
	return err
}
