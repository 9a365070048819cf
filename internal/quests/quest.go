package quests

import (
	"fmt"
	"strings"
	"time"
)

type ActionKind string

const (
	ActionWeight   ActionKind = "weight"
	ActionMeal     ActionKind = "meal"
	ActionExercise ActionKind = "exercise"
)

func ParseActionKind(s string) (ActionKind, error) {
	switch kind := ActionKind(strings.ToLower(strings.TrimSpace(s))); kind {
	case ActionWeight, ActionMeal, ActionExercise:
		return kind, nil
	default:
		return "", fmt.Errorf("invalid quest action: %q", s)
	}
}

// DailyQuest tracks the three daily actions of a user for one calendar date.
type DailyQuest struct {
	ID             int       `json:"id"`
	UserKey        string    `json:"-"`
	Date           time.Time `json:"-"`
	WeightLogged   bool      `json:"weightLogged"`
	MealLogged     bool      `json:"mealLogged"`
	ExerciseLogged bool      `json:"exerciseLogged"`
	DayCompleted   bool      `json:"dayCompleted"`
	StreakDay      int       `json:"streakDay"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (q DailyQuest) AllLogged() bool {
	return q.WeightLogged && q.MealLogged && q.ExerciseLogged
}

// WithAction returns q with the flag of kind set. The day becomes completed once
// all three flags are set; flags and completion are never reverted.
// Repo.SetFlag applies the same rule atomically in SQL.
func (q DailyQuest) WithAction(kind ActionKind) DailyQuest {
	switch kind {
	case ActionWeight:
		q.WeightLogged = true
	case ActionMeal:
		q.MealLogged = true
	case ActionExercise:
		q.ExerciseLogged = true
	}
	if q.AllLogged() {
		q.DayCompleted = true
	}
	return q
}

// InitialStreak is the streak of a new day given the previous day's quest (nil when missing).
func InitialStreak(prev *DailyQuest) int {
	if prev == nil || !prev.DayCompleted || prev.StreakDay < 1 {
		return 1
	}
	return prev.StreakDay + 1
}
