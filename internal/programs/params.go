package programs

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/2beens/fitquest/internal/calendar"

	"go.uber.org/multierr"
)

type Goal string

const (
	GoalStrength       Goal = "strength"
	GoalHypertrophy    Goal = "hypertrophy"
	GoalEndurance      Goal = "endurance"
	GoalWeightLoss     Goal = "weight_loss"
	GoalGeneralFitness Goal = "general_fitness"
)

var Goals = []Goal{GoalStrength, GoalHypertrophy, GoalEndurance, GoalWeightLoss, GoalGeneralFitness}

const (
	MaxTotalWeeks      = 52
	MinDurationMinutes = 10
	MaxDurationMinutes = 240
)

// Params are the user's choices for a new program.
type Params struct {
	Goal            Goal     `json:"goal"`
	Frequency       int      `json:"frequency"`
	Weekdays        []string `json:"weekdays"`
	DurationMinutes int      `json:"durationMinutes"`
	Equipment       []string `json:"equipment"`
	TotalWeeks      int      `json:"totalWeeks"`
}

func (p *Params) normalize() {
	p.Goal = Goal(strings.ToLower(strings.TrimSpace(string(p.Goal))))
	equipment := make([]string, 0, len(p.Equipment))
	for _, e := range p.Equipment {
		if e = strings.TrimSpace(e); e != "" {
			equipment = append(equipment, e)
		}
	}
	p.Equipment = equipment
}

// Validate reports every invalid field at once.
func (p Params) Validate() error {
	var err error
	if !slices.Contains(Goals, p.Goal) {
		err = multierr.Append(err, fmt.Errorf("goal must be one of %v", Goals))
	}
	if p.Frequency < 1 || p.Frequency > 7 {
		err = multierr.Append(err, fmt.Errorf("frequency must be between 1 and 7"))
	}
	if len(p.Weekdays) != p.Frequency {
		err = multierr.Append(err, fmt.Errorf("expected %d weekdays, got %d", p.Frequency, len(p.Weekdays)))
	}
	if _, wdErr := p.ParsedWeekdays(); wdErr != nil {
		err = multierr.Append(err, wdErr)
	}
	if p.DurationMinutes < MinDurationMinutes || p.DurationMinutes > MaxDurationMinutes {
		err = multierr.Append(err, fmt.Errorf("duration must be between %d and %d minutes", MinDurationMinutes, MaxDurationMinutes))
	}
	if p.TotalWeeks < 1 || p.TotalWeeks > MaxTotalWeeks {
		err = multierr.Append(err, fmt.Errorf("total weeks must be between 1 and %d", MaxTotalWeeks))
	}
	return err
}

// ParsedWeekdays keeps the order the user gave, which defines session numbers.
func (p Params) ParsedWeekdays() ([]time.Weekday, error) {
	parsed := make([]time.Weekday, 0, len(p.Weekdays))
	for _, name := range p.Weekdays {
		wd, err := calendar.ParseWeekday(name)
		if err != nil {
			return nil, err
		}
		if slices.Contains(parsed, wd) {
			return nil, fmt.Errorf("weekday %s given more than once", wd)
		}
		parsed = append(parsed, wd)
	}
	return parsed, nil
}

func weekdayNames(weekdays []time.Weekday) []string {
	names := make([]string, 0, len(weekdays))
	for _, wd := range weekdays {
		names = append(names, wd.String())
	}
	return names
}
