package programs

import (
	"time"

	"github.com/2beens/fitquest/internal/calendar"
)

// Slot is one calendar position of a program session.
type Slot struct {
	Week          int          `json:"week"`
	SessionNumber int          `json:"sessionNumber"`
	Weekday       time.Weekday `json:"-"`
	Date          time.Time    `json:"-"`
}

// CalculateWorkoutDates lays the weekdays over totalWeeks starting at start.
// Week w covers [start+7(w-1), start+7w) and each weekday maps to its first
// occurrence inside that window. Session numbers follow the order of weekdays.
func CalculateWorkoutDates(start time.Time, weekdays []time.Weekday, totalWeeks int) []Slot {
	start = calendar.Midnight(start)
	slots := make([]Slot, 0, len(weekdays)*max(totalWeeks, 0))
	for week := 1; week <= totalWeeks; week++ {
		anchor := calendar.AddDays(start, 7*(week-1))
		for i, wd := range weekdays {
			slots = append(slots, Slot{
				Week:          week,
				SessionNumber: i + 1,
				Weekday:       wd,
				Date:          calendar.OnOrAfter(anchor, wd),
			})
		}
	}
	return slots
}
