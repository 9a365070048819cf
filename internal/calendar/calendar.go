// Package calendar converts between a user's local calendar dates and absolute instants.
//
// A civil date is represented as a time.Time at 00:00 UTC, so dates compare and
// subtract without any zone arithmetic.
package calendar

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	day        = 24 * time.Hour
)

// Midnight returns the civil date of t as seen in t's own location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the civil date of now as seen from loc.
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return Midnight(now.In(loc))
}

func Parse(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return d, nil
}

func Format(d time.Time) string {
	return d.Format(DateLayout)
}

// Bounds returns the absolute [start, end) instants covering the local day d in loc.
func Bounds(d time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	y, m, dd := d.Date()
	start := time.Date(y, m, dd, 0, 0, 0, 0, loc)
	end := time.Date(y, m, dd+1, 0, 0, 0, 0, loc)
	return start, end
}

func AddDays(d time.Time, n int) time.Time {
	return d.AddDate(0, 0, n)
}

// DaysBetween returns the whole number of days from a to b (negative when b is before a).
func DaysBetween(a, b time.Time) int {
	return int(Midnight(b).Sub(Midnight(a)) / day)
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday accepts full or three letter English weekday names, case-insensitive.
func ParseWeekday(name string) (time.Weekday, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if wd, ok := weekdays[n]; ok {
		return wd, nil
	}
	if len(n) == 3 {
		for full, wd := range weekdays {
			if strings.HasPrefix(full, n) {
				return wd, nil
			}
		}
	}
	return time.Sunday, fmt.Errorf("invalid weekday: %q", name)
}

// OnOrAfter returns the first date >= d falling on wd.
func OnOrAfter(d time.Time, wd time.Weekday) time.Time {
	diff := (int(wd) - int(d.Weekday()) + 7) % 7
	return AddDays(d, diff)
}

// Location loads an IANA zone, falling back when name is empty or unknown.
func Location(name string, fallback *time.Location) *time.Location {
	if fallback == nil {
		fallback = time.UTC
	}
	if name == "" {
		return fallback
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fallback
	}
	return loc
}

func NextUTCMidnight(now time.Time) time.Time {
	return AddDays(Midnight(now.UTC()), 1)
}
