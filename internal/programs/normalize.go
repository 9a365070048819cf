package programs

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/fitquest/internal/calendar"
)

const (
	defaultSets        = 3
	defaultReps        = 10
	amrapReps          = 12
	defaultRestSeconds = 60
	defaultProgramName = "Workout Program"
	defaultWarmupQuery = "dynamic stretching"

	maxSets        = 20
	maxReps        = 1000
	maxRestSeconds = 3600
)

var (
	firstIntRe = regexp.MustCompile(`-?\d+`)
	rangeRe    = regexp.MustCompile(`(\d+)\s*(?:-|–|to)\s*(\d+)`)
	amrapRe    = regexp.MustCompile(`(?i)amrap|as many`)
)

// NormalizedExercise is a generated exercise after validation; every field is safe to persist.
type NormalizedExercise struct {
	Name         string
	Sets         int
	Reps         int
	RestSeconds  int
	MuscleGroups []string
}

// rawText returns the value as text, unquoting JSON strings. Numbers and other
// literals come back as their JSON text; null and absent values as "".
func rawText(raw json.RawMessage) (string, bool) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}
	return trimmed, true
}

// jsonNumber returns raw as a float when it is a bare JSON number.
func jsonNumber(raw json.RawMessage) (float64, bool) {
	if strings.TrimSpace(string(raw)) == "null" {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	return f, true
}

// intWithin truncates f and reports it only when it falls in [lo, hi]. The range check
// runs on the float so huge values never overflow the conversion.
func intWithin(f float64, lo, hi int) (int, bool) {
	f = math.Trunc(f)
	if f < float64(lo) || f > float64(hi) {
		return 0, false
	}
	return int(f), true
}

func within(n, lo, hi int) bool {
	return n >= lo && n <= hi
}

// firstInt returns the first integer in text, sign included, so "-4" is not read as 4.
func firstInt(text string) (int, bool) {
	m := firstIntRe.FindString(text)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

// normalizeSets: integer in 1..maxSets, else the first embedded integer in range, else 3.
func normalizeSets(raw json.RawMessage) int {
	if f, ok := jsonNumber(raw); ok {
		if n, ok := intWithin(f, 1, maxSets); ok {
			return n
		}
		return defaultSets
	}
	text, _ := rawText(raw)
	if n, ok := firstInt(text); ok && within(n, 1, maxSets) {
		return n
	}
	return defaultSets
}

// normalizeReps: AMRAP phrasing is 12, "A-B" is the rounded mean,
// else the first embedded integer, else 10. Values above maxReps count as unreadable.
func normalizeReps(raw json.RawMessage) int {
	if f, ok := jsonNumber(raw); ok {
		if n, ok := intWithin(f, 1, maxReps); ok {
			return n
		}
		return defaultReps
	}
	text, _ := rawText(raw)
	if amrapRe.MatchString(text) {
		return amrapReps
	}
	if m := rangeRe.FindStringSubmatch(text); m != nil {
		a, errA := strconv.Atoi(m[1])
		b, errB := strconv.Atoi(m[2])
		if errA == nil && errB == nil && within(a, 0, maxReps) && within(b, 0, maxReps) {
			if n := int(math.Round(float64(a+b) / 2)); n > 0 {
				return n
			}
		}
	}
	if n, ok := firstInt(text); ok && within(n, 1, maxReps) {
		return n
	}
	return defaultReps
}

// normalizeRest: seconds in 0..maxRestSeconds, 60 when absent, negative or out of range.
func normalizeRest(raw json.RawMessage) int {
	if f, ok := jsonNumber(raw); ok {
		if n, ok := intWithin(math.Round(f), 0, maxRestSeconds); ok {
			return n
		}
		return defaultRestSeconds
	}
	text, _ := rawText(raw)
	if n, ok := firstInt(text); ok && within(n, 0, maxRestSeconds) {
		return n
	}
	return defaultRestSeconds
}

// normalizeMuscleGroups accepts a list or a JSON encoded list in a string; anything else is empty.
func normalizeMuscleGroups(raw json.RawMessage) []string {
	groups := make([]string, 0)
	var list []any
	if err := json.Unmarshal(raw, &list); err != nil {
		var encoded string
		if err := json.Unmarshal(raw, &encoded); err != nil {
			return groups
		}
		if err := json.Unmarshal([]byte(encoded), &list); err != nil {
			return groups
		}
	}
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			continue
		}
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			groups = append(groups, s)
		}
	}
	return groups
}

func normalizeExercise(e generatedExercise) (NormalizedExercise, bool) {
	name := strings.TrimSpace(e.Name)
	if name == "" {
		return NormalizedExercise{}, false
	}
	return NormalizedExercise{
		Name:         name,
		Sets:         normalizeSets(e.Sets),
		Reps:         normalizeReps(e.Reps),
		RestSeconds:  normalizeRest(e.RestSeconds),
		MuscleGroups: normalizeMuscleGroups(e.MuscleGroups),
	}, true
}

// normalizeWeekNumber reads 2, "2" or "Week 2"; anything else falls back to the list position.
func normalizeWeekNumber(raw json.RawMessage, position int) int {
	if f, ok := jsonNumber(raw); ok {
		if n, ok := intWithin(f, 1, MaxTotalWeeks); ok {
			return n
		}
		return position
	}
	text, _ := rawText(raw)
	if n, ok := firstInt(text); ok && within(n, 1, MaxTotalWeeks) {
		return n
	}
	return position
}

// normalizeTarget turns {"chest": 20, "legs": "25%"} into numbers, dropping what cannot be read.
func normalizeTarget(raw map[string]json.RawMessage) map[string]float64 {
	target := make(map[string]float64, len(raw))
	for group, value := range raw {
		group = strings.ToLower(strings.TrimSpace(group))
		if group == "" {
			continue
		}
		var f float64
		if err := json.Unmarshal(value, &f); err == nil {
			target[group] = f
			continue
		}
		text, _ := rawText(value)
		text = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), "%"))
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			target[group] = f
		}
	}
	return target
}

type sessionKey struct {
	week    int
	weekday time.Weekday
}

// indexSessions maps every generated session to its (week, weekday). Sessions whose day
// cannot be read are dropped; the first session wins when a day repeats.
func indexSessions(program *generatedProgram) (map[sessionKey]generatedSession, map[int]string) {
	sessions := make(map[sessionKey]generatedSession)
	phases := make(map[int]string)
	for i, week := range program.Weeks {
		weekNumber := normalizeWeekNumber(week.Week, i+1)
		if _, ok := phases[weekNumber]; !ok {
			phases[weekNumber] = strings.TrimSpace(week.Phase)
		}
		for _, s := range week.Sessions {
			wd, err := calendar.ParseWeekday(s.Day)
			if err != nil {
				continue
			}
			key := sessionKey{week: weekNumber, weekday: wd}
			if _, exists := sessions[key]; !exists {
				sessions[key] = s
			}
		}
	}
	return sessions, phases
}
