package musclebalance

import (
	"math"
	"strings"
)

type MuscleGroup string

const (
	Chest     MuscleGroup = "chest"
	Back      MuscleGroup = "back"
	Legs      MuscleGroup = "legs"
	Shoulders MuscleGroup = "shoulders"
	Arms      MuscleGroup = "arms"
	Core      MuscleGroup = "core"
)

var MuscleGroups = []MuscleGroup{Chest, Back, Legs, Shoulders, Arms, Core}

var aliases = map[string]MuscleGroup{
	"chest":      Chest,
	"pecs":       Chest,
	"pectorals":  Chest,
	"back":       Back,
	"lats":       Back,
	"traps":      Back,
	"upper back": Back,
	"lower back": Back,
	"rhomboids":  Back,
	"legs":       Legs,
	"quads":      Legs,
	"quadriceps": Legs,
	"hamstrings": Legs,
	"glutes":     Legs,
	"calves":     Legs,
	"adductors":  Legs,
	"shoulders":  Shoulders,
	"delts":      Shoulders,
	"deltoids":   Shoulders,
	"arms":       Arms,
	"biceps":     Arms,
	"triceps":    Arms,
	"forearms":   Arms,
	"core":       Core,
	"abs":        Core,
	"abdominals": Core,
	"obliques":   Core,
}

// ParseGroup maps a free-text tag onto the closed set of tracked groups.
func ParseGroup(tag string) (MuscleGroup, bool) {
	g, ok := aliases[strings.Join(strings.Fields(strings.ToLower(tag)), " ")]
	return g, ok
}

type GroupVolumes struct {
	Chest     int `json:"chest"`
	Back      int `json:"back"`
	Legs      int `json:"legs"`
	Shoulders int `json:"shoulders"`
	Arms      int `json:"arms"`
	Core      int `json:"core"`
}

func (v *GroupVolumes) field(g MuscleGroup) *int {
	switch g {
	case Chest:
		return &v.Chest
	case Back:
		return &v.Back
	case Legs:
		return &v.Legs
	case Shoulders:
		return &v.Shoulders
	case Arms:
		return &v.Arms
	case Core:
		return &v.Core
	}
	return nil
}

func (v *GroupVolumes) Add(g MuscleGroup, volume int) {
	if f := v.field(g); f != nil {
		*f += volume
	}
}

func (v GroupVolumes) Get(g MuscleGroup) int {
	if f := v.field(g); f != nil {
		return *f
	}
	return 0
}

func (v GroupVolumes) Total() int {
	return v.Chest + v.Back + v.Legs + v.Shoulders + v.Arms + v.Core
}

// ExerciseVolume is the part of a completed exercise the aggregation needs.
type ExerciseVolume struct {
	Sets         int
	Reps         int
	MuscleGroups []string
}

// ComputeVolumes adds sets*reps of every exercise to each distinct group it is tagged with.
// A compound exercise contributes its full volume to every group, so group volumes
// do not have to sum to the exercises' volume.
func ComputeVolumes(exercises []ExerciseVolume) GroupVolumes {
	var volumes GroupVolumes
	for _, ex := range exercises {
		if ex.Sets <= 0 || ex.Reps <= 0 {
			continue
		}
		volume := ex.Sets * ex.Reps
		seen := make(map[MuscleGroup]bool, len(ex.MuscleGroups))
		for _, tag := range ex.MuscleGroups {
			g, ok := ParseGroup(tag)
			if !ok || seen[g] {
				continue
			}
			seen[g] = true
			volumes.Add(g, volume)
		}
	}
	return volumes
}

type Percentages struct {
	Chest     float64 `json:"chest"`
	Back      float64 `json:"back"`
	Legs      float64 `json:"legs"`
	Shoulders float64 `json:"shoulders"`
	Arms      float64 `json:"arms"`
	Core      float64 `json:"core"`
}

// ToPercentages expresses each group as a share of the total, one decimal place.
// With no volume at all every share is 0.
func ToPercentages(v GroupVolumes) Percentages {
	total := float64(v.Total())
	if total < 1 {
		total = 1
	}
	pct := func(x int) float64 {
		return math.Round(float64(x)/total*1000) / 10
	}
	return Percentages{
		Chest:     pct(v.Chest),
		Back:      pct(v.Back),
		Legs:      pct(v.Legs),
		Shoulders: pct(v.Shoulders),
		Arms:      pct(v.Arms),
		Core:      pct(v.Core),
	}
}
