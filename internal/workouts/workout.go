package workouts

import (
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fitquest/internal/musclebalance"

	"go.uber.org/multierr"
)

type SessionStatus string

const (
	StatusScheduled  SessionStatus = "scheduled"
	StatusInProgress SessionStatus = "in_progress"
	StatusCompleted  SessionStatus = "completed"
)

func (s SessionStatus) rank() int {
	switch s {
	case StatusScheduled:
		return 1
	case StatusInProgress:
		return 2
	case StatusCompleted:
		return 3
	default:
		return 0
	}
}

// CanAdvanceTo reports whether moving from s to next goes forward.
// Sessions never move back to an earlier status.
func (s SessionStatus) CanAdvanceTo(next SessionStatus) bool {
	return s.rank() > 0 && next.rank() > s.rank()
}

type Kind string

const (
	KindExercise    Kind = "exercise"
	KindBarbell     Kind = "barbell"
	KindAIGenerated Kind = "ai_generated"
)

type ProgramStatus string

const (
	ProgramActive  ProgramStatus = "active"
	ProgramDeleted ProgramStatus = "deleted"
)

type Program struct {
	ID                  int                `json:"id"`
	UserKey             string             `json:"-"`
	Name                string             `json:"name"`
	Goal                string             `json:"goal"`
	TotalWeeks          int                `json:"totalWeeks"`
	SessionsPerWeek     int                `json:"sessionsPerWeek"`
	DurationMinutes     int                `json:"durationMinutes"`
	Weekdays            []string           `json:"weekdays"`
	Equipment           []string           `json:"equipment"`
	MuscleBalanceTarget map[string]float64 `json:"muscleBalanceTarget"`
	Status              ProgramStatus      `json:"status"`
	StartDate           time.Time          `json:"startDate"`
	CreatedAt           time.Time          `json:"createdAt"`
}

type Session struct {
	ID            int           `json:"id"`
	UserKey       string        `json:"-"`
	ProgramID     *int          `json:"programId,omitempty"`
	Title         string        `json:"title"`
	Kind          Kind          `json:"kind"`
	WeekNumber    int           `json:"weekNumber"`
	SessionNumber int           `json:"sessionNumber"`
	Phase         string        `json:"phase"`
	ScheduledDate time.Time     `json:"scheduledDate"`
	WarmupVideo   string        `json:"warmupVideo"`
	Status        SessionStatus `json:"status"`
	Notes         string        `json:"notes"`
	CreatedAt     time.Time     `json:"createdAt"`
	CompletedAt   *time.Time    `json:"completedAt,omitempty"`
	Exercises     []Exercise    `json:"exercises,omitempty"`
}

type Exercise struct {
	ID             int      `json:"id"`
	SessionID      int      `json:"sessionId"`
	Name           string   `json:"name"`
	Sets           int      `json:"sets"`
	Reps           int      `json:"reps"`
	RestSeconds    int      `json:"restSeconds"`
	Ordering       int      `json:"ordering"`
	MuscleGroups   []string `json:"muscleGroups"`
	VideoID        string   `json:"videoId"`
	Completed      bool     `json:"completed"`
	CompletionNote string   `json:"completionNote"`
}

func (e Exercise) Volume() musclebalance.ExerciseVolume {
	return musclebalance.ExerciseVolume{
		Sets:         e.Sets,
		Reps:         e.Reps,
		MuscleGroups: e.MuscleGroups,
	}
}

func volumes(exercises []Exercise) []musclebalance.ExerciseVolume {
	vols := make([]musclebalance.ExerciseVolume, 0, len(exercises))
	for _, e := range exercises {
		vols = append(vols, e.Volume())
	}
	return vols
}

type ExerciseCompletion struct {
	ExerciseID int    `json:"exerciseId"`
	Completed  bool   `json:"completed"`
	Note       string `json:"note"`
}

type Feedback struct {
	SessionID  int    `json:"sessionId"`
	UserKey    string `json:"-"`
	Difficulty int    `json:"difficulty"`
	Notes      string `json:"notes"`
}

const (
	MinDifficulty = 1
	MaxDifficulty = 10
)

// WorkoutLog is an ad-hoc workout entered by the user, not part of any program.
type WorkoutLog struct {
	Title     string           `json:"title"`
	Kind      Kind             `json:"kind"`
	Date      time.Time        `json:"-"`
	Notes     string           `json:"notes"`
	Exercises []LoggedExercise `json:"exercises"`
}

type LoggedExercise struct {
	Name         string   `json:"name"`
	Sets         int      `json:"sets"`
	Reps         int      `json:"reps"`
	RestSeconds  int      `json:"restSeconds"`
	MuscleGroups []string `json:"muscleGroups"`
}

func (l WorkoutLog) Validate() error {
	var err error
	if strings.TrimSpace(l.Title) == "" {
		err = multierr.Append(err, fmt.Errorf("title is required"))
	}
	if l.Kind != KindExercise && l.Kind != KindBarbell {
		err = multierr.Append(err, fmt.Errorf("kind must be %q or %q", KindExercise, KindBarbell))
	}
	if len(l.Exercises) == 0 {
		err = multierr.Append(err, fmt.Errorf("at least one exercise is required"))
	}
	for i, e := range l.Exercises {
		if strings.TrimSpace(e.Name) == "" {
			err = multierr.Append(err, fmt.Errorf("exercise %d: name is required", i+1))
		}
		if e.Sets <= 0 {
			err = multierr.Append(err, fmt.Errorf("exercise %d: sets must be positive", i+1))
		}
		if e.Reps <= 0 {
			err = multierr.Append(err, fmt.Errorf("exercise %d: reps must be positive", i+1))
		}
		if e.RestSeconds < 0 {
			err = multierr.Append(err, fmt.Errorf("exercise %d: rest seconds cannot be negative", i+1))
		}
	}
	return err
}

// Session turns the log into a plain session row with ordered exercises.
func (l WorkoutLog) Session(userKey string) Session {
	s := Session{
		UserKey:       userKey,
		Title:         strings.TrimSpace(l.Title),
		Kind:          l.Kind,
		ScheduledDate: l.Date,
		Status:        StatusScheduled,
		Notes:         l.Notes,
		Exercises:     make([]Exercise, 0, len(l.Exercises)),
	}
	for i, e := range l.Exercises {
		s.Exercises = append(s.Exercises, Exercise{
			Name:         strings.TrimSpace(e.Name),
			Sets:         e.Sets,
			Reps:         e.Reps,
			RestSeconds:  e.RestSeconds,
			Ordering:     i + 1,
			MuscleGroups: e.MuscleGroups,
		})
	}
	return s
}
