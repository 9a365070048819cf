package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitquest/internal/apperr"
	"github.com/2beens/fitquest/internal/calendar"
	"github.com/2beens/fitquest/internal/musclebalance"
	"github.com/2beens/fitquest/internal/quests"
	"github.com/2beens/fitquest/internal/telemetry/metrics"
	"github.com/2beens/fitquest/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=tracker_mocks_test.go -package=workouts_test

type workoutRepo interface {
	CreateSession(ctx context.Context, s Session) (*Session, error)
	SetExerciseCompletion(ctx context.Context, userKey string, exerciseID int, completed bool, note string) (*Exercise, error)
	CompleteSession(ctx context.Context, userKey string, sessionID int, completions []ExerciseCompletion, notes string) (*Session, error)
	AddFeedback(ctx context.Context, f Feedback) error
	GetProgram(ctx context.Context, userKey string, programID int) (*Program, error)
	ListPrograms(ctx context.Context, userKey string) ([]Program, error)
	ListSessions(ctx context.Context, userKey string, programID int) ([]Session, error)
	GetSession(ctx context.Context, userKey string, sessionID int) (*Session, error)
	DeleteProgram(ctx context.Context, userKey string, programID int) error
}

type balanceRecorder interface {
	Record(
		ctx context.Context,
		userKey string,
		programID *int,
		sessionID int,
		exercises []musclebalance.ExerciseVolume,
		workoutDate time.Time,
	) (*musclebalance.Record, error)
}

type questNotifier interface {
	Notify(ctx context.Context, userKey string, kind quests.ActionKind, date time.Time)
}

type zoneResolver interface {
	Location(ctx context.Context, userKey string) *time.Location
}

type TrackerParams struct {
	Repo           workoutRepo
	Balance        balanceRecorder
	Quests         questNotifier
	Zones          zoneResolver
	MetricsManager *metrics.Manager
	Now            func() time.Time
}

// Tracker owns session and exercise completion state.
type Tracker struct {
	repo           workoutRepo
	balance        balanceRecorder
	quests         questNotifier
	zones          zoneResolver
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewTracker(params TrackerParams) *Tracker {
	if params.Now == nil {
		params.Now = time.Now
	}
	return &Tracker{
		repo:           params.Repo,
		balance:        params.Balance,
		quests:         params.Quests,
		zones:          params.Zones,
		metricsManager: params.MetricsManager,
		now:            params.Now,
	}
}

// CompleteParams carries the final exercise state and an optional 1-10 difficulty rating.
type CompleteParams struct {
	Completions []ExerciseCompletion `json:"completions"`
	Difficulty  *int                 `json:"difficulty,omitempty"`
	Notes       string               `json:"notes"`
}

type CompletionResult struct {
	Session *Session              `json:"session"`
	Balance *musclebalance.Record `json:"muscleBalance"`
}

func (t *Tracker) today(ctx context.Context, userKey string) time.Time {
	return calendar.Today(t.now(), t.zones.Location(ctx, userKey))
}

func mapNotFound(err error) error {
	switch {
	case errors.Is(err, ErrProgramNotFound):
		return apperr.NotFound(err, "program not found")
	case errors.Is(err, ErrSessionNotFound):
		return apperr.NotFound(err, "session not found")
	case errors.Is(err, ErrExerciseNotFound):
		return apperr.NotFound(err, "exercise not found")
	}
	return err
}

// SetExerciseCompletion marks one exercise; completing it starts a scheduled session.
// It never completes the session itself.
func (t *Tracker) SetExerciseCompletion(
	ctx context.Context,
	userKey string,
	exerciseID int,
	completed bool,
	note string,
) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.exercise.completion")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID), attribute.Bool("completed", completed))

	e, err := t.repo.SetExerciseCompletion(ctx, userKey, exerciseID, completed, note)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return e, nil
}

// CompleteSession is the only path that writes a muscle balance record. Calling it again
// for a completed session replaces that record. The balance is written after the session
// commit, so a failed write leaves the session completed without a record until a retry.
func (t *Tracker) CompleteSession(
	ctx context.Context,
	userKey string,
	sessionID int,
	params CompleteParams,
) (_ *CompletionResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.session.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))

	if params.Difficulty != nil && (*params.Difficulty < MinDifficulty || *params.Difficulty > MaxDifficulty) {
		return nil, apperr.Validation("difficulty must be between %d and %d", MinDifficulty, MaxDifficulty)
	}

	session, err := t.repo.CompleteSession(ctx, userKey, sessionID, params.Completions, params.Notes)
	if err != nil {
		return nil, mapNotFound(err)
	}

	completed := make([]Exercise, 0, len(session.Exercises))
	for _, e := range session.Exercises {
		if e.Completed {
			completed = append(completed, e)
		}
	}

	balance, err := t.balance.Record(ctx, userKey, session.ProgramID, session.ID, volumes(completed), session.ScheduledDate)
	if err != nil {
		return nil, fmt.Errorf("record muscle balance for session %d: %w", session.ID, err)
	}

	if params.Difficulty != nil {
		if err := t.repo.AddFeedback(ctx, Feedback{
			SessionID:  session.ID,
			UserKey:    userKey,
			Difficulty: *params.Difficulty,
			Notes:      params.Notes,
		}); err != nil {
			return nil, fmt.Errorf("add feedback for session %d: %w", session.ID, err)
		}
	}

	t.quests.Notify(ctx, userKey, quests.ActionExercise, t.today(ctx, userKey))
	t.metricsManager.CounterSessionsCompleted.Inc()

	log.Debugf("session %d completed by user %s, %d/%d exercises done", session.ID, userKey, len(completed), len(session.Exercises))

	return &CompletionResult{
		Session: session,
		Balance: balance,
	}, nil
}

// LogWorkout stores an ad-hoc session outside of any program.
func (t *Tracker) LogWorkout(ctx context.Context, userKey string, l WorkoutLog) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.log")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := l.Validate(); err != nil {
		return nil, apperr.ValidationFrom(err)
	}
	if l.Date.IsZero() {
		l.Date = t.today(ctx, userKey)
	}

	session, err := t.repo.CreateSession(ctx, l.Session(userKey))
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	t.quests.Notify(ctx, userKey, quests.ActionExercise, l.Date)
	return session, nil
}

func (t *Tracker) GetProgram(ctx context.Context, userKey string, programID int) (*Program, error) {
	p, err := t.repo.GetProgram(ctx, userKey, programID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return p, nil
}

func (t *Tracker) ListPrograms(ctx context.Context, userKey string) ([]Program, error) {
	return t.repo.ListPrograms(ctx, userKey)
}

func (t *Tracker) ListSessions(ctx context.Context, userKey string, programID int) ([]Session, error) {
	if _, err := t.repo.GetProgram(ctx, userKey, programID); err != nil {
		return nil, mapNotFound(err)
	}
	return t.repo.ListSessions(ctx, userKey, programID)
}

func (t *Tracker) GetSession(ctx context.Context, userKey string, sessionID int) (*Session, error) {
	s, err := t.repo.GetSession(ctx, userKey, sessionID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return s, nil
}

func (t *Tracker) DeleteProgram(ctx context.Context, userKey string, programID int) error {
	if err := t.repo.DeleteProgram(ctx, userKey, programID); err != nil {
		return mapNotFound(err)
	}
	log.Infof("program %d deleted by user %s", programID, userKey)
	return nil
}
