package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fitquest/internal/telemetry/tracing"
	"github.com/2beens/fitquest/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrProgramNotFound  = errors.New("program not found")
	ErrSessionNotFound  = errors.New("session not found")
	ErrExerciseNotFound = errors.New("exercise not found")
)

// Querier is satisfied by both the pool and a transaction, so inserts can join an outer tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const sessionColumns = `
	s.id, s.user_key, s.program_id, s.title, s.kind, s.week_number, s.session_number, s.phase,
	s.scheduled_date, s.warmup_video, s.status, s.notes, s.created_at, s.completed_at`

const programColumns = `
	id, user_key, name, goal, total_weeks, sessions_per_week, duration_minutes, weekdays,
	equipment, muscle_balance_target, status, start_date, created_at`

func scanSession(row pgx.Row) (*Session, error) {
	s := &Session{}
	if err := row.Scan(
		&s.ID, &s.UserKey, &s.ProgramID, &s.Title, &s.Kind, &s.WeekNumber, &s.SessionNumber, &s.Phase,
		&s.ScheduledDate, &s.WarmupVideo, &s.Status, &s.Notes, &s.CreatedAt, &s.CompletedAt,
	); err != nil {
		return nil, err
	}
	return s, nil
}

func scanProgram(row pgx.Row) (*Program, error) {
	p := &Program{}
	if err := row.Scan(
		&p.ID, &p.UserKey, &p.Name, &p.Goal, &p.TotalWeeks, &p.SessionsPerWeek, &p.DurationMinutes, &p.Weekdays,
		&p.Equipment, &p.MuscleBalanceTarget, &p.Status, &p.StartDate, &p.CreatedAt,
	); err != nil {
		return nil, err
	}
	return p, nil
}

// InsertProgram stores p as an active program and fills in its id.
func InsertProgram(ctx context.Context, q Querier, p *Program) error {
	if p.Equipment == nil {
		p.Equipment = []string{}
	}
	if p.MuscleBalanceTarget == nil {
		p.MuscleBalanceTarget = map[string]float64{}
	}
	p.Status = ProgramActive
	return q.QueryRow(ctx, `
		INSERT INTO workout_program (
			user_key, name, goal, total_weeks, sessions_per_week, duration_minutes,
			weekdays, equipment, muscle_balance_target, status, start_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at;
	`,
		p.UserKey, p.Name, p.Goal, p.TotalWeeks, p.SessionsPerWeek, p.DurationMinutes,
		p.Weekdays, p.Equipment, p.MuscleBalanceTarget, p.Status, p.StartDate,
	).Scan(&p.ID, &p.CreatedAt)
}

// InsertSession stores s and its exercises. Exercise ordering is rewritten to 1..N in slice order.
func InsertSession(ctx context.Context, q Querier, s *Session) error {
	if s.Status == "" {
		s.Status = StatusScheduled
	}
	err := q.QueryRow(ctx, `
		INSERT INTO workout_session (
			user_key, program_id, title, kind, week_number, session_number, phase,
			scheduled_date, warmup_video, status, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at;
	`,
		s.UserKey, s.ProgramID, s.Title, s.Kind, s.WeekNumber, s.SessionNumber, s.Phase,
		s.ScheduledDate, s.WarmupVideo, s.Status, s.Notes,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	for i := range s.Exercises {
		e := &s.Exercises[i]
		e.SessionID = s.ID
		e.Ordering = i + 1
		if e.MuscleGroups == nil {
			e.MuscleGroups = []string{}
		}
		err := q.QueryRow(ctx, `
			INSERT INTO workout_exercise (
				session_id, name, sets, reps, rest_seconds, ordering, muscle_groups, video_id
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id;
		`,
			e.SessionID, e.Name, e.Sets, e.Reps, e.RestSeconds, e.Ordering, e.MuscleGroups, e.VideoID,
		).Scan(&e.ID)
		if err != nil {
			return fmt.Errorf("insert exercise %d of session %d: %w", e.Ordering, s.ID, err)
		}
	}
	return nil
}

func listExercises(ctx context.Context, q Querier, sessionID int) ([]Exercise, error) {
	rows, err := q.Query(ctx, `
		SELECT id, session_id, name, sets, reps, rest_seconds, ordering, muscle_groups, video_id,
			exercise_completed, completion_note
		FROM workout_exercise
		WHERE session_id = $1
		ORDER BY ordering;
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := make([]Exercise, 0)
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(
			&e.ID, &e.SessionID, &e.Name, &e.Sets, &e.Reps, &e.RestSeconds, &e.Ordering, &e.MuscleGroups, &e.VideoID,
			&e.Completed, &e.CompletionNote,
		); err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) CreateSession(ctx context.Context, s Session) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.session.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if err = InsertSession(ctx, tx, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// SetExerciseCompletion updates the exercise and, when it got completed, moves a scheduled
// session to in_progress. The exercise must belong to one of the user's sessions.
func (r *Repo) SetExerciseCompletion(
	ctx context.Context,
	userKey string,
	exerciseID int,
	completed bool,
	note string,
) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.exercise.completion")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	e := &Exercise{}
	err = tx.QueryRow(ctx, `
		UPDATE workout_exercise e
		SET exercise_completed = $2, completion_note = $3
		FROM workout_session s
		WHERE e.id = $1 AND e.session_id = s.id AND s.user_key = $4
		RETURNING e.id, e.session_id, e.name, e.sets, e.reps, e.rest_seconds, e.ordering, e.muscle_groups,
			e.video_id, e.exercise_completed, e.completion_note;
	`, exerciseID, completed, note, userKey).Scan(
		&e.ID, &e.SessionID, &e.Name, &e.Sets, &e.Reps, &e.RestSeconds, &e.Ordering, &e.MuscleGroups,
		&e.VideoID, &e.Completed, &e.CompletionNote,
	)
	if err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	if completed {
		tag, err := tx.Exec(ctx, `
			UPDATE workout_session SET status = $2
			WHERE id = $1 AND status = $3;
		`, e.SessionID, StatusInProgress, StatusScheduled)
		if err != nil {
			return nil, fmt.Errorf("promote session %d: %w", e.SessionID, err)
		}
		span.SetAttributes(attribute.Bool("session.promoted", tag.RowsAffected() > 0))
	}

	return e, nil
}

// CompleteSession applies the final completion list and marks the session completed,
// whatever its exercises' state. Returns the session with its exercises.
func (r *Repo) CompleteSession(
	ctx context.Context,
	userKey string,
	sessionID int,
	completions []ExerciseCompletion,
	notes string,
) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.session.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	session, err := scanSession(tx.QueryRow(ctx, `
		UPDATE workout_session s
		SET status = $3,
			completed_at = NOW(),
			notes = CASE WHEN $4::text = '' THEN s.notes ELSE $4::text END
		WHERE s.id = $1 AND s.user_key = $2
		RETURNING `+sessionColumns+`;
	`, sessionID, userKey, StatusCompleted, notes))
	if err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	for _, c := range completions {
		tag, err := tx.Exec(ctx, `
			UPDATE workout_exercise
			SET exercise_completed = $3, completion_note = $4
			WHERE id = $1 AND session_id = $2;
		`, c.ExerciseID, sessionID, c.Completed, c.Note)
		if err != nil {
			return nil, fmt.Errorf("update exercise %d: %w", c.ExerciseID, err)
		}
		if tag.RowsAffected() == 0 {
			return nil, fmt.Errorf("exercise %d in session %d: %w", c.ExerciseID, sessionID, ErrExerciseNotFound)
		}
	}

	session.Exercises, err = listExercises(ctx, tx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return session, nil
}

func (r *Repo) AddFeedback(ctx context.Context, f Feedback) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.feedback.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx, `
		INSERT INTO workout_feedback (session_id, user_key, difficulty, notes)
		VALUES ($1, $2, $3, $4);
	`, f.SessionID, f.UserKey, f.Difficulty, f.Notes)
	if pkg.IsForeignKeyViolationError(err) {
		return ErrSessionNotFound
	}
	return err
}

func (r *Repo) GetProgram(ctx context.Context, userKey string, programID int) (_ *Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.program.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	p, err := scanProgram(r.db.QueryRow(ctx, `
		SELECT `+programColumns+`
		FROM workout_program
		WHERE id = $1 AND user_key = $2 AND status = $3;
	`, programID, userKey, ProgramActive))
	if err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *Repo) ListPrograms(ctx context.Context, userKey string) (_ []Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.program.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT `+programColumns+`
		FROM workout_program
		WHERE user_key = $1 AND status = $2
		ORDER BY created_at DESC;
	`, userKey, ProgramActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	programs := make([]Program, 0)
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, err
		}
		programs = append(programs, *p)
	}
	return programs, rows.Err()
}

// ListSessions returns the sessions of an active program in calendar order.
func (r *Repo) ListSessions(ctx context.Context, userKey string, programID int) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.session.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("program.id", programID))

	rows, err := r.db.Query(ctx, `
		SELECT `+sessionColumns+`
		FROM workout_session s
		JOIN workout_program p ON p.id = s.program_id
		WHERE s.program_id = $1 AND s.user_key = $2 AND p.status = $3
		ORDER BY s.scheduled_date, s.session_number;
	`, programID, userKey, ProgramActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]Session, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *s)
	}
	return sessions, rows.Err()
}

func (r *Repo) GetSession(ctx context.Context, userKey string, sessionID int) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.session.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s, err := scanSession(r.db.QueryRow(ctx, `
		SELECT `+sessionColumns+`
		FROM workout_session s
		LEFT JOIN workout_program p ON p.id = s.program_id
		WHERE s.id = $1 AND s.user_key = $2 AND (p.id IS NULL OR p.status = $3);
	`, sessionID, userKey, ProgramActive))
	if err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	s.Exercises, err = listExercises(ctx, r.db, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return s, nil
}

// DeleteProgram soft deletes the program. Its sessions stay but are no longer listed.
func (r *Repo) DeleteProgram(ctx context.Context, userKey string, programID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.program.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		UPDATE workout_program SET status = $3
		WHERE id = $1 AND user_key = $2 AND status = $4;
	`, programID, userKey, ProgramDeleted, ProgramActive)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProgramNotFound
	}
	return nil
}
