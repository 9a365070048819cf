package musclebalance

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/fitquest/internal/telemetry/tracing"
	"github.com/2beens/fitquest/pkg"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrRecordNotFound = errors.New("muscle balance record not found")

type Record struct {
	ID          int          `json:"id"`
	UserKey     string       `json:"-"`
	ProgramID   *int         `json:"programId,omitempty"`
	SessionID   int          `json:"sessionId"`
	WorkoutDate time.Time    `json:"workoutDate"`
	Volumes     GroupVolumes `json:"volumes"`
	TotalVolume int          `json:"totalVolume"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Upsert stores the record, replacing any previous values for the same (user, session).
func (r *Repo) Upsert(ctx context.Context, rec Record) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.musclebalance.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", rec.SessionID))

	err = r.db.QueryRow(ctx, `
		INSERT INTO muscle_balance
			(user_key, program_id, session_id, workout_date, chest, back, legs, shoulders, arms, core, total_volume, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		ON CONFLICT (user_key, session_id) DO UPDATE SET
			program_id = EXCLUDED.program_id,
			workout_date = EXCLUDED.workout_date,
			chest = EXCLUDED.chest,
			back = EXCLUDED.back,
			legs = EXCLUDED.legs,
			shoulders = EXCLUDED.shoulders,
			arms = EXCLUDED.arms,
			core = EXCLUDED.core,
			total_volume = EXCLUDED.total_volume,
			updated_at = NOW()
		RETURNING id, updated_at;
	`,
		rec.UserKey, rec.ProgramID, rec.SessionID, rec.WorkoutDate,
		rec.Volumes.Chest, rec.Volumes.Back, rec.Volumes.Legs,
		rec.Volumes.Shoulders, rec.Volumes.Arms, rec.Volumes.Core,
		rec.TotalVolume,
	).Scan(&rec.ID, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

func (r *Repo) Get(ctx context.Context, userKey string, sessionID int) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.musclebalance.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rec := &Record{}
	err = r.db.QueryRow(ctx, `
		SELECT id, user_key, program_id, session_id, workout_date,
			chest, back, legs, shoulders, arms, core, total_volume, updated_at
		FROM muscle_balance
		WHERE user_key = $1 AND session_id = $2;
	`, userKey, sessionID).Scan(
		&rec.ID, &rec.UserKey, &rec.ProgramID, &rec.SessionID, &rec.WorkoutDate,
		&rec.Volumes.Chest, &rec.Volumes.Back, &rec.Volumes.Legs,
		&rec.Volumes.Shoulders, &rec.Volumes.Arms, &rec.Volumes.Core,
		&rec.TotalVolume, &rec.UpdatedAt,
	)
	if err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return rec, nil
}

// Sum adds up the group volumes of all records of the user, optionally bounded by workout date.
func (r *Repo) Sum(ctx context.Context, userKey string, from, to *time.Time) (_ GroupVolumes, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.musclebalance.sum")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var v GroupVolumes
	err = r.db.QueryRow(ctx, `
		SELECT
			COALESCE(SUM(chest), 0), COALESCE(SUM(back), 0), COALESCE(SUM(legs), 0),
			COALESCE(SUM(shoulders), 0), COALESCE(SUM(arms), 0), COALESCE(SUM(core), 0)
		FROM muscle_balance
		WHERE user_key = $1
		  AND ($2::date IS NULL OR workout_date >= $2)
		  AND ($3::date IS NULL OR workout_date <= $3);
	`, userKey, from, to).Scan(&v.Chest, &v.Back, &v.Legs, &v.Shoulders, &v.Arms, &v.Core)
	if err != nil {
		return GroupVolumes{}, err
	}
	return v, nil
}
