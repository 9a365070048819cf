package quests

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitquest/internal/telemetry/tracing"
	"github.com/2beens/fitquest/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrQuestNotFound = errors.New("daily quest not found")

const questColumns = `id, user_key, quest_date, weight_logged, meal_logged, exercise_logged, day_completed, streak_day, created_at, updated_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanQuest(row pgx.Row) (*DailyQuest, error) {
	q := &DailyQuest{}
	if err := row.Scan(
		&q.ID, &q.UserKey, &q.Date,
		&q.WeightLogged, &q.MealLogged, &q.ExerciseLogged, &q.DayCompleted,
		&q.StreakDay, &q.CreatedAt, &q.UpdatedAt,
	); err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, ErrQuestNotFound
		}
		return nil, err
	}
	return q, nil
}

func (r *Repo) Get(ctx context.Context, userKey string, date time.Time) (_ *DailyQuest, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.quests.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return scanQuest(r.db.QueryRow(ctx,
		`SELECT `+questColumns+` FROM daily_quest WHERE user_key = $1 AND quest_date = $2;`,
		userKey, date,
	))
}

// Create inserts the quest row unless another writer already did. In both cases the
// stored row is returned, so concurrent creators end up with the same record.
func (r *Repo) Create(ctx context.Context, userKey string, date time.Time, streakDay int) (_ *DailyQuest, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.quests.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("streak.day", streakDay))

	q, err := scanQuest(r.db.QueryRow(ctx, `
		INSERT INTO daily_quest (user_key, quest_date, streak_day)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_key, quest_date) DO NOTHING
		RETURNING `+questColumns+`;
	`, userKey, date, streakDay))
	if errors.Is(err, ErrQuestNotFound) {
		// lost the race, read the winner's row
		span.SetAttributes(attribute.Bool("create.conflict", true))
		return r.Get(ctx, userKey, date)
	}
	return q, err
}

// SetFlag sets the flag of kind and recomputes day_completed in one statement.
func (r *Repo) SetFlag(ctx context.Context, userKey string, date time.Time, kind ActionKind) (_ *DailyQuest, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.quests.setflag")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("quest.kind", string(kind)))

	switch kind {
	case ActionWeight, ActionMeal, ActionExercise:
	default:
		return nil, fmt.Errorf("unknown quest action: %s", kind)
	}

	return scanQuest(r.db.QueryRow(ctx, `
		UPDATE daily_quest SET
			weight_logged = weight_logged OR $3::text = 'weight',
			meal_logged = meal_logged OR $3::text = 'meal',
			exercise_logged = exercise_logged OR $3::text = 'exercise',
			day_completed = day_completed OR (
				(weight_logged OR $3::text = 'weight')
				AND (meal_logged OR $3::text = 'meal')
				AND (exercise_logged OR $3::text = 'exercise')
			),
			updated_at = NOW()
		WHERE user_key = $1 AND quest_date = $2
		RETURNING `+questColumns+`;
	`, userKey, date, string(kind)))
}

func (r *Repo) MarkComplete(ctx context.Context, userKey string, date time.Time) (_ *DailyQuest, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.quests.markcomplete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return scanQuest(r.db.QueryRow(ctx, `
		UPDATE daily_quest SET day_completed = TRUE, updated_at = NOW()
		WHERE user_key = $1 AND quest_date = $2
		RETURNING `+questColumns+`;
	`, userKey, date))
}

func (r *Repo) List(ctx context.Context, userKey string, from, to time.Time) (_ []DailyQuest, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.quests.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT `+questColumns+` FROM daily_quest
		WHERE user_key = $1 AND quest_date >= $2 AND quest_date <= $3
		ORDER BY quest_date;
	`, userKey, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quests := make([]DailyQuest, 0)
	for rows.Next() {
		q, err := scanQuest(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		quests = append(quests, *q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return quests, nil
}
