package logbook

import (
	"context"
	"time"

	"github.com/2beens/fitquest/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) InsertWeight(ctx context.Context, e WeightEntry) (_ *WeightEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logbook.insertWeight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(ctx, `
		INSERT INTO weight_log (user_key, weight_kg, logged_at)
		VALUES ($1, $2, $3)
		RETURNING id;
	`, e.UserKey, e.WeightKg, e.LoggedAt).Scan(&e.ID)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repo) InsertMeal(ctx context.Context, e MealEntry) (_ *MealEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logbook.insertMeal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(ctx, `
		INSERT INTO meal_log (user_key, description, meal_type, calories, protein_g, carbs_g, fat_g, logged_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`,
		e.UserKey, e.Description, e.MealType, e.Calories, e.ProteinG, e.CarbsG, e.FatG, e.LoggedAt,
	).Scan(&e.ID)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repo) InsertSteps(ctx context.Context, e StepEntry) (_ *StepEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logbook.insertSteps")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(ctx, `
		INSERT INTO step_log (user_key, steps, step_date, logged_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`, e.UserKey, e.Steps, e.Date, e.LoggedAt).Scan(&e.ID)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ListWeights returns entries logged in [from, to).
func (r *Repo) ListWeights(ctx context.Context, userKey string, from, to time.Time) (_ []WeightEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logbook.listWeights")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, user_key, weight_kg::float8, logged_at
		FROM weight_log
		WHERE user_key = $1 AND logged_at >= $2 AND logged_at < $3
		ORDER BY logged_at;
	`, userKey, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []WeightEntry
	for rows.Next() {
		var e WeightEntry
		if err := rows.Scan(&e.ID, &e.UserKey, &e.WeightKg, &e.LoggedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ListMeals returns entries logged in [from, to).
func (r *Repo) ListMeals(ctx context.Context, userKey string, from, to time.Time) (_ []MealEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logbook.listMeals")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, user_key, description, meal_type, calories,
		       protein_g::float8, carbs_g::float8, fat_g::float8, logged_at
		FROM meal_log
		WHERE user_key = $1 AND logged_at >= $2 AND logged_at < $3
		ORDER BY logged_at;
	`, userKey, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []MealEntry
	for rows.Next() {
		var e MealEntry
		if err := rows.Scan(
			&e.ID, &e.UserKey, &e.Description, &e.MealType, &e.Calories,
			&e.ProteinG, &e.CarbsG, &e.FatG, &e.LoggedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *Repo) ListSteps(ctx context.Context, userKey string, date time.Time) (_ []StepEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logbook.listSteps")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, user_key, steps, step_date, logged_at
		FROM step_log
		WHERE user_key = $1 AND step_date = $2
		ORDER BY logged_at;
	`, userKey, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []StepEntry
	for rows.Next() {
		var e StepEntry
		if err := rows.Scan(&e.ID, &e.UserKey, &e.Steps, &e.Date, &e.LoggedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
