package profiles

import (
	"context"
	"errors"

	"github.com/2beens/fitquest/internal/telemetry/tracing"
	"github.com/2beens/fitquest/pkg"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrProfileNotFound = errors.New("profile not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, userKey string) (_ *UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	p := &UserProfile{}
	err = r.db.QueryRow(ctx, `
		SELECT user_key, height_cm::float8, age, gender, activity_level, fitness_goal, timezone, updated_at
		FROM user_profile
		WHERE user_key = $1;
	`, userKey).Scan(
		&p.UserKey, &p.HeightCm, &p.Age, &p.Gender, &p.ActivityLevel, &p.FitnessGoal, &p.Timezone, &p.UpdatedAt,
	)
	if err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *Repo) Upsert(ctx context.Context, p UserProfile) (_ *UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(ctx, `
		INSERT INTO user_profile (user_key, height_cm, age, gender, activity_level, fitness_goal, timezone)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_key) DO UPDATE SET
			height_cm = EXCLUDED.height_cm,
			age = EXCLUDED.age,
			gender = EXCLUDED.gender,
			activity_level = EXCLUDED.activity_level,
			fitness_goal = EXCLUDED.fitness_goal,
			timezone = EXCLUDED.timezone,
			updated_at = NOW()
		RETURNING updated_at;
	`,
		p.UserKey, p.HeightCm, p.Age, p.Gender, p.ActivityLevel, p.FitnessGoal, p.Timezone,
	).Scan(&p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
