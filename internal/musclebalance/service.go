package musclebalance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitquest/internal/apperr"
	"github.com/2beens/fitquest/internal/calendar"
	"github.com/2beens/fitquest/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=musclebalance_test

type balanceRepo interface {
	Upsert(ctx context.Context, rec Record) (*Record, error)
	Get(ctx context.Context, userKey string, sessionID int) (*Record, error)
	Sum(ctx context.Context, userKey string, from, to *time.Time) (GroupVolumes, error)
}

// Balance is a user's training volume distribution over a period.
type Balance struct {
	Percentages Percentages  `json:"percentages"`
	Volumes     GroupVolumes `json:"volumes"`
	TotalVolume int          `json:"totalVolume"`
}

type Service struct {
	repo balanceRepo
}

func NewService(repo balanceRepo) *Service {
	return &Service{
		repo: repo,
	}
}

// Record computes the session's volumes and replaces whatever was stored for it before.
func (s *Service) Record(
	ctx context.Context,
	userKey string,
	programID *int,
	sessionID int,
	exercises []ExerciseVolume,
	workoutDate time.Time,
) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.musclebalance.record")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	volumes := ComputeVolumes(exercises)
	rec, err := s.repo.Upsert(ctx, Record{
		UserKey:     userKey,
		ProgramID:   programID,
		SessionID:   sessionID,
		WorkoutDate: calendar.Midnight(workoutDate),
		Volumes:     volumes,
		TotalVolume: volumes.Total(),
	})
	if err != nil {
		return nil, fmt.Errorf("upsert muscle balance: %w", err)
	}
	return rec, nil
}

func (s *Service) ForSession(ctx context.Context, userKey string, sessionID int) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.musclebalance.session")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rec, err := s.repo.Get(ctx, userKey, sessionID)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return nil, apperr.NotFound(err, "no muscle balance for session %d", sessionID)
		}
		return nil, fmt.Errorf("get muscle balance: %w", err)
	}
	return rec, nil
}

func (s *Service) AllTime(ctx context.Context, userKey string) (_ *Balance, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.musclebalance.alltime")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.balance(ctx, userKey, nil, nil)
}

func (s *Service) ByPeriod(ctx context.Context, userKey string, start, end time.Time) (_ *Balance, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.musclebalance.period")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	start, end = calendar.Midnight(start), calendar.Midnight(end)
	if end.Before(start) {
		return nil, apperr.Validation("period end %s is before start %s", calendar.Format(end), calendar.Format(start))
	}
	return s.balance(ctx, userKey, &start, &end)
}

func (s *Service) balance(ctx context.Context, userKey string, from, to *time.Time) (*Balance, error) {
	volumes, err := s.repo.Sum(ctx, userKey, from, to)
	if err != nil {
		return nil, fmt.Errorf("sum muscle balance: %w", err)
	}
	return &Balance{
		Percentages: ToPercentages(volumes),
		Volumes:     volumes,
		TotalVolume: volumes.Total(),
	}, nil
}
