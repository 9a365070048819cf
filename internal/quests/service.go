package quests

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitquest/internal/apperr"
	"github.com/2beens/fitquest/internal/calendar"
	"github.com/2beens/fitquest/internal/telemetry/metrics"
	"github.com/2beens/fitquest/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=quests_test

const maxHistoryDays = 366

type questRepo interface {
	Get(ctx context.Context, userKey string, date time.Time) (*DailyQuest, error)
	Create(ctx context.Context, userKey string, date time.Time, streakDay int) (*DailyQuest, error)
	SetFlag(ctx context.Context, userKey string, date time.Time, kind ActionKind) (*DailyQuest, error)
	MarkComplete(ctx context.Context, userKey string, date time.Time) (*DailyQuest, error)
	List(ctx context.Context, userKey string, from, to time.Time) ([]DailyQuest, error)
}

type Service struct {
	repo           questRepo
	metricsManager *metrics.Manager
}

func NewService(repo questRepo, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

// GetOrCreate returns the quest of the date, creating it lazily. A new row takes its
// streak from the previous day's row as it is at this moment; it is not recomputed later.
func (s *Service) GetOrCreate(ctx context.Context, userKey string, date time.Time) (_ *DailyQuest, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.quests.getorcreate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	date = calendar.Midnight(date)
	q, err := s.repo.Get(ctx, userKey, date)
	if err == nil {
		return q, nil
	}
	if !errors.Is(err, ErrQuestNotFound) {
		return nil, fmt.Errorf("get quest: %w", err)
	}

	prev, err := s.repo.Get(ctx, userKey, calendar.AddDays(date, -1))
	if err != nil {
		if !errors.Is(err, ErrQuestNotFound) {
			return nil, fmt.Errorf("get previous day quest: %w", err)
		}
		prev = nil
	}

	streak := InitialStreak(prev)
	span.SetAttributes(attribute.Int("streak.day", streak))

	q, err = s.repo.Create(ctx, userKey, date, streak)
	if err != nil {
		return nil, fmt.Errorf("create quest: %w", err)
	}
	return q, nil
}

// RecordAction marks one of the daily actions as done. Recording the same action twice is a no-op.
func (s *Service) RecordAction(ctx context.Context, userKey string, kind ActionKind, date time.Time) (_ *DailyQuest, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.quests.recordaction")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("quest.kind", string(kind)))

	if _, err := ParseActionKind(string(kind)); err != nil {
		return nil, apperr.ValidationFrom(err)
	}

	date = calendar.Midnight(date)
	if _, err := s.GetOrCreate(ctx, userKey, date); err != nil {
		return nil, err
	}

	q, err := s.repo.SetFlag(ctx, userKey, date, kind)
	if err != nil {
		return nil, fmt.Errorf("set quest flag: %w", err)
	}

	s.metricsManager.CounterQuestActions.WithLabelValues(string(kind)).Inc()
	return q, nil
}

// MarkDayComplete completes the day regardless of the action flags.
// It is the only way day_completed can be true without all three actions.
func (s *Service) MarkDayComplete(ctx context.Context, userKey string, date time.Time) (_ *DailyQuest, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.quests.markdaycomplete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	date = calendar.Midnight(date)
	if _, err := s.GetOrCreate(ctx, userKey, date); err != nil {
		return nil, err
	}

	q, err := s.repo.MarkComplete(ctx, userKey, date)
	if err != nil {
		return nil, fmt.Errorf("mark day complete: %w", err)
	}
	log.Debugf("quest day %s manually completed for user %s", calendar.Format(date), userKey)
	return q, nil
}

// Notify records an action on behalf of another module. Failures are logged and
// counted but never returned, so they cannot fail the caller's own operation.
func (s *Service) Notify(ctx context.Context, userKey string, kind ActionKind, date time.Time) {
	if _, err := s.RecordAction(ctx, userKey, kind, date); err != nil {
		s.metricsManager.CounterQuestFailures.WithLabelValues(string(kind)).Inc()
		log.Errorf("quest notify [%s] for user %s on %s: %s", kind, userKey, calendar.Format(date), err)
	}
}

func (s *Service) History(ctx context.Context, userKey string, from, to time.Time) (_ []DailyQuest, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.quests.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	from, to = calendar.Midnight(from), calendar.Midnight(to)
	if to.Before(from) {
		return nil, apperr.Validation("history end is before start")
	}
	if calendar.DaysBetween(from, to) > maxHistoryDays {
		return nil, apperr.Validation("history range exceeds %d days", maxHistoryDays)
	}

	quests, err := s.repo.List(ctx, userKey, from, to)
	if err != nil {
		return nil, fmt.Errorf("list quests: %w", err)
	}
	return quests, nil
}
