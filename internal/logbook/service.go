package logbook

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fitquest/internal/apperr"
	"github.com/2beens/fitquest/internal/calendar"
	"github.com/2beens/fitquest/internal/quests"
	"github.com/2beens/fitquest/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=logbook_test

type logRepo interface {
	InsertWeight(ctx context.Context, e WeightEntry) (*WeightEntry, error)
	InsertMeal(ctx context.Context, e MealEntry) (*MealEntry, error)
	InsertSteps(ctx context.Context, e StepEntry) (*StepEntry, error)
	ListWeights(ctx context.Context, userKey string, from, to time.Time) ([]WeightEntry, error)
	ListMeals(ctx context.Context, userKey string, from, to time.Time) ([]MealEntry, error)
	ListSteps(ctx context.Context, userKey string, date time.Time) ([]StepEntry, error)
}

type questNotifier interface {
	Notify(ctx context.Context, userKey string, kind quests.ActionKind, date time.Time)
}

type zoneResolver interface {
	Location(ctx context.Context, userKey string) *time.Location
}

type Service struct {
	repo   logRepo
	quests questNotifier
	zones  zoneResolver
	now    func() time.Time
}

func NewService(repo logRepo, quests questNotifier, zones zoneResolver, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		repo:   repo,
		quests: quests,
		zones:  zones,
		now:    now,
	}
}

// LogWeight stores a weigh-in and counts it towards today's quest.
func (s *Service) LogWeight(ctx context.Context, userKey string, weightKg float64) (_ *WeightEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.logbook.logWeight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	e := WeightEntry{
		UserKey:  userKey,
		WeightKg: weightKg,
		LoggedAt: s.now().UTC(),
	}
	if err := e.Validate(); err != nil {
		return nil, apperr.ValidationFrom(err)
	}

	stored, err := s.repo.InsertWeight(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("insert weight: %w", err)
	}

	s.quests.Notify(ctx, userKey, quests.ActionWeight, calendar.Today(stored.LoggedAt, s.zones.Location(ctx, userKey)))
	log.Debugf("weight %.1f kg logged for user %s", stored.WeightKg, userKey)
	return stored, nil
}

// LogMeal stores a meal and counts it towards today's quest.
func (s *Service) LogMeal(ctx context.Context, userKey string, e MealEntry) (_ *MealEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.logbook.logMeal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	e.normalize()
	if err := e.Validate(); err != nil {
		return nil, apperr.ValidationFrom(err)
	}
	e.UserKey = userKey
	e.LoggedAt = s.now().UTC()

	stored, err := s.repo.InsertMeal(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("insert meal: %w", err)
	}

	s.quests.Notify(ctx, userKey, quests.ActionMeal, calendar.Today(stored.LoggedAt, s.zones.Location(ctx, userKey)))
	return stored, nil
}

// LogSteps reports the step count of a day, today when date is zero. Steps do not
// take part in daily quests.
func (s *Service) LogSteps(ctx context.Context, userKey string, steps int, date time.Time) (_ *StepEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.logbook.logSteps")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	now := s.now()
	today := calendar.Today(now, s.zones.Location(ctx, userKey))
	if date.IsZero() {
		date = today
	}
	date = calendar.Midnight(date)
	if date.After(today) {
		return nil, apperr.Validation("steps cannot be logged for a future day")
	}

	e := StepEntry{
		UserKey:  userKey,
		Steps:    steps,
		Date:     date,
		LoggedAt: now.UTC(),
	}
	if err := e.Validate(); err != nil {
		return nil, apperr.ValidationFrom(err)
	}

	stored, err := s.repo.InsertSteps(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("insert steps: %w", err)
	}
	return stored, nil
}

// Day collects what the user logged on a local day, today when date is zero.
func (s *Service) Day(ctx context.Context, userKey string, date time.Time) (_ *Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.logbook.day")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	loc := s.zones.Location(ctx, userKey)
	if date.IsZero() {
		date = calendar.Today(s.now(), loc)
	}
	date = calendar.Midnight(date)
	from, to := calendar.Bounds(date, loc)

	weights, err := s.repo.ListWeights(ctx, userKey, from, to)
	if err != nil {
		return nil, fmt.Errorf("list weights: %w", err)
	}
	meals, err := s.repo.ListMeals(ctx, userKey, from, to)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	steps, err := s.repo.ListSteps(ctx, userKey, date)
	if err != nil {
		return nil, fmt.Errorf("list steps: %w", err)
	}

	return newDay(date, weights, meals, steps), nil
}
