package programs

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/fitquest/internal/apperr"
	"github.com/2beens/fitquest/internal/calendar"
	"github.com/2beens/fitquest/internal/profiles"
	"github.com/2beens/fitquest/internal/telemetry/metrics"
	"github.com/2beens/fitquest/internal/telemetry/tracing"
	"github.com/2beens/fitquest/internal/videos"
	"github.com/2beens/fitquest/internal/workouts"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=$GOFILE -destination=generator_mocks_test.go -package=programs_test

type profileReader interface {
	Get(ctx context.Context, userKey string) (*profiles.UserProfile, error)
}

type textGenerator interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

type videoResolver interface {
	Resolve(ctx context.Context, query string) (videos.Video, error)
}

type programStore interface {
	Persist(ctx context.Context, program *workouts.Program, sessions []workouts.Session, audit AuditEntry) error
}

type GeneratorParams struct {
	Profiles         profileReader
	LLM              textGenerator
	Videos           videoResolver
	Store            programStore
	MetricsManager   *metrics.Manager
	VideoConcurrency int
	DefaultLocation  *time.Location
	Now              func() time.Time
}

// Generator turns program parameters into a persisted, calendar anchored program.
type Generator struct {
	profiles         profileReader
	llm              textGenerator
	videos           videoResolver
	store            programStore
	metricsManager   *metrics.Manager
	videoConcurrency int
	defaultLocation  *time.Location
	now              func() time.Time
}

func NewGenerator(params GeneratorParams) *Generator {
	if params.VideoConcurrency <= 0 {
		params.VideoConcurrency = 4
	}
	if params.DefaultLocation == nil {
		params.DefaultLocation = time.UTC
	}
	if params.Now == nil {
		params.Now = time.Now
	}
	return &Generator{
		profiles:         params.Profiles,
		llm:              params.LLM,
		videos:           params.Videos,
		store:            params.Store,
		metricsManager:   params.MetricsManager,
		videoConcurrency: params.VideoConcurrency,
		defaultLocation:  params.DefaultLocation,
		now:              params.Now,
	}
}

type WeekResult struct {
	Week     int                `json:"week"`
	Phase    string             `json:"phase"`
	Sessions []workouts.Session `json:"sessions"`
}

type Result struct {
	ProgramID           int                `json:"programId"`
	Name                string             `json:"name"`
	StartDate           string             `json:"startDate"`
	Weeks               []WeekResult       `json:"weeks"`
	MuscleBalanceTarget map[string]float64 `json:"muscleBalanceTarget"`
}

func (g *Generator) fail(reason string, err error) error {
	g.metricsManager.CounterGenerationFailures.WithLabelValues(reason).Inc()
	return err
}

// Generate builds a program with a single text generation call. Nothing is stored unless
// the whole program, its sessions, exercises and the audit entry can be written together.
func (g *Generator) Generate(ctx context.Context, userKey string, params Params) (_ *Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.programs.generate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	started := time.Now()

	params.normalize()
	if err := params.Validate(); err != nil {
		return nil, apperr.ValidationFrom(err)
	}
	weekdays, _ := params.ParsedWeekdays()
	span.SetAttributes(
		attribute.String("goal", string(params.Goal)),
		attribute.Int("total_weeks", params.TotalWeeks),
		attribute.Int("frequency", params.Frequency),
	)

	profile, err := g.profiles.Get(ctx, userKey)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return nil, g.fail("profile", apperr.NotFound(err, "profile not found, complete your profile first"))
		}
		return nil, g.fail("profile", fmt.Errorf("get profile: %w", err))
	}

	startDate := calendar.Today(g.now(), calendar.Location(profile.Timezone, g.defaultLocation))
	slots := CalculateWorkoutDates(startDate, weekdays, params.TotalWeeks)

	system, user := buildPrompt(profile, params, weekdayNames(weekdays))
	text, err := g.llm.Complete(ctx, system, user)
	if err != nil {
		return nil, g.fail("llm", err)
	}

	generated, raw, err := parseGenerated(text)
	if err != nil {
		log.Warnf("unreadable generated program for user %s: %s", userKey, err)
		return nil, g.fail("parse", err)
	}

	sessions, phases := buildSessions(userKey, generated, slots)
	if len(sessions) == 0 {
		log.Warnf("generated program for user %s matches none of the %d scheduled days", userKey, len(slots))
	}
	span.SetAttributes(attribute.Int("sessions", len(sessions)), attribute.Int("slots", len(slots)))

	g.attachVideos(ctx, sessions)

	name := generated.ProgramName
	if name == "" {
		name = defaultProgramName
	}
	program := &workouts.Program{
		UserKey:             userKey,
		Name:                name,
		Goal:                string(params.Goal),
		TotalWeeks:          params.TotalWeeks,
		SessionsPerWeek:     params.Frequency,
		DurationMinutes:     params.DurationMinutes,
		Weekdays:            weekdayNames(weekdays),
		Equipment:           params.Equipment,
		MuscleBalanceTarget: normalizeTarget(generated.MuscleBalanceTarget),
		StartDate:           startDate,
	}

	audit := AuditEntry{
		RequestID: uuid.New(),
		UserKey:   userKey,
		Params:    params,
		Generated: raw,
	}
	if err := g.store.Persist(ctx, program, sessions, audit); err != nil {
		return nil, g.fail("persist", fmt.Errorf("persist program: %w", err))
	}

	g.metricsManager.CounterProgramsGenerated.Inc()
	g.metricsManager.HistogramGenerationDuration.Observe(time.Since(started).Seconds())
	log.Infof(
		"program %d [%s] generated for user %s: %d sessions over %d weeks, request %s",
		program.ID, program.Name, userKey, len(sessions), params.TotalWeeks, audit.RequestID,
	)

	return &Result{
		ProgramID:           program.ID,
		Name:                program.Name,
		StartDate:           calendar.Format(startDate),
		Weeks:               groupByWeek(sessions, phases, params.TotalWeeks),
		MuscleBalanceTarget: program.MuscleBalanceTarget,
	}, nil
}

// buildSessions places generated sessions on the calendar slots. Slots the model left
// empty are skipped.
func buildSessions(userKey string, generated *generatedProgram, slots []Slot) ([]workouts.Session, map[int]string) {
	index, phases := indexSessions(generated)
	sessions := make([]workouts.Session, 0, len(slots))
	for _, slot := range slots {
		gs, ok := index[sessionKey{week: slot.Week, weekday: slot.Weekday}]
		if !ok {
			continue
		}

		title := gs.Name
		if title == "" {
			title = fmt.Sprintf("Week %d %s", slot.Week, slot.Weekday)
		}
		// the warm-up query rides in WarmupVideo until attachVideos resolves it
		session := workouts.Session{
			UserKey:       userKey,
			Title:         title,
			Kind:          workouts.KindAIGenerated,
			WeekNumber:    slot.Week,
			SessionNumber: slot.SessionNumber,
			Phase:         phases[slot.Week],
			ScheduledDate: slot.Date,
			Status:        workouts.StatusScheduled,
			WarmupVideo:   gs.WarmupVideoQuery,
			Exercises:     make([]workouts.Exercise, 0, len(gs.Exercises)),
		}
		for _, ge := range gs.Exercises {
			ne, ok := normalizeExercise(ge)
			if !ok {
				continue
			}
			session.Exercises = append(session.Exercises, workouts.Exercise{
				Name:         ne.Name,
				Sets:         ne.Sets,
				Reps:         ne.Reps,
				RestSeconds:  ne.RestSeconds,
				Ordering:     len(session.Exercises) + 1,
				MuscleGroups: ne.MuscleGroups,
			})
		}
		sessions = append(sessions, session)
	}
	return sessions, phases
}

// attachVideos resolves warm-up and exercise videos concurrently before anything is written.
// A failed lookup leaves the reference empty.
func (g *Generator) attachVideos(ctx context.Context, sessions []workouts.Session) {
	var queries []string
	seen := make(map[string]bool)
	addQuery := func(q string) {
		if q = videos.NormalizeQuery(q); q != "" && !seen[q] {
			seen[q] = true
			queries = append(queries, q)
		}
	}
	for i := range sessions {
		if videos.NormalizeQuery(sessions[i].WarmupVideo) == "" {
			sessions[i].WarmupVideo = defaultWarmupQuery
		}
		addQuery(sessions[i].WarmupVideo)
		for _, e := range sessions[i].Exercises {
			addQuery(e.Name)
		}
	}

	var mu sync.Mutex
	resolved := make(map[string]string, len(queries))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.videoConcurrency)
	for _, query := range queries {
		eg.Go(func() error {
			video, err := g.videos.Resolve(egCtx, query)
			if err != nil {
				if !errors.Is(err, videos.ErrVideoNotFound) {
					log.Warnf("resolve video [%s]: %s", query, err)
				}
				return nil
			}
			mu.Lock()
			resolved[query] = video.ID
			mu.Unlock()
			return nil
		})
	}
	_ = eg.Wait()

	for i := range sessions {
		sessions[i].WarmupVideo = resolved[videos.NormalizeQuery(sessions[i].WarmupVideo)]
		for j := range sessions[i].Exercises {
			e := &sessions[i].Exercises[j]
			e.VideoID = resolved[videos.NormalizeQuery(e.Name)]
		}
	}
}

func groupByWeek(sessions []workouts.Session, phases map[int]string, totalWeeks int) []WeekResult {
	weeks := make([]WeekResult, 0, totalWeeks)
	for week := 1; week <= totalWeeks; week++ {
		wr := WeekResult{
			Week:     week,
			Phase:    phases[week],
			Sessions: make([]workouts.Session, 0),
		}
		for _, s := range sessions {
			if s.WeekNumber == week {
				wr.Sessions = append(wr.Sessions, s)
			}
		}
		weeks = append(weeks, wr)
	}
	return weeks
}
