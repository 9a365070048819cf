package programs

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/fitquest/internal/apperr"
	"github.com/2beens/fitquest/internal/auth"
	"github.com/2beens/fitquest/internal/calendar"
	"github.com/2beens/fitquest/internal/telemetry/tracing"
	"github.com/2beens/fitquest/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=programs_test

type programGenerator interface {
	Generate(ctx context.Context, userKey string, params Params) (*Result, error)
}

type Handler struct {
	generator programGenerator
	now       func() time.Time
}

func NewHandler(generator programGenerator, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{
		generator: generator,
		now:       now,
	}
}

type SlotResponse struct {
	Week          int    `json:"week"`
	SessionNumber int    `json:"sessionNumber"`
	Weekday       string `json:"weekday"`
	Date          string `json:"date"`
}

func NewSlotResponses(slots []Slot) []SlotResponse {
	resp := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, SlotResponse{
			Week:          s.Week,
			SessionNumber: s.SessionNumber,
			Weekday:       s.Weekday.String(),
			Date:          calendar.Format(s.Date),
		})
	}
	return resp
}

func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.generate")
	defer span.End()

	userKey, ok := auth.UserKeyFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var params Params
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Errorf("generate program, unmarshal json params: %s", err)
		pkg.WriteError(w, apperr.Validation("invalid request body"))
		return
	}

	result, err := h.generator.Generate(ctx, userKey, params)
	if err != nil {
		log.Errorf("generate program for user %s: %s", userKey, err)
		pkg.WriteError(w, err)
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, result)
}

// HandleSchedulePreview shows the dates a program would use, without generating anything.
// Query: weekdays=mon,wed&weeks=3[&start=YYYY-MM-DD]
func (h *Handler) HandleSchedulePreview(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.schedule")
	defer span.End()

	q := r.URL.Query()
	var names []string
	for _, n := range strings.Split(q.Get("weekdays"), ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	weeks, err := strconv.Atoi(q.Get("weeks"))
	if err != nil || weeks < 1 || weeks > MaxTotalWeeks {
		pkg.WriteError(w, apperr.Validation("weeks must be between 1 and %d", MaxTotalWeeks))
		return
	}

	weekdays, err := Params{Weekdays: names}.ParsedWeekdays()
	if err != nil || len(weekdays) == 0 {
		pkg.WriteError(w, apperr.Validation("weekdays must be a comma separated list of distinct days"))
		return
	}

	start := calendar.Today(h.now(), time.UTC)
	if startParam := q.Get("start"); startParam != "" {
		if start, err = calendar.Parse(startParam); err != nil {
			pkg.WriteError(w, apperr.ValidationFrom(err))
			return
		}
	}

	pkg.WriteJSONOK(w, NewSlotResponses(CalculateWorkoutDates(start, weekdays, weeks)))
}
