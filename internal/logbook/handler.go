package logbook

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/2beens/fitquest/internal/apperr"
	"github.com/2beens/fitquest/internal/auth"
	"github.com/2beens/fitquest/internal/calendar"
	"github.com/2beens/fitquest/internal/telemetry/tracing"
	"github.com/2beens/fitquest/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=logbook_test

type logbookService interface {
	LogWeight(ctx context.Context, userKey string, weightKg float64) (*WeightEntry, error)
	LogMeal(ctx context.Context, userKey string, e MealEntry) (*MealEntry, error)
	LogSteps(ctx context.Context, userKey string, steps int, date time.Time) (*StepEntry, error)
	Day(ctx context.Context, userKey string, date time.Time) (*Day, error)
}

type Handler struct {
	service logbookService
}

func NewHandler(service logbookService) *Handler {
	return &Handler{
		service: service,
	}
}

type WeightRequest struct {
	WeightKg float64 `json:"weightKg"`
}

type StepsRequest struct {
	Steps int    `json:"steps"`
	Date  string `json:"date"`
}

func (h *Handler) HandleLogWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logbook.weight")
	defer span.End()

	userKey, ok := auth.UserKeyFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req WeightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("log weight, unmarshal json params: %s", err)
		pkg.WriteError(w, apperr.Validation("invalid request body"))
		return
	}

	entry, err := h.service.LogWeight(ctx, userKey, req.WeightKg)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, entry)
}

func (h *Handler) HandleLogMeal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logbook.meal")
	defer span.End()

	userKey, ok := auth.UserKeyFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req MealEntry
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("log meal, unmarshal json params: %s", err)
		pkg.WriteError(w, apperr.Validation("invalid request body"))
		return
	}

	entry, err := h.service.LogMeal(ctx, userKey, req)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, entry)
}

func (h *Handler) HandleLogSteps(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logbook.steps")
	defer span.End()

	userKey, ok := auth.UserKeyFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req StepsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("log steps, unmarshal json params: %s", err)
		pkg.WriteError(w, apperr.Validation("invalid request body"))
		return
	}

	var date time.Time
	if req.Date != "" {
		var err error
		if date, err = calendar.Parse(req.Date); err != nil {
			pkg.WriteError(w, apperr.ValidationFrom(err))
			return
		}
	}

	entry, err := h.service.LogSteps(ctx, userKey, req.Steps, date)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, entry)
}

// HandleGetDay lists a day's log. Query: [date=YYYY-MM-DD], today by default.
func (h *Handler) HandleGetDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logbook.day")
	defer span.End()

	userKey, ok := auth.UserKeyFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var date time.Time
	if dateParam := r.URL.Query().Get("date"); dateParam != "" {
		var err error
		if date, err = calendar.Parse(dateParam); err != nil {
			pkg.WriteError(w, apperr.ValidationFrom(err))
			return
		}
	}

	day, err := h.service.Day(ctx, userKey, date)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	pkg.WriteJSONOK(w, day)
}
