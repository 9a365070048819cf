package workouts

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/2beens/fitquest/internal/apperr"
	"github.com/2beens/fitquest/internal/auth"
	"github.com/2beens/fitquest/internal/calendar"
	"github.com/2beens/fitquest/internal/telemetry/tracing"
	"github.com/2beens/fitquest/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutTracker interface {
	SetExerciseCompletion(ctx context.Context, userKey string, exerciseID int, completed bool, note string) (*Exercise, error)
	CompleteSession(ctx context.Context, userKey string, sessionID int, params CompleteParams) (*CompletionResult, error)
	LogWorkout(ctx context.Context, userKey string, l WorkoutLog) (*Session, error)
	GetProgram(ctx context.Context, userKey string, programID int) (*Program, error)
	ListPrograms(ctx context.Context, userKey string) ([]Program, error)
	ListSessions(ctx context.Context, userKey string, programID int) ([]Session, error)
	GetSession(ctx context.Context, userKey string, sessionID int) (*Session, error)
	DeleteProgram(ctx context.Context, userKey string, programID int) error
}

type Handler struct {
	tracker workoutTracker
}

func NewHandler(tracker workoutTracker) *Handler {
	return &Handler{
		tracker: tracker,
	}
}

type ExerciseCompletionRequest struct {
	Completed bool   `json:"completed"`
	Note      string `json:"note"`
}

type LogWorkoutRequest struct {
	WorkoutLog
	Date string `json:"date,omitempty"`
}

func idVar(r *http.Request, what string) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		return 0, apperr.Validation("invalid %s id", what)
	}
	return id, nil
}

func (h *Handler) HandleListPrograms(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.programs.list")
	defer span.End()

	userKey, ok := auth.UserKeyFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	programs, err := h.tracker.ListPrograms(ctx, userKey)
	if err != nil {
		log.Errorf("list programs: %s", err)
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteJSONOK(w, programs)
}

func (h *Handler) HandleGetProgram(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.programs.get")
	defer span.End()

	userKey, ok := auth.UserKeyFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	programID, err := idVar(r, "program")
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	program, err := h.tracker.GetProgram(ctx, userKey, programID)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteJSONOK(w, program)
}

func (h *Handler) HandleListSessions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.sessions.list")
	defer span.End()

	userKey, ok := auth.UserKeyFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	programID, err := idVar(r, "program")
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	sessions, err := h.tracker.ListSessions(ctx, userKey, programID)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteJSONOK(w, sessions)
}

func (h *Handler) HandleDeleteProgram(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.programs.delete")
	defer span.End()

	userKey, ok := auth.UserKeyFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	programID, err := idVar(r, "program")
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	if err := h.tracker.DeleteProgram(ctx, userKey, programID); err != nil {
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteJSONOK(w, map[string]int{"deleted": programID})
}

func (h *Handler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.sessions.get")
	defer span.End()

	userKey, ok := auth.UserKeyFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	sessionID, err := idVar(r, "session")
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	session, err := h.tracker.GetSession(ctx, userKey, sessionID)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteJSONOK(w, session)
}

func (h *Handler) HandleCompleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.sessions.complete")
	defer span.End()

	userKey, ok := auth.UserKeyFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	sessionID, err := idVar(r, "session")
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	var params CompleteParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Errorf("complete session, unmarshal json params: %s", err)
		pkg.WriteError(w, apperr.Validation("invalid request body"))
		return
	}

	result, err := h.tracker.CompleteSession(ctx, userKey, sessionID, params)
	if err != nil {
		log.Errorf("complete session %d: %s", sessionID, err)
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteJSONOK(w, result)
}

func (h *Handler) HandleSetExerciseCompletion(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.exercises.completion")
	defer span.End()

	userKey, ok := auth.UserKeyFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	exerciseID, err := idVar(r, "exercise")
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	var req ExerciseCompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("set exercise completion, unmarshal json params: %s", err)
		pkg.WriteError(w, apperr.Validation("invalid request body"))
		return
	}

	exercise, err := h.tracker.SetExerciseCompletion(ctx, userKey, exerciseID, req.Completed, req.Note)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteJSONOK(w, exercise)
}

func (h *Handler) HandleLogWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.log")
	defer span.End()

	userKey, ok := auth.UserKeyFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req LogWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("log workout, unmarshal json params: %s", err)
		pkg.WriteError(w, apperr.Validation("invalid request body"))
		return
	}
	if req.Date != "" {
		date, err := calendar.Parse(req.Date)
		if err != nil {
			pkg.WriteError(w, apperr.ValidationFrom(err))
			return
		}
		req.WorkoutLog.Date = date
	}

	session, err := h.tracker.LogWorkout(ctx, userKey, req.WorkoutLog)
	if err != nil {
		log.Errorf("log workout: %s", err)
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteJSON(w, http.StatusCreated, session)
}
