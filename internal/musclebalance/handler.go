package musclebalance

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/fitquest/internal/apperr"
	"github.com/2beens/fitquest/internal/auth"
	"github.com/2beens/fitquest/internal/calendar"
	"github.com/2beens/fitquest/internal/telemetry/tracing"
	"github.com/2beens/fitquest/pkg"

	"github.com/gorilla/mux"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=musclebalance_test

type balanceService interface {
	AllTime(ctx context.Context, userKey string) (*Balance, error)
	ByPeriod(ctx context.Context, userKey string, start, end time.Time) (*Balance, error)
	ForSession(ctx context.Context, userKey string, sessionID int) (*Record, error)
}

type Handler struct {
	service balanceService
}

func NewHandler(service balanceService) *Handler {
	return &Handler{
		service: service,
	}
}

// HandleGet serves the all-time balance, or the balance of a period when from/to are given.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.musclebalance.get")
	defer span.End()

	userKey, ok := auth.UserKeyFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	fromParam := r.URL.Query().Get("from")
	toParam := r.URL.Query().Get("to")

	var (
		balance *Balance
		err     error
	)
	if fromParam == "" && toParam == "" {
		balance, err = h.service.AllTime(ctx, userKey)
	} else {
		var from, to time.Time
		from, to, err = parsePeriod(fromParam, toParam)
		if err == nil {
			balance, err = h.service.ByPeriod(ctx, userKey, from, to)
		}
	}
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	pkg.WriteJSONOK(w, balance)
}

func (h *Handler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.musclebalance.session")
	defer span.End()

	userKey, ok := auth.UserKeyFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	sessionID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		pkg.WriteError(w, apperr.Validation("invalid session id"))
		return
	}

	rec, err := h.service.ForSession(ctx, userKey, sessionID)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	pkg.WriteJSONOK(w, rec)
}

func parsePeriod(fromParam, toParam string) (time.Time, time.Time, error) {
	if fromParam == "" || toParam == "" {
		return time.Time{}, time.Time{}, apperr.Validation("both from and to are required")
	}
	from, err := calendar.Parse(fromParam)
	if err != nil {
		return time.Time{}, time.Time{}, apperr.ValidationFrom(err)
	}
	to, err := calendar.Parse(toParam)
	if err != nil {
		return time.Time{}, time.Time{}, apperr.ValidationFrom(err)
	}
	return from, to, nil
}
