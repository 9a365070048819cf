package quests

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=quests_test

type questService interface {
	GetOrCreate(ctx context.Context, userKey string, date time.Time) (*DailyQuest, error)
	RecordAction(ctx context.Context, userKey string, kind ActionKind, date time.Time) (*DailyQuest, error)
	MarkDayComplete(ctx context.Context, userKey string, date time.Time) (*DailyQuest, error)
	History(ctx context.Context, userKey string, from, to time.Time) ([]DailyQuest, error)
}

type zoneResolver interface {
	Location(ctx context.Context, userKey string) *time.Location
}

type Handler struct {
	service questService
	zones   zoneResolver
	now     func() time.Time
}

func NewHandler(service questService, zones zoneResolver, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{
		service: service,
		zones:   zones,
		now:     now,
	}
}

// QuestResponse is DailyQuest with its date rendered as YYYY-MM-DD.
type QuestResponse struct {
	Date string `json:"date"`
	DailyQuest
}

func newQuestResponse(q *DailyQuest) QuestResponse {
	return QuestResponse{
		Date:       calendar.Format(q.Date),
		DailyQuest: *q,
	}
}

type ActionRequest struct {
	Kind string `json:"kind"`
	Date string `json:"date,omitempty"`
}

func (h *Handler) today(ctx context.Context, userKey string) time.Time {
	return calendar.Today(h.now(), h.zones.Location(ctx, userKey))
}

// dateOrToday parses an optional YYYY-MM-DD value, defaulting to the user's local today.
func (h *Handler) dateOrToday(ctx context.Context, userKey, value string) (time.Time, error) {
	if value == "" {
		return h.today(ctx, userKey), nil
	}
	d, err := calendar.Parse(value)
	if err != nil {
		return time.Time{}, apperr.ValidationFrom(err)
	}
	return d, nil
}

func (h *Handler) HandleGetToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.quests.today")
	defer span.End()

	userKey, ok := auth.UserKeyFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	q, err := h.service.GetOrCreate(ctx, userKey, h.today(ctx, userKey))
	if err != nil {
		log.Errorf("get today quest: %s", err)
		pkg.WriteError(w, err)
		return
	}

	pkg.WriteJSONOK(w, newQuestResponse(q))
}

func (h *Handler) HandleRecordAction(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.quests.action")
	defer span.End()

	userKey, ok := auth.UserKeyFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("record quest action, unmarshal json params: %s", err)
		pkg.WriteError(w, apperr.Validation("invalid request body"))
		return
	}

	kind, err := ParseActionKind(req.Kind)
	if err != nil {
		pkg.WriteError(w, apperr.ValidationFrom(err))
		return
	}
	date, err := h.dateOrToday(ctx, userKey, req.Date)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	q, err := h.service.RecordAction(ctx, userKey, kind, date)
	if err != nil {
		log.Errorf("record quest action: %s", err)
		pkg.WriteError(w, err)
		return
	}

	pkg.WriteJSONOK(w, newQuestResponse(q))
}

func (h *Handler) HandleMarkDayComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.quests.complete")
	defer span.End()

	userKey, ok := auth.UserKeyFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	date, err := h.dateOrToday(ctx, userKey, r.URL.Query().Get("date"))
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	q, err := h.service.MarkDayComplete(ctx, userKey, date)
	if err != nil {
		log.Errorf("mark quest day complete: %s", err)
		pkg.WriteError(w, err)
		return
	}

	pkg.WriteJSONOK(w, newQuestResponse(q))
}

// HandleHistory lists the quests in [from, to]; the last 30 days by default.
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.quests.history")
	defer span.End()

	userKey, ok := auth.UserKeyFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	to, err := h.dateOrToday(ctx, userKey, r.URL.Query().Get("to"))
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	from := calendar.AddDays(to, -29)
	if fromParam := r.URL.Query().Get("from"); fromParam != "" {
		if from, err = calendar.Parse(fromParam); err != nil {
			pkg.WriteError(w, apperr.ValidationFrom(err))
			return
		}
	}

	quests, err := h.service.History(ctx, userKey, from, to)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	resp := make([]QuestResponse, 0, len(quests))
	for i := range quests {
		resp = append(resp, newQuestResponse(&quests[i]))
	}
	pkg.WriteJSONOK(w, resp)
}
