package profiles

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/fitquest/internal/apperr"
	"github.com/2beens/fitquest/internal/auth"
	"github.com/2beens/fitquest/internal/telemetry/tracing"
	"github.com/2beens/fitquest/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=profiles_test

type profileService interface {
	Get(ctx context.Context, userKey string) (*UserProfile, error)
	Upsert(ctx context.Context, p UserProfile) (*UserProfile, error)
}

type Handler struct {
	service profileService
}

func NewHandler(service profileService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profiles.get")
	defer span.End()

	userKey, ok := auth.UserKeyFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	p, err := h.service.Get(ctx, userKey)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	pkg.WriteJSONOK(w, p)
}

func (h *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profiles.upsert")
	defer span.End()

	userKey, ok := auth.UserKeyFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var p UserProfile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		log.Errorf("upsert profile, unmarshal json params: %s", err)
		pkg.WriteError(w, apperr.Validation("invalid request body"))
		return
	}
	p.UserKey = userKey

	stored, err := h.service.Upsert(ctx, p)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	pkg.WriteJSONOK(w, stored)
}
