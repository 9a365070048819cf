package videos

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/fitquest/internal/apperr"
	"github.com/2beens/fitquest/internal/telemetry/tracing"
	"github.com/2beens/fitquest/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=videos_test

type videoResolver interface {
	Resolve(ctx context.Context, query string) (Video, error)
	Prune(ctx context.Context) (int64, error)
	Top(ctx context.Context, limit int) ([]CacheEntry, error)
}

type Handler struct {
	resolver videoResolver
}

func NewHandler(resolver videoResolver) *Handler {
	return &Handler{
		resolver: resolver,
	}
}

type SearchResponse struct {
	Video
	URL string `json:"url"`
}

func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.videos.search")
	defer span.End()

	query := r.URL.Query().Get("q")
	if NormalizeQuery(query) == "" {
		pkg.WriteError(w, apperr.Validation("query is required"))
		return
	}

	video, err := h.resolver.Resolve(ctx, query)
	if err != nil {
		if errors.Is(err, ErrVideoNotFound) {
			pkg.WriteError(w, apperr.NotFound(nil, "no video found for %q", query))
			return
		}
		log.Errorf("resolve video [%s]: %s", query, err)
		pkg.WriteError(w, err)
		return
	}

	pkg.WriteJSONOK(w, SearchResponse{Video: video, URL: video.URL()})
}

func (h *Handler) HandlePrune(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.videos.prune")
	defer span.End()

	pruned, err := h.resolver.Prune(ctx)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	pkg.WriteJSONOK(w, map[string]int64{"pruned": pruned})
}

func (h *Handler) HandleTop(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.videos.top")
	defer span.End()

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	entries, err := h.resolver.Top(ctx, limit)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	pkg.WriteJSONOK(w, entries)
}
