package videos

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fitquest/internal/apperr"
	"github.com/2beens/fitquest/internal/telemetry/metrics"
	"github.com/2beens/fitquest/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=resolver_mocks_test.go -package=videos_test

type videoCache interface {
	Hit(ctx context.Context, queryKey string, freshAfter time.Time) (*CacheEntry, error)
	Store(ctx context.Context, queryKey string, video Video) error
	Prune(ctx context.Context, cutoff time.Time) (int64, error)
	Top(ctx context.Context, limit int) ([]CacheEntry, error)
}

// NormalizeQuery lowercases and collapses whitespace, so equivalent queries share a cache entry.
func NormalizeQuery(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), " ")
}

// Resolver memoizes video searches in the shared cache table.
type Resolver struct {
	cache          videoCache
	searcher       Searcher
	ttl            time.Duration
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewResolver(cache videoCache, searcher Searcher, ttl time.Duration, metricsManager *metrics.Manager) *Resolver {
	return &Resolver{
		cache:          cache,
		searcher:       searcher,
		ttl:            ttl,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

func (r *Resolver) Resolve(ctx context.Context, query string) (_ Video, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "videos.resolve")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	key := NormalizeQuery(query)
	if key == "" {
		return Video{}, ErrVideoNotFound
	}
	span.SetAttributes(attribute.String("query.key", key))

	entry, err := r.cache.Hit(ctx, key, r.now().Add(-r.ttl))
	switch {
	case err == nil:
		r.metricsManager.CounterVideoCache.WithLabelValues("hit").Inc()
		return entry.Video, nil
	case !errors.Is(err, ErrCacheMiss):
		// a broken cache must not block the lookup
		log.Errorf("video cache lookup [%s]: %s", key, err)
	}
	r.metricsManager.CounterVideoCache.WithLabelValues("miss").Inc()

	video, err := r.searcher.Search(ctx, key)
	if err != nil {
		if errors.Is(err, ErrVideoNotFound) {
			return Video{}, err
		}
		return Video{}, apperr.Upstream(err, "video search unavailable")
	}

	if err := r.cache.Store(ctx, key, video); err != nil {
		log.Errorf("store video cache entry [%s]: %s", key, err)
	}
	return video, nil
}

// Prune evicts entries not used within the TTL.
func (r *Resolver) Prune(ctx context.Context) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "videos.prune")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	pruned, err := r.cache.Prune(ctx, r.now().Add(-r.ttl))
	if err != nil {
		return 0, fmt.Errorf("prune video cache: %w", err)
	}
	log.Infof("pruned %d video cache entries", pruned)
	return pruned, nil
}

func (r *Resolver) Top(ctx context.Context, limit int) ([]CacheEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	entries, err := r.cache.Top(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("top video cache entries: %w", err)
	}
	return entries, nil
}
