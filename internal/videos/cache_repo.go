package videos

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/fitquest/internal/telemetry/tracing"
	"github.com/2beens/fitquest/pkg"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrCacheMiss = errors.New("video cache miss")

type CacheEntry struct {
	QueryKey   string    `json:"queryKey"`
	Video      Video     `json:"video"`
	UseCount   int       `json:"useCount"`
	FetchedAt  time.Time `json:"fetchedAt"`
	LastUsedAt time.Time `json:"lastUsedAt"`
}

// CacheRepo is the exercise video cache shared by every service instance.
type CacheRepo struct {
	db *pgxpool.Pool
}

func NewCacheRepo(db *pgxpool.Pool) *CacheRepo {
	return &CacheRepo{
		db: db,
	}
}

// Hit returns the entry fetched after freshAfter and bumps its usage stats.
// Stale or missing entries yield ErrCacheMiss.
func (r *CacheRepo) Hit(ctx context.Context, queryKey string, freshAfter time.Time) (_ *CacheEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.videos.cache.hit")
	defer func() {
		if errors.Is(err, ErrCacheMiss) {
			span.SetAttributes(attribute.Bool("cache.miss", true))
			span.End()
			return
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entry := &CacheEntry{QueryKey: queryKey}
	err = r.db.QueryRow(ctx, `
		UPDATE exercise_video_cache
		SET use_count = use_count + 1, last_used_at = NOW()
		WHERE query_key = $1 AND fetched_at > $2
		RETURNING video_id, title, use_count, fetched_at, last_used_at;
	`, queryKey, freshAfter).Scan(
		&entry.Video.ID, &entry.Video.Title, &entry.UseCount, &entry.FetchedAt, &entry.LastUsedAt,
	)
	if err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}
	return entry, nil
}

func (r *CacheRepo) Store(ctx context.Context, queryKey string, video Video) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.videos.cache.store")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx, `
		INSERT INTO exercise_video_cache (query_key, video_id, title)
		VALUES ($1, $2, $3)
		ON CONFLICT (query_key) DO UPDATE SET
			video_id = EXCLUDED.video_id,
			title = EXCLUDED.title,
			use_count = exercise_video_cache.use_count + 1,
			fetched_at = NOW(),
			last_used_at = NOW();
	`, queryKey, video.ID, video.Title)
	return err
}

// Prune evicts entries not used since cutoff.
func (r *CacheRepo) Prune(ctx context.Context, cutoff time.Time) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.videos.cache.prune")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM exercise_video_cache WHERE last_used_at < $1;`, cutoff)
	if err != nil {
		return 0, err
	}
	span.SetAttributes(attribute.Int64("pruned", tag.RowsAffected()))
	return tag.RowsAffected(), nil
}

func (r *CacheRepo) Top(ctx context.Context, limit int) (_ []CacheEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.videos.cache.top")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT query_key, video_id, title, use_count, fetched_at, last_used_at
		FROM exercise_video_cache
		ORDER BY use_count DESC, query_key
		LIMIT $1;
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]CacheEntry, 0, limit)
	for rows.Next() {
		var e CacheEntry
		if err := rows.Scan(&e.QueryKey, &e.Video.ID, &e.Video.Title, &e.UseCount, &e.FetchedAt, &e.LastUsedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
