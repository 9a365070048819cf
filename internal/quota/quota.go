// Package quota keeps a per user, per UTC day counter of AI generation requests in Redis,
// so every service instance sees the same budget.
package quota

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/fitquest/internal/apperr"
	"github.com/2beens/fitquest/internal/calendar"
	"github.com/2beens/fitquest/internal/telemetry/metrics"
	"github.com/2beens/fitquest/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const keyPrefix = "quota::"

type Usage struct {
	Used      int       `json:"used"`
	Limit     int       `json:"limit"`
	Remaining int       `json:"remaining"`
	ResetsAt  time.Time `json:"resetsAt"`
}

type DailyQuota struct {
	redisClient    *redis.Client
	limit          int
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewDailyQuota(redisClient *redis.Client, limit int, metricsManager *metrics.Manager) *DailyQuota {
	return &DailyQuota{
		redisClient:    redisClient,
		limit:          limit,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

// Key is the counter key of a user for the UTC day containing now.
func Key(userKey string, now time.Time) string {
	return keyPrefix + userKey + "::" + now.UTC().Format("2006-01-02")
}

// Consume takes one unit of the user's daily budget. The counter expires at the next UTC midnight.
func (q *DailyQuota) Consume(ctx context.Context, userKey string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "quota.consume")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	now := q.now()
	key := Key(userKey, now)

	count, err := q.redisClient.Incr(ctx, key).Result()
	if err != nil {
		return apperr.Upstream(err, "quota store unavailable")
	}
	span.SetAttributes(attribute.Int64("quota.count", count))

	if err := q.redisClient.ExpireAt(ctx, key, calendar.NextUTCMidnight(now)).Err(); err != nil {
		// the key is date scoped, a missing ttl only costs memory
		log.Errorf("set quota expiry [%s]: %s", key, err)
	}

	if count > int64(q.limit) {
		q.metricsManager.CounterQuotaExceeded.Inc()
		return apperr.QuotaExceeded("daily limit of %d generation requests reached", q.limit)
	}
	return nil
}

func (q *DailyQuota) Usage(ctx context.Context, userKey string) (Usage, error) {
	now := q.now()
	usage := Usage{
		Limit:    q.limit,
		ResetsAt: calendar.NextUTCMidnight(now),
	}

	val, err := q.redisClient.Get(ctx, Key(userKey, now)).Result()
	switch {
	case errors.Is(err, redis.Nil):
	case err != nil:
		return Usage{}, apperr.Upstream(err, "quota store unavailable")
	default:
		used, err := strconv.Atoi(val)
		if err != nil {
			return Usage{}, fmt.Errorf("parse quota counter %q: %w", val, err)
		}
		usage.Used = used
	}

	usage.Remaining = max(q.limit-usage.Used, 0)
	return usage, nil
}
