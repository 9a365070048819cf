package profiles

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitquest/internal/apperr"
	"github.com/2beens/fitquest/internal/calendar"
	"github.com/2beens/fitquest/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=profiles_test

type profileRepo interface {
	Get(ctx context.Context, userKey string) (*UserProfile, error)
	Upsert(ctx context.Context, p UserProfile) (*UserProfile, error)
}

type ServiceParams struct {
	CacheSizeBytes  int
	CacheTTLSeconds int
	DefaultLocation *time.Location
}

// Service reads profiles through a small in-process cache.
type Service struct {
	repo            profileRepo
	cache           *freecache.Cache
	cacheTTLSeconds int
	defaultLocation *time.Location
}

func NewService(repo profileRepo, params ServiceParams) *Service {
	if params.DefaultLocation == nil {
		params.DefaultLocation = time.UTC
	}
	return &Service{
		repo:            repo,
		cache:           freecache.NewCache(params.CacheSizeBytes),
		cacheTTLSeconds: params.CacheTTLSeconds,
		defaultLocation: params.DefaultLocation,
	}
}

func cacheKey(userKey string) []byte {
	return []byte("profile::" + userKey)
}

func (s *Service) Get(ctx context.Context, userKey string) (_ *UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profiles.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if cached, err := s.cache.Get(cacheKey(userKey)); err == nil {
		p := &UserProfile{}
		if err := json.Unmarshal(cached, p); err == nil {
			p.UserKey = userKey
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return p, nil
		}
		log.Errorf("unmarshal cached profile of %s: %s", userKey, err)
	}

	p, err := s.repo.Get(ctx, userKey)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return nil, apperr.NotFound(err, "profile of user %s not found", userKey)
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	s.setCache(p)
	return p, nil
}

func (s *Service) Upsert(ctx context.Context, p UserProfile) (_ *UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profiles.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	p.normalize()
	if err := p.Validate(); err != nil {
		return nil, apperr.ValidationFrom(err)
	}

	stored, err := s.repo.Upsert(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	s.setCache(stored)
	return stored, nil
}

// Location is the user's configured time zone, or the default one when the
// profile is missing or cannot be read.
func (s *Service) Location(ctx context.Context, userKey string) *time.Location {
	p, err := s.Get(ctx, userKey)
	if err != nil {
		if !apperr.Is(err, apperr.KindNotFound) {
			log.Errorf("resolve location of %s, using default: %s", userKey, err)
		}
		return s.defaultLocation
	}
	return calendar.Location(p.Timezone, s.defaultLocation)
}

func (s *Service) setCache(p *UserProfile) {
	pBytes, err := json.Marshal(p)
	if err != nil {
		log.Errorf("marshal profile for cache: %s", err)
		return
	}
	if err := s.cache.Set(cacheKey(p.UserKey), pBytes, s.cacheTTLSeconds); err != nil {
		log.Errorf("set profile cache for %s: %s", p.UserKey, err)
	}
}
