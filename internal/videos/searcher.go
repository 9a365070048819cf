package videos

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/fitquest/internal/telemetry/metrics"
	"github.com/2beens/fitquest/internal/telemetry/tracing"

	"github.com/cenkalti/backoff/v4"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

var ErrVideoNotFound = errors.New("video not found")

type Video struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func (v Video) URL() string {
	if v.ID == "" {
		return ""
	}
	return "https://www.youtube.com/watch?v=" + v.ID
}

//go:generate mockgen -source=$GOFILE -destination=searcher_mocks_test.go -package=videos_test

// Searcher finds the single best matching video for a query.
type Searcher interface {
	Search(ctx context.Context, query string) (Video, error)
}

type YouTubeSearcherParams struct {
	APIKey     string
	MaxRetries int
	Timeout    time.Duration
	// Endpoint overrides the API base path, used in tests.
	Endpoint       string
	MetricsManager *metrics.Manager
}

type YouTubeSearcher struct {
	service        *youtube.Service
	apiKey         string
	maxRetries     int
	timeout        time.Duration
	metricsManager *metrics.Manager
}

func NewYouTubeSearcher(ctx context.Context, params YouTubeSearcherParams) (*YouTubeSearcher, error) {
	httpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if params.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(params.Endpoint))
	}

	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("new youtube service: %w", err)
	}

	if params.Timeout <= 0 {
		params.Timeout = 10 * time.Second
	}

	return &YouTubeSearcher{
		service:        service,
		apiKey:         params.APIKey,
		maxRetries:     params.MaxRetries,
		timeout:        params.Timeout,
		metricsManager: params.MetricsManager,
	}, nil
}

func (s *YouTubeSearcher) Search(ctx context.Context, query string) (_ Video, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "videos.youtube.search")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("query", query))

	var video Video
	search := func() error {
		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		resp, err := s.service.Search.
			List([]string{"id", "snippet"}).
			Q(query).
			Type("video").
			VideoEmbeddable("true").
			SafeSearch("strict").
			MaxResults(1).
			Context(callCtx).
			Do(googleapi.QueryParameter("key", s.apiKey))
		if err != nil {
			if isTransient(err) {
				return err
			}
			return backoff.Permanent(err)
		}

		for _, item := range resp.Items {
			if item.Id == nil || item.Id.VideoId == "" {
				continue
			}
			video = Video{ID: item.Id.VideoId}
			if item.Snippet != nil {
				video.Title = item.Snippet.Title
			}
			return nil
		}
		return backoff.Permanent(ErrVideoNotFound)
	}

	b := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(s.maxRetries)),
		ctx,
	)
	err = backoff.RetryNotify(search, b, func(err error, next time.Duration) {
		s.metricsManager.CounterUpstreamRetries.WithLabelValues("youtube").Inc()
		log.Warnf("youtube search [%s] failed, retrying in %s: %s", query, next, err)
	})
	if err != nil {
		return Video{}, err
	}
	return video, nil
}

func isTransient(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
		return false
	}
	// network level errors and timeouts
	return true
}
