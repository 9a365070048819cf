package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/fitquest/internal/apperr"
	"github.com/2beens/fitquest/internal/telemetry/metrics"
	"github.com/2beens/fitquest/internal/telemetry/tracing"

	"github.com/cenkalti/backoff/v4"
	openai "github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
)

var ErrEmptyCompletion = errors.New("empty completion")

type ClientParams struct {
	// BaseURL of an OpenAI compatible API, e.g. https://api.openai.com/v1
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
	MaxRetries  int
	// InitialRetryInterval defaults to the backoff package default.
	InitialRetryInterval time.Duration
	MetricsManager       *metrics.Manager
}

// Client talks to a chat completions endpoint.
type Client struct {
	api                  *openai.Client
	model                string
	temperature          float32
	maxTokens            int
	timeout              time.Duration
	maxRetries           int
	initialRetryInterval time.Duration
	metricsManager       *metrics.Manager
}

func NewClient(params ClientParams) *Client {
	if params.Timeout <= 0 {
		params.Timeout = 90 * time.Second
	}

	apiConfig := openai.DefaultConfig(params.APIKey)
	if params.BaseURL != "" {
		apiConfig.BaseURL = strings.TrimSuffix(params.BaseURL, "/")
	}
	apiConfig.HTTPClient = &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	return &Client{
		api:                  openai.NewClientWithConfig(apiConfig),
		model:                params.Model,
		temperature:          float32(params.Temperature),
		maxTokens:            params.MaxTokens,
		timeout:              params.Timeout,
		maxRetries:           params.MaxRetries,
		initialRetryInterval: params.InitialRetryInterval,
		metricsManager:       params.MetricsManager,
	}
}

// StatusError is a non 2xx answer from the completions endpoint.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("llm api status %d: %s", e.StatusCode, e.Message)
}

func retryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// statusError unwraps the error types of the API client into a StatusError.
// Transport failures have no status and are returned as they are.
func statusError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode > 0 {
		return &StatusError{StatusCode: apiErr.HTTPStatusCode, Message: truncate(apiErr.Message, 256)}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode > 0 {
		return &StatusError{StatusCode: reqErr.HTTPStatusCode, Message: truncate(string(reqErr.Body), 256)}
	}
	return err
}

// Complete sends one system and one user message and returns the assistant text.
func (c *Client) Complete(ctx context.Context, system, user string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "llm.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("llm.model", c.model),
		attribute.Int("llm.prompt.length", len(system)+len(user)),
	)

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}

	var content string
	attempt := func() error {
		text, err := c.send(ctx, req)
		if err != nil {
			var statusErr *StatusError
			if errors.As(err, &statusErr) && !retryableStatus(statusErr.StatusCode) {
				return backoff.Permanent(err)
			}
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}
		content = text
		return nil
	}

	expBackoff := backoff.NewExponentialBackOff()
	if c.initialRetryInterval > 0 {
		expBackoff.InitialInterval = c.initialRetryInterval
	}
	b := backoff.WithContext(backoff.WithMaxRetries(expBackoff, uint64(c.maxRetries)), ctx)

	err = backoff.RetryNotify(attempt, b, func(err error, next time.Duration) {
		c.metricsManager.CounterUpstreamRetries.WithLabelValues("llm").Inc()
		log.Warnf("llm completion failed, retrying in %s: %s", next, err)
	})
	if err != nil {
		if errors.Is(err, ErrEmptyCompletion) {
			return "", apperr.GenerationParse(err, "text generation returned nothing")
		}
		return "", apperr.Upstream(err, "text generation unavailable")
	}

	span.SetAttributes(attribute.Int("llm.completion.length", len(content)))
	return content, nil
}

func (c *Client) send(ctx context.Context, req openai.ChatCompletionRequest) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(callCtx, req)
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", statusError(err))
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", backoff.Permanent(ErrEmptyCompletion)
	}
	return resp.Choices[0].Message.Content, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
