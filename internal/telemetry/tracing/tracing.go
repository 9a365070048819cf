package tracing

import (
	"fmt"

	"github.com/honeycombio/honeycomb-opentelemetry-go"
	"github.com/honeycombio/otel-config-go/otelconfig"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var GlobalTracer = otel.Tracer("fitquest-backend")

// EndSpanWithErrCheck records err on the span (if any) and ends it.
func EndSpanWithErrCheck(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

type HoneycombSetupParams struct {
	Enabled     bool
	ServiceName string
	APIKey      string
	Dataset     string
}

// HoneycombSetup configures the global otel provider to export to honeycomb.
// The returned shutdown func must be called on exit; it is a no-op when tracing is disabled.
func HoneycombSetup(params HoneycombSetupParams) (func(), error) {
	if !params.Enabled {
		log.Debugln("honeycomb tracing disabled")
		return func() {}, nil
	}
	if params.APIKey == "" {
		return nil, fmt.Errorf("honeycomb api key not set")
	}

	// the distro reads its settings from env vars
	otelShutdown, err := otelconfig.ConfigureOpenTelemetry(
		otelconfig.WithServiceName(params.ServiceName),
		otelconfig.WithHeaders(map[string]string{
			"x-honeycomb-team":    params.APIKey,
			"x-honeycomb-dataset": params.Dataset,
		}),
		otelconfig.WithSpanProcessor(honeycomb.NewBaggageSpanProcessor()),
	)
	if err != nil {
		return nil, fmt.Errorf("configure open telemetry: %w", err)
	}

	GlobalTracer = otel.Tracer(params.ServiceName)
	log.Infof("honeycomb tracing enabled for service %s", params.ServiceName)

	return otelShutdown, nil
}
