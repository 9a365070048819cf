package misc

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/fitquest/internal/telemetry/tracing"
	"github.com/2beens/fitquest/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const healthCheckTimeout = 2 * time.Second

// Dependency is a backing service the API cannot work without.
type Dependency struct {
	Name string
	Ping func(ctx context.Context) error
}

type Handler struct {
	versionInfo  string
	dependencies []Dependency
}

func NewHandler(versionInfo string, dependencies ...Dependency) *Handler {
	return &Handler{
		versionInfo:  versionInfo,
		dependencies: dependencies,
	}
}

func (handler *Handler) HandleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteResponse(w, pkg.ContentType.Text, "I'm OK, thanks ;)", http.StatusOK)
}

func (handler *Handler) HandleVersion(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteResponse(w, pkg.ContentType.Text, handler.versionInfo, http.StatusOK)
}

// HandleHealth pings every dependency; any failure makes the instance unhealthy.
func (handler *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.health")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	status := make(map[string]string, len(handler.dependencies))
	healthy := true
	for _, dep := range handler.dependencies {
		if err := dep.Ping(ctx); err != nil {
			log.Errorf("health check, %s: %s", dep.Name, err)
			status[dep.Name] = "down"
			healthy = false
			continue
		}
		status[dep.Name] = "ok"
	}

	span.SetAttributes(attribute.Bool("healthy", healthy))
	if !healthy {
		span.SetStatus(codes.Error, "unhealthy")
		pkg.WriteJSON(w, http.StatusServiceUnavailable, status)
		return
	}
	pkg.WriteJSONOK(w, status)
}
