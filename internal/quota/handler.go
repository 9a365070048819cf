package quota

import (
	"context"
	"net/http"

	"github.com/2beens/fitquest/internal/auth"
	"github.com/2beens/fitquest/internal/telemetry/tracing"
	"github.com/2beens/fitquest/pkg"
)

type usageReader interface {
	Usage(ctx context.Context, userKey string) (Usage, error)
}

type Handler struct {
	quota usageReader
}

func NewHandler(quota usageReader) *Handler {
	return &Handler{
		quota: quota,
	}
}

func (h *Handler) HandleGetUsage(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.quota.usage")
	defer span.End()

	userKey, ok := auth.UserKeyFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	usage, err := h.quota.Usage(ctx, userKey)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteJSONOK(w, usage)
}
