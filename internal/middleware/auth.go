package middleware

import (
	"net/http"
	"strings"

	"github.com/2beens/fitquest/internal/auth"
	"github.com/2beens/fitquest/internal/telemetry/tracing"
	"github.com/2beens/fitquest/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

type adminChecker interface {
	IsAdmin(token string) bool
}

const adminPathPrefix = "/admin/"

type AuthMiddlewareHandler struct {
	adminChecker adminChecker
	allowedPaths map[string]bool
}

func NewAuthMiddlewareHandler(adminChecker adminChecker) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		adminChecker: adminChecker,
		allowedPaths: map[string]bool{
			"/":                  true,
			"/health":            true,
			"/version":           true,
			"/programs/schedule": true,
		},
	}
}

// AuthCheck puts the bearer token, used as the opaque user key, into the request
// context. Admin routes take the admin token instead.
func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.allowedPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			if strings.HasPrefix(r.URL.Path, adminPathPrefix) {
				if !h.adminChecker.IsAdmin(r.Header.Get(auth.AdminTokenHeader)) {
					log.Warnf("[admin auth] unauthorized %s => %s", pkg.ClientIP(r), r.URL.Path)
					http.Error(w, "no can do", http.StatusUnauthorized)
					span.SetStatus(codes.Error, "not-admin")
					return
				}
				span.SetStatus(codes.Ok, "admin")
				next.ServeHTTP(w, r)
				return
			}

			userKey, err := auth.BearerToken(r)
			if err != nil {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.WithUserKey(ctx, userKey)))
		})
	}
}
