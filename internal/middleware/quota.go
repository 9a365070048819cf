package middleware

import (
	"context"
	"net/http"

	"github.com/2beens/fitquest/internal/auth"
	"github.com/2beens/fitquest/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=quota_mocks_test.go -package=middleware_test

type quotaConsumer interface {
	Consume(ctx context.Context, userKey string) error
}

// DailyQuota charges one unit of the caller's daily allowance before the request
// reaches an AI backed handler.
func DailyQuota(quota quotaConsumer) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userKey, ok := auth.UserKeyFrom(r.Context())
			if !ok {
				http.Error(w, "no can do", http.StatusUnauthorized)
				return
			}
			if err := quota.Consume(r.Context(), userKey); err != nil {
				pkg.WriteError(w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
