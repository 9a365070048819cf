package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

var ErrMissingToken = errors.New("missing bearer token")

type ctxKey struct{}

// WithUserKey stores the caller's opaque user key in ctx.
func WithUserKey(ctx context.Context, userKey string) context.Context {
	return context.WithValue(ctx, ctxKey{}, userKey)
}

func UserKeyFrom(ctx context.Context) (string, bool) {
	userKey, ok := ctx.Value(ctxKey{}).(string)
	return userKey, ok && userKey != ""
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
// The identity provider already verified it, so the token itself is the user key.
func BearerToken(r *http.Request) (string, error) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return "", ErrMissingToken
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", ErrMissingToken
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}
