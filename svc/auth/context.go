package auth

import (
	"context"

	"github.com/dmitrymomot/myflix/handler"
	"github.com/dmitrymomot/myflix/svc/user"
)

var userContextKey = handler.NewContextKey("auth.user")

// SetUserToContext stores the authenticated user's profile for downstream handlers.
func SetUserToContext(ctx context.Context, profile *user.Profile) context.Context {
	return context.WithValue(ctx, userContextKey, profile)
}

// GetUserFromContext returns the authenticated profile, or nil outside Middleware.
func GetUserFromContext(ctx context.Context) *user.Profile {
	return handler.ContextValue[*user.Profile](ctx, userContextKey)
}

// UserFromContext is GetUserFromContext that also reports whether a non-nil
// profile was stored.
func UserFromContext(ctx context.Context) (*user.Profile, bool) {
	profile, ok := handler.ContextValueOK[*user.Profile](ctx, userContextKey)
	return profile, ok && profile != nil
}
