package auth

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/myflix/handler"
	"github.com/dmitrymomot/myflix/pkg/jwt"
	"github.com/dmitrymomot/myflix/pkg/logger"
)

// Middleware rejects requests without a valid bearer token with 401
// {"message":"Unauthorized"}. On success the user's profile is available via
// GetUserFromContext.
func (s *Service) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := jwt.BearerTokenExtractor(r)
		if err != nil {
			reason := ReasonMissing
			if errors.Is(err, jwt.ErrMalformedToken) {
				reason = ReasonMalformed
			}
			s.recorder.TokenRejected(reason)
			s.log.DebugContext(r.Context(), "request rejected", logger.Error(err))
			handler.WriteMessage(w, http.StatusUnauthorized, handler.ErrUnauthorized.Message)
			return
		}

		profile, err := s.Verify(r.Context(), token)
		switch {
		case IsTokenError(err):
			s.log.DebugContext(r.Context(), "request rejected", logger.Error(err))
			handler.WriteMessage(w, http.StatusUnauthorized, handler.ErrUnauthorized.Message)
			return
		case err != nil:
			handler.WriteMessage(w, http.StatusInternalServerError, handler.ErrInternalServerError.Message)
			return
		}

		next.ServeHTTP(w, r.WithContext(SetUserToContext(r.Context(), profile)))
	})
}

// RequireOwner allows the request only when the authenticated username equals
// the chi URL parameter param. It must run after Middleware.
func RequireOwner(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			profile, ok := UserFromContext(r.Context())
			if !ok {
				handler.WriteMessage(w, http.StatusUnauthorized, handler.ErrUnauthorized.Message)
				return
			}
			if err := CheckOwner(profile.Username, chi.URLParam(r, param)); err != nil {
				handler.WriteMessage(w, http.StatusForbidden, handler.ErrForbidden.Message)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CheckOwner returns ErrForbidden unless the verified username equals the addressed one.
// Usernames are compared case-sensitively.
func CheckOwner(verified, addressed string) error {
	if verified == "" || verified != addressed {
		return ErrForbidden
	}
	return nil
}
