package account

import (
	"net/http"

	"github.com/dmitrymomot/myflix/handler"
	"github.com/dmitrymomot/myflix/svc/auth"
	"github.com/dmitrymomot/myflix/svc/user"
)

// accountContext carries the profile verified by auth.Middleware.
type accountContext struct {
	handler.Context
	Profile *user.Profile
}

func newAccountContext(w http.ResponseWriter, r *http.Request) *accountContext {
	profile, _ := auth.UserFromContext(r.Context())
	return &accountContext{Context: handler.NewContext(w, r), Profile: profile}
}

// requireProfile answers 401 when no verified profile reached the handler.
func requireProfile[R any](next handler.HandlerFunc[*accountContext, R]) handler.HandlerFunc[*accountContext, R] {
	return func(ctx *accountContext, req R) handler.Response {
		if ctx.Profile == nil {
			return handler.Fail(handler.ErrUnauthorized)
		}
		return next(ctx, req)
	}
}

// ownerOnly wraps a handler for the /users/{username} routes.
func ownerOnly[R any](h *handlers, fn func(*accountContext, R) handler.Response, binders ...handler.Bind) http.HandlerFunc {
	return handler.Wrap(handler.HandlerFunc[*accountContext, R](fn),
		handler.WithContextFactory[*accountContext, R](newAccountContext),
		handler.WithDecorators[*accountContext, R](requireProfile[R]),
		handler.WithBinders[*accountContext, R](binders...),
		handler.WithErrorHandler[*accountContext, R](func(ctx *accountContext, err error) {
			h.errorHandler(ctx, err)
		}),
	)
}
