package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/myflix/handler"
	"github.com/dmitrymomot/myflix/svc/auth"
	"github.com/dmitrymomot/myflix/svc/movie"
	"github.com/dmitrymomot/myflix/svc/user"
)

// RouterOptions configures the account module.
type RouterOptions struct {
	Auth *auth.Service
	// Movies is used to check that a movie exists before it is added to favorites.
	Movies movie.Store
	// ErrorHandler defaults to handler.NewErrorHandler with ErrorMappings.
	ErrorHandler handler.ErrorHandler[handler.Context]
	// LoginMiddleware wraps POST /login only, e.g. a rate limiter.
	LoginMiddleware []func(http.Handler) http.Handler
}

// ErrorMappings lists the account errors with a dedicated response.
func ErrorMappings() []handler.ErrorMapping {
	return []handler.ErrorMapping{
		handler.Map(user.ErrNotFound, http.StatusNotFound, "User not found"),
		handler.Map(movie.ErrNotFound, http.StatusNotFound, "Movie not found"),
	}
}

// Routes registers the account endpoints on a chi router:
//
//	POST   /login
//	POST   /users
//	GET    /users/{username}
//	PUT    /users/{username}
//	DELETE /users/{username}
//	POST   /users/{username}/favorites
//	DELETE /users/{username}/favorites/{movieId}
//
// Routes under /users/{username} require a bearer token owned by that user.
//
//	r := chi.NewRouter()
//	r.Group(account.Routes(account.RouterOptions{Auth: authSvc, Movies: catalog}))
func Routes(opts RouterOptions) func(chi.Router) {
	if opts.ErrorHandler == nil {
		opts.ErrorHandler = handler.NewErrorHandler(nil, ErrorMappings()...)
	}
	h := &handlers{auth: opts.Auth, movies: opts.Movies, errorHandler: opts.ErrorHandler}

	return func(r chi.Router) {
		r.With(opts.LoginMiddleware...).Post("/login", h.login())
		r.Post("/users", h.register())

		r.Route("/users/{username}", func(r chi.Router) {
			r.Use(opts.Auth.Middleware, auth.RequireOwner("username"))

			r.Get("/", h.profile())
			r.Put("/", h.update())
			r.Delete("/", h.delete())
			r.Post("/favorites", h.addFavorite())
			r.Delete("/favorites/{movieId}", h.removeFavorite())
		})
	}
}

// Router returns a standalone router serving Routes.
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()
	r.Group(Routes(opts))
	return r
}
