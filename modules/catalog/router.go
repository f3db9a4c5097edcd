package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/myflix/handler"
	"github.com/dmitrymomot/myflix/pkg/binder"
	"github.com/dmitrymomot/myflix/svc/movie"
)

// RouterOptions configures the catalog module.
type RouterOptions struct {
	Movies movie.Store
	// Authenticate guards every catalog route, typically auth.Service.Middleware.
	Authenticate func(http.Handler) http.Handler
	// ErrorHandler defaults to handler.NewErrorHandler with ErrorMappings.
	ErrorHandler handler.ErrorHandler[handler.Context]
}

// ErrorMappings lists the catalog lookups that answer 404.
func ErrorMappings() []handler.ErrorMapping {
	return []handler.ErrorMapping{
		handler.Map(movie.ErrNotFound, http.StatusNotFound, "Movie not found"),
		handler.Map(movie.ErrGenreNotFound, http.StatusNotFound, "Genre not found"),
		handler.Map(movie.ErrDirectorNotFound, http.StatusNotFound, "Director not found"),
	}
}

// Routes registers the read-only catalog endpoints:
//
//	GET /movies
//	GET /movies/{title}
//	GET /genres/{name}
//	GET /directors/{name}
func Routes(opts RouterOptions) func(chi.Router) {
	if opts.ErrorHandler == nil {
		opts.ErrorHandler = handler.NewErrorHandler(nil, ErrorMappings()...)
	}
	h := &handlers{movies: opts.Movies, errorHandler: opts.ErrorHandler}

	return func(r chi.Router) {
		if opts.Authenticate != nil {
			r.Use(opts.Authenticate)
		}
		r.Get("/movies", h.list())
		r.Get("/movies/{title}", h.byTitle())
		r.Get("/genres/{name}", h.byGenre())
		r.Get("/directors/{name}", h.byDirector())
	}
}

// Router returns a standalone router serving Routes.
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()
	r.Group(Routes(opts))
	return r
}

type handlers struct {
	movies       movie.Store
	errorHandler handler.ErrorHandler[handler.Context]
}

type titlePath struct {
	Title string `path:"title"`
}

type namePath struct {
	Name string `path:"name"`
}

func (h *handlers) list() http.HandlerFunc {
	return handler.Wrap(handler.HandlerFunc[handler.Context, struct{}](
		func(ctx handler.Context, _ struct{}) handler.Response {
			movies, err := h.movies.List(ctx)
			if err != nil {
				return handler.Fail(err)
			}
			return handler.JSON(movies)
		}),
		handler.WithErrorHandler[handler.Context, struct{}](h.errorHandler),
	)
}

func (h *handlers) byTitle() http.HandlerFunc {
	return handler.Wrap(handler.HandlerFunc[handler.Context, titlePath](
		func(ctx handler.Context, req titlePath) handler.Response {
			m, err := h.movies.ByTitle(ctx, req.Title)
			if err != nil {
				return handler.Fail(err)
			}
			return handler.JSON(m)
		}),
		handler.WithBinders[handler.Context, titlePath](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, titlePath](h.errorHandler),
	)
}

func (h *handlers) byGenre() http.HandlerFunc {
	return handler.Wrap(handler.HandlerFunc[handler.Context, namePath](
		func(ctx handler.Context, req namePath) handler.Response {
			movies, err := h.movies.ByGenre(ctx, req.Name)
			if err != nil {
				return handler.Fail(err)
			}
			return handler.JSON(movies)
		}),
		handler.WithBinders[handler.Context, namePath](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, namePath](h.errorHandler),
	)
}

func (h *handlers) byDirector() http.HandlerFunc {
	return handler.Wrap(handler.HandlerFunc[handler.Context, namePath](
		func(ctx handler.Context, req namePath) handler.Response {
			movies, err := h.movies.ByDirector(ctx, req.Name)
			if err != nil {
				return handler.Fail(err)
			}
			return handler.JSON(movies)
		}),
		handler.WithBinders[handler.Context, namePath](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, namePath](h.errorHandler),
	)
}
