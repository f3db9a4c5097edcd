package myflix

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/myflix/handler"
	"github.com/dmitrymomot/myflix/modules/account"
	"github.com/dmitrymomot/myflix/modules/catalog"
	"github.com/dmitrymomot/myflix/pkg/clientip"
	"github.com/dmitrymomot/myflix/pkg/httpserver"
	"github.com/dmitrymomot/myflix/pkg/logger"
	"github.com/dmitrymomot/myflix/pkg/metrics"
	"github.com/dmitrymomot/myflix/pkg/ratelimiter"
	"github.com/dmitrymomot/myflix/pkg/requestid"
	"github.com/dmitrymomot/myflix/svc/auth"
	"github.com/dmitrymomot/myflix/svc/movie"
)

// WelcomeMessage is served on GET /.
const WelcomeMessage = "Welcome to the Movie API!"

const readinessTimeout = 5 * time.Second

// RateLimitConfig holds the login throttling settings.
type RateLimitConfig struct {
	Login ratelimiter.Config `envPrefix:"LOGIN_RATE_LIMIT_"`
}

// Deps are the collaborators NewRouter wires together.
// Auth and Movies are required; the rest are optional.
type Deps struct {
	Auth   *auth.Service
	Movies movie.Store
	Logger *slog.Logger
	// Metrics enables request metrics and the /metrics endpoint.
	Metrics *metrics.Metrics
	// LoginLimiter throttles POST /login per client ip.
	LoginLimiter *ratelimiter.Bucket
	// ReadinessChecks back /health/ready.
	ReadinessChecks []httpserver.Check
}

// ErrorMappings returns the error responses shared by all modules.
func ErrorMappings() []handler.ErrorMapping {
	return append(account.ErrorMappings(), catalog.ErrorMappings()...)
}

// NewRouter builds the HTTP handler of the API.
func NewRouter(deps Deps) http.Handler {
	log := deps.Logger
	if log == nil {
		log = logger.Discard()
	}
	errorHandler := handler.NewErrorHandler(log, ErrorMappings()...)

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		requestid.Middleware,
		clientip.Middleware,
		logger.Middleware(log),
	)
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware)
		r.Handle("/metrics", deps.Metrics.Handler())
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		handler.WriteMessage(w, http.StatusNotFound, handler.ErrNotFound.Message)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		handler.WriteMessage(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
	})

	r.Get("/", handler.Wrap(handler.HandlerFunc[handler.Context, struct{}](
		func(handler.Context, struct{}) handler.Response {
			return handler.Text(http.StatusOK, WelcomeMessage)
		}),
	))
	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(log, readinessTimeout, deps.ReadinessChecks...))

	r.Group(account.Routes(account.RouterOptions{
		Auth:            deps.Auth,
		Movies:          deps.Movies,
		ErrorHandler:    errorHandler,
		LoginMiddleware: loginMiddleware(deps, log),
	}))
	r.Group(catalog.Routes(catalog.RouterOptions{
		Movies:       deps.Movies,
		Authenticate: deps.Auth.Middleware,
		ErrorHandler: errorHandler,
	}))

	return r
}

func loginMiddleware(deps Deps, log *slog.Logger) []func(http.Handler) http.Handler {
	if deps.LoginLimiter == nil {
		return nil
	}

	limit := ratelimiter.Middleware(deps.LoginLimiter, ratelimiter.ByIP(),
		ratelimiter.WithLimitedHandler(func(w http.ResponseWriter, r *http.Request, _ *ratelimiter.Result) {
			if deps.Metrics != nil {
				deps.Metrics.RateLimited(r.URL.Path)
			}
			log.WarnContext(r.Context(), "login throttled",
				logger.Event("auth.login_throttled"),
				slog.String("ip", clientip.FromRequest(r)),
			)
			handler.WriteMessage(w, http.StatusTooManyRequests, handler.ErrTooManyRequests.Message)
		}),
		ratelimiter.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			log.ErrorContext(r.Context(), "rate limiter unavailable",
				logger.Component("ratelimiter"),
				logger.Error(err),
			)
			handler.WriteMessage(w, http.StatusInternalServerError, handler.ErrInternalServerError.Message)
		}),
	)
	return []func(http.Handler) http.Handler{limit}
}
