package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/myflix/pkg/metrics"
)

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/movies/{title}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	for _, path := range []string{"/movies/Alien", "/movies/Heat", "/"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	expected := `
# HELP myflix_http_requests_total Count of processed HTTP requests.
# TYPE myflix_http_requests_total counter
myflix_http_requests_total{method="GET",route="/",status="200"} 1
myflix_http_requests_total{method="GET",route="/movies/{title}",status="404"} 2
`
	require.NoError(t, testutil.CollectAndCompare(m.HTTPRequestsTotal, strings.NewReader(expected)))
	assert.Equal(t, 2, testutil.CollectAndCount(m.HTTPRequestDuration))
}

func TestMiddleware_Unmatched(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	h := m.Middleware(http.NotFoundHandler())
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}

func TestRecorders(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	m.LoginAttempt("success")
	m.LoginAttempt("invalid_credentials")
	m.LoginAttempt("invalid_credentials")
	m.TokenRejected("expired")
	m.RateLimited("/login")
	m.CacheLookup(true)
	m.CacheLookup(false)
	m.CacheLookup(false)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.LoginAttemptsTotal.WithLabelValues("success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.LoginAttemptsTotal.WithLabelValues("invalid_credentials")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TokenRejectionsTotal.WithLabelValues("expired")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RateLimitedTotal.WithLabelValues("/login")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CatalogCacheTotal.WithLabelValues("hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CatalogCacheTotal.WithLabelValues("miss")))
}

func TestHandler(t *testing.T) {
	t.Parallel()

	m := metrics.New(metrics.WithRuntimeCollectors())
	m.LoginAttempt("success")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `myflix_auth_login_attempts_total{outcome="success"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
