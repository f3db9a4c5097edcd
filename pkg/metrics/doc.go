// Package metrics exposes Prometheus collectors for HTTP traffic,
// authentication outcomes, rate limiting and the catalog cache.
//
// Collectors are registered on a private registry so tests and multiple
// routers never collide on the global default registry.
//
//	m := metrics.New(metrics.WithRuntimeCollectors())
//	r.Use(m.Middleware)
//	r.Method(http.MethodGet, "/metrics", m.Handler())
package metrics
