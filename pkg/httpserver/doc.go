// Package httpserver runs an http.Handler with configured timeouts, graceful
// shutdown and health probes.
//
// Run binds the listener, serves until the context is cancelled or SIGINT or
// SIGTERM arrives, then calls http.Server.Shutdown bounded by the shutdown
// timeout. Stop hooks run after in-flight requests finish, which is where
// database clients are closed.
//
//	srv := httpserver.NewFromConfig(cfg,
//		httpserver.WithLogger(log),
//		httpserver.WithStopHook(func(*slog.Logger) { _ = client.Disconnect(ctx) }),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// LivenessHandler and ReadinessHandler answer plain-text probes ("ALIVE",
// "READY", "NOT_READY"). Errors returned by Run and Shutdown wrap ErrStart and
// ErrShutdown respectively.
package httpserver
