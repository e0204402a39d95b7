// Package httpserver runs an http.Handler with graceful shutdown.
//
// Server.Run listens on the configured address and blocks until the context
// is cancelled, SIGINT/SIGTERM arrives, or the listener fails. Shutdown
// drains in-flight requests within the shutdown timeout. Settings come from
// functional options or from a Config parsed by pkg/config.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// HealthCheckHandler serves liveness and readiness checks.
package httpserver
