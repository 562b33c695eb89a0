// Package httpserver runs an http.Handler with configured timeouts and
// graceful, context-driven shutdown.
//
// Run binds the listener, fires start hooks, serves until the context is
// cancelled or Shutdown is called, then drains in-flight requests within the
// shutdown timeout and fires stop hooks. Signal handling is left to the
// caller, typically via signal.NotifyContext in main.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// HealthCheckHandler serves liveness (no checks) and readiness (all checks
// must pass) checks.
package httpserver
