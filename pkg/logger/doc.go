// Package logger builds *slog.Logger instances for formkit services.
//
// New creates a logger from functional options: output format and level,
// static attributes, and ContextExtractor callbacks that pull values such as
// the submission id out of a context.Context on every record. WithEnvironment
// selects text/debug output for development and JSON/info otherwise.
//
// The helpers in attr.go keep attribute keys consistent across packages:
//
//	log.InfoContext(ctx, "submission settled",
//	    logger.Form(kind),
//	    logger.Strategy(strategy.Name()),
//	    logger.Outcome(outcome),
//	    logger.Duration(time.Since(start)),
//	)
//
// Error returns an empty attr for a nil error, so it can be passed
// unconditionally.
package logger
