package formctl

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

type submissionIDKey struct{}

// WithSubmissionID stores id in ctx.
func WithSubmissionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, submissionIDKey{}, id)
}

// SubmissionIDFromContext returns the submission id stored in ctx.
func SubmissionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(submissionIDKey{}).(string)
	return id, ok && id != ""
}

// LogExtractor adds the submission id, when present, to log records.
func LogExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := SubmissionIDFromContext(ctx); ok {
			return logger.SubmissionID(id), true
		}
		return slog.Attr{}, false
	}
}
