package logger

import (
	"fmt"
	"log/slog"
	"time"
)

// Error returns an "error" attr, or an empty attr for a nil error.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Form names the form kind a record belongs to.
func Form(kind fmt.Stringer) slog.Attr {
	return slog.String("form", kind.String())
}

// Strategy names the delivery strategy used for a submission.
func Strategy(name fmt.Stringer) slog.Attr {
	return slog.String("strategy", name.String())
}

// Outcome records how a submission settled.
func Outcome(outcome fmt.Stringer) slog.Attr {
	return slog.String("outcome", outcome.String())
}

// State records a form controller state.
func State(state fmt.Stringer) slog.Attr {
	return slog.String("state", state.String())
}

func SubmissionID(id string) slog.Attr {
	return slog.String("submission_id", id)
}

func InstanceID(id string) slog.Attr {
	return slog.String("instance_id", id)
}

// Fields lists field names, never their values.
func Fields(names []string) slog.Attr {
	return slog.Any("fields", names)
}
