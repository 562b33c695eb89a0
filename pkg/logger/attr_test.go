package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

type name string

func (n name) String() string { return string(n) }

func TestError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		attr slog.Attr
		key  string
		want any
	}{
		{logger.Form(name("contact")), "form", "contact"},
		{logger.Strategy(name("demo")), "strategy", "demo"},
		{logger.Outcome(name("success")), "outcome", "success"},
		{logger.State(name("submitting")), "state", "submitting"},
		{logger.SubmissionID("abc"), "submission_id", "abc"},
		{logger.InstanceID("i-1"), "instance_id", "i-1"},
		{logger.Component("formctl"), "component", "formctl"},
		{logger.Duration(time.Second), "duration", time.Second},
		{logger.Fields([]string{"email"}), "fields", []string{"email"}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.Any())
		})
	}
}
