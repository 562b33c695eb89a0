package email_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/email"
)

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("no provider means no client", func(t *testing.T) {
		t.Parallel()

		client, err := email.NewFromConfig(email.Config{})
		require.NoError(t, err)
		assert.Nil(t, client)
	})

	t.Run("unknown provider", func(t *testing.T) {
		t.Parallel()

		client, err := email.NewFromConfig(email.Config{Provider: "carrier-pigeon"})
		assert.ErrorIs(t, err, email.ErrUnknownProvider)
		assert.Nil(t, client)
	})

	t.Run("dev provider", func(t *testing.T) {
		t.Parallel()

		client, err := email.NewFromConfig(email.Config{Provider: email.ProviderDev, DevDir: t.TempDir()})
		require.NoError(t, err)
		assert.IsType(t, &email.DevRelay{}, client)
	})

	t.Run("provider name is case-insensitive", func(t *testing.T) {
		t.Parallel()

		client, err := email.NewFromConfig(email.Config{
			Provider:        "EmailJS",
			EmailJSEndpoint: "https://api.emailjs.com/api/v1.0/email/send",
		})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestNewPostmarkRelay(t *testing.T) {
	t.Parallel()

	valid := email.Config{
		PostmarkServerToken:  "server-token",
		PostmarkAccountToken: "account-token",
		SenderEmail:          "noreply@example.com",
		RecipientEmail:       "inbox@example.com",
	}

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()

		client, err := email.NewPostmarkRelay(valid)
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	tests := []struct {
		name   string
		mutate func(*email.Config)
		msg    string
	}{
		{"empty server token", func(c *email.Config) { c.PostmarkServerToken = "" }, "PostmarkServerToken is required"},
		{"empty account token", func(c *email.Config) { c.PostmarkAccountToken = "" }, "PostmarkAccountToken is required"},
		{"missing sender", func(c *email.Config) { c.SenderEmail = "" }, "SenderEmail is required"},
		{"invalid sender", func(c *email.Config) { c.SenderEmail = "noreply" }, "SenderEmail must be a valid email address"},
		{"missing recipient", func(c *email.Config) { c.RecipientEmail = "" }, "RecipientEmail is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid
			tt.mutate(&cfg)

			client, err := email.NewPostmarkRelay(cfg)
			assert.Nil(t, client)
			assert.ErrorIs(t, err, email.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestNewResendRelay(t *testing.T) {
	t.Parallel()

	client, err := email.NewResendRelay(email.Config{
		ResendAPIKey:   "re_test",
		SenderEmail:    "noreply@example.com",
		RecipientEmail: "inbox@example.com",
	})
	require.NoError(t, err)
	assert.NotNil(t, client)

	client, err = email.NewResendRelay(email.Config{SenderEmail: "noreply@example.com"})
	assert.ErrorIs(t, err, email.ErrInvalidConfig)
	assert.Nil(t, client)
}
