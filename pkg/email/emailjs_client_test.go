package email_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/email"
)

func TestEmailJSClient_Send(t *testing.T) {
	t.Parallel()

	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte("OK"))
	}))
	defer server.Close()

	client, err := email.NewEmailJSClient(email.Config{EmailJSEndpoint: server.URL, EmailJSAccessToken: "secret"})
	require.NoError(t, err)

	err = client.Send(context.Background(), "service_1", "template_1", map[string]string{
		"name":    "<b>Ann</b>",
		"email":   "ann@example.com",
		"message": "Tom & Jerry",
	}, "public_key")
	require.NoError(t, err)

	assert.Equal(t, "service_1", got["service_id"])
	assert.Equal(t, "template_1", got["template_id"])
	assert.Equal(t, "public_key", got["user_id"])
	assert.Equal(t, "secret", got["accessToken"])
	assert.Equal(t, map[string]any{
		"name":    "Ann",
		"email":   "ann@example.com",
		"message": "Tom & Jerry",
	}, got["template_params"])
}

func TestEmailJSClient_Send_Rejected(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("The Public Key is invalid"))
	}))
	defer server.Close()

	client, err := email.NewEmailJSClient(email.Config{EmailJSEndpoint: server.URL})
	require.NoError(t, err)

	err = client.Send(context.Background(), "s", "t", map[string]string{"email": "a@b.co"}, "bad")
	assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
}

func TestEmailJSClient_Send_InvalidParams(t *testing.T) {
	t.Parallel()

	client, err := email.NewEmailJSClient(email.Config{EmailJSEndpoint: "https://example.com"})
	require.NoError(t, err)

	ctx := context.Background()
	params := map[string]string{"email": "a@b.co"}

	assert.ErrorIs(t, client.Send(ctx, "", "t", params, "k"), email.ErrInvalidParams)
	assert.ErrorIs(t, client.Send(ctx, "s", "", params, "k"), email.ErrInvalidParams)
	assert.ErrorIs(t, client.Send(ctx, "s", "t", nil, "k"), email.ErrInvalidParams)
	assert.ErrorIs(t, client.Send(ctx, "s", "t", params, ""), email.ErrInvalidParams)
}
