package email_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/email"
)

func TestDevRelay_Send(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "mail")
	relay := email.NewDevRelay(dir)

	err := relay.Send(context.Background(), "svc", "Contact Form", map[string]string{
		"name":    "Ann",
		"email":   "ann@example.com",
		"subject": "Hello",
		"message": "first line\nsecond <script>alert(1)</script> line",
	}, "pk")
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	var htmlFile, jsonFile string
	for _, e := range entries {
		switch filepath.Ext(e.Name()) {
		case ".html":
			htmlFile = filepath.Join(dir, e.Name())
		case ".json":
			jsonFile = filepath.Join(dir, e.Name())
		}
	}
	require.NotEmpty(t, htmlFile)
	require.NotEmpty(t, jsonFile)
	assert.True(t, strings.HasSuffix(htmlFile, "_contact_form.html"))

	body, err := os.ReadFile(htmlFile)
	require.NoError(t, err)
	assert.Contains(t, string(body), "<h2>Hello</h2>")
	assert.Contains(t, string(body), "first line<br")
	assert.NotContains(t, string(body), "<script>")

	raw, err := os.ReadFile(jsonFile)
	require.NoError(t, err)

	var record map[string]any
	require.NoError(t, json.Unmarshal(raw, &record))
	assert.Equal(t, "svc", record["service_id"])
	assert.Equal(t, "Contact Form", record["template_id"])
	assert.Equal(t, "pk", record["public_key"])
}

func TestDevRelay_Send_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := email.NewDevRelay(t.TempDir()).Send(ctx, "svc", "tpl", map[string]string{"email": "a@b.co"}, "")
	assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
}
