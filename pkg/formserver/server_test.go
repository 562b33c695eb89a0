package formserver_test

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/feedback"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/formctl"
	"github.com/dmitrymomot/formkit/pkg/formserver"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/submission"
)

type staticSelector struct {
	strategy submission.Strategy
}

func (s staticSelector) Select(form.Kind) submission.Strategy { return s.strategy }

// gatedStrategy succeeds once release is closed.
type gatedStrategy struct {
	started chan struct{}
	release chan struct{}
	once    sync.Once

	mu       sync.Mutex
	payloads []form.Payload
}

func (s *gatedStrategy) Name() submission.StrategyKind { return "gated" }

func (s *gatedStrategy) Send(ctx context.Context, p form.Payload) submission.Outcome {
	s.mu.Lock()
	s.payloads = append(s.payloads, p)
	s.mu.Unlock()
	s.once.Do(func() { close(s.started) })
	select {
	case <-s.release:
		return submission.Success()
	case <-ctx.Done():
		return submission.NetworkFailure("")
	}
}

func (s *gatedStrategy) sent() []form.Payload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]form.Payload(nil), s.payloads...)
}

type patchSignals struct {
	UI         map[string]feedback.ElementState `json:"ui"`
	Contact    map[string]string                `json:"contact"`
	Newsletter map[string]string                `json:"newsletter"`
}

func demoSelector() *submission.Selector {
	return submission.NewSelector(submission.Config{},
		submission.WithContactDemoDelay(0),
		submission.WithLogger(logger.Discard()),
	)
}

func newTestServer(t *testing.T, sel formctl.Selector, opts ...formserver.Option) *httptest.Server {
	t.Helper()
	srv, err := formserver.New(sel, append([]formserver.Option{formserver.WithLogger(logger.Discard())}, opts...)...)
	require.NoError(t, err)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postSignals(t *testing.T, ts *httptest.Server, kind string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/forms/"+kind, strings.NewReader(string(raw)))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Datastar-Request", "true")

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

// readPatches collects every signal patch of an event stream.
func readPatches(t *testing.T, r io.Reader) []patchSignals {
	t.Helper()
	var patches []patchSignals
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		payload, ok := strings.CutPrefix(sc.Text(), "data: signals ")
		if !ok {
			continue
		}
		var p patchSignals
		require.NoError(t, json.Unmarshal([]byte(payload), &p))
		patches = append(patches, p)
	}
	require.NoError(t, sc.Err())
	return patches
}

func lastPatch(t *testing.T, resp *http.Response) patchSignals {
	t.Helper()
	patches := readPatches(t, resp.Body)
	require.NotEmpty(t, patches)
	return patches[len(patches)-1]
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil selector", func(t *testing.T) {
		t.Parallel()
		_, err := formserver.New(nil)
		assert.ErrorIs(t, err, formserver.ErrNilSelector)
	})

	t.Run("layout without required inputs", func(t *testing.T) {
		t.Parallel()
		_, err := formserver.New(demoSelector(),
			formserver.WithLogger(logger.Discard()),
			formserver.WithLayouts(feedback.Layouts{form.Contact: {Form: "c-form", Submit: "c-submit"}}),
		)
		assert.ErrorIs(t, err, feedback.ErrMissingElement)
	})
}

var signalsAttr = regexp.MustCompile(`data-signals="([^"]*)"`)

func pageSignals(t *testing.T, ts *httptest.Server, query string) map[string]any {
	t.Helper()
	resp, err := ts.Client().Get(ts.URL + "/" + query)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	page := string(body)
	assert.Contains(t, page, `id="contact-form"`)
	assert.Contains(t, page, `id="newsletter-email"`)
	assert.Contains(t, page, `@post('/forms/contact')`)
	assert.Contains(t, page, `@post('/forms/newsletter')`)
	assert.Contains(t, page, "datastar.js")

	m := signalsAttr.FindStringSubmatch(page)
	require.Len(t, m, 2)
	var signals map[string]any
	require.NoError(t, json.Unmarshal([]byte(html.UnescapeString(m[1])), &signals))
	return signals
}

func TestPage(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, demoSelector())

	first := pageSignals(t, ts, "?ref=spring-campaign")
	second := pageSignals(t, ts, "")

	id, ok := first["instance"].(string)
	require.True(t, ok)
	require.NoError(t, uuid.Validate(id))
	assert.NotEqual(t, first["instance"], second["instance"], "each page view gets its own instance")

	contact, ok := first["contact"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "spring-campaign", contact["ref"])
	assert.Equal(t, "", contact["name"])

	ui, ok := first["ui"].(map[string]any)
	require.True(t, ok)
	banner, ok := ui["contactSuccess"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, banner["hidden"])
}

func TestHealthz(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, demoSelector())

	resp, err := ts.Client().Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ALIVE", string(body))
}

func TestSubmit_NewsletterSuccess(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, demoSelector())
	instance := uuid.NewString()

	resp := postSignals(t, ts, "newsletter", map[string]any{
		"instance":   instance,
		"newsletter": map[string]string{"email": "  ann@example.com "},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

	final := lastPatch(t, resp)
	success := final.UI["newsletterSuccess"]
	assert.False(t, success.Hidden)
	assert.Equal(t, "Thanks for subscribing!", success.Text)
	assert.True(t, final.UI["newsletterError"].Hidden)
	assert.False(t, final.UI["newsletterSubmit"].Disabled)
	assert.Equal(t, "", final.Newsletter["email"], "values are cleared after success")

	again := postSignals(t, ts, "newsletter", map[string]any{
		"instance":   instance,
		"newsletter": map[string]string{"email": "bob@example.com"},
	})
	require.Equal(t, http.StatusOK, again.StatusCode)
	assert.False(t, lastPatch(t, again).UI["newsletterSuccess"].Hidden)
}

func TestSubmit_StreamsBusyState(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, demoSelector())

	resp := postSignals(t, ts, "contact", map[string]any{
		"instance": uuid.NewString(),
		"contact": map[string]string{
			"name": "Ann", "email": "ann@example.com", "subject": "Hi", "message": "Hello",
		},
	})
	patches := readPatches(t, resp.Body)
	require.NotEmpty(t, patches)

	var sawDisabled bool
	for _, p := range patches {
		if st, ok := p.UI["contactSubmit"]; ok && st.Disabled {
			sawDisabled = true
		}
	}
	assert.True(t, sawDisabled, "submit control is disabled while sending")
	assert.False(t, patches[len(patches)-1].UI["contactSubmit"].Disabled)
}

func TestSubmit_Invalid(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, demoSelector())

	resp := postSignals(t, ts, "contact", map[string]any{
		"instance": uuid.NewString(),
		"contact":  map[string]string{"name": "Ann", "email": "not-an-email"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	final := lastPatch(t, resp)
	assert.Contains(t, final.UI["contactEmail"].Classes, feedback.ClassInvalid)
	assert.Contains(t, final.UI["contactSubject"].Classes, feedback.ClassInvalid)
	assert.NotContains(t, final.UI["contactName"].Classes, feedback.ClassInvalid)
	assert.False(t, final.UI["contactError"].Hidden)
	assert.True(t, final.UI["contactSuccess"].Hidden)
	assert.Equal(t, "not-an-email", final.Contact["email"], "values are kept")
}

func TestSubmit_RelayFailure(t *testing.T) {
	t.Parallel()
	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(relay.Close)

	sel := submission.NewSelector(submission.Config{FormRelayEndpoint: relay.URL},
		submission.WithLogger(logger.Discard()),
	)
	ts := newTestServer(t, sel)

	resp := postSignals(t, ts, "newsletter", map[string]any{
		"instance":   uuid.NewString(),
		"newsletter": map[string]string{"email": "ann@example.com"},
	})

	final := lastPatch(t, resp)
	assert.False(t, final.UI["newsletterError"].Hidden)
	assert.Equal(t, submission.ServiceFailureMessage, final.UI["newsletterError"].Text)
	assert.Equal(t, "ann@example.com", final.Newsletter["email"])
}

func TestSubmit_BadRequests(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, demoSelector())

	tests := []struct {
		name   string
		kind   string
		body   string
		status int
	}{
		{"unknown form", "survey", `{"instance":"` + uuid.NewString() + `"}`, http.StatusNotFound},
		{"malformed signals", "contact", `{"instance":`, http.StatusBadRequest},
		{"missing instance", "contact", `{"contact":{"name":"Ann"}}`, http.StatusBadRequest},
		{"invalid instance", "newsletter", `{"instance":"../etc"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			resp, err := ts.Client().Post(ts.URL+"/forms/"+tt.kind, "application/json", strings.NewReader(tt.body))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestSubmit_BusyInstance(t *testing.T) {
	t.Parallel()
	gate := &gatedStrategy{started: make(chan struct{}), release: make(chan struct{})}
	ts := newTestServer(t, staticSelector{strategy: gate})
	instance := uuid.NewString()
	body := map[string]any{
		"instance":   instance,
		"newsletter": map[string]string{"email": "ann@example.com"},
	}

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	first := make(chan []byte, 1)
	go func() {
		defer close(first)
		resp, err := ts.Client().Post(ts.URL+"/forms/newsletter", "application/json", strings.NewReader(string(raw)))
		if err != nil {
			return
		}
		defer resp.Body.Close()
		stream, _ := io.ReadAll(resp.Body)
		first <- stream
	}()

	select {
	case <-gate.started:
	case <-time.After(2 * time.Second):
		require.FailNow(t, "first submission did not reach the strategy")
	}

	busy := postSignals(t, ts, "newsletter", body)
	assert.Equal(t, http.StatusConflict, busy.StatusCode)

	other := postSignals(t, ts, "newsletter", map[string]any{
		"instance":   uuid.NewString(),
		"newsletter": map[string]string{"email": "bob@example.com"},
	})
	assert.Equal(t, http.StatusOK, other.StatusCode, "other page views are independent")

	close(gate.release)
	select {
	case stream, ok := <-first:
		require.True(t, ok)
		patches := readPatches(t, strings.NewReader(string(stream)))
		require.NotEmpty(t, patches)
		assert.False(t, patches[len(patches)-1].UI["newsletterSuccess"].Hidden)
	case <-time.After(2 * time.Second):
		require.FailNow(t, "first submission did not finish")
	}
}

func TestSubmit_ConcurrentSameInstance(t *testing.T) {
	t.Parallel()
	gate := &gatedStrategy{started: make(chan struct{}), release: make(chan struct{})}
	ts := newTestServer(t, staticSelector{strategy: gate})
	instance := uuid.NewString()

	type result struct {
		email  string
		status int
		stream []byte
	}
	const posts = 8
	results := make(chan result, posts)
	ready := make(chan struct{})

	for i := range posts {
		email := fmt.Sprintf("user%d@example.com", i)
		raw, err := json.Marshal(map[string]any{
			"instance":   instance,
			"newsletter": map[string]string{"email": email},
		})
		require.NoError(t, err)

		go func() {
			<-ready
			resp, err := ts.Client().Post(ts.URL+"/forms/newsletter", "application/json", strings.NewReader(string(raw)))
			if err != nil {
				results <- result{email: email}
				return
			}
			defer resp.Body.Close()
			stream, _ := io.ReadAll(resp.Body)
			results <- result{email: email, status: resp.StatusCode, stream: stream}
		}()
	}
	close(ready)

	// Losers answer at once; the winner's stream stays open until release.
	for range posts - 1 {
		select {
		case r := <-results:
			assert.Equal(t, http.StatusConflict, r.status, r.email)
		case <-time.After(2 * time.Second):
			require.FailNow(t, "busy submissions were not refused")
		}
	}

	select {
	case <-gate.started:
	case <-time.After(2 * time.Second):
		require.FailNow(t, "winning submission did not reach the strategy")
	}
	close(gate.release)

	var winner result
	select {
	case winner = <-results:
	case <-time.After(2 * time.Second):
		require.FailNow(t, "winning submission did not finish")
	}
	require.Equal(t, http.StatusOK, winner.status)

	sent := gate.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, winner.email, sent[0].Values["email"])

	var streamed []string
	for _, p := range readPatches(t, strings.NewReader(string(winner.stream))) {
		if v, ok := p.Newsletter["email"]; ok && v != "" {
			streamed = append(streamed, v)
		}
	}
	assert.Equal(t, []string{winner.email}, streamed, "only the winner's values reach its stream")
}

func TestSubmit_CustomMessages(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, demoSelector(),
		formserver.WithMessages(form.Newsletter, formctl.Messages{Success: "You're on the list."}),
		formserver.WithCapacity(1),
	)

	resp := postSignals(t, ts, "newsletter", map[string]any{
		"instance":   uuid.NewString(),
		"newsletter": map[string]string{"email": "ann@example.com"},
	})

	final := lastPatch(t, resp)
	assert.Equal(t, "You're on the list.", final.UI["newsletterSuccess"].Text)
	assert.Equal(t, "You're on the list.", final.UI["newsletterFeedback"].Text)
}
