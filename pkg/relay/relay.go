package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const maxResponseBody = 64 * 1024

// Sender posts JSON payloads to relay endpoints.
// Zero value is not usable; use NewSender to create instances.
type Sender struct {
	client *http.Client
}

// NewSender creates a sender with a pooled HTTP client.
func NewSender() *Sender {
	return &Sender{
		client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        50,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// NewSenderWithClient creates a sender with a custom HTTP client.
func NewSenderWithClient(client *http.Client) *Sender {
	if client == nil {
		return NewSender()
	}
	return &Sender{client: client}
}

// Post marshals data to JSON and sends it to endpoint in a single POST.
// The returned Result is populated even when an error is returned.
func (s *Sender) Post(ctx context.Context, endpoint string, data any, opts ...PostOption) (Result, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return Result{Error: err}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	if err := validateInputs(endpoint, payload); err != nil {
		return Result{Error: err}, err
	}

	options := defaultPostOptions()
	for _, opt := range opts {
		opt(options)
	}

	result, err := s.attempt(ctx, endpoint, payload, options)
	if options.onDelivery != nil {
		options.onDelivery(result)
	}
	return result, err
}

func validateInputs(endpoint string, payload []byte) error {
	if endpoint == "" {
		return fmt.Errorf("%w: URL is required", ErrInvalidURL)
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: only http and https schemes are supported", ErrInvalidURL)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidURL)
	}

	if len(payload) == 0 || string(payload) == "null" {
		return fmt.Errorf("%w: payload cannot be empty", ErrInvalidPayload)
	}
	return nil
}

func (s *Sender) attempt(ctx context.Context, endpoint string, payload []byte, options *postOptions) (Result, error) {
	start := time.Now()
	result := Result{}

	reqCtx, cancel := context.WithTimeout(ctx, options.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		result.Duration = time.Since(start)
		result.Error = err
		return result, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	if options.contentType {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("User-Agent", "formkit-relay/1.0")
	for k, v := range options.headers {
		req.Header.Set(k, v)
	}

	resp, err := s.client.Do(req)
	result.Duration = time.Since(start)
	if err != nil {
		result.Error = err
		if errors.Is(reqCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			return result, fmt.Errorf("%w: %w", ErrTimeout, err)
		}
		return result, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	result.StatusCode = resp.StatusCode
	result.Body, _ = io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))

	if !result.Success() {
		msg := fmt.Sprintf("status %d", resp.StatusCode)
		if len(result.Body) > 0 {
			body := strings.ReplaceAll(string(result.Body), "\n", " ")
			if len(body) > 200 {
				body = body[:200] + "..."
			}
			msg += ": " + body
		}
		result.Error = fmt.Errorf("%w: %s", ErrUnexpectedStatus, msg)
		return result, result.Error
	}

	return result, nil
}
