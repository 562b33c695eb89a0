package relay

import (
	"time"
)

// Result describes a single delivery attempt.
type Result struct {
	StatusCode int
	Duration   time.Duration
	Body       []byte // response body, truncated to maxResponseBody
	Error      error
}

// Success reports whether the endpoint answered with a 2xx status.
func (r Result) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// DeliveryHook is called after every attempt, successful or not.
type DeliveryHook func(result Result)

type postOptions struct {
	timeout     time.Duration
	headers     map[string]string
	contentType bool
	onDelivery  DeliveryHook
}

func defaultPostOptions() *postOptions {
	return &postOptions{
		timeout:     10 * time.Second,
		headers:     make(map[string]string),
		contentType: true,
	}
}

// PostOption configures a single Post call.
type PostOption func(*postOptions)

// WithTimeout sets the request timeout. Default is 10 seconds.
func WithTimeout(timeout time.Duration) PostOption {
	return func(o *postOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithHeader adds a request header. Empty keys or values are ignored.
func WithHeader(key, value string) PostOption {
	return func(o *postOptions) {
		if key != "" && value != "" {
			o.headers[key] = value
		}
	}
}

// WithHeaders adds multiple request headers.
func WithHeaders(headers map[string]string) PostOption {
	return func(o *postOptions) {
		for k, v := range headers {
			if k != "" && v != "" {
				o.headers[k] = v
			}
		}
	}
}

// WithoutContentType omits the default "Content-Type: application/json"
// header. The body is still JSON.
func WithoutContentType() PostOption {
	return func(o *postOptions) {
		o.contentType = false
	}
}

// WithOnDelivery registers a hook invoked after the attempt.
func WithOnDelivery(hook DeliveryHook) PostOption {
	return func(o *postOptions) {
		o.onDelivery = hook
	}
}
