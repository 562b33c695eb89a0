// Package relay posts JSON payloads to hosted form-relay endpoints.
//
// A hosted form relay is an HTTP endpoint that accepts a form submission and
// forwards it server-side, typically as an email. The Sender makes exactly one
// attempt per call; there is no retry or backoff. Failures are classified so
// callers can tell a rejected request from one that never reached the
// endpoint:
//
//   - ErrUnexpectedStatus: the endpoint answered with a non-2xx status
//   - ErrTransport: DNS, connection or context failures before a response
//   - ErrTimeout: the per-request timeout elapsed (also matches ErrTransport)
//
// # Usage
//
//	sender := relay.NewSender()
//	res, err := sender.Post(ctx, "https://relay.example.com/f/abc",
//	    map[string]string{"email": "ann@example.com"},
//	    relay.WithHeader("Accept", "application/json"),
//	)
//	switch {
//	case err == nil:
//	    // res.StatusCode is 2xx
//	case relay.IsTransportError(err):
//	    // network failure
//	default:
//	    // endpoint rejected the submission
//	}
package relay
