package relay

import "errors"

var (
	ErrInvalidURL       = errors.New("invalid relay URL")
	ErrInvalidPayload   = errors.New("invalid relay payload")
	ErrTransport        = errors.New("relay endpoint unreachable")
	ErrTimeout          = errors.New("relay request timeout")
	ErrUnexpectedStatus = errors.New("relay endpoint rejected the request")
)

// IsTransportError reports whether err means the request never got a response.
func IsTransportError(err error) bool {
	return errors.Is(err, ErrTransport) || errors.Is(err, ErrTimeout)
}

// IsStatusError reports whether err carries a non-2xx response.
func IsStatusError(err error) bool {
	return errors.Is(err, ErrUnexpectedStatus)
}
