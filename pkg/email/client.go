package email

import (
	"context"
	"fmt"
	"strings"
)

// RelayClient sends a templated message through a hosted mail relay.
type RelayClient interface {
	Send(ctx context.Context, serviceID, templateID string, params map[string]string, publicKey string) error
}

// RelayFunc adapts an ordinary function to RelayClient.
type RelayFunc func(ctx context.Context, serviceID, templateID string, params map[string]string, publicKey string) error

func (f RelayFunc) Send(ctx context.Context, serviceID, templateID string, params map[string]string, publicKey string) error {
	return f(ctx, serviceID, templateID, params, publicKey)
}

func validateSend(serviceID, templateID string, params map[string]string) error {
	if strings.TrimSpace(serviceID) == "" {
		return fmt.Errorf("%w: service id is required", ErrInvalidParams)
	}
	if strings.TrimSpace(templateID) == "" {
		return fmt.Errorf("%w: template id is required", ErrInvalidParams)
	}
	if len(params) == 0 {
		return fmt.Errorf("%w: params cannot be empty", ErrInvalidParams)
	}
	return nil
}
