package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrymomot/formkit/pkg/relay"
)

type emailJSClient struct {
	endpoint    string
	accessToken string
	sender      *relay.Sender
}

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
	AccessToken    string            `json:"accessToken,omitempty"`
}

// NewEmailJSClient creates a client for the EmailJS REST API. The public key
// passed to Send is sent as the account's user id.
func NewEmailJSClient(cfg Config) (RelayClient, error) {
	return NewEmailJSClientWithSender(cfg, nil)
}

// NewEmailJSClientWithSender is NewEmailJSClient with a custom relay sender.
func NewEmailJSClientWithSender(cfg Config, sender *relay.Sender) (RelayClient, error) {
	if cfg.EmailJSEndpoint == "" {
		return nil, fmt.Errorf("%w: EmailJSEndpoint is required", ErrInvalidConfig)
	}
	if sender == nil {
		sender = relay.NewSender()
	}
	return &emailJSClient{
		endpoint:    cfg.EmailJSEndpoint,
		accessToken: cfg.EmailJSAccessToken,
		sender:      sender,
	}, nil
}

func (c *emailJSClient) Send(ctx context.Context, serviceID, templateID string, params map[string]string, publicKey string) error {
	if err := validateSend(serviceID, templateID, params); err != nil {
		return err
	}
	if publicKey == "" {
		return fmt.Errorf("%w: public key is required", ErrInvalidParams)
	}

	_, err := c.sender.Post(ctx, c.endpoint, emailJSRequest{
		ServiceID:      serviceID,
		TemplateID:     templateID,
		UserID:         publicKey,
		TemplateParams: sanitizeParams(params),
		AccessToken:    c.accessToken,
	})
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	return nil
}
