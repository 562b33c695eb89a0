package email

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/mrz1836/postmark"
)

type postmarkRelay struct {
	client *postmark.Client
	config Config
}

// NewPostmarkRelay creates a relay backed by Postmark templated email.
// The template id given to Send is used as a numeric template id when it
// parses as one, otherwise as a template alias. The service id becomes the
// message tag. Postmark authenticates with the server token, so the public
// key is not used.
func NewPostmarkRelay(cfg Config) (RelayClient, error) {
	if cfg.PostmarkServerToken == "" {
		return nil, fmt.Errorf("%w: PostmarkServerToken is required", ErrInvalidConfig)
	}
	if cfg.PostmarkAccountToken == "" {
		return nil, fmt.Errorf("%w: PostmarkAccountToken is required", ErrInvalidConfig)
	}
	if err := requireAddress("SenderEmail", cfg.SenderEmail); err != nil {
		return nil, err
	}
	if err := requireAddress("RecipientEmail", cfg.RecipientEmail); err != nil {
		return nil, err
	}

	return &postmarkRelay{
		client: postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
		config: cfg,
	}, nil
}

func (c *postmarkRelay) Send(ctx context.Context, serviceID, templateID string, params map[string]string, _ string) error {
	if err := validateSend(serviceID, templateID, params); err != nil {
		return err
	}

	model := make(map[string]interface{}, len(params))
	for k, v := range sanitizeParams(params) {
		model[k] = v
	}

	msg := postmark.TemplatedEmail{
		From:          c.config.SenderEmail,
		To:            c.config.RecipientEmail,
		ReplyTo:       replyTo(params),
		Tag:           serviceID,
		TemplateModel: model,
		Metadata:      map[string]string{"service_id": serviceID},
	}
	if id, err := strconv.ParseInt(templateID, 10, 64); err == nil {
		msg.TemplateID = id
	} else {
		msg.TemplateAlias = templateID
	}

	resp, err := c.client.SendTemplatedEmail(ctx, msg)
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(
			ErrFailedToSendEmail,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return nil
}
