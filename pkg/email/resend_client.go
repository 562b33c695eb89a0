package email

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/resend/resend-go/v3"
)

type resendRelay struct {
	client *resend.Client
	config Config
}

// NewResendRelay creates a relay backed by Resend. Resend has no server-side
// templates for this use, so the message is rendered locally; the template id
// only labels the message.
func NewResendRelay(cfg Config) (RelayClient, error) {
	if cfg.ResendAPIKey == "" {
		return nil, fmt.Errorf("%w: ResendAPIKey is required", ErrInvalidConfig)
	}
	if err := requireAddress("SenderEmail", cfg.SenderEmail); err != nil {
		return nil, err
	}
	if err := requireAddress("RecipientEmail", cfg.RecipientEmail); err != nil {
		return nil, err
	}

	return &resendRelay{
		client: resend.NewClient(cfg.ResendAPIKey),
		config: cfg,
	}, nil
}

func (c *resendRelay) Send(ctx context.Context, serviceID, templateID string, params map[string]string, _ string) error {
	if err := validateSend(serviceID, templateID, params); err != nil {
		return err
	}

	htmlBody, textBody, err := renderMessage(subjectFor(templateID, params), params)
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}

	from := c.config.SenderEmail
	if c.config.SenderName != "" {
		from = fmt.Sprintf("%s <%s>", c.config.SenderName, c.config.SenderEmail)
	}

	_, err = c.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    from,
		To:      []string{c.config.RecipientEmail},
		Subject: subjectFor(templateID, params),
		Html:    htmlBody,
		Text:    textBody,
		ReplyTo: replyTo(params),
		Tags: []resend.Tag{
			{Name: "service", Value: tagValue(serviceID)},
			{Name: "template", Value: tagValue(templateID)},
		},
	})
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, fmt.Errorf("resend: %w", err))
	}
	return nil
}

// Resend tag values are limited to ASCII letters, digits, "_" and "-".
var tagRegex = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

func tagValue(s string) string {
	v := tagRegex.ReplaceAllString(s, "_")
	if len(v) > 256 {
		v = v[:256]
	}
	if v == "" {
		return "none"
	}
	return v
}
