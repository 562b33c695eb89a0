package email

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Provider names a mail-relay implementation.
type Provider string

const (
	ProviderNone     Provider = ""
	ProviderEmailJS  Provider = "emailjs"
	ProviderPostmark Provider = "postmark"
	ProviderResend   Provider = "resend"
	ProviderDev      Provider = "dev"
)

// Config selects and configures the mail-relay provider.
// Only the block matching Provider needs to be filled in.
type Config struct {
	Provider Provider `env:"MAIL_RELAY_PROVIDER"`

	EmailJSEndpoint    string `env:"EMAILJS_ENDPOINT" envDefault:"https://api.emailjs.com/api/v1.0/email/send"`
	EmailJSAccessToken string `env:"EMAILJS_ACCESS_TOKEN"`

	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`

	ResendAPIKey string `env:"RESEND_API_KEY"`

	// SenderEmail and RecipientEmail are used by providers that do not keep
	// addresses in the template (Postmark, Resend).
	SenderEmail    string `env:"MAIL_SENDER_EMAIL"`
	SenderName     string `env:"MAIL_SENDER_NAME"`
	RecipientEmail string `env:"MAIL_RECIPIENT_EMAIL"`

	DevDir string `env:"MAIL_DEV_DIR" envDefault:"./tmp/mail"`
}

// NewFromConfig builds the configured provider. It returns (nil, nil) when
// no provider is selected.
func NewFromConfig(cfg Config) (RelayClient, error) {
	switch Provider(strings.ToLower(string(cfg.Provider))) {
	case ProviderNone:
		return nil, nil
	case ProviderEmailJS:
		return NewEmailJSClient(cfg)
	case ProviderPostmark:
		return NewPostmarkRelay(cfg)
	case ProviderResend:
		return NewResendRelay(cfg)
	case ProviderDev:
		return NewDevRelay(cfg.DevDir), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}

func requireAddress(name, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidConfig, name)
	}
	if !validator.IsSiteEmail(value) {
		return fmt.Errorf("%w: %s must be a valid email address", ErrInvalidConfig, name)
	}
	return nil
}
