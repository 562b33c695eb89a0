package submission

// MailRelayConfig identifies the hosted mail-relay account and template.
type MailRelayConfig struct {
	ServiceID  string `env:"MAIL_RELAY_SERVICE_ID"`
	TemplateID string `env:"MAIL_RELAY_TEMPLATE_ID"`
	PublicKey  string `env:"MAIL_RELAY_PUBLIC_KEY"`
}

// Configured reports whether every mail-relay setting is present.
func (c MailRelayConfig) Configured() bool {
	return c.ServiceID != "" && c.TemplateID != "" && c.PublicKey != ""
}

// Config is the delivery configuration. It is built once at startup and
// passed to NewSelector.
type Config struct {
	MailRelay         MailRelayConfig
	FormRelayEndpoint string `env:"FORM_RELAY_ENDPOINT"`
}

// Capabilities describes what the runtime offers beyond configuration.
type Capabilities struct {
	// MailClientAvailable is true when a mail-relay client was supplied.
	MailClientAvailable bool
}
