package submission

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/formkit/pkg/email"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/relay"
)

// Selector binds Choose to concrete strategies.
type Selector struct {
	cfg          Config
	mail         email.RelayClient
	sender       *relay.Sender
	log          *slog.Logger
	contactDelay time.Duration
	relayTimeout time.Duration
}

// SelectorOption configures a Selector.
type SelectorOption func(*Selector)

// WithMailClient supplies the mail-relay client. Without one the mail-relay
// capability is unavailable.
func WithMailClient(client email.RelayClient) SelectorOption {
	return func(s *Selector) {
		s.mail = client
	}
}

// WithRelaySender sets the HTTP sender used by the form-relay strategy.
func WithRelaySender(sender *relay.Sender) SelectorOption {
	return func(s *Selector) {
		if sender != nil {
			s.sender = sender
		}
	}
}

// WithRelayTimeout bounds a single form-relay request.
func WithRelayTimeout(d time.Duration) SelectorOption {
	return func(s *Selector) {
		if d > 0 {
			s.relayTimeout = d
		}
	}
}

// WithContactDemoDelay overrides DefaultContactDemoDelay.
func WithContactDemoDelay(d time.Duration) SelectorOption {
	return func(s *Selector) {
		if d >= 0 {
			s.contactDelay = d
		}
	}
}

func WithLogger(log *slog.Logger) SelectorOption {
	return func(s *Selector) {
		if log != nil {
			s.log = log
		}
	}
}

func NewSelector(cfg Config, opts ...SelectorOption) *Selector {
	s := &Selector{
		cfg:          cfg,
		log:          slog.Default(),
		contactDelay: DefaultContactDemoDelay,
		relayTimeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.sender == nil {
		s.sender = relay.NewSender()
	}
	return s
}

// Capabilities reports what the selector was given at construction.
func (s *Selector) Capabilities() Capabilities {
	return Capabilities{MailClientAvailable: s.mail != nil}
}

// Kind returns the strategy kind every Select call resolves to.
func (s *Selector) Kind() StrategyKind {
	return Choose(s.cfg, s.Capabilities())
}

// Select returns the strategy for one submission of a form of the given kind.
func (s *Selector) Select(kind form.Kind) Strategy {
	log := s.log.With(logger.Component("submission"))

	switch s.Kind() {
	case StrategyMailRelay:
		return NewMailRelayStrategy(s.mail, s.cfg.MailRelay, log)
	case StrategyFormRelay:
		return NewFormRelayStrategy(s.sender, s.cfg.FormRelayEndpoint, kind == form.Contact, s.relayTimeout, log)
	default:
		var delay time.Duration
		if kind == form.Contact {
			delay = s.contactDelay
		}
		return NewDemoStrategy(delay)
	}
}
