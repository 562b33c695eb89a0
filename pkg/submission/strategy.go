package submission

import (
	"context"

	"github.com/dmitrymomot/formkit/pkg/form"
)

// StrategyKind names a delivery strategy.
type StrategyKind string

const (
	StrategyMailRelay StrategyKind = "mail_relay"
	StrategyFormRelay StrategyKind = "form_relay"
	StrategyDemo      StrategyKind = "demo"
)

func (k StrategyKind) String() string { return string(k) }

// Strategy delivers a payload in a single attempt. Send blocks until the
// attempt settles and always returns an Outcome.
type Strategy interface {
	Name() StrategyKind
	Send(ctx context.Context, payload form.Payload) Outcome
}

// Choose returns the strategy kind for cfg and caps. The precedence is
// mail relay (configured and client available), form relay (endpoint set),
// demo.
func Choose(cfg Config, caps Capabilities) StrategyKind {
	switch {
	case cfg.MailRelay.Configured() && caps.MailClientAvailable:
		return StrategyMailRelay
	case cfg.FormRelayEndpoint != "":
		return StrategyFormRelay
	default:
		return StrategyDemo
	}
}
