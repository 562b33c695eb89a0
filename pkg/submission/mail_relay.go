package submission

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/email"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// MailRelayStrategy sends payloads through a hosted mail-relay client.
type MailRelayStrategy struct {
	client email.RelayClient
	cfg    MailRelayConfig
	log    *slog.Logger
}

func NewMailRelayStrategy(client email.RelayClient, cfg MailRelayConfig, log *slog.Logger) *MailRelayStrategy {
	if log == nil {
		log = slog.Default()
	}
	return &MailRelayStrategy{client: client, cfg: cfg, log: log}
}

func (s *MailRelayStrategy) Name() StrategyKind { return StrategyMailRelay }

// Send maps every client error, and a panicking client, to ServiceFailure.
func (s *MailRelayStrategy) Send(ctx context.Context, payload form.Payload) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			s.log.ErrorContext(ctx, "mail relay client panicked",
				logger.Form(payload.Kind),
				logger.Error(fmt.Errorf("panic: %v", r)),
			)
			outcome = ServiceFailure("")
		}
	}()

	if s.client == nil {
		s.log.ErrorContext(ctx, "mail relay client is not set", logger.Form(payload.Kind))
		return ServiceFailure("")
	}

	err := s.client.Send(ctx, s.cfg.ServiceID, s.cfg.TemplateID, payload.Params(), s.cfg.PublicKey)
	if err != nil {
		s.log.WarnContext(ctx, "mail relay rejected submission",
			logger.Form(payload.Kind),
			logger.Error(err),
		)
		return ServiceFailure("")
	}
	return Success()
}
