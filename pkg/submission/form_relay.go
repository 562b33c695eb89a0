package submission

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/relay"
)

// FormRelayStrategy POSTs the payload as JSON to a form-relay endpoint.
type FormRelayStrategy struct {
	sender      *relay.Sender
	endpoint    string
	contentType bool
	timeout     time.Duration
	log         *slog.Logger
}

// NewFormRelayStrategy creates a strategy posting to endpoint. When
// contentType is false the request carries no explicit Content-Type header.
func NewFormRelayStrategy(sender *relay.Sender, endpoint string, contentType bool, timeout time.Duration, log *slog.Logger) *FormRelayStrategy {
	if sender == nil {
		sender = relay.NewSender()
	}
	if log == nil {
		log = slog.Default()
	}
	return &FormRelayStrategy{
		sender:      sender,
		endpoint:    endpoint,
		contentType: contentType,
		timeout:     timeout,
		log:         log,
	}
}

func (s *FormRelayStrategy) Name() StrategyKind { return StrategyFormRelay }

// Send returns Success on 2xx, NetworkFailure when no response arrived and
// ServiceFailure otherwise.
func (s *FormRelayStrategy) Send(ctx context.Context, payload form.Payload) Outcome {
	opts := []relay.PostOption{
		relay.WithHeaders(map[string]string{
			"Accept":      "application/json",
			"X-Form-Kind": payload.Kind.String(),
		}),
		relay.WithTimeout(s.timeout),
	}
	if !s.contentType {
		opts = append(opts, relay.WithoutContentType())
	}

	result, err := s.sender.Post(ctx, s.endpoint, payload, opts...)
	switch {
	case err == nil:
		return Success()
	case relay.IsTransportError(err):
		s.log.WarnContext(ctx, "form relay unreachable",
			logger.Form(payload.Kind),
			logger.Duration(result.Duration),
			logger.Error(err),
		)
		return NetworkFailure("")
	default:
		s.log.WarnContext(ctx, "form relay rejected submission",
			logger.Form(payload.Kind),
			slog.Int("status", result.StatusCode),
			logger.Error(err),
		)
		return ServiceFailure("")
	}
}
