package formctl_test

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/submission"
)

type staticSelector struct {
	strategy submission.Strategy
}

func (s staticSelector) Select(form.Kind) submission.Strategy { return s.strategy }

// blockingStrategy succeeds once release is closed.
type blockingStrategy struct {
	release chan struct{}
	started chan struct{}
	n       atomic.Int32

	mu       sync.Mutex
	payloads []form.Payload
}

func (s *blockingStrategy) Name() submission.StrategyKind { return "blocking" }

func (s *blockingStrategy) Send(ctx context.Context, p form.Payload) submission.Outcome {
	s.n.Add(1)
	s.mu.Lock()
	s.payloads = append(s.payloads, p)
	s.mu.Unlock()
	if s.started != nil {
		select {
		case s.started <- struct{}{}:
		default:
		}
	}
	select {
	case <-s.release:
		return submission.Success()
	case <-ctx.Done():
		return submission.NetworkFailure("")
	}
}

func (s *blockingStrategy) calls() int { return int(s.n.Load()) }

func (s *blockingStrategy) sent() []form.Payload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]form.Payload(nil), s.payloads...)
}

type panicStrategy struct{}

func (panicStrategy) Name() submission.StrategyKind { return "panic" }

func (panicStrategy) Send(context.Context, form.Payload) submission.Outcome {
	panic("strategy exploded")
}
