package submission

import (
	"context"
	"time"

	"github.com/dmitrymomot/formkit/pkg/form"
)

// DefaultContactDemoDelay is how long the demo strategy waits before
// reporting success for the contact form. The newsletter form resolves
// immediately.
const DefaultContactDemoDelay = 800 * time.Millisecond

// DemoStrategy reports success without contacting any backend.
type DemoStrategy struct {
	delay time.Duration
}

func NewDemoStrategy(delay time.Duration) *DemoStrategy {
	return &DemoStrategy{delay: delay}
}

func (s *DemoStrategy) Name() StrategyKind { return StrategyDemo }

// Send waits for the configured delay, then succeeds. A done context cuts
// the wait short; the outcome is still Success.
func (s *DemoStrategy) Send(ctx context.Context, _ form.Payload) Outcome {
	if s.delay <= 0 {
		return Success()
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
	return Success()
}
