package formctl

import (
	"context"

	"github.com/dmitrymomot/formkit/pkg/statemachine"
)

// State is a form controller state.
type State string

const (
	StateIdle           State = "idle"
	StateValidating     State = "validating"
	StateSubmitting     State = "submitting"
	StateSettledSuccess State = "settled_success"
	StateSettledFailure State = "settled_failure"
)

func (s State) Name() string   { return string(s) }
func (s State) String() string { return string(s) }

const (
	eventSubmit  = statemachine.StringEvent("submit")
	eventReject  = statemachine.StringEvent("reject")
	eventAccept  = statemachine.StringEvent("accept")
	eventSettle  = statemachine.StringEvent("settle")
	eventRelease = statemachine.StringEvent("release")
)

// Observer is notified after every state change of a controller.
type Observer func(ctx context.Context, from, to State)
