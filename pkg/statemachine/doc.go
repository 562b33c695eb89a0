// Package statemachine implements a small, concurrency-safe finite state
// machine.
//
// States and events are anything with a Name; StringState and StringEvent
// cover the common case. Transitions are registered with options at
// construction:
//
//	const (
//	    Idle       = statemachine.StringState("idle")
//	    Validating = statemachine.StringState("validating")
//	    Submit     = statemachine.StringEvent("submit")
//	)
//
//	machine, err := statemachine.New(Idle,
//	    statemachine.WithTransition(Idle, Validating, Submit, statemachine.WithGuard(hasInput)),
//	    statemachine.WithObserver(func(ctx context.Context, from, to statemachine.State, evt statemachine.Event) {
//	        log.InfoContext(ctx, "transition", "from", from.Name(), "to", to.Name())
//	    }),
//	)
//
// Fire picks the first transition for the current state and event whose
// guards all pass and commits it under the machine lock. Observers run after
// the commit with no lock held.
//
// A failed Fire returns a *TransitionError wrapping ErrNoTransition or
// ErrGuardRejected and leaves the state untouched. Fire is therefore an atomic
// test-and-set: of several callers firing the same event from the same state,
// exactly one moves the machine.
package statemachine
