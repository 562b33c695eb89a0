package statemachine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition = errors.New("statemachine: transition needs a from state, a to state and an event")
	ErrInvalidEvent      = errors.New("statemachine: event is nil")
	ErrNoTransition      = errors.New("statemachine: state does not accept event")
	ErrGuardRejected     = errors.New("statemachine: guards rejected every transition")
)

// TransitionError is returned by Fire when an event leaves the machine in
// its current state. Err is ErrNoTransition or ErrGuardRejected.
type TransitionError struct {
	State string
	Event string
	Err   error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s -(%s)-> ?: %v", e.State, e.Event, e.Err)
}

func (e *TransitionError) Unwrap() error {
	return e.Err
}
