package statemachine

import (
	"context"
)

// State is a named machine state.
type State interface {
	Name() string
}

// Event is a named trigger.
type Event interface {
	Name() string
}

// Guard vetoes a transition when it returns false.
type Guard func(ctx context.Context, from State, event Event, data any) bool

// Observer is called after a committed transition, without the machine lock,
// so it may read the machine.
type Observer func(ctx context.Context, from, to State, event Event)

// StateMachine is a concurrency-safe finite state machine.
type StateMachine interface {
	Current() State
	Is(state State) bool
	Fire(ctx context.Context, event Event, data any) error
	CanFire(ctx context.Context, event Event, data any) bool
}

// StringState is a State named by its value.
type StringState string

func (s StringState) Name() string   { return string(s) }
func (s StringState) String() string { return string(s) }

// StringEvent is an Event named by its value.
type StringEvent string

func (e StringEvent) Name() string { return string(e) }
