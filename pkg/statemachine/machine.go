package statemachine

import (
	"context"
	"sync"
)

type transition struct {
	to     State
	guards []Guard
}

// machine keys transitions by source state name, then event name.
type machine struct {
	mu        sync.RWMutex
	current   State
	table     map[string]map[string][]transition
	observers []Observer
}

func (m *machine) add(from State, event Event, t transition) {
	byEvent, ok := m.table[from.Name()]
	if !ok {
		byEvent = make(map[string][]transition)
		m.table[from.Name()] = byEvent
	}
	byEvent[event.Name()] = append(byEvent[event.Name()], t)
}

func (m *machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

func (m *machine) Is(state State) bool {
	return state != nil && m.Current().Name() == state.Name()
}

// Fire moves the machine along the first transition whose guards pass.
// Checking the source state and committing the target happen under one
// lock, so of several concurrent Fire calls for the same event from the same
// state exactly one succeeds.
func (m *machine) Fire(ctx context.Context, event Event, data any) error {
	if event == nil {
		return ErrInvalidEvent
	}

	m.mu.Lock()
	from := m.current
	t, err := m.pick(ctx, event, data)
	if err != nil {
		m.mu.Unlock()
		return err
	}
	m.current = t.to
	observers := m.observers
	m.mu.Unlock()

	for _, obs := range observers {
		obs(ctx, from, t.to, event)
	}
	return nil
}

// CanFire reports whether Fire would currently find a transition.
func (m *machine) CanFire(ctx context.Context, event Event, data any) bool {
	if event == nil {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, err := m.pick(ctx, event, data)
	return err == nil
}

// Must be called with m.mu held.
func (m *machine) pick(ctx context.Context, event Event, data any) (transition, error) {
	candidates := m.table[m.current.Name()][event.Name()]
	if len(candidates) == 0 {
		return transition{}, &TransitionError{State: m.current.Name(), Event: event.Name(), Err: ErrNoTransition}
	}

next:
	for _, t := range candidates {
		for _, g := range t.guards {
			if !g(ctx, m.current, event, data) {
				continue next
			}
		}
		return t, nil
	}
	return transition{}, &TransitionError{State: m.current.Name(), Event: event.Name(), Err: ErrGuardRejected}
}
