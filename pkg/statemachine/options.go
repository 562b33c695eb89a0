package statemachine

// Option configures a machine built by New.
type Option func(*machine) error

// TransitionOption configures one transition.
type TransitionOption func(*transition)

// New returns a machine in the initial state with the given transitions and
// observers.
func New(initial State, opts ...Option) (StateMachine, error) {
	if initial == nil {
		return nil, ErrInvalidTransition
	}

	m := &machine{
		current: initial,
		table:   make(map[string]map[string][]transition),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// WithTransition registers from -(event)-> to. Transitions sharing a source
// state and event are tried in registration order.
func WithTransition(from, to State, event Event, opts ...TransitionOption) Option {
	return func(m *machine) error {
		if from == nil || to == nil || event == nil {
			return ErrInvalidTransition
		}
		t := transition{to: to}
		for _, opt := range opts {
			opt(&t)
		}
		m.add(from, event, t)
		return nil
	}
}

// WithObserver registers obs for every committed transition.
func WithObserver(obs Observer) Option {
	return func(m *machine) error {
		if obs != nil {
			m.observers = append(m.observers, obs)
		}
		return nil
	}
}

// WithGuard adds a guard to a transition.
func WithGuard(g Guard) TransitionOption {
	return func(t *transition) {
		if g != nil {
			t.guards = append(t.guards, g)
		}
	}
}
