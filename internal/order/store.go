package order

import "sync"

// Observer is notified after every dispatch with the action and the
// resulting snapshot. Observers run outside the store lock.
type Observer func(a Action, next State)

// Option configures a Store.
type Option func(*Store)

// WithObserver registers an Observer.
func WithObserver(o Observer) Option {
	return func(s *Store) {
		s.observers = append(s.observers, o)
	}
}

// Store is the single owner of one session State. Dispatch is the only
// writer; every reader gets its own copy.
type Store struct {
	mu        sync.RWMutex
	state     State
	observers []Observer
}

// NewStore creates a Store holding Initial().
func NewStore(opts ...Option) *Store {
	s := &Store{state: Initial()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dispatch applies a and returns a snapshot of the new state.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	s.state = Apply(s.state, a)
	snapshot := s.state.Clone()
	s.mu.Unlock()

	for _, o := range s.observers {
		o(a, snapshot.Clone())
	}
	return snapshot
}

// DispatchIf applies a only when check accepts the current state. The check
// and the dispatch hold the same lock, so no other action lands in between.
// A rejected action leaves the state untouched and returns check's error.
func (s *Store) DispatchIf(a Action, check func(State) error) (State, error) {
	s.mu.Lock()
	if err := check(s.state.Clone()); err != nil {
		s.mu.Unlock()
		return State{}, err
	}
	s.state = Apply(s.state, a)
	snapshot := s.state.Clone()
	s.mu.Unlock()

	for _, o := range s.observers {
		o(a, snapshot.Clone())
	}
	return snapshot, nil
}

// DispatchAll applies actions in order under one lock, so readers never see
// a state with only some of them applied. Observers see every step.
func (s *Store) DispatchAll(actions ...Action) State {
	steps := make([]State, len(actions))

	s.mu.Lock()
	for i, a := range actions {
		s.state = Apply(s.state, a)
		steps[i] = s.state.Clone()
	}
	snapshot := s.state.Clone()
	s.mu.Unlock()

	for i, a := range actions {
		for _, o := range s.observers {
			o(a, steps[i].Clone())
		}
	}
	return snapshot
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}
