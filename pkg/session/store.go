package session

import "sync"

// Store keeps per-user states in memory, keyed by user id. State is
// transient: it dies with the process and is never persisted.
type Store struct {
	mu     sync.RWMutex
	states map[string]State
}

func NewStore() *Store {
	return &Store{states: make(map[string]State)}
}

// Get returns the current state for a user, or the initial state if none.
func (st *Store) Get(userID string) State {
	st.mu.RLock()
	defer st.mu.RUnlock()
	if s, ok := st.states[userID]; ok {
		return s
	}
	return New()
}

// Apply runs a transition atomically against the user's current state and
// returns the new state.
func (st *Store) Apply(userID string, transition func(State) State) State {
	st.mu.Lock()
	defer st.mu.Unlock()
	cur, ok := st.states[userID]
	if !ok {
		cur = New()
	}
	next := transition(cur)
	st.states[userID] = next
	return next
}
