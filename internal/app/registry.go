package app

import "sync"

// Registry maps user ids to their live view state. A state is created on
// first access and discarded at logout.
type Registry struct {
	mu     sync.Mutex
	states map[string]*State
}

func NewRegistry() *Registry {
	return &Registry{states: make(map[string]*State)}
}

func (r *Registry) Get(userID string) *State {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.states[userID]
	if !ok {
		s = NewState()
		r.states[userID] = s
	}
	return s
}

func (r *Registry) Drop(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.states, userID)
}
