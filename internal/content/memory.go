package content

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is the in-memory Store implementation. All state is
// process-lifetime only; there is no persistence behind it.
type MemoryStore struct {
	mu    sync.RWMutex
	items []Content // newest first
}

// NewMemoryStore creates a store pre-populated with the given items.
// The slice is copied; later appends do not alias the caller's backing array.
func NewMemoryStore(seed []Content) *MemoryStore {
	items := make([]Content, len(seed))
	copy(items, seed)
	return &MemoryStore{items: items}
}

func (s *MemoryStore) Prepend(_ context.Context, item Content) (Content, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.Comments == nil {
		item.Comments = []Comment{}
	}
	s.items = append([]Content{item}, s.items...)
	return item, nil
}

func (s *MemoryStore) All(_ context.Context) ([]Content, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Content, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *MemoryStore) ByKind(_ context.Context, kind Kind) ([]Content, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Content, 0, len(s.items))
	for _, c := range s.items {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *MemoryStore) ByOwner(_ context.Context, userID string) ([]Content, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Content, 0, len(s.items))
	for _, c := range s.items {
		if c.User.ID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *MemoryStore) AddComment(_ context.Context, contentID string, c Comment) (Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == contentID {
			if c.ID == "" {
				c.ID = uuid.NewString()
			}
			s.items[i].Comments = append(s.items[i].Comments, c)
			return c, nil
		}
	}
	return Comment{}, ErrNotFound
}
