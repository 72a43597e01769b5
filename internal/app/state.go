// Package app holds per-session view state: the active surface, the current
// search, and the ephemeral like/follow toggles. The original client kept
// this in scattered component state; here it is one explicit object with a
// lifecycle (created at login, dropped at logout).
package app

import (
	"context"
	"sync"

	"github.com/utgstodio-dev/UTG-Stodio/internal/content"
	"github.com/utgstodio-dev/UTG-Stodio/internal/search"
)

// Tab identifies a UI surface.
type Tab string

const (
	TabHome      Tab = "HOME"
	TabShorts    Tab = "SHORTS"
	TabUpload    Tab = "UPLOAD"
	TabDashboard Tab = "DASHBOARD"
	TabProfile   Tab = "PROFILE"
)

func ParseTab(s string) (Tab, bool) {
	switch Tab(s) {
	case TabHome, TabShorts, TabUpload, TabDashboard, TabProfile:
		return Tab(s), true
	}
	return "", false
}

// TabFor is the post-upload redirect target: the shorts surface for a new
// short, the home surface for everything else.
func TabFor(kind content.Kind) Tab {
	if kind == content.KindShort {
		return TabShorts
	}
	return TabHome
}

// State is one session's view state. Safe for concurrent use.
type State struct {
	mu        sync.Mutex
	tab       Tab
	query     string
	result    search.Result
	searchGen uint64
	liked     map[string]bool
	followed  map[string]bool
}

func NewState() *State {
	return &State{
		tab:      TabHome,
		liked:    make(map[string]bool),
		followed: make(map[string]bool),
	}
}

func (s *State) ActiveTab() Tab {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tab
}

// SetTab switches the active surface. Returning to HOME clears any active
// search, matching the original navigation behaviour.
func (s *State) SetTab(t Tab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tab = t
	if t == TabHome {
		s.query = ""
		s.result = search.Result{}
	}
}

// BeginSearch records the query and returns a generation token. A search
// completion carrying a stale token is discarded, so two overlapping
// searches cannot apply out of issue order.
func (s *State) BeginSearch(query string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchGen++
	s.query = query
	return s.searchGen
}

// FinishSearch applies a completed search if gen is still current.
// It reports whether the result was applied.
func (s *State) FinishSearch(gen uint64, res search.Result) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.searchGen {
		return false
	}
	s.result = res
	return true
}

func (s *State) ClearSearch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchGen++
	s.query = ""
	s.result = search.Result{}
}

func (s *State) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

func (s *State) SearchResult() search.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// ToggleLike flips the session-local like mark for a content item and
// returns the new value. Deliberately never written back to the stored
// counters; the mark is lost with the session.
func (s *State) ToggleLike(contentID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.liked[contentID] = !s.liked[contentID]
	return s.liked[contentID]
}

func (s *State) Liked(contentID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.liked[contentID]
}

// ToggleFollow flips the session-local follow mark for a channel.
func (s *State) ToggleFollow(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.followed[userID] = !s.followed[userID]
	return s.followed[userID]
}

// VisibleFeed is the home-surface display logic: the active search result
// when one is applied, otherwise everything that is not a short.
func (s *State) VisibleFeed(ctx context.Context, store content.Store) ([]content.Content, bool, error) {
	res := s.SearchResult()
	if res.Applied {
		return res.Items, true, nil
	}

	all, err := store.All(ctx)
	if err != nil {
		return nil, false, err
	}
	out := make([]content.Content, 0, len(all))
	for _, c := range all {
		if c.Kind != content.KindShort {
			out = append(out, c)
		}
	}
	return out, false, nil
}
