package app

import (
	"context"
	"testing"

	"github.com/utgstodio-dev/UTG-Stodio/internal/content"
	"github.com/utgstodio-dev/UTG-Stodio/internal/search"
)

func TestState_DefaultsToHome(t *testing.T) {
	s := NewState()
	if s.ActiveTab() != TabHome {
		t.Fatalf("expected HOME, got %s", s.ActiveTab())
	}
}

func TestParseTab(t *testing.T) {
	if tab, ok := ParseTab("SHORTS"); !ok || tab != TabShorts {
		t.Fatalf("expected SHORTS, got %s ok=%v", tab, ok)
	}
	if _, ok := ParseTab("SETTINGS"); ok {
		t.Fatal("expected unknown tab to be rejected")
	}
}

func TestTabFor(t *testing.T) {
	if TabFor(content.KindShort) != TabShorts {
		t.Fatal("expected shorts redirect for short")
	}
	if TabFor(content.KindVideo) != TabHome {
		t.Fatal("expected home redirect for video")
	}
	if TabFor(content.KindPost) != TabHome {
		t.Fatal("expected home redirect for post")
	}
}

func TestSetTab_HomeClearsSearch(t *testing.T) {
	s := NewState()
	gen := s.BeginSearch("cats")
	s.FinishSearch(gen, search.Result{Applied: true, Items: []content.Content{{ID: "x"}}})

	s.SetTab(TabShorts)
	if !s.SearchResult().Applied {
		t.Fatal("switching to SHORTS should keep the search")
	}

	s.SetTab(TabHome)
	if s.SearchResult().Applied {
		t.Fatal("switching to HOME should clear the search")
	}
	if s.Query() != "" {
		t.Fatalf("expected cleared query, got %q", s.Query())
	}
}

func TestFinishSearch_DiscardsStaleGeneration(t *testing.T) {
	s := NewState()

	first := s.BeginSearch("first")
	second := s.BeginSearch("second")

	// The older search resolves after the newer one.
	if !s.FinishSearch(second, search.Result{Applied: true, Items: []content.Content{{ID: "new"}}}) {
		t.Fatal("current generation should apply")
	}
	if s.FinishSearch(first, search.Result{Applied: true, Items: []content.Content{{ID: "old"}}}) {
		t.Fatal("stale generation should be discarded")
	}

	res := s.SearchResult()
	if len(res.Items) != 1 || res.Items[0].ID != "new" {
		t.Fatalf("expected newer result retained, got %+v", res.Items)
	}
}

func TestClearSearch_InvalidatesInFlight(t *testing.T) {
	s := NewState()
	gen := s.BeginSearch("query")
	s.ClearSearch()

	if s.FinishSearch(gen, search.Result{Applied: true}) {
		t.Fatal("completion after clear should be discarded")
	}
	if s.SearchResult().Applied {
		t.Fatal("expected no active search")
	}
}

func TestToggleLike_Ephemeral(t *testing.T) {
	s := NewState()
	if !s.ToggleLike("s1") {
		t.Fatal("first toggle should like")
	}
	if s.ToggleLike("s1") {
		t.Fatal("second toggle should unlike")
	}
	if s.Liked("s1") {
		t.Fatal("expected unliked after double toggle")
	}
}

func TestToggleFollow_Ephemeral(t *testing.T) {
	s := NewState()
	if !s.ToggleFollow("u2") {
		t.Fatal("first toggle should follow")
	}
	if s.ToggleFollow("u2") {
		t.Fatal("second toggle should unfollow")
	}
}

func TestVisibleFeed_DefaultExcludesShorts(t *testing.T) {
	s := NewState()
	store := content.NewMemoryStore(content.Seed())

	feed, applied, err := s.VisibleFeed(context.Background(), store)
	if err != nil {
		t.Fatalf("visible feed: %v", err)
	}
	if applied {
		t.Fatal("expected unfiltered feed")
	}
	for _, c := range feed {
		if c.Kind == content.KindShort {
			t.Fatalf("short %s leaked into home feed", c.ID)
		}
	}
	if len(feed) != 2 {
		t.Fatalf("expected 2 home items from seed, got %d", len(feed))
	}
}

func TestVisibleFeed_UsesAppliedSearch(t *testing.T) {
	s := NewState()
	store := content.NewMemoryStore(content.Seed())

	gen := s.BeginSearch("sunset")
	s.FinishSearch(gen, search.Result{Applied: true, Items: []content.Content{{ID: "s1", Kind: content.KindShort}}})

	feed, applied, err := s.VisibleFeed(context.Background(), store)
	if err != nil {
		t.Fatalf("visible feed: %v", err)
	}
	if !applied {
		t.Fatal("expected search-filtered feed")
	}
	if len(feed) != 1 || feed[0].ID != "s1" {
		t.Fatalf("expected search result, got %+v", feed)
	}
}

func TestRegistry_Lifecycle(t *testing.T) {
	r := NewRegistry()

	s1 := r.Get("u1")
	if s1 == nil {
		t.Fatal("expected state created on first access")
	}
	if r.Get("u1") != s1 {
		t.Fatal("expected same state on second access")
	}

	s1.SetTab(TabProfile)
	r.Drop("u1")
	if r.Get("u1").ActiveTab() != TabHome {
		t.Fatal("expected fresh state after drop")
	}
}

func TestComputeDashboard(t *testing.T) {
	store := content.NewMemoryStore(content.Seed())
	ctx := context.Background()
	user := content.DemoUser()

	views := 40
	_, _ = store.Prepend(ctx, content.Content{Kind: content.KindVideo, User: user, Views: &views})
	_, _ = store.Prepend(ctx, content.Content{Kind: content.KindPost, User: user})

	stats, err := ComputeDashboard(ctx, store, user)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if stats.Uploads != 2 {
		t.Fatalf("expected 2 uploads, got %d", stats.Uploads)
	}
	if stats.TotalViews != 40 {
		t.Fatalf("expected 40 views, got %d", stats.TotalViews)
	}
	if stats.Followers != user.Followers {
		t.Fatalf("expected %d followers, got %d", user.Followers, stats.Followers)
	}
}
