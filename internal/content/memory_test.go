package content

import (
	"context"
	"testing"
)

func TestMemoryStore_PrependInsertsAtHead(t *testing.T) {
	s := NewMemoryStore(Seed())
	ctx := context.Background()

	before, _ := s.All(ctx)
	created, err := s.Prepend(ctx, Content{Kind: KindPost, URL: "https://example.com/p.jpg", Description: "fresh", User: DemoUser()})
	if err != nil {
		t.Fatalf("prepend: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}

	after, _ := s.All(ctx)
	if len(after) != len(before)+1 {
		t.Fatalf("expected %d items, got %d", len(before)+1, len(after))
	}
	if after[0].ID != created.ID {
		t.Fatalf("expected new item at head, got %s", after[0].ID)
	}
	for i, c := range before {
		if after[i+1].ID != c.ID {
			t.Fatalf("existing order disturbed at %d: %s != %s", i, after[i+1].ID, c.ID)
		}
	}
}

func TestMemoryStore_PrependKeepsExplicitID(t *testing.T) {
	s := NewMemoryStore(nil)
	created, _ := s.Prepend(context.Background(), Content{ID: "x1", Kind: KindPost})
	if created.ID != "x1" {
		t.Fatalf("expected id x1, got %s", created.ID)
	}
	if created.Comments == nil {
		t.Fatal("expected non-nil comments slice")
	}
}

func TestMemoryStore_ByKindStableSubsequence(t *testing.T) {
	s := NewMemoryStore(Seed())
	shorts, err := s.ByKind(context.Background(), KindShort)
	if err != nil {
		t.Fatalf("by kind: %v", err)
	}
	if len(shorts) != 2 {
		t.Fatalf("expected 2 shorts, got %d", len(shorts))
	}
	if shorts[0].ID != "s1" || shorts[1].ID != "s2" {
		t.Fatalf("expected [s1 s2], got [%s %s]", shorts[0].ID, shorts[1].ID)
	}
}

func TestMemoryStore_ByOwner(t *testing.T) {
	s := NewMemoryStore(Seed())
	ctx := context.Background()

	mine, _ := s.ByOwner(ctx, DemoUser().ID)
	if len(mine) != 0 {
		t.Fatalf("expected no owned content in seed, got %d", len(mine))
	}

	_, _ = s.Prepend(ctx, Content{Kind: KindShort, Description: "mine", User: DemoUser()})
	mine, _ = s.ByOwner(ctx, DemoUser().ID)
	if len(mine) != 1 {
		t.Fatalf("expected 1 owned item, got %d", len(mine))
	}
}

func TestMemoryStore_AllReturnsCopy(t *testing.T) {
	s := NewMemoryStore(Seed())
	ctx := context.Background()

	got, _ := s.All(ctx)
	got[0].Description = "mutated"

	again, _ := s.All(ctx)
	if again[0].Description == "mutated" {
		t.Fatal("store exposed internal slice")
	}
}

func TestMemoryStore_AddComment(t *testing.T) {
	s := NewMemoryStore(Seed())
	ctx := context.Background()

	c, err := s.AddComment(ctx, "s1", Comment{Username: "demouser", Text: "nice"})
	if err != nil {
		t.Fatalf("add comment: %v", err)
	}
	if c.ID == "" {
		t.Fatal("expected generated comment id")
	}

	all, _ := s.All(ctx)
	for _, item := range all {
		if item.ID == "s1" {
			if len(item.Comments) != 1 || item.Comments[0].Text != "nice" {
				t.Fatalf("unexpected comments: %+v", item.Comments)
			}
			return
		}
	}
	t.Fatal("s1 missing from catalog")
}

func TestMemoryStore_AddComment_UnknownContent(t *testing.T) {
	s := NewMemoryStore(Seed())
	_, err := s.AddComment(context.Background(), "nope", Comment{Username: "x", Text: "y"})
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreInterface(t *testing.T) {
	var _ Store = (*MemoryStore)(nil)
}
