package content

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("content not found")

// Store defines the contract for the content catalog. The catalog is
// append-only: items are prepended at creation and never edited or removed.
type Store interface {
	// Prepend inserts item at the head of the catalog, preserving all
	// existing items, and returns the stored item.
	Prepend(ctx context.Context, item Content) (Content, error)
	// All returns the full catalog in order, newest first.
	All(ctx context.Context) ([]Content, error)
	// ByKind returns the stable subsequence of the catalog matching kind.
	ByKind(ctx context.Context, kind Kind) ([]Content, error)
	// ByOwner returns the stable subsequence owned by userID.
	ByOwner(ctx context.Context, userID string) ([]Content, error)
	// AddComment appends a comment to the item with the given id.
	AddComment(ctx context.Context, contentID string, c Comment) (Comment, error)
}
