// Package content holds the domain model for everything publishable on the
// platform: videos, shorts and image posts, their owners and their comments.
package content

// Kind discriminates the three content variants. The kind decides which
// optional fields are meaningful: Thumbnail and Views apply to videos and
// shorts, a post carries neither.
type Kind string

const (
	KindVideo Kind = "VIDEO"
	KindShort Kind = "SHORT"
	KindPost  Kind = "POST"
)

// Valid reports whether k is one of the three known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindVideo, KindShort, KindPost:
		return true
	}
	return false
}

// User is a channel identity. Immutable once constructed; the same User
// value may back multiple content items.
type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Handle      string `json:"handle"`
	Avatar      string `json:"avatar"`
	Followers   int    `json:"followers"`
	IsFollowing *bool  `json:"is_following,omitempty"`
}

// Comment is a single comment under a content item. Append-only; there is
// no edit or delete.
type Comment struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Text     string `json:"text"`
}

// Content is one published item. Likes and Dislikes are the stored
// counters; per-session like toggles live in view state and are never
// written back here.
type Content struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"type"`
	URL         string    `json:"url"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description"`
	User        User      `json:"user"`
	Likes       int       `json:"likes"`
	Dislikes    int       `json:"dislikes"`
	Comments    []Comment `json:"comments"`
	Views       *int      `json:"views,omitempty"`
}

// DisplayText is the string a content item is known by in search: the
// description, falling back to the title when the description is empty.
func (c Content) DisplayText() string {
	if c.Description != "" {
		return c.Description
	}
	return c.Title
}
