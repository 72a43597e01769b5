package genai

import "context"

// Collaborator is the port for the generative-text service behind semantic
// search and the copyright check. Implementations must treat every failure
// as recoverable: callers fall back to an empty match set or a safe verdict.
type Collaborator interface {
	// MatchTitles returns the subset of candidates the collaborator judges
	// relevant to query. The returned strings are drawn from candidates.
	MatchTitles(ctx context.Context, query string, candidates []string) ([]string, error)
	// CheckCopyright reports whether description plausibly describes
	// copyrighted blockbuster-movie content.
	CheckCopyright(ctx context.Context, description string) (bool, error)
}
