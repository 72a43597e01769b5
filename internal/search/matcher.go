// Package search implements catalog search: a literal substring pass over
// titles and descriptions, unioned with a semantic pass delegated to the
// generative-text collaborator.
package search

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/utgstodio-dev/UTG-Stodio/internal/content"
	"github.com/utgstodio-dev/UTG-Stodio/internal/genai"
)

// Result distinguishes "no search active" from "searched, found nothing":
// Applied is false for a blank query, true otherwise. Items preserves the
// relative order of the searched catalog and contains no duplicates.
type Result struct {
	Applied bool
	Items   []content.Content
}

type Matcher struct {
	collab genai.Collaborator
	log    *zap.Logger
}

func NewMatcher(collab genai.Collaborator, log *zap.Logger) *Matcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Matcher{collab: collab, log: log}
}

// Search runs both passes over items. Collaborator failures degrade to an
// empty semantic contribution and are never surfaced to the caller.
func (m *Matcher) Search(ctx context.Context, query string, items []content.Content) Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return Result{}
	}

	literal := literalMatches(query, items)
	semantic := m.semanticMatches(ctx, query, items)

	out := make([]content.Content, 0, len(items))
	for i, c := range items {
		if literal[i] || semantic[c.DisplayText()] {
			out = append(out, c)
		}
	}
	return Result{Applied: true, Items: out}
}

// literalMatches flags every item whose description or title contains query
// as a case-insensitive substring.
func literalMatches(query string, items []content.Content) []bool {
	q := strings.ToLower(query)
	out := make([]bool, len(items))
	for i, c := range items {
		if strings.Contains(strings.ToLower(c.Description), q) ||
			(c.Title != "" && strings.Contains(strings.ToLower(c.Title), q)) {
			out[i] = true
		}
	}
	return out
}

func (m *Matcher) semanticMatches(ctx context.Context, query string, items []content.Content) map[string]bool {
	if m.collab == nil {
		return nil
	}
	texts := make([]string, len(items))
	for i, c := range items {
		texts[i] = c.DisplayText()
	}
	matches, err := m.collab.MatchTitles(ctx, query, texts)
	if err != nil {
		m.log.Warn("semantic search unavailable", zap.String("query", query), zap.Error(err))
		return nil
	}
	out := make(map[string]bool, len(matches))
	for _, s := range matches {
		out[s] = true
	}
	return out
}
