// Package moderation gates uploads behind a best-effort copyright check
// delegated to the generative-text collaborator. The gate fails open: any
// collaborator failure yields a safe verdict. It is not a security boundary.
package moderation

import (
	"context"

	"go.uber.org/zap"

	"github.com/utgstodio-dev/UTG-Stodio/internal/genai"
)

type Verdict string

const (
	VerdictSafe      Verdict = "safe"
	VerdictViolation Verdict = "violation"
)

type Checker struct {
	collab genai.Collaborator
	log    *zap.Logger
}

func NewChecker(collab genai.Collaborator, log *zap.Logger) *Checker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Checker{collab: collab, log: log}
}

// Check classifies description. Collaborator errors (missing credential,
// network failure, ill-shaped payload) all degrade to VerdictSafe.
func (c *Checker) Check(ctx context.Context, description string) Verdict {
	if c.collab == nil {
		return VerdictSafe
	}
	violation, err := c.collab.CheckCopyright(ctx, description)
	if err != nil {
		c.log.Warn("copyright check unavailable, failing open", zap.Error(err))
		return VerdictSafe
	}
	if violation {
		return VerdictViolation
	}
	return VerdictSafe
}
