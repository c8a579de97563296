package triage

import (
	"context"

	"github.com/baguette-hq/triage-server/internal/templates"
)

// Analyzer classifies ticket text plus customer attributes into an Analysis.
// Implementations must be safe for concurrent use; the rule-based
// implementation is the default, but anything honoring the contract can be
// substituted (a remote model, a scripted stand-in).
type Analyzer interface {
	Analyze(ctx context.Context, body string, attrs map[string]string) (Analysis, error)
}

// Responder renders a ResponseSuggestion from an analysis, a template set,
// and a ticket context.
type Responder interface {
	Generate(ctx context.Context, analysis Analysis, set *templates.Set, tctx TicketContext) (ResponseSuggestion, error)
}
