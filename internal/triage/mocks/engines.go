package mocks

import (
	"context"
	"errors"

	"github.com/baguette-hq/triage-server/internal/templates"
	"github.com/baguette-hq/triage-server/internal/triage"
)

// MockAnalyzer is a mock implementation of the Analyzer interface
// for testing the processor layer. It uses function-based mocking for flexibility.
type MockAnalyzer struct {
	AnalyzeFunc func(ctx context.Context, body string, attrs map[string]string) (triage.Analysis, error)
}

// Analyze implements the Analyzer interface
func (m *MockAnalyzer) Analyze(ctx context.Context, body string, attrs map[string]string) (triage.Analysis, error) {
	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(ctx, body, attrs)
	}
	return triage.Analysis{}, errors.New("AnalyzeFunc not implemented")
}

// MockResponder is a mock implementation of the Responder interface
// for testing the processor layer. It uses function-based mocking for flexibility.
type MockResponder struct {
	GenerateFunc func(ctx context.Context, analysis triage.Analysis, set *templates.Set, tctx triage.TicketContext) (triage.ResponseSuggestion, error)
}

// Generate implements the Responder interface
func (m *MockResponder) Generate(ctx context.Context, analysis triage.Analysis, set *templates.Set, tctx triage.TicketContext) (triage.ResponseSuggestion, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, analysis, set, tctx)
	}
	return triage.ResponseSuggestion{}, errors.New("GenerateFunc not implemented")
}
