package samples

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/baguette-hq/triage-server/internal/triage"
)

// TestTickets checks the fixture set shape
func TestTickets(t *testing.T) {
	tickets := Tickets()

	require.Len(t, tickets, 5)

	seen := make(map[string]bool)
	for _, ticket := range tickets {
		assert.NotEmpty(t, ticket.ID)
		assert.NotEmpty(t, ticket.Subject)
		assert.NotEmpty(t, ticket.Body)
		assert.NotEmpty(t, ticket.CustomerAttributes[triage.AttrRole])
		assert.NotEmpty(t, ticket.CustomerAttributes[triage.AttrPlan])
		assert.False(t, seen[ticket.ID], "duplicate id %s", ticket.ID)
		seen[ticket.ID] = true
	}
}

// TestTicketsIsolation verifies callers get independent copies
func TestTicketsIsolation(t *testing.T) {
	first := Tickets()
	first[0].Subject = "mutated"
	first[0].CustomerAttributes[triage.AttrRole] = "mutated"

	second := Tickets()

	assert.Equal(t, "Cannot access admin dashboard", second[0].Subject)
	assert.Equal(t, "Admin", second[0].CustomerAttributes[triage.AttrRole])
}

// TestTicketsCoverAllCategories runs the fixtures through the rule analyzer
func TestTicketsCoverAllCategories(t *testing.T) {
	analyzer := triage.NewRuleAnalyzer(zap.NewNop())

	covered := make(map[triage.Category]bool)
	for _, ticket := range Tickets() {
		analysis, err := analyzer.Analyze(context.Background(), ticket.Body, ticket.CustomerAttributes)
		require.NoError(t, err)
		covered[analysis.Category] = true
	}

	assert.True(t, covered[triage.CategoryAccess])
	assert.True(t, covered[triage.CategoryBilling])
	assert.True(t, covered[triage.CategoryFeature])
	assert.True(t, covered[triage.CategoryTechnical])
}
