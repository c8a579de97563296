package triage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestNewRuleAnalyzer tests the constructor
func TestNewRuleAnalyzer(t *testing.T) {
	t.Run("valid logger", func(t *testing.T) {
		analyzer := NewRuleAnalyzer(zap.NewNop())

		assert.NotNil(t, analyzer)
		assert.NotNil(t, analyzer.logger)
	})

	t.Run("nil logger uses no-op default", func(t *testing.T) {
		analyzer := NewRuleAnalyzer(nil)

		assert.NotNil(t, analyzer)
		assert.NotNil(t, analyzer.logger)
	})
}

// TestAnalyzeCategory tests ordered keyword classification
func TestAnalyzeCategory(t *testing.T) {
	analyzer := NewRuleAnalyzer(zap.NewNop())

	tests := []struct {
		name     string
		body     string
		category Category
		response string
	}{
		{
			name:     "access keyword",
			body:     "I cannot access my account",
			category: CategoryAccess,
			response: "access_issue",
		},
		{
			name:     "access wins over billing when both match",
			body:     "I cannot login to download my invoice",
			category: CategoryAccess,
			response: "access_issue",
		},
		{
			name:     "billing keyword",
			body:     "Why was my card charged twice?",
			category: CategoryBilling,
			response: "billing_inquiry",
		},
		{
			name:     "billing wins over feature when both match",
			body:     "Please add a new payment feature",
			category: CategoryBilling,
			response: "billing_inquiry",
		},
		{
			name:     "feature keyword",
			body:     "Any improvement planned for the report screen?",
			category: CategoryFeature,
			response: "feature_request",
		},
		{
			name:     "no keyword falls back to technical",
			body:     "Nothing works. Please help.",
			category: CategoryTechnical,
			response: "technical_issue",
		},
		{
			name:     "keywords match anywhere in words",
			body:     "The billing page is blank",
			category: CategoryBilling,
			response: "billing_inquiry",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis, err := analyzer.Analyze(context.Background(), tt.body, nil)

			require.NoError(t, err)
			assert.Equal(t, tt.category, analysis.Category)
			assert.Equal(t, tt.response, analysis.SuggestedResponseType)
			assert.NotEmpty(t, analysis.RequiredExpertise)
		})
	}
}

// TestAnalyzeKeyPoints tests key point extraction per category
func TestAnalyzeKeyPoints(t *testing.T) {
	analyzer := NewRuleAnalyzer(zap.NewNop())

	tests := []struct {
		name   string
		body   string
		points []string
	}{
		{
			name:   "access points in rule order",
			body:   "I can't open the dashboard, it shows a 403 after login",
			points: []string{"Cannot access dashboard", "Receiving 403 error", "Login problem"},
		},
		{
			name:   "billing cycle matched via pro-rating marker",
			body:   "Our invoice shows billing from the 15th, how does pro-rating work?",
			points: []string{"Invoice question", "Billing cycle question"},
		},
		{
			name:   "feature request and roadmap",
			body:   "We'd like to request a feature, is it on your roadmap?",
			points: []string{"Feature request", "Roadmap inquiry"},
		},
		{
			name:   "technical crash",
			body:   "The app keeps crashing on startup",
			points: []string{"System crash"},
		},
		{
			name:   "generic fallback point for unmatched technical",
			body:   "Nothing works. Please help.",
			points: []string{"Technical issue"},
		},
		{
			name:   "generic fallback point for unmatched access",
			body:   "I lost access somehow",
			points: []string{"General access issue"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis, err := analyzer.Analyze(context.Background(), tt.body, nil)

			require.NoError(t, err)
			assert.Equal(t, tt.points, analysis.KeyPoints)
		})
	}
}

// TestAnalyzePriority tests the escalation-only priority rules
func TestAnalyzePriority(t *testing.T) {
	analyzer := NewRuleAnalyzer(zap.NewNop())

	tests := []struct {
		name     string
		body     string
		attrs    map[string]string
		priority Priority
	}{
		{
			name:     "baseline is medium",
			body:     "The report screen is blank",
			priority: PriorityMedium,
		},
		{
			name:     "urgency indicator escalates to high",
			body:     "The report screen is blank, please fix ASAP",
			priority: PriorityHigh,
		},
		{
			name:     "deadline phrase escalates to high",
			body:     "I need the export ready within 2 hours",
			priority: PriorityHigh,
		},
		{
			name:     "payroll forces urgent",
			body:     "The dashboard is down and I can't run payroll",
			priority: PriorityUrgent,
		},
		{
			name:     "revenue forces urgent",
			body:     "This bug is affecting revenue",
			priority: PriorityUrgent,
		},
		{
			name:     "cannot work forces urgent",
			body:     "I cannot work until this is fixed",
			priority: PriorityUrgent,
		},
		{
			name:     "vip role escalates to high",
			body:     "The report screen is blank",
			attrs:    map[string]string{AttrRole: "Engineering Manager"},
			priority: PriorityHigh,
		},
		{
			name:     "vip role does not lower urgent",
			body:     "Payroll is blocked",
			attrs:    map[string]string{AttrRole: "CTO"},
			priority: PriorityUrgent,
		},
		{
			name:     "enterprise plan holds at least medium",
			body:     "The report screen is blank",
			attrs:    map[string]string{AttrPlan: "Enterprise"},
			priority: PriorityMedium,
		},
		{
			name:     "non-vip role stays at baseline",
			body:     "The report screen is blank",
			attrs:    map[string]string{AttrRole: "User", AttrPlan: "Basic"},
			priority: PriorityMedium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis, err := analyzer.Analyze(context.Background(), tt.body, tt.attrs)

			require.NoError(t, err)
			assert.Equal(t, tt.priority, analysis.Priority, "got %s", analysis.Priority)
		})
	}
}

// TestAnalyzeBusinessImpactOverride tests that the urgent-force rule replaces
// the extracted impact with the critical label
func TestAnalyzeBusinessImpactOverride(t *testing.T) {
	analyzer := NewRuleAnalyzer(zap.NewNop())

	analysis, err := analyzer.Analyze(context.Background(),
		"I am unable to process payroll because the dashboard is down", nil)

	require.NoError(t, err)
	assert.Equal(t, PriorityUrgent, analysis.Priority)
	assert.Equal(t, "Critical business function impacted", analysis.BusinessImpact)
}

// TestAnalyzeFullTickets walks realistic ticket bodies end to end
func TestAnalyzeFullTickets(t *testing.T) {
	analyzer := NewRuleAnalyzer(zap.NewNop())

	t.Run("blocked payroll admin", func(t *testing.T) {
		body := `
Hi Support,

Since this morning I can't access the admin dashboard. I keep getting a 403 error.

I need this fixed ASAP as I need to process payroll today.

Thanks,
John Smith
Finance Director
`
		attrs := map[string]string{AttrRole: "Admin", AttrPlan: "Enterprise", AttrCompanySize: "250+"}

		analysis, err := analyzer.Analyze(context.Background(), body, attrs)

		require.NoError(t, err)
		assert.Equal(t, CategoryAccess, analysis.Category)
		assert.Equal(t, PriorityUrgent, analysis.Priority)
		assert.Contains(t, analysis.KeyPoints, "Cannot access dashboard")
		assert.Contains(t, analysis.KeyPoints, "Receiving 403 error")
		assert.Contains(t, analysis.UrgencyIndicators, "asap")
		assert.Equal(t, "Critical business function impacted", analysis.BusinessImpact)
		assert.Equal(t, "access_issue", analysis.SuggestedResponseType)
	})

	t.Run("billing cycle question", func(t *testing.T) {
		body := `
Hello,

Our invoice shows billing from the 15th but we signed up on the 20th.

Can you explain how the pro-rating works?

Best regards,
Sarah Jones
`
		attrs := map[string]string{AttrRole: "Billing Admin", AttrPlan: "Professional"}

		analysis, err := analyzer.Analyze(context.Background(), body, attrs)

		require.NoError(t, err)
		assert.Equal(t, CategoryBilling, analysis.Category)
		assert.Equal(t, PriorityMedium, analysis.Priority)
		assert.Equal(t, []string{"Invoice question", "Billing cycle question"}, analysis.KeyPoints)
		assert.Empty(t, analysis.UrgencyIndicators)
	})

	t.Run("crash during demo from a director", func(t *testing.T) {
		body := `
System crashed during customer demo!!!

Call me ASAP: +1-555-0123

-Sent from my iPhone
`
		attrs := map[string]string{AttrRole: "Sales Director", AttrPlan: "Enterprise"}

		analysis, err := analyzer.Analyze(context.Background(), body, attrs)

		require.NoError(t, err)
		assert.Equal(t, CategoryTechnical, analysis.Category)
		assert.Equal(t, PriorityHigh, analysis.Priority)
		assert.Equal(t, []string{"System crash"}, analysis.KeyPoints)
		assert.Contains(t, analysis.UrgencyIndicators, "asap")
		assert.Contains(t, analysis.UrgencyIndicators, "multiple exclamation marks")
		assert.Equal(t, "Potential high impact based on customer role: Sales Director", analysis.BusinessImpact)
	})

	t.Run("vague ticket degrades gracefully", func(t *testing.T) {
		attrs := map[string]string{AttrRole: "User", AttrPlan: "Basic"}

		analysis, err := analyzer.Analyze(context.Background(), "Nothing works. Please help.", attrs)

		require.NoError(t, err)
		assert.Equal(t, CategoryTechnical, analysis.Category)
		assert.Equal(t, PriorityMedium, analysis.Priority)
		assert.Equal(t, []string{"Technical issue"}, analysis.KeyPoints)
		assert.InDelta(t, 1.0, analysis.Sentiment, 0.0001)
	})
}
