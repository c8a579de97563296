package triage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/baguette-hq/triage-server/internal/templates"
	"github.com/baguette-hq/triage-server/internal/triage"
)

func setupPipeline(tb testing.TB) *triage.Processor {
	tb.Helper()

	return triage.NewProcessor(
		triage.NewRuleAnalyzer(zap.NewNop()),
		triage.NewTemplateResponder(zap.NewNop()),
		templates.Default(),
		zap.NewNop(),
	)
}

// TestProcessIsDeterministic verifies that reprocessing a ticket yields the
// same triage outcome
func TestProcessIsDeterministic(t *testing.T) {
	p := setupPipeline(t)

	ticket := triage.Ticket{
		ID:      "TKT-007",
		Subject: "Billing question",
		Body:    "Our invoice shows a charge I don't recognize. Please explain.\n\nThanks,\nAlex Kim\n",
		CustomerAttributes: map[string]string{
			triage.AttrRole: "Billing Admin",
			triage.AttrPlan: "Professional",
		},
	}

	first := p.Process(context.Background(), ticket)
	second := p.Process(context.Background(), ticket)

	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.Analysis.Category, second.Analysis.Category)
	assert.Equal(t, first.Analysis.Priority, second.Analysis.Priority)
	assert.Equal(t, first.Analysis.KeyPoints, second.Analysis.KeyPoints)
	assert.Equal(t, first.Response.ResponseText, second.Response.ResponseText)
	assert.Equal(t, first.Response.SuggestedActions, second.Response.SuggestedActions)
}

// TestUrgencyNeverLowersPriority verifies that adding urgency language can
// only raise the triage priority
func TestUrgencyNeverLowersPriority(t *testing.T) {
	p := setupPipeline(t)

	bodies := []string{
		"The report screen is blank.",
		"I can't open the dashboard after the update.",
		"Question about my last invoice.",
		"Could you add a CSV export feature?",
		"Payroll processing is blocked.",
	}

	for _, body := range bodies {
		plain := p.Process(context.Background(), triage.Ticket{ID: "TKT-a", Body: body})
		loud := p.Process(context.Background(), triage.Ticket{ID: "TKT-b", Body: body + " This is URGENT, please fix ASAP!!"})

		assert.GreaterOrEqual(t, loud.Analysis.Priority, plain.Analysis.Priority, "body: %s", body)
	}
}

func BenchmarkProcess(b *testing.B) {
	p := setupPipeline(b)

	ticket := triage.Ticket{
		ID:      "TKT-001",
		Subject: "Cannot access admin dashboard",
		Body:    "Since this morning I can't access the admin dashboard. I keep getting a 403 error.\n\nI need this fixed ASAP as I need to process payroll today.\n\nThanks,\nJohn Smith\n",
		CustomerAttributes: map[string]string{
			triage.AttrRole: "Admin",
			triage.AttrPlan: "Enterprise",
		},
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = p.Process(context.Background(), ticket)
	}
}

func BenchmarkProcessBatch(b *testing.B) {
	p := setupPipeline(b)

	tickets := make([]triage.Ticket, 50)
	for i := range tickets {
		tickets[i] = triage.Ticket{
			ID:   "TKT-bench",
			Body: "The dashboard shows a 403 error and I cannot run payroll. Please fix ASAP.",
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = p.ProcessBatch(context.Background(), tickets, 8)
	}
}
