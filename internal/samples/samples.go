// Package samples provides a fixed set of demo tickets covering the triage
// categories, used by the samples endpoint and the end-to-end tests.
package samples

import "github.com/baguette-hq/triage-server/internal/triage"

// Tickets returns the demo tickets. The slice is rebuilt on every call so
// callers can mutate their copy freely.
func Tickets() []triage.Ticket {
	return []triage.Ticket{
		{
			ID:      "TKT-001",
			Subject: "Cannot access admin dashboard",
			Body: `
Hi Support,

Since this morning I can't access the admin dashboard. I keep getting a 403 error.

I need this fixed ASAP as I need to process payroll today.

Thanks,
John Smith
Finance Director
`,
			CustomerAttributes: map[string]string{
				triage.AttrRole:        "Admin",
				triage.AttrPlan:        "Enterprise",
				triage.AttrCompanySize: "250+",
			},
		},
		{
			ID:      "TKT-002",
			Subject: "Question about billing cycle",
			Body: `
Hello,

Our invoice shows billing from the 15th but we signed up on the 20th.

Can you explain how the pro-rating works?

Best regards,
Sarah Jones
`,
			CustomerAttributes: map[string]string{
				triage.AttrRole:        "Billing Admin",
				triage.AttrPlan:        "Professional",
				triage.AttrCompanySize: "50-249",
			},
		},
		{
			ID:      "TKT-003",
			Subject: "URGENT: System down during demo",
			Body: `
System crashed during customer demo!!!

Call me ASAP: +1-555-0123

-Sent from my iPhone
`,
			CustomerAttributes: map[string]string{
				triage.AttrRole: "Sales Director",
				triage.AttrPlan: "Enterprise",
			},
		},
		{
			ID:      "TKT-004",
			Subject: "It's not working",
			Body:    "Nothing works. Please help.",
			CustomerAttributes: map[string]string{
				triage.AttrRole: "User",
				triage.AttrPlan: "Basic",
			},
		},
		{
			ID:      "TKT-005",
			Subject: "Feature request: Export to CSV",
			Body: `
Hello Support,

We'd like to request a feature to export our analytics data to CSV format.
Currently, we're manually copying data which is time-consuming.

Is this on your roadmap? If not, could it be considered for a future release?

Regards,
Lisa Chen
Product Manager
`,
			CustomerAttributes: map[string]string{
				triage.AttrRole:        "Manager",
				triage.AttrPlan:        "Professional",
				triage.AttrCompanySize: "50-249",
			},
		},
	}
}
