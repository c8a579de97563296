package templates

// Template keys recognized by the default response rules.
const (
	KeyAccessIssue      = "access_issue"
	KeyBillingInquiry   = "billing_inquiry"
	KeyFeatureRequest   = "feature_request"
	KeyTechnicalIssue   = "technical_issue"
	KeyAmbiguousRequest = "ambiguous_request"
)

// Default returns the stock template set in its canonical order.
func Default() *Set {
	return NewSet(
		Entry{Key: KeyAccessIssue, Text: accessIssueTemplate},
		Entry{Key: KeyBillingInquiry, Text: billingInquiryTemplate},
		Entry{Key: KeyFeatureRequest, Text: featureRequestTemplate},
		Entry{Key: KeyTechnicalIssue, Text: technicalIssueTemplate},
		Entry{Key: KeyAmbiguousRequest, Text: ambiguousRequestTemplate},
	)
}

const accessIssueTemplate = `
Hello {name},

I understand you're having trouble accessing the {feature}. Let me help you resolve this.

{diagnosis}

{resolution_steps}

Priority Status: {priority_level}

Estimated Resolution: {eta}

Please let me know if you need any clarification.

Best regards,
Baguette Support
`

const billingInquiryTemplate = `
Hi {name},

Thank you for your inquiry about {billing_topic}.

{explanation}

{next_steps}

If you have any questions, don't hesitate to ask.

Best regards,
Baguette Billing Team
`

const featureRequestTemplate = `
Hello {name},

Thank you for suggesting the addition of {feature_name}.

{feedback}

{timeline}

We appreciate your input in making our product better.

Best regards,
Baguette Product Team
`

const technicalIssueTemplate = `
Hello {name},

I'm sorry you're experiencing an issue with {issue_description}.

{troubleshooting}

{solution}

Priority Status: {priority_level}

If you need further assistance, please don't hesitate to reach out.

Best regards,
Baguette Technical Support
`

const ambiguousRequestTemplate = `
Hello {name},

Thank you for contacting Baguette Support.

To better assist you with your request, I would appreciate if you could provide some additional details:

{questions}

Once I have this information, I'll be able to help you more effectively.

Best regards,
Baguette Support
`
