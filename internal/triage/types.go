package triage

import "fmt"

// Category classifies a ticket's subject matter.
type Category string

const (
	CategoryTechnical Category = "technical"
	CategoryBilling   Category = "billing"
	CategoryFeature   Category = "feature"
	CategoryAccess    Category = "access"
)

// Priority is an ordered escalation level. Comparisons are numeric and
// escalation only ever raises a priority, never lowers it.
type Priority int

const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
	PriorityUrgent
)

// AtLeast raises the priority to the given floor, keeping an already-higher
// value untouched.
func (p Priority) AtLeast(floor Priority) Priority {
	if floor > p {
		return floor
	}
	return p
}

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	case PriorityUrgent:
		return "urgent"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}

// Status marks the outcome of a processing run.
type Status string

const (
	StatusPending  Status = "pending"
	StatusResolved Status = "resolved"
	StatusError    Status = "error"
)

// Customer attribute keys recognized by the triage rules.
const (
	AttrRole        = "role"
	AttrPlan        = "plan"
	AttrCompanySize = "company_size"
)

// Ticket is the unit of work: free ticket text plus sidecar customer
// metadata. Tickets are created by the caller and never mutated here.
type Ticket struct {
	ID                 string            `json:"id"`
	Subject            string            `json:"subject"`
	Body               string            `json:"body"`
	CustomerAttributes map[string]string `json:"customer_attributes"`
}

// Attr returns a customer attribute, defaulting to "Unknown" when the key is
// absent or empty.
func (t Ticket) Attr(key string) string {
	if v := t.CustomerAttributes[key]; v != "" {
		return v
	}
	return "Unknown"
}

// Analysis is the structured result of the analysis stage. It always carries
// at least one key point and a suggested response type consistent with its
// category.
type Analysis struct {
	Category              Category `json:"category"`
	Priority              Priority `json:"priority"`
	KeyPoints             []string `json:"key_points"`
	RequiredExpertise     []string `json:"required_expertise"`
	Sentiment             float64  `json:"sentiment"`
	UrgencyIndicators     []string `json:"urgency_indicators"`
	BusinessImpact        string   `json:"business_impact"`
	SuggestedResponseType string   `json:"suggested_response_type"`
}

// ResponseSuggestion is a drafted reply with review metadata.
type ResponseSuggestion struct {
	ResponseText     string   `json:"response_text"`
	ConfidenceScore  float64  `json:"confidence_score"`
	RequiresApproval bool     `json:"requires_approval"`
	SuggestedActions []string `json:"suggested_actions"`
}

// Resolution is the unit returned to the caller, one per processed ticket.
// A failed resolution still reports elapsed processing time in seconds and a
// non-empty error description.
type Resolution struct {
	TicketID       string              `json:"ticket_id"`
	Analysis       *Analysis           `json:"analysis"`
	Response       *ResponseSuggestion `json:"response"`
	Status         Status              `json:"status"`
	ProcessingTime float64             `json:"processing_time"`
	Error          string              `json:"error,omitempty"`
}

// TicketContext keys populated by the processor for response generation.
const (
	ContextTicketID      = "ticket_id"
	ContextTicketSubject = "ticket_subject"
	ContextCustomerName  = "customer_name"
	ContextCustomerRole  = "customer_role"
	ContextCustomerPlan  = "customer_plan"
	ContextCompanySize   = "company_size"
)

// TicketContext carries request-scoped facts shared between the pipeline
// stages, at minimum a customer display name.
type TicketContext map[string]string

// CustomerName returns the display name, defaulting to "Customer".
func (c TicketContext) CustomerName() string {
	if name := c[ContextCustomerName]; name != "" {
		return name
	}
	return "Customer"
}
