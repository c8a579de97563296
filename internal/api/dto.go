package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/baguette-hq/triage-server/internal/triage"
)

type ticketRequest struct {
	ID                 string            `json:"id"`
	Subject            string            `json:"subject"`
	Body               string            `json:"body"`
	CustomerAttributes map[string]string `json:"customer_attributes"`
}

type batchRequest struct {
	Tickets []ticketRequest `json:"tickets"`
}

type batchResponse struct {
	Results []triage.Resolution `json:"results"`
}

type samplesResponse struct {
	Tickets []triage.Ticket `json:"tickets"`
}

type recentResponse struct {
	Resolutions []triage.Resolution `json:"resolutions"`
}

func (r ticketRequest) validate() error {
	if strings.TrimSpace(r.Subject) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "subject is required")
	}
	if strings.TrimSpace(r.Body) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "body is required")
	}
	return nil
}

// toTicket converts the request into a domain ticket, minting an ID when the
// caller did not supply one.
func (r ticketRequest) toTicket() triage.Ticket {
	id := r.ID
	if id == "" {
		id = newTicketID()
	}
	return triage.Ticket{
		ID:                 id,
		Subject:            r.Subject,
		Body:               r.Body,
		CustomerAttributes: r.CustomerAttributes,
	}
}

func newTicketID() string {
	return "TKT-" + strings.ToUpper(uuid.NewString()[:8])
}
