package triage

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/baguette-hq/triage-server/internal/templates"
	"github.com/baguette-hq/triage-server/internal/textscan"
)

const (
	errAnalysisFailed = "Analysis failed"
	errResponseFailed = "Response generation failed"

	defaultBatchConcurrency = 8
)

// Processor runs the two-stage pipeline: analyze the ticket, then draft a
// response from the analysis. A failed or panicking stage never escapes as an
// error; it is captured on the resolution itself.
type Processor struct {
	analyzer  Analyzer
	responder Responder
	templates *templates.Set
	logger    *zap.Logger
}

// NewProcessor wires the pipeline stages together. The analyzer and responder
// are hard dependencies; the template set may be empty, in which case response
// generation reports its own failure per ticket.
func NewProcessor(analyzer Analyzer, responder Responder, set *templates.Set, logger *zap.Logger) *Processor {
	if analyzer == nil {
		panic("processor: analyzer is required")
	}
	if responder == nil {
		panic("processor: responder is required")
	}
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &Processor{
		analyzer:  analyzer,
		responder: responder,
		templates: set,
		logger:    logger.Named("processor"),
	}
}

// Process triages a single ticket. The returned resolution always carries the
// ticket ID and the elapsed processing time, whatever the outcome.
func (p *Processor) Process(ctx context.Context, ticket Ticket) (res Resolution) {
	start := time.Now()
	res = Resolution{
		TicketID: ticket.ID,
		Status:   StatusPending,
	}

	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("ticket processing panicked",
				zap.String("ticket_id", ticket.ID),
				zap.Any("panic", r))
			res.Status = StatusError
			res.Error = fmt.Sprintf("Error: %v\n%s", r, debug.Stack())
		}
		res.ProcessingTime = time.Since(start).Seconds()
	}()

	p.logger.Info("analyzing ticket", zap.String("ticket_id", ticket.ID))

	analysis, err := p.analyzer.Analyze(ctx, ticket.Body, ticket.CustomerAttributes)
	if err != nil {
		p.logger.Error("analysis failed", zap.String("ticket_id", ticket.ID), zap.Error(err))
		res.Status = StatusError
		res.Error = errAnalysisFailed
		return res
	}
	res.Analysis = &analysis

	p.logger.Info("analysis complete",
		zap.String("ticket_id", ticket.ID),
		zap.String("category", string(analysis.Category)),
		zap.String("priority", analysis.Priority.String()))

	response, err := p.responder.Generate(ctx, analysis, p.templates, p.buildContext(ticket))
	if err != nil {
		p.logger.Error("response generation failed", zap.String("ticket_id", ticket.ID), zap.Error(err))
		res.Status = StatusError
		res.Error = errResponseFailed
		return res
	}
	res.Response = &response
	res.Status = StatusResolved

	p.logger.Info("response generated",
		zap.String("ticket_id", ticket.ID),
		zap.Float64("confidence", response.ConfidenceScore))

	return res
}

// ProcessBatch triages tickets concurrently and returns resolutions in input
// order. Per-ticket failures are recorded on the resolutions, so the batch as
// a whole never fails.
func (p *Processor) ProcessBatch(ctx context.Context, tickets []Ticket, concurrency int) []Resolution {
	if concurrency <= 0 {
		concurrency = defaultBatchConcurrency
	}

	results := make([]Resolution, len(tickets))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, ticket := range tickets {
		i, ticket := i, ticket
		g.Go(func() error {
			results[i] = p.Process(ctx, ticket)
			return nil
		})
	}

	// Workers never return errors; failures live on the resolutions.
	_ = g.Wait()

	return results
}

func (p *Processor) buildContext(ticket Ticket) TicketContext {
	return TicketContext{
		ContextTicketID:      ticket.ID,
		ContextTicketSubject: ticket.Subject,
		ContextCustomerName:  textscan.CustomerName(ticket.Body),
		ContextCustomerRole:  ticket.Attr(AttrRole),
		ContextCustomerPlan:  ticket.Attr(AttrPlan),
		ContextCompanySize:   ticket.Attr(AttrCompanySize),
	}
}
