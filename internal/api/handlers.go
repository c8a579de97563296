package api

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/baguette-hq/triage-server/internal/samples"
	"github.com/baguette-hq/triage-server/internal/triage"
)

const (
	defaultCacheDuration = 5 * time.Minute
	defaultRecentLimit   = 5
	maxBatchSize         = 100
)

// Handlers serves the triage HTTP API. The cache is optional; without one,
// every request runs the pipeline directly.
type Handlers struct {
	processor        TicketProcessor
	cache            Cacher
	history          HistoryLog
	logger           *zap.Logger
	sfGroup          singleflight.Group
	cacheTTL         time.Duration
	batchConcurrency int
}

// NewHandlers initializes the HTTP handlers.
func NewHandlers(processor TicketProcessor, cache Cacher, history HistoryLog, logger *zap.Logger, ttl time.Duration, batchConcurrency int) *Handlers {
	if processor == nil {
		panic("nil TicketProcessor provided to NewHandlers")
	}
	if ttl <= 0 {
		ttl = defaultCacheDuration
	}
	return &Handlers{
		processor:        processor,
		cache:            cache,
		history:          history,
		logger:           logger.Named("http-handler"),
		cacheTTL:         ttl,
		batchConcurrency: batchConcurrency,
	}
}

// RegisterRoutes wires the API routes onto the app.
func (h *Handlers) RegisterRoutes(app *fiber.App) {
	app.Get("/healthz", h.Health)

	v1 := app.Group("/api/v1")
	v1.Post("/tickets/process", h.ProcessTicket)
	v1.Post("/tickets/process-batch", h.ProcessBatch)
	v1.Get("/tickets/samples", h.ListSamples)
	v1.Get("/resolutions/recent", h.RecentResolutions)
}

// ProcessTicket triages a single ticket, serving identical content from the
// cache when one is configured.
func (h *Handlers) ProcessTicket(c *fiber.Ctx) error {
	var req ticketRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.validate(); err != nil {
		return err
	}

	ticket := req.toTicket()
	key := ticketCacheKey(ticket)

	res, err := findAndCache(c.UserContext(), h.cache, &h.sfGroup, key, h.cacheTTL, h.logger, func(fetchCtx context.Context) (triage.Resolution, error) {
		return h.processor.Process(fetchCtx, ticket), nil
	})
	if err != nil {
		return h.handleError(c, "ProcessTicket", err)
	}

	// Cached entries are keyed by content, so rebind the caller's ticket ID.
	res.TicketID = ticket.ID

	h.record(res)

	return c.JSON(res)
}

// ProcessBatch triages up to maxBatchSize tickets concurrently, preserving
// input order in the results. Batches always run the pipeline directly.
func (h *Handlers) ProcessBatch(c *fiber.Ctx) error {
	var req batchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if len(req.Tickets) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "tickets must not be empty")
	}
	if len(req.Tickets) > maxBatchSize {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("tickets must not exceed %d items", maxBatchSize))
	}

	tickets := make([]triage.Ticket, 0, len(req.Tickets))
	for i, tr := range req.Tickets {
		if err := tr.validate(); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("ticket %d: %v", i, err))
		}
		tickets = append(tickets, tr.toTicket())
	}

	results := h.processor.ProcessBatch(c.UserContext(), tickets, h.batchConcurrency)
	for _, res := range results {
		h.record(res)
	}

	return c.JSON(batchResponse{Results: results})
}

// ListSamples returns the built-in demo tickets.
func (h *Handlers) ListSamples(c *fiber.Ctx) error {
	return c.JSON(samplesResponse{Tickets: samples.Tickets()})
}

// RecentResolutions returns the most recently served resolutions, newest
// first.
func (h *Handlers) RecentResolutions(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultRecentLimit)
	if limit < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "limit must be positive")
	}

	var resolutions []triage.Resolution
	if h.history != nil {
		resolutions = h.history.Recent(limit)
	}
	if resolutions == nil {
		resolutions = []triage.Resolution{}
	}

	return c.JSON(recentResponse{Resolutions: resolutions})
}

// Health reports liveness.
func (h *Handlers) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"service": "triage-server", "status": "ok"})
}

func (h *Handlers) record(res triage.Resolution) {
	if h.history != nil {
		h.history.Append(res)
	}
}

func (h *Handlers) handleError(c *fiber.Ctx, op string, err error) error {
	switch c.UserContext().Err() {
	case context.Canceled:
		h.logger.Warn("request canceled", zap.String("op", op))
		return fiber.NewError(fiber.StatusRequestTimeout, "request canceled")
	case context.DeadlineExceeded:
		h.logger.Warn("request timeout", zap.String("op", op))
		return fiber.NewError(fiber.StatusRequestTimeout, "request timed out")
	}

	h.logger.Error("unexpected error", zap.String("op", op), zap.Error(err))
	return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("%s failed", op))
}
