package api

import (
	"context"
	"time"

	"github.com/baguette-hq/triage-server/internal/triage"
)

// Cacher defines the interface for cache operations.
type Cacher interface {
	Close() error
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

// TicketProcessor defines the triage operations the handlers depend on.
type TicketProcessor interface {
	Process(ctx context.Context, ticket triage.Ticket) triage.Resolution
	ProcessBatch(ctx context.Context, tickets []triage.Ticket, concurrency int) []triage.Resolution
}

// HistoryLog records served resolutions and reports the most recent ones.
type HistoryLog interface {
	Append(res triage.Resolution)
	Recent(n int) []triage.Resolution
}
