package mocks

import (
	"context"
	"time"

	"github.com/baguette-hq/triage-server/internal/triage"
	"github.com/baguette-hq/triage-server/pkg/cache"
)

// MockProcessor is a mock implementation of the ticket processor interface
// for testing the handler layer. It uses function-based mocking for flexibility.
type MockProcessor struct {
	ProcessFunc      func(ctx context.Context, ticket triage.Ticket) triage.Resolution
	ProcessBatchFunc func(ctx context.Context, tickets []triage.Ticket, concurrency int) []triage.Resolution
}

// Process implements the ticket processor interface
func (m *MockProcessor) Process(ctx context.Context, ticket triage.Ticket) triage.Resolution {
	if m.ProcessFunc != nil {
		return m.ProcessFunc(ctx, ticket)
	}
	return triage.Resolution{TicketID: ticket.ID, Status: triage.StatusResolved}
}

// ProcessBatch implements the ticket processor interface
func (m *MockProcessor) ProcessBatch(ctx context.Context, tickets []triage.Ticket, concurrency int) []triage.Resolution {
	if m.ProcessBatchFunc != nil {
		return m.ProcessBatchFunc(ctx, tickets, concurrency)
	}
	results := make([]triage.Resolution, len(tickets))
	for i, t := range tickets {
		results[i] = triage.Resolution{TicketID: t.ID, Status: triage.StatusResolved}
	}
	return results
}

// MockCacher is a mock implementation of the cache interface
// for testing the handler layer. It uses function-based mocking for flexibility.
type MockCacher struct {
	GetFunc   func(ctx context.Context, key string, dest any) error
	SetFunc   func(ctx context.Context, key string, value any, expiration time.Duration) error
	CloseFunc func() error
}

// Get implements the cache interface
func (m *MockCacher) Get(ctx context.Context, key string, dest any) error {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key, dest)
	}
	return cache.ErrMiss
}

// Set implements the cache interface
func (m *MockCacher) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, expiration)
	}
	return nil
}

// Close implements the cache interface
func (m *MockCacher) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// MockHistory is a mock implementation of the history log interface
// for testing the handler layer. It uses function-based mocking for flexibility.
type MockHistory struct {
	AppendFunc func(res triage.Resolution)
	RecentFunc func(n int) []triage.Resolution
}

// Append implements the history log interface
func (m *MockHistory) Append(res triage.Resolution) {
	if m.AppendFunc != nil {
		m.AppendFunc(res)
	}
}

// Recent implements the history log interface
func (m *MockHistory) Recent(n int) []triage.Resolution {
	if m.RecentFunc != nil {
		return m.RecentFunc(n)
	}
	return nil
}
