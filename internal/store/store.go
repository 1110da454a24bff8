// Package store defines the dispatch-log storage interface and implementations.
package store

import (
	"context"
	"encoding/json"

	"github.com/escalate-ai/router/internal/domain"
)

// DispatchEvent is one operational event in the dispatch log. Only routing
// metadata is recorded; chat content never reaches the store.
type DispatchEvent struct {
	EventID   string
	RequestID string
	Ts        int64
	Type      domain.EventType
	Payload   json.RawMessage
}

// Store defines the interface for dispatch-log persistence.
type Store interface {
	RecordEvent(ctx context.Context, event *DispatchEvent) error
	GetEvents(ctx context.Context, requestID string) ([]DispatchEvent, error)
	Close() error
}
