package store

import "context"

// NopStore discards all events. It is used when no database path is
// configured.
type NopStore struct{}

// NewNopStore creates a store that records nothing.
func NewNopStore() *NopStore {
	return &NopStore{}
}

func (n *NopStore) RecordEvent(ctx context.Context, event *DispatchEvent) error {
	return nil
}

func (n *NopStore) GetEvents(ctx context.Context, requestID string) ([]DispatchEvent, error) {
	return nil, nil
}

func (n *NopStore) Close() error {
	return nil
}
