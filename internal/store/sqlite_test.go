package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/escalate-ai/router/internal/domain"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	s, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create sqlite store: %v", err)
	}
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func TestRecordAndGetEvents(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	events := []*DispatchEvent{
		{EventID: "evt_1", RequestID: "req_1", Ts: 100, Type: domain.EventTypeDispatchStarted, Payload: json.RawMessage(`{"route":"back"}`)},
		{EventID: "evt_2", RequestID: "req_1", Ts: 200, Type: domain.EventTypeDispatchDone, Payload: json.RawMessage(`{"latency_ms":5}`)},
		{EventID: "evt_3", RequestID: "req_2", Ts: 150, Type: domain.EventTypeDispatchStarted},
	}
	for _, e := range events {
		assert.NoError(t, s.RecordEvent(ctx, e))
	}

	got, err := s.GetEvents(ctx, "req_1")
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "evt_1", got[0].EventID)
	assert.Equal(t, domain.EventTypeDispatchDone, got[1].Type)
	assert.JSONEq(t, `{"latency_ms":5}`, string(got[1].Payload))
}

func TestGetEventsUnknownRequest(t *testing.T) {
	s := newTestStore(t)

	got, err := s.GetEvents(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestDuplicateEventIDRejected(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	e := &DispatchEvent{EventID: "evt_1", RequestID: "req_1", Ts: 1, Type: domain.EventTypeDispatchStarted}
	assert.NoError(t, s.RecordEvent(ctx, e))
	assert.Error(t, s.RecordEvent(ctx, e))
}
