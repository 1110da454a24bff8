// Package service implements the request pipeline of the escalate router.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/escalate-ai/router/internal/adapter/ollama"
	"github.com/escalate-ai/router/internal/adapter/websearch"
	"github.com/escalate-ai/router/internal/classify"
	"github.com/escalate-ai/router/internal/config"
	"github.com/escalate-ai/router/internal/domain"
	"github.com/escalate-ai/router/internal/store"
)

type Service struct {
	store      store.Store
	ollama     *ollama.Client
	search     *websearch.Client
	classifier *classify.Classifier
	config     *config.Config
	startedAt  int64
}

func New(store store.Store, ollamaClient *ollama.Client, searchClient *websearch.Client, classifier *classify.Classifier, cfg *config.Config) *Service {
	return &Service{
		store:      store,
		ollama:     ollamaClient,
		search:     searchClient,
		classifier: classifier,
		config:     cfg,
		startedAt:  time.Now().Unix(),
	}
}

// recordEvent records a dispatch event to the store.
func (s *Service) recordEvent(ctx context.Context, requestID string, eventType domain.EventType, payload interface{}) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	event := &store.DispatchEvent{
		EventID:   "evt_" + uuid.New().String()[:8],
		RequestID: requestID,
		Ts:        time.Now().UnixMilli(),
		Type:      eventType,
		Payload:   payloadJSON,
	}

	return s.store.RecordEvent(ctx, event)
}
