package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/escalate-ai/router/internal/adapter/ollama"
	"github.com/escalate-ai/router/internal/domain"
)

// ErrNoUserMessage is returned when a request carries no user-role message
// with non-blank content. The classifier is never invoked for such requests.
var ErrNoUserMessage = errors.New("request must contain at least one user message")

// Complete runs the full pipeline for one chat request: validate, classify,
// augment (search route only), dispatch, anti-echo, envelope. The returned
// response is complete even when the upstream call degraded; only validation
// failures surface as errors.
func (s *Service) Complete(ctx context.Context, req *domain.ChatCompletionRequest) (*domain.ChatCompletionResponse, error) {
	prompt, ok := req.LastUserMessage()
	if !ok || strings.TrimSpace(prompt) == "" {
		return nil, ErrNoUserMessage
	}

	requestID := "req_" + uuid.New().String()[:8]
	route := s.classifier.Classify(prompt)
	model := s.modelFor(route)

	if err := s.recordEvent(ctx, requestID, domain.EventTypeDispatchStarted, domain.DispatchStartedPayload{
		Route:  route,
		Model:  model,
		Stream: req.Stream,
	}); err != nil {
		log.Printf("WARN: failed to record dispatch_started event: %v", err)
	}

	dispatchPrompt := prompt
	if route == domain.RouteSearch {
		dispatchPrompt = s.augment(ctx, requestID, prompt)
	}

	startTime := time.Now()
	out := s.ollama.Generate(ctx, model, dispatchPrompt, systemPrompt(req))
	latencyMs := time.Since(startTime).Milliseconds()

	text := out.Text
	if !out.Degraded {
		text = ollama.StripEcho(prompt, text)
	}

	usage := domain.ApproximateUsage(prompt, text)

	if err := s.recordEvent(ctx, requestID, domain.EventTypeDispatchDone, domain.DispatchDonePayload{
		Route:            route,
		Model:            model,
		LatencyMs:        latencyMs,
		Degraded:         out.Degraded,
		Reason:           out.Reason,
		PromptTokens:     usage.PromptTokens,
		CompletionTokens: usage.CompletionTokens,
	}); err != nil {
		log.Printf("WARN: failed to record dispatch_done event: %v", err)
	}

	return &domain.ChatCompletionResponse{
		ID:      "chatcmpl-" + uuid.New().String(),
		Object:  "chat.completion",
		Created: time.Now().Unix(),
		Model:   s.config.RouterModelName,
		Choices: []domain.Choice{
			{
				Index:        0,
				Message:      &domain.ChatMessage{Role: "assistant", Content: text},
				FinishReason: "stop",
			},
		},
		Usage: usage,
	}, nil
}

// augment prepends web-search results to the prompt. Search never fails the
// request; a degraded outcome embeds a sentinel instead of results.
func (s *Service) augment(ctx context.Context, requestID, prompt string) string {
	startTime := time.Now()
	out := s.search.Search(ctx, prompt)
	latencyMs := time.Since(startTime).Milliseconds()

	if err := s.recordEvent(ctx, requestID, domain.EventTypeSearchDone, domain.SearchDonePayload{
		ResultCount: out.ResultCount,
		Degraded:    out.Degraded,
		LatencyMs:   latencyMs,
		Reason:      out.Reason,
	}); err != nil {
		log.Printf("WARN: failed to record search_done event: %v", err)
	}

	return fmt.Sprintf("Web search results:\n%s\n\nUser question: %s", out.Text, prompt)
}

// modelFor maps a route to the configured upstream model. Search always
// dispatches to the back model.
func (s *Service) modelFor(route domain.Route) string {
	switch route {
	case domain.RouteBack, domain.RouteSearch:
		return s.config.BackModel
	default:
		return s.config.FrontModel
	}
}

// systemPrompt returns the first system message, if any.
func systemPrompt(req *domain.ChatCompletionRequest) string {
	for _, m := range req.Messages {
		if m.Role == "system" {
			return m.Content
		}
	}
	return ""
}
