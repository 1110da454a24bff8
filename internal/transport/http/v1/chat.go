package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/escalate-ai/router/internal/domain"
	"github.com/escalate-ai/router/internal/service"
)

// ChatCompletions handles chat completion requests.
// POST /v1/chat/completions
func (h *Handler) ChatCompletions(c echo.Context) error {
	ctx := c.Request().Context()

	var req domain.ChatCompletionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ErrorResponse{
			Error: &domain.APIError{
				Message: "invalid request body",
				Type:    "invalid_request_error",
			},
		})
	}

	if len(req.Messages) == 0 {
		return c.JSON(http.StatusBadRequest, domain.ErrorResponse{
			Error: &domain.APIError{
				Message: "messages is required",
				Type:    "invalid_request_error",
				Param:   "messages",
			},
		})
	}

	resp, err := h.service.Complete(ctx, &req)
	if err != nil {
		if errors.Is(err, service.ErrNoUserMessage) {
			return c.JSON(http.StatusBadRequest, domain.ErrorResponse{
				Error: &domain.APIError{
					Message: err.Error(),
					Type:    "invalid_request_error",
					Param:   "messages",
				},
			})
		}
		log.Printf("ERROR: chat completion failed: %v", err)
		return c.JSON(http.StatusInternalServerError, domain.ErrorResponse{
			Error: &domain.APIError{
				Message: err.Error(),
				Type:    "internal_error",
			},
		})
	}

	if req.Stream {
		return h.writeStream(c, resp)
	}

	return c.JSON(http.StatusOK, resp)
}

// writeStream emits the completed response as SSE frames: one delta chunk
// carrying the whole text, one finish chunk, then the [DONE] marker. The
// upstream generate call is non-streaming, so this is protocol-level
// framing only, not token-by-token generation.
func (h *Handler) writeStream(c echo.Context, resp *domain.ChatCompletionResponse) error {
	c.Response().Header().Set("Content-Type", "text/event-stream")
	c.Response().Header().Set("Cache-Control", "no-cache")
	c.Response().Header().Set("Connection", "keep-alive")
	c.Response().WriteHeader(http.StatusOK)

	flusher, ok := c.Response().Writer.(http.Flusher)
	if !ok {
		return c.JSON(http.StatusInternalServerError, domain.ErrorResponse{
			Error: &domain.APIError{
				Message: "streaming not supported",
				Type:    "internal_error",
			},
		})
	}

	chunks := []domain.StreamChunk{
		{
			ID:      resp.ID,
			Object:  "chat.completion.chunk",
			Created: resp.Created,
			Model:   resp.Model,
			Choices: []domain.Choice{
				{
					Index: 0,
					Delta: &domain.ChatMessage{Role: "assistant", Content: resp.Choices[0].Message.Content},
				},
			},
		},
		{
			ID:      resp.ID,
			Object:  "chat.completion.chunk",
			Created: resp.Created,
			Model:   resp.Model,
			Choices: []domain.Choice{
				{
					Index:        0,
					Delta:        &domain.ChatMessage{},
					FinishReason: "stop",
				},
			},
		},
	}

	for _, chunk := range chunks {
		data, err := json.Marshal(chunk)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(c.Response().Writer, "data: %s\n\n", data); err != nil {
			return err
		}
		flusher.Flush()
	}

	fmt.Fprintf(c.Response().Writer, "data: [DONE]\n\n")
	flusher.Flush()

	return nil
}
