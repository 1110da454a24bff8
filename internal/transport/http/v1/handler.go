// Package v1 provides the OpenAI-compatible HTTP handlers for the router.
package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/escalate-ai/router/internal/service"
)

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
}

// NewHandler creates a new handler.
func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// OpenAI-compatible endpoints
	e.POST("/v1/chat/completions", h.ChatCompletions)
	e.GET("/v1/models", h.ListModels)

	e.GET("/health", h.Health)
}

// Health returns health status. It performs no upstream checks; the
// endpoint cannot fail while the process is up.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "router-escalate",
	})
}
