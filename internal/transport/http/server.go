// Package http provides the HTTP server implementation for the router.
package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/escalate-ai/router/internal/service"
	v1 "github.com/escalate-ai/router/internal/transport/http/v1"
)

// NewServer creates and configures the router's HTTP server. It exposes the
// OpenAI-compatible surface plus the health endpoint.
func NewServer(svc *service.Service) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Handlers
	handler := v1.NewHandler(svc)
	handler.RegisterRoutes(e)

	return e
}
