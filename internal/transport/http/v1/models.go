package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ListModels handles the models list request. The router advertises exactly
// one virtual model; all requests address it.
// GET /v1/models
func (h *Handler) ListModels(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.ListModels())
}
