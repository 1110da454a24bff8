package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/escalate-ai/router/internal/domain"
)

func TestHealth(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t, generateFixed("unused"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.Health(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "router-escalate", body["service"])
}

func TestListModels(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t, generateFixed("unused"))

	listOnce := func() domain.ModelsResponse {
		req := httptest.NewRequest(http.MethodGet, "/v1/models", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		assert.NoError(t, h.ListModels(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp domain.ModelsResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp
	}

	first := listOnce()
	assert.Equal(t, "list", first.Object)
	assert.Len(t, first.Data, 1)
	assert.Equal(t, "local-router", first.Data[0].ID)
	assert.Equal(t, "model", first.Data[0].Object)

	// The descriptor is stable across repeated calls.
	second := listOnce()
	assert.Equal(t, first, second)
}
