// Package handler exposes the direct weather endpoint.
package handler

import (
	"net/http"

	"tripbuddy_backend/internal/weather/service"
	"tripbuddy_backend/internal/weather/transport"
	"tripbuddy_backend/platform/httpkit"
	"tripbuddy_backend/platform/logger"
	"tripbuddy_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler handles weather HTTP requests.
type Handler struct {
	service   *service.Service
	validator *validator.Validator
	log       *logger.Logger
}

// New creates a new weather handler.
func New(svc *service.Service, val *validator.Validator, log *logger.Logger) *Handler {
	return &Handler{service: svc, validator: val, log: log}
}

// Current handles GET /weather?location=.
func (h *Handler) Current(c *gin.Context) {
	var req transport.Request
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid query parameters", err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	resp, err := h.service.Lookup(c.Request.Context(), req.Location)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}
