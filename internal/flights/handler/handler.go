// Package handler exposes the direct flight-offers endpoint.
package handler

import (
	"net/http"

	"tripbuddy_backend/internal/flights/service"
	"tripbuddy_backend/internal/flights/transport"
	"tripbuddy_backend/platform/httpkit"
	"tripbuddy_backend/platform/logger"
	"tripbuddy_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler handles flights HTTP requests.
type Handler struct {
	service   *service.Service
	validator *validator.Validator
	log       *logger.Logger
}

// New creates a new flights handler.
func New(svc *service.Service, val *validator.Validator, log *logger.Logger) *Handler {
	return &Handler{service: svc, validator: val, log: log}
}

// Offers handles GET /flights/offers.
func (h *Handler) Offers(c *gin.Context) {
	var req transport.Request
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid query parameters", err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	params := transport.SearchParams{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		Adults:        req.Adults,
	}
	resp, err := h.service.Search(c.Request.Context(), params)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}
