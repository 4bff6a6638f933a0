// Package handler exposes the direct POI search endpoint.
package handler

import (
	"net/http"

	"tripbuddy_backend/internal/poi/service"
	"tripbuddy_backend/internal/poi/transport"
	"tripbuddy_backend/platform/httpkit"
	"tripbuddy_backend/platform/logger"
	"tripbuddy_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler handles POI HTTP requests.
type Handler struct {
	service   *service.Service
	validator *validator.Validator
	log       *logger.Logger
}

// New creates a new POI handler.
func New(svc *service.Service, val *validator.Validator, log *logger.Logger) *Handler {
	return &Handler{service: svc, validator: val, log: log}
}

// Search handles GET /poi/search?q=.
func (h *Handler) Search(c *gin.Context) {
	var req transport.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid query parameters", err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	resp, err := h.service.Search(c.Request.Context(), req.Query)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}

// Details handles GET /poi/:id/details.
func (h *Handler) Details(c *gin.Context) {
	locationID := c.Param("id")
	if locationID == "" {
		httpkit.Error(c, http.StatusBadRequest, "missing location id", nil)
		return
	}

	var req transport.DetailsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid query parameters", err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	details, err := h.service.Details(c.Request.Context(), locationID, req.Language, req.Currency)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, details)
}
