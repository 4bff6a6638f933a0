// Package handler exposes the query history endpoint.
package handler

import (
	"net/http"

	"tripbuddy_backend/internal/history/service"
	"tripbuddy_backend/internal/history/transport"
	"tripbuddy_backend/platform/httpkit"
	"tripbuddy_backend/platform/logger"
	"tripbuddy_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler handles history HTTP requests.
type Handler struct {
	service   *service.Service
	validator *validator.Validator
	log       *logger.Logger
}

// New creates a new history handler.
func New(svc *service.Service, val *validator.Validator, log *logger.Logger) *Handler {
	return &Handler{service: svc, validator: val, log: log}
}

// List handles GET /history.
func (h *Handler) List(c *gin.Context) {
	var req transport.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid query parameters", err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	userID := httpkit.UserID(c)
	if userID == uuid.Nil {
		httpkit.Error(c, http.StatusUnauthorized, "missing user identity", nil)
		return
	}

	resp, err := h.service.List(c.Request.Context(), userID, req.Limit, req.Offset)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}

// Get handles GET /history/:id.
func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid entry id", nil)
		return
	}

	userID := httpkit.UserID(c)
	if userID == uuid.Nil {
		httpkit.Error(c, http.StatusUnauthorized, "missing user identity", nil)
		return
	}

	entry, err := h.service.Get(c.Request.Context(), userID, id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, entry)
}
