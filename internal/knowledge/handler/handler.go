// Package handler exposes the knowledge search and document indexing
// endpoints.
package handler

import (
	"context"
	"net/http"

	"tripbuddy_backend/internal/knowledge/service"
	"tripbuddy_backend/internal/knowledge/transport"
	"tripbuddy_backend/platform/httpkit"
	"tripbuddy_backend/platform/logger"
	"tripbuddy_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Enqueuer schedules background indexing jobs.
type Enqueuer interface {
	EnqueueIndexDocuments(ctx context.Context, urls []string) error
}

// Handler handles knowledge HTTP requests.
type Handler struct {
	service   *service.Service
	enqueuer  Enqueuer
	validator *validator.Validator
	log       *logger.Logger
}

// New creates a new knowledge handler. enqueuer may be nil when background
// jobs are disabled.
func New(svc *service.Service, enqueuer Enqueuer, val *validator.Validator, log *logger.Logger) *Handler {
	return &Handler{service: svc, enqueuer: enqueuer, validator: val, log: log}
}

// Search handles GET /knowledge/search?q=&k=.
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

	resp, err := h.service.Search(c.Request.Context(), req.Query, req.K)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}

// Index handles POST /knowledge/documents.
func (h *Handler) Index(c *gin.Context) {
	var req transport.IndexRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}
	if h.enqueuer == nil {
		httpkit.Error(c, http.StatusServiceUnavailable, "document indexing is not configured", nil)
		return
	}

	if err := h.enqueuer.EnqueueIndexDocuments(c.Request.Context(), req.URLs); err != nil {
		h.log.WithContext(c.Request.Context()).Error("enqueue indexing failed", "error", err)
		httpkit.Error(c, http.StatusInternalServerError, "failed to schedule indexing", nil)
		return
	}
	httpkit.Accepted(c, transport.IndexResponse{Accepted: len(req.URLs)})
}
