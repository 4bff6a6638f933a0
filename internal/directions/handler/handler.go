// Package handler exposes the direct directions endpoint.
package handler

import (
	"net/http"

	"tripbuddy_backend/internal/directions/service"
	"tripbuddy_backend/internal/directions/transport"
	"tripbuddy_backend/platform/httpkit"
	"tripbuddy_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

// Handler handles directions HTTP requests.
type Handler struct {
	service *service.Service
	log     *logger.Logger
}

// New creates a new directions handler.
func New(svc *service.Service, log *logger.Logger) *Handler {
	return &Handler{service: svc, log: log}
}

// Route handles GET /directions?q= or GET /directions?origin=&destination=.
func (h *Handler) Route(c *gin.Context) {
	var req transport.Request
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid query parameters", err.Error())
		return
	}

	origin, destination := req.Origin, req.Destination
	if origin == "" || destination == "" {
		if req.Query == "" {
			httpkit.Error(c, http.StatusBadRequest, "provide q or origin and destination", nil)
			return
		}
		var ok bool
		origin, destination, ok = service.ExtractEndpoints(req.Query)
		if !ok {
			httpkit.OK(c, transport.Response{Answer: service.UsageHint})
			return
		}
	}

	resp, err := h.service.Route(c.Request.Context(), origin, destination)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}
