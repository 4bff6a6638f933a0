// Package handler exposes the concierge query and share endpoints.
package handler

import (
	"net/http"

	"tripbuddy_backend/internal/concierge/service"
	"tripbuddy_backend/internal/concierge/transport"
	"tripbuddy_backend/internal/email"
	"tripbuddy_backend/platform/httpkit"
	"tripbuddy_backend/platform/logger"
	"tripbuddy_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler handles concierge HTTP requests.
type Handler struct {
	service   *service.Service
	sender    email.Sender
	validator *validator.Validator
	log       *logger.Logger
}

// New creates a new concierge handler. sender may be nil when email is
// disabled.
func New(svc *service.Service, sender email.Sender, val *validator.Validator, log *logger.Logger) *Handler {
	return &Handler{service: svc, sender: sender, validator: val, log: log}
}

// Query handles POST /concierge/query.
func (h *Handler) Query(c *gin.Context) {
	var req transport.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
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

	resp, err := h.service.Query(c.Request.Context(), userID, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}

// Share handles POST /concierge/share.
func (h *Handler) Share(c *gin.Context) {
	var req transport.ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}
	if h.sender == nil {
		httpkit.Error(c, http.StatusServiceUnavailable, "email delivery is not configured", nil)
		return
	}

	if err := h.sender.SendAnswer(c.Request.Context(), req.Email, req.Subject, req.Answer); err != nil {
		h.log.WithContext(c.Request.Context()).Error("share email failed", "error", err)
		httpkit.Error(c, http.StatusBadGateway, "failed to send email", nil)
		return
	}
	httpkit.OK(c, transport.ShareResponse{Sent: true})
}
