// Package concierge wires the query routing module.
package concierge

import (
	"tripbuddy_backend/internal/concierge/handler"
	"tripbuddy_backend/internal/concierge/service"
	"tripbuddy_backend/internal/email"
	"tripbuddy_backend/internal/http"
	"tripbuddy_backend/platform/logger"
	"tripbuddy_backend/platform/validator"
)

// Module bundles the concierge components.
type Module struct {
	Service *service.Service
	handler *handler.Handler
}

// New creates the concierge module. sender may be nil when email is
// disabled.
func New(svc *service.Service, sender email.Sender, val *validator.Validator, log *logger.Logger) *Module {
	return &Module{
		Service: svc,
		handler: handler.New(svc, sender, val, log),
	}
}

// Name returns the module identifier.
func (m *Module) Name() string { return "concierge" }

// RegisterRoutes mounts the concierge routes. Query goes through the per-IP
// rate limiter on top of auth.
func (m *Module) RegisterRoutes(ctx *http.RouterContext) {
	group := ctx.Protected.Group("/concierge")
	group.POST("/query", ctx.QueryRateLimiter.RateLimit(), m.handler.Query)
	group.POST("/share", m.handler.Share)
}
