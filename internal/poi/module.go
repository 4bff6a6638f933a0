// Package poi wires the TripAdvisor-backed place search module.
package poi

import (
	"tripbuddy_backend/internal/http"
	"tripbuddy_backend/internal/poi/client"
	"tripbuddy_backend/internal/poi/handler"
	"tripbuddy_backend/internal/poi/service"
	"tripbuddy_backend/platform/cache"
	"tripbuddy_backend/platform/config"
	"tripbuddy_backend/platform/logger"
	"tripbuddy_backend/platform/validator"
)

// Module bundles the POI search components.
type Module struct {
	Service *service.Service
	handler *handler.Handler
}

// New creates the POI module. c may be nil when caching is disabled.
func New(cfg config.POIConfig, c *cache.Cache, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(client.New(cfg.GetTripAdvisorAPIKey(), log), c, log)
	return &Module{
		Service: svc,
		handler: handler.New(svc, val, log),
	}
}

// Name returns the module identifier.
func (m *Module) Name() string { return "poi" }

// RegisterRoutes mounts the POI routes.
func (m *Module) RegisterRoutes(ctx *http.RouterContext) {
	ctx.Protected.GET("/poi/search", m.handler.Search)
	ctx.Protected.GET("/poi/:id/details", m.handler.Details)
}
