// Package directions wires the Google Directions-backed route module.
package directions

import (
	"tripbuddy_backend/internal/directions/client"
	"tripbuddy_backend/internal/directions/handler"
	"tripbuddy_backend/internal/directions/service"
	"tripbuddy_backend/internal/http"
	"tripbuddy_backend/platform/config"
	"tripbuddy_backend/platform/logger"
)

// Module bundles the directions components.
type Module struct {
	Service *service.Service
	handler *handler.Handler
}

// New creates the directions module. llm may be nil when no language model
// is configured.
func New(cfg config.DirectionsConfig, llm service.Completer, log *logger.Logger) *Module {
	svc := service.New(client.New(cfg.GetGoogleMapsAPIKey(), log), llm, log)
	return &Module{
		Service: svc,
		handler: handler.New(svc, log),
	}
}

// Name returns the module identifier.
func (m *Module) Name() string { return "directions" }

// RegisterRoutes mounts the directions routes.
func (m *Module) RegisterRoutes(ctx *http.RouterContext) {
	ctx.Protected.GET("/directions", m.handler.Route)
}
