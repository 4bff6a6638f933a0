// Package flights wires the Amadeus-backed flight search module. The module
// is only mounted when Amadeus credentials are configured.
package flights

import (
	"tripbuddy_backend/internal/flights/client"
	"tripbuddy_backend/internal/flights/handler"
	"tripbuddy_backend/internal/flights/service"
	"tripbuddy_backend/internal/http"
	"tripbuddy_backend/platform/config"
	"tripbuddy_backend/platform/logger"
	"tripbuddy_backend/platform/validator"
)

// Module bundles the flights components.
type Module struct {
	Service *service.Service
	handler *handler.Handler
}

// New creates the flights module. llm may be nil when no language model is
// configured.
func New(cfg config.FlightsConfig, llm service.Completer, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(client.New(cfg.GetAmadeusClientID(), cfg.GetAmadeusClientSecret(), log), llm, log)
	return &Module{
		Service: svc,
		handler: handler.New(svc, val, log),
	}
}

// Name returns the module identifier.
func (m *Module) Name() string { return "flights" }

// RegisterRoutes mounts the flights routes.
func (m *Module) RegisterRoutes(ctx *http.RouterContext) {
	ctx.Protected.GET("/flights/offers", m.handler.Offers)
}
