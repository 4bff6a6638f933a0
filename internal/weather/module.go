// Package weather wires the OpenWeatherMap-backed weather module.
package weather

import (
	"tripbuddy_backend/internal/http"
	"tripbuddy_backend/internal/weather/client"
	"tripbuddy_backend/internal/weather/handler"
	"tripbuddy_backend/internal/weather/service"
	"tripbuddy_backend/platform/cache"
	"tripbuddy_backend/platform/config"
	"tripbuddy_backend/platform/logger"
	"tripbuddy_backend/platform/validator"
)

// Module bundles the weather components.
type Module struct {
	Service *service.Service
	handler *handler.Handler
}

// New creates the weather module. c may be nil when caching is disabled.
func New(cfg config.WeatherConfig, c *cache.Cache, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(client.New(cfg.GetOpenWeatherMapAPIKey(), log), c, log)
	return &Module{
		Service: svc,
		handler: handler.New(svc, val, log),
	}
}

// Name returns the module identifier.
func (m *Module) Name() string { return "weather" }

// RegisterRoutes mounts the weather routes.
func (m *Module) RegisterRoutes(ctx *http.RouterContext) {
	ctx.Protected.GET("/weather", m.handler.Current)
}
