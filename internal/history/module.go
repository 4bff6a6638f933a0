// Package history wires the query history module.
package history

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"tripbuddy_backend/internal/events"
	"tripbuddy_backend/internal/history/handler"
	"tripbuddy_backend/internal/history/repository"
	"tripbuddy_backend/internal/history/service"
	"tripbuddy_backend/internal/http"
	"tripbuddy_backend/platform/logger"
	"tripbuddy_backend/platform/validator"
)

// Module bundles the history components.
type Module struct {
	Service *service.Service
	handler *handler.Handler
}

// New creates the history module and subscribes it to concierge events.
func New(pool *pgxpool.Pool, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(repository.New(pool), log)
	svc.SubscribeToEvents(bus)
	return &Module{
		Service: svc,
		handler: handler.New(svc, val, log),
	}
}

// Name returns the module identifier.
func (m *Module) Name() string { return "history" }

// RegisterRoutes mounts the history routes.
func (m *Module) RegisterRoutes(ctx *http.RouterContext) {
	ctx.Protected.GET("/history", m.handler.List)
	ctx.Protected.GET("/history/:id", m.handler.Get)
}
