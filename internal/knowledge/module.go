// Package knowledge wires the vector-store retrieval module.
package knowledge

import (
	"tripbuddy_backend/internal/http"
	"tripbuddy_backend/internal/knowledge/handler"
	"tripbuddy_backend/internal/knowledge/service"
	"tripbuddy_backend/platform/ai/embeddings"
	"tripbuddy_backend/platform/logger"
	"tripbuddy_backend/platform/qdrant"
	"tripbuddy_backend/platform/validator"
)

// Module bundles the knowledge retrieval components.
type Module struct {
	Service *service.Service
	handler *handler.Handler
}

// New creates the knowledge module. enqueuer may be nil when background
// indexing is disabled.
func New(embedder *embeddings.Client, store *qdrant.Client, enqueuer handler.Enqueuer, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(embedder, store, log)
	return &Module{
		Service: svc,
		handler: handler.New(svc, enqueuer, val, log),
	}
}

// Name returns the module identifier.
func (m *Module) Name() string { return "knowledge" }

// RegisterRoutes mounts the knowledge routes.
func (m *Module) RegisterRoutes(ctx *http.RouterContext) {
	ctx.Protected.GET("/knowledge/search", m.handler.Search)
	ctx.Protected.POST("/knowledge/documents", m.handler.Index)
}
