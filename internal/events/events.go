// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"github.com/google/uuid"

	"tripbuddy_backend/platform/events"
	"tripbuddy_backend/platform/logger"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
	InMemoryBus = events.InMemoryBus
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// NewInMemoryBus creates a new in-memory event bus.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return events.NewInMemoryBus(log)
}

// =============================================================================
// Concierge Domain Events
// =============================================================================

// QueryAnswered is published after the concierge produced an answer for a
// free-text travel query. The history module persists these.
type QueryAnswered struct {
	BaseEvent
	QueryID   uuid.UUID `json:"queryId"`
	UserID    uuid.UUID `json:"userId"`
	Query     string    `json:"query"`
	Branch    string    `json:"branch"`
	Answer    string    `json:"answer"`
	Mode      string    `json:"mode"`
	LatencyMs int64     `json:"latencyMs"`
}

func (e QueryAnswered) EventName() string { return "concierge.query.answered" }

// =============================================================================
// Knowledge Domain Events
// =============================================================================

// DocumentIndexed is published when a source URL has been fetched, chunked
// and upserted into the vector store.
type DocumentIndexed struct {
	BaseEvent
	URL    string `json:"url"`
	Chunks int    `json:"chunks"`
}

func (e DocumentIndexed) EventName() string { return "knowledge.document.indexed" }
