// Package service records answered queries and serves them back per user.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tripbuddy_backend/internal/events"
	"tripbuddy_backend/internal/history/repository"
	"tripbuddy_backend/internal/history/transport"
	"tripbuddy_backend/platform/apperr"
	"tripbuddy_backend/platform/logger"
)

// Store is the subset of the repository the service uses.
type Store interface {
	Insert(ctx context.Context, entry repository.Entry) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]repository.Entry, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (repository.Entry, error)
}

// Service handles query history.
type Service struct {
	store Store
	log   *logger.Logger
}

// New creates a new history service.
func New(store Store, log *logger.Logger) *Service {
	return &Service{store: store, log: log}
}

// SubscribeToEvents registers the handlers that persist concierge activity.
func (s *Service) SubscribeToEvents(bus events.Bus) {
	bus.Subscribe(events.QueryAnswered{}.EventName(), events.HandlerFunc(s.handleQueryAnswered))
}

func (s *Service) handleQueryAnswered(ctx context.Context, event events.Event) error {
	answered, ok := event.(events.QueryAnswered)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}
	// Anonymous queries are not recorded.
	if answered.UserID == uuid.Nil {
		return nil
	}

	err := s.store.Insert(ctx, repository.Entry{
		ID:        answered.QueryID,
		UserID:    answered.UserID,
		Query:     answered.Query,
		Branch:    answered.Branch,
		Answer:    answered.Answer,
		Mode:      answered.Mode,
		LatencyMs: answered.LatencyMs,
		CreatedAt: answered.OccurredAt(),
	})
	if err != nil {
		s.log.DatabaseError("insert query history", err)
		return err
	}
	return nil
}

// List returns a user's answered queries, newest first.
func (s *Service) List(ctx context.Context, userID uuid.UUID, limit, offset int) (transport.ListResponse, error) {
	entries, err := s.store.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return transport.ListResponse{}, err
		}
		return transport.ListResponse{}, apperr.Wrap(apperr.KindInternal, "failed to load history", err).WithOp("history.List")
	}

	out := make([]transport.Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, toTransport(e))
	}
	return transport.ListResponse{Entries: out}, nil
}

// Get returns a single answered query owned by the user.
func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (transport.Entry, error) {
	e, err := s.store.GetByID(ctx, userID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return transport.Entry{}, apperr.NotFound("history entry not found")
	}
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return transport.Entry{}, err
		}
		return transport.Entry{}, apperr.Wrap(apperr.KindInternal, "failed to load history entry", err).WithOp("history.Get")
	}
	return toTransport(e), nil
}

func toTransport(e repository.Entry) transport.Entry {
	return transport.Entry{
		ID:        e.ID,
		Query:     e.Query,
		Branch:    e.Branch,
		Answer:    e.Answer,
		Mode:      e.Mode,
		LatencyMs: e.LatencyMs,
		CreatedAt: e.CreatedAt.UTC().Truncate(time.Millisecond),
	}
}
