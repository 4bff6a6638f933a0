package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"tripbuddy_backend/internal/events"
	"tripbuddy_backend/internal/history/repository"
	"tripbuddy_backend/platform/apperr"
	"tripbuddy_backend/platform/logger"
)

type stubStore struct {
	inserted []repository.Entry
	entries  []repository.Entry
}

func (s *stubStore) Insert(ctx context.Context, entry repository.Entry) error {
	s.inserted = append(s.inserted, entry)
	return nil
}

func (s *stubStore) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]repository.Entry, error) {
	return s.entries, nil
}

func (s *stubStore) GetByID(ctx context.Context, userID, id uuid.UUID) (repository.Entry, error) {
	for _, e := range s.entries {
		if e.ID == id && e.UserID == userID {
			return e, nil
		}
	}
	return repository.Entry{}, repository.ErrNotFound
}

func TestHandleQueryAnsweredPersists(t *testing.T) {
	store := &stubStore{}
	svc := New(store, logger.New("development"))

	event := events.QueryAnswered{
		BaseEvent: events.NewBaseEvent(),
		QueryID:   uuid.New(),
		UserID:    uuid.New(),
		Query:     "weather in Oslo",
		Branch:    "weather",
		Answer:    "sunny",
		Mode:      "rules",
		LatencyMs: 42,
	}
	if err := svc.handleQueryAnswered(context.Background(), event); err != nil {
		t.Fatalf("handle: %v", err)
	}

	if len(store.inserted) != 1 {
		t.Fatalf("expected one insert, got %d", len(store.inserted))
	}
	got := store.inserted[0]
	if got.ID != event.QueryID || got.UserID != event.UserID {
		t.Fatal("identifiers not carried over")
	}
	if got.Branch != "weather" || got.Answer != "sunny" {
		t.Fatalf("unexpected entry %+v", got)
	}
}

func TestHandleQueryAnsweredSkipsAnonymous(t *testing.T) {
	store := &stubStore{}
	svc := New(store, logger.New("development"))

	event := events.QueryAnswered{BaseEvent: events.NewBaseEvent(), QueryID: uuid.New()}
	if err := svc.handleQueryAnswered(context.Background(), event); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if len(store.inserted) != 0 {
		t.Fatal("anonymous query should not be recorded")
	}
}

func TestListMapsEntries(t *testing.T) {
	store := &stubStore{entries: []repository.Entry{{
		ID:     uuid.New(),
		Query:  "weather in Oslo",
		Branch: "weather",
		Answer: "sunny",
		Mode:   "rules",
	}}}
	svc := New(store, logger.New("development"))

	resp, err := svc.List(context.Background(), uuid.New(), 0, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(resp.Entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(resp.Entries))
	}
	if resp.Entries[0].Branch != "weather" {
		t.Fatalf("unexpected entry %+v", resp.Entries[0])
	}
}

func TestGetReturnsOwnEntry(t *testing.T) {
	userID := uuid.New()
	entryID := uuid.New()
	store := &stubStore{entries: []repository.Entry{{
		ID:     entryID,
		UserID: userID,
		Query:  "weather in Oslo",
		Branch: "weather",
		Answer: "sunny",
	}}}
	svc := New(store, logger.New("development"))

	entry, err := svc.Get(context.Background(), userID, entryID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if entry.ID != entryID || entry.Answer != "sunny" {
		t.Fatalf("unexpected entry %+v", entry)
	}
}

func TestGetScopedToOwner(t *testing.T) {
	entryID := uuid.New()
	store := &stubStore{entries: []repository.Entry{{
		ID:     entryID,
		UserID: uuid.New(),
		Query:  "weather in Oslo",
	}}}
	svc := New(store, logger.New("development"))

	_, err := svc.Get(context.Background(), uuid.New(), entryID)
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
