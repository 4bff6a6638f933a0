package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"tripbuddy_backend/platform/logger"
)

type testEvent struct {
	BaseEvent
}

func (testEvent) EventName() string { return "test.event" }

func TestPublishDeliversAsynchronously(t *testing.T) {
	bus := NewInMemoryBus(logger.New("development"))

	received := make(chan Event, 1)
	bus.Subscribe("test.event", HandlerFunc(func(ctx context.Context, event Event) error {
		received <- event
		return nil
	}))

	bus.Publish(context.Background(), testEvent{BaseEvent: NewBaseEvent()})

	select {
	case event := <-received:
		if event.EventName() != "test.event" {
			t.Fatalf("unexpected event %s", event.EventName())
		}
	case <-time.After(time.Second):
		t.Fatal("handler was not invoked")
	}
}

func TestPublishSurvivesHandlerPanic(t *testing.T) {
	bus := NewInMemoryBus(logger.New("development"))

	received := make(chan struct{}, 1)
	bus.Subscribe("test.event", HandlerFunc(func(ctx context.Context, event Event) error {
		panic("handler blew up")
	}))
	bus.Subscribe("test.event", HandlerFunc(func(ctx context.Context, event Event) error {
		received <- struct{}{}
		return nil
	}))

	bus.Publish(context.Background(), testEvent{BaseEvent: NewBaseEvent()})

	select {
	case <-received:
	case <-time.After(time.Second):
		t.Fatal("second handler was not invoked")
	}
}

func TestPublishSyncWaitsForHandlers(t *testing.T) {
	bus := NewInMemoryBus(logger.New("development"))

	var calls int
	bus.Subscribe("test.event", HandlerFunc(func(ctx context.Context, event Event) error {
		calls++
		return nil
	}))
	bus.Subscribe("test.event", HandlerFunc(func(ctx context.Context, event Event) error {
		calls++
		return nil
	}))

	if err := bus.PublishSync(context.Background(), testEvent{BaseEvent: NewBaseEvent()}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected both handlers to run, got %d", calls)
	}
}

func TestPublishSyncReturnsFirstError(t *testing.T) {
	bus := NewInMemoryBus(logger.New("development"))

	first := errors.New("first failure")
	var secondRan bool
	bus.Subscribe("test.event", HandlerFunc(func(ctx context.Context, event Event) error {
		return first
	}))
	bus.Subscribe("test.event", HandlerFunc(func(ctx context.Context, event Event) error {
		secondRan = true
		return errors.New("second failure")
	}))

	err := bus.PublishSync(context.Background(), testEvent{BaseEvent: NewBaseEvent()})
	if !errors.Is(err, first) {
		t.Fatalf("expected first error, got %v", err)
	}
	if !secondRan {
		t.Fatal("remaining handlers should still run")
	}
}
