package indexer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"tripbuddy_backend/internal/events"
	"tripbuddy_backend/platform/logger"
	"tripbuddy_backend/platform/qdrant"
)

type stubEmbedder struct{}

func (stubEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i := range vectors {
		vectors[i] = []float32{0.1, 0.2}
	}
	return vectors, nil
}

type stubUpserter struct {
	points []qdrant.Point
}

func (s *stubUpserter) Upsert(ctx context.Context, points []qdrant.Point) error {
	s.points = append(s.points, points...)
	return nil
}

type recordingBus struct {
	sync  []events.Event
	async []events.Event
}

func (b *recordingBus) Publish(ctx context.Context, event events.Event) {
	b.async = append(b.async, event)
}

func (b *recordingBus) PublishSync(ctx context.Context, event events.Event) error {
	b.sync = append(b.sync, event)
	return nil
}

func (b *recordingBus) Subscribe(eventName string, handler events.Handler) {}

func TestIndexUpsertsAndPublishesSynchronously(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><head><title>guide</title></head><body>
			<p>Kyoto is best visited in late autumn when the maple leaves turn and
			the temple gardens empty out after the holiday crowds leave town.</p>
		</body></html>`))
	}))
	defer server.Close()

	store := &stubUpserter{}
	bus := &recordingBus{}
	idx := New(stubEmbedder{}, store, nil, bus, logger.New("development"))

	if err := idx.Index(context.Background(), []string{server.URL}); err != nil {
		t.Fatalf("index: %v", err)
	}

	if len(store.points) != 1 {
		t.Fatalf("expected one point, got %d", len(store.points))
	}
	if store.points[0].Payload["source"] != server.URL {
		t.Fatalf("unexpected source %v", store.points[0].Payload["source"])
	}

	if len(bus.async) != 0 {
		t.Fatalf("expected no async events, got %d", len(bus.async))
	}
	if len(bus.sync) != 1 {
		t.Fatalf("expected one event, got %d", len(bus.sync))
	}
	indexed, ok := bus.sync[0].(events.DocumentIndexed)
	if !ok {
		t.Fatalf("unexpected event %T", bus.sync[0])
	}
	if indexed.URL != server.URL || indexed.Chunks != 1 {
		t.Fatalf("unexpected event %+v", indexed)
	}
}
