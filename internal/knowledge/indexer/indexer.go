// Package indexer fetches source pages, splits them into chunks and upserts
// their embeddings into the vector store.
package indexer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"tripbuddy_backend/internal/events"
	"tripbuddy_backend/platform/logger"
	"tripbuddy_backend/platform/qdrant"
)

// maxPageBytes caps how much of a fetched page is read.
const maxPageBytes = 5 << 20

// maxConcurrentFetches bounds parallel page downloads per job.
const maxConcurrentFetches = 4

// BatchEmbedder turns a batch of texts into vectors.
type BatchEmbedder interface {
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// VectorUpserter is the subset of the Qdrant client the indexer uses.
type VectorUpserter interface {
	Upsert(ctx context.Context, points []qdrant.Point) error
}

// Archiver stores raw page snapshots. Implementations may be nil-safe
// disabled.
type Archiver interface {
	Store(ctx context.Context, sourceURL string, body []byte) error
}

// Indexer ingests documents from URLs into the vector store.
type Indexer struct {
	httpClient *http.Client
	embedder   BatchEmbedder
	store      VectorUpserter
	archive    Archiver
	bus        events.Bus
	log        *logger.Logger
}

// New creates a new indexer. archive and bus may be nil.
func New(embedder BatchEmbedder, store VectorUpserter, archive Archiver, bus events.Bus, log *logger.Logger) *Indexer {
	return &Indexer{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		embedder:   embedder,
		store:      store,
		archive:    archive,
		bus:        bus,
		log:        log,
	}
}

// Index fetches, chunks, embeds and upserts every URL. URLs are processed
// concurrently; the first failure cancels the rest.
func (i *Indexer) Index(ctx context.Context, urls []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)

	for _, sourceURL := range urls {
		g.Go(func() error {
			return i.indexOne(ctx, sourceURL)
		})
	}
	return g.Wait()
}

func (i *Indexer) indexOne(ctx context.Context, sourceURL string) error {
	body, err := i.fetch(ctx, sourceURL)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", sourceURL, err)
	}

	if i.archive != nil {
		if err := i.archive.Store(ctx, sourceURL, body); err != nil {
			// Snapshot loss does not block indexing.
			i.log.WithContext(ctx).Warn("page snapshot failed", "url", sourceURL, "error", err)
		}
	}

	text, err := ExtractText(bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("extract %s: %w", sourceURL, err)
	}

	chunks := ChunkText(text)
	if len(chunks) == 0 {
		i.log.WithContext(ctx).Warn("no indexable text", "url", sourceURL)
		return nil
	}

	vectors, err := i.embedder.EmbedBatch(ctx, chunks)
	if err != nil {
		return fmt.Errorf("embed %s: %w", sourceURL, err)
	}
	if len(vectors) != len(chunks) {
		return fmt.Errorf("embed %s: got %d vectors for %d chunks", sourceURL, len(vectors), len(chunks))
	}

	points := make([]qdrant.Point, len(chunks))
	for idx, chunk := range chunks {
		points[idx] = qdrant.Point{
			ID:     uuid.NewString(),
			Vector: vectors[idx],
			Payload: map[string]interface{}{
				"text":   chunk,
				"source": sourceURL,
			},
		}
	}
	if err := i.store.Upsert(ctx, points); err != nil {
		return fmt.Errorf("upsert %s: %w", sourceURL, err)
	}

	i.log.WithContext(ctx).Info("document indexed", "url", sourceURL, "chunks", len(chunks))
	if i.bus != nil {
		// The indexer runs inside a task handler, so subscribers finish
		// before the task is acknowledged.
		err := i.bus.PublishSync(ctx, events.DocumentIndexed{
			BaseEvent: events.NewBaseEvent(),
			URL:       sourceURL,
			Chunks:    len(chunks),
		})
		if err != nil {
			i.log.WithContext(ctx).Warn("indexed event handler failed", "url", sourceURL, "error", err)
		}
	}
	return nil
}

func (i *Indexer) fetch(ctx context.Context, sourceURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := i.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
}
