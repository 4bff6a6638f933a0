// The worker binary processes background jobs: it consumes document
// indexing tasks from Redis and feeds the vector store.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tripbuddy_backend/internal/events"
	"tripbuddy_backend/internal/knowledge/archive"
	"tripbuddy_backend/internal/knowledge/indexer"
	"tripbuddy_backend/internal/scheduler"
	"tripbuddy_backend/platform/ai/embeddings"
	"tripbuddy_backend/platform/config"
	"tripbuddy_backend/platform/logger"
	"tripbuddy_backend/platform/qdrant"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting worker", "env", cfg.Env, "queue", cfg.AsynqQueueName)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.RedisURL == "" {
		panic("REDIS_URL is required for the worker")
	}
	if !cfg.IsQdrantEnabled() || !cfg.IsLLMEnabled() {
		panic("QDRANT_URL and OPENAI_API_KEY are required for the worker")
	}

	embedder := embeddings.NewClient(embeddings.Config{
		APIKey:  cfg.OpenAIAPIKey,
		BaseURL: cfg.OpenAIBaseURL,
		Model:   cfg.EmbeddingModel,
	})
	vectorStore := qdrant.NewClient(qdrant.Config{
		BaseURL:    cfg.QdrantURL,
		APIKey:     cfg.QdrantAPIKey,
		Collection: cfg.QdrantCollection,
	})
	if err := vectorStore.EnsureCollection(ctx, embeddings.Dimension); err != nil {
		log.Error("failed to ensure qdrant collection", "error", err)
		panic("failed to ensure qdrant collection: " + err.Error())
	}

	var snapshots indexer.Archiver
	if cfg.IsArchiveEnabled() {
		pageArchive, err := archive.New(ctx, cfg, log)
		if err != nil {
			log.Error("failed to initialize page archive", "error", err)
			panic("failed to initialize page archive: " + err.Error())
		}
		snapshots = pageArchive
		log.Info("page archive initialized", "bucket", cfg.MinioBucketPageSnapshots)
	} else {
		log.Warn("MINIO_ENDPOINT not configured; page snapshots disabled")
	}

	eventBus := events.NewInMemoryBus(log)
	idx := indexer.New(embedder, vectorStore, snapshots, eventBus, log)

	worker, err := scheduler.NewWorker(cfg, idx, log)
	if err != nil {
		log.Error("failed to initialize worker", "error", err)
		panic("failed to initialize worker: " + err.Error())
	}

	workerErr := make(chan error, 1)
	go func() {
		workerErr <- worker.Run()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, stopping worker")
		worker.Shutdown()
	case err := <-workerErr:
		if err != nil {
			log.Error("worker error", "error", err)
			panic("worker error: " + err.Error())
		}
	}
}
