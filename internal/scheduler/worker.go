package scheduler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"tripbuddy_backend/internal/knowledge/indexer"
	"tripbuddy_backend/platform/config"
	"tripbuddy_backend/platform/logger"
)

// Worker processes background tasks from the queue.
type Worker struct {
	server  *asynq.Server
	mux     *asynq.ServeMux
	indexer *indexer.Indexer
	log     *logger.Logger
}

// NewWorker creates the asynq server with handlers registered.
func NewWorker(cfg config.SchedulerConfig, idx *indexer.Indexer, log *logger.Logger) (*Worker, error) {
	opt, err := redisOpt(cfg)
	if err != nil {
		return nil, err
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency <= 0 {
		concurrency = 5
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues:      map[string]int{cfg.GetAsynqQueueName(): 1},
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			log.Error("task failed", "task", task.Type(), "error", err)
		}),
	})

	w := &Worker{server: server, mux: asynq.NewServeMux(), indexer: idx, log: log}
	w.mux.HandleFunc(TaskIndexDocuments, w.handleIndexDocuments)
	return w, nil
}

// Run blocks processing tasks until Shutdown is called.
func (w *Worker) Run() error {
	return w.server.Run(w.mux)
}

// Shutdown stops the worker, waiting for in-flight tasks.
func (w *Worker) Shutdown() {
	w.server.Shutdown()
}

func (w *Worker) handleIndexDocuments(ctx context.Context, task *asynq.Task) error {
	var payload IndexDocumentsPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}
	if len(payload.URLs) == 0 {
		return nil
	}

	w.log.Info("indexing documents", "count", len(payload.URLs))
	return w.indexer.Index(ctx, payload.URLs)
}
