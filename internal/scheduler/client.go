package scheduler

import (
	"context"
	"crypto/tls"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"tripbuddy_backend/platform/config"
	"tripbuddy_backend/platform/logger"
)

// Client enqueues background tasks.
type Client struct {
	inner *asynq.Client
	queue string
	log   *logger.Logger
}

// NewClient creates an asynq client from the Redis configuration.
func NewClient(cfg config.SchedulerConfig, log *logger.Logger) (*Client, error) {
	opt, err := redisOpt(cfg)
	if err != nil {
		return nil, err
	}
	return &Client{
		inner: asynq.NewClient(opt),
		queue: cfg.GetAsynqQueueName(),
		log:   log,
	}, nil
}

// EnqueueIndexDocuments schedules a document indexing job.
func (c *Client) EnqueueIndexDocuments(ctx context.Context, urls []string) error {
	task, err := NewIndexDocumentsTask(urls)
	if err != nil {
		return err
	}

	info, err := c.inner.EnqueueContext(ctx, task, asynq.Queue(c.queue))
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", TaskIndexDocuments, err)
	}
	c.log.WithContext(ctx).Info("task enqueued", "task", info.Type, "id", info.ID, "queue", info.Queue)
	return nil
}

// Close releases the underlying Redis connection.
func (c *Client) Close() error {
	return c.inner.Close()
}

// redisOpt converts a Redis URL into asynq connection options.
func redisOpt(cfg config.SchedulerConfig) (asynq.RedisClientOpt, error) {
	parsed, err := redis.ParseURL(cfg.GetRedisURL())
	if err != nil {
		return asynq.RedisClientOpt{}, fmt.Errorf("parse redis url: %w", err)
	}

	opt := asynq.RedisClientOpt{
		Addr:     parsed.Addr,
		Username: parsed.Username,
		Password: parsed.Password,
		DB:       parsed.DB,
	}
	if parsed.TLSConfig != nil {
		opt.TLSConfig = parsed.TLSConfig
		if cfg.GetRedisTLSInsecure() {
			opt.TLSConfig = &tls.Config{InsecureSkipVerify: true}
		}
	}
	return opt, nil
}
