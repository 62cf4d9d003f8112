package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"bastion/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// popTimeout bounds each blocking pop so the consumer notices context
// cancellation between polls.
const popTimeout = 5 * time.Second

// redisQueue implements the email queue over a Redis list. Producers
// LPUSH, the worker BRPOPs, so jobs come off in enqueue order.
type redisQueue struct {
	client    *redis.Client
	queueName string
	logger    *slog.Logger
}

// NewRedisQueue creates a Redis list queue. The same type serves both
// the producer and consumer interfaces.
func NewRedisQueue(client *redis.Client, queueName string, logger *slog.Logger) *redisQueue {
	return &redisQueue{
		client:    client,
		queueName: queueName,
		logger:    logger,
	}
}

// EnqueueVerifyEmail pushes a job onto the list.
func (q *redisQueue) EnqueueVerifyEmail(ctx context.Context, job service.VerifyEmailJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		return errors.Wrap(err, "failed to marshal email job")
	}

	if err := q.client.LPush(ctx, q.queueName, data).Err(); err != nil {
		return errors.Wrap(err, "failed to push email job")
	}

	q.logger.Debug("Email job enqueued",
		slog.String("queue", q.queueName),
		slog.String("user_id", job.UserID.String()),
	)

	return nil
}

// NextVerifyEmail blocks until a job is available or the context is done.
func (q *redisQueue) NextVerifyEmail(ctx context.Context) (service.VerifyEmailJob, error) {
	var job service.VerifyEmailJob

	for {
		if err := ctx.Err(); err != nil {
			return job, err
		}

		res, err := q.client.BRPop(ctx, popTimeout, q.queueName).Result()
		if errors.Is(err, redis.Nil) {
			// Timed out with an empty list; poll again.
			continue
		}
		if err != nil {
			return job, errors.Wrap(err, "failed to pop email job")
		}

		// BRPop returns [key, value].
		if len(res) != 2 {
			return job, errors.Errorf("unexpected BRPOP reply length %d", len(res))
		}

		if err := json.Unmarshal([]byte(res[1]), &job); err != nil {
			// A malformed payload is dropped, not retried forever.
			q.logger.Error("Discarding malformed email job", slog.Any("error", err))

			continue
		}

		return job, nil
	}
}

// Close is a no-op; the shared Redis client is owned by its own lifecycle hook.
func (q *redisQueue) Close() error {
	return nil
}
