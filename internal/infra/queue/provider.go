// Package queue provides the transports for background email jobs.
package queue

import (
	"context"
	"log/slog"

	"bastion/config"
	"bastion/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Supported queue providers.
const (
	ProviderRedis  = "redis"
	ProviderGoogle = "google"
)

const defaultQueueName = "email:verify"

// noopQueue is a no-op implementation when the queue is disabled.
type noopQueue struct {
	logger *slog.Logger
}

func (q *noopQueue) EnqueueVerifyEmail(ctx context.Context, job service.VerifyEmailJob) error {
	q.logger.Debug("[NoopQueue] Email queue disabled, dropping job",
		slog.String("user_id", job.UserID.String()),
	)

	return nil
}

func (q *noopQueue) Close() error {
	return nil
}

// QueueParams holds dependencies for the email queue, injected by Fx
type QueueParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	Redis  *redis.Client `optional:"true"`
}

// NewEmailQueue creates the producer side of the email queue based on configuration.
func NewEmailQueue(params QueueParams) (service.EmailQueue, error) {
	cfg := params.Config.Queue
	logger := params.Logger

	// If no queue is configured, return a no-op queue
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Email queue not configured, using no-op queue")

		return &noopQueue{logger: logger}, nil
	}

	var emailQueue service.EmailQueue
	var err error

	switch cfg.Provider {
	case ProviderRedis:
		if params.Redis == nil {
			return nil, errors.New("redis client is required for redis provider")
		}
		logger.Info("Using Redis list email queue",
			slog.String("queue", queueName(cfg)),
		)

		emailQueue = NewRedisQueue(params.Redis, queueName(cfg), logger)

	case ProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub email queue",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		emailQueue, err = NewGooglePublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown queue provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close the queue on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing email queue")

			return emailQueue.Close()
		},
	})

	return emailQueue, nil
}

// NewEmailQueueConsumer creates the worker side of the email queue.
// Only the Redis provider supports pull consumption; Pub/Sub deployments
// use push subscriptions and do not run this consumer.
func NewEmailQueueConsumer(params QueueParams) (service.EmailQueueConsumer, error) {
	cfg := params.Config.Queue
	if cfg == nil || cfg.Provider == "" {
		return nil, errors.New("queue must be configured for the worker")
	}

	switch cfg.Provider {
	case ProviderRedis:
		if params.Redis == nil {
			return nil, errors.New("redis client is required for redis provider")
		}

		consumer := NewRedisQueue(params.Redis, queueName(cfg), params.Logger)

		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return consumer.Close()
			},
		})

		return consumer, nil

	case ProviderGoogle:
		// Pub/Sub deliveries arrive through the push endpoint; there is
		// no pull consumer to run.
		return nil, nil

	default:
		return nil, errors.Errorf("unknown queue provider: %s", cfg.Provider)
	}
}

func queueName(cfg *config.QueueConfig) string {
	if cfg.QueueName != "" {
		return cfg.QueueName
	}

	return defaultQueueName
}

// Module provides the queue FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEmailQueue),
)
