package service

import (
	"context"

	"github.com/google/uuid"
)

// VerifyEmailJob is the payload enqueued after a successful registration.
// The worker loads the user's current address when sending, so the job
// carries only identifiers.
type VerifyEmailJob struct {
	UserID    uuid.UUID `json:"userId"`
	RequestID string    `json:"requestId,omitempty"`
}

// EmailQueue hands email work off to a background worker. Registration
// must not block on SMTP, so enqueueing is the only coupling between
// the API process and mail delivery.
type EmailQueue interface {
	// EnqueueVerifyEmail schedules a verification email for a user.
	EnqueueVerifyEmail(ctx context.Context, job VerifyEmailJob) error

	// Close releases the underlying queue connection.
	Close() error
}

// EmailQueueConsumer is the worker-side view of the queue.
type EmailQueueConsumer interface {
	// NextVerifyEmail blocks until a job is available or the context is done.
	NextVerifyEmail(ctx context.Context) (VerifyEmailJob, error)

	// Close releases the underlying queue connection.
	Close() error
}
