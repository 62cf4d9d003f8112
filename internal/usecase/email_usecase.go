package usecase

import (
	"context"

	"bastion/internal/domain/service"
)

// EmailUsecase defines the interface for email verification operations.
type EmailUsecase interface {
	// VerifyEmail consumes the token from a verification link and marks
	// the user's email as verified.
	VerifyEmail(ctx context.Context, token string) error

	// SendVerificationMail renders and delivers the verification email
	// for an enqueued job. Called by the background worker, not by the
	// HTTP surface.
	SendVerificationMail(ctx context.Context, job service.VerifyEmailJob) error
}
