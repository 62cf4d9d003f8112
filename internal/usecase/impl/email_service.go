package impl

import (
	"context"
	"fmt"
	"log/slog"

	"bastion/config"
	deliverycontext "bastion/internal/delivery/context"
	domainerrors "bastion/internal/domain/errors"
	"bastion/internal/domain/repository"
	"bastion/internal/domain/service"
	"bastion/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// emailService implements the EmailUsecase interface.
type emailService struct {
	userRepo     repository.UserRepository
	tokenService service.TokenService
	mailer       service.Mailer
	notifier     service.Notifier
	frontendURL  string
	logger       *slog.Logger
}

// EmailServiceParams holds dependencies for EmailService, injected by Fx.
type EmailServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	TokenService service.TokenService
	Mailer       service.Mailer `optional:"true"`
	Notifier     service.Notifier
	Config       *config.Config
	Logger       *slog.Logger
}

// NewEmailService is the constructor for emailService.
func NewEmailService(params EmailServiceParams) usecase.EmailUsecase {
	frontendURL := ""
	if params.Config != nil && params.Config.Mail != nil {
		frontendURL = params.Config.Mail.FrontendURL
	}

	return &emailService{
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		mailer:       params.Mailer,
		notifier:     params.Notifier,
		frontendURL:  frontendURL,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *emailService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// VerifyEmail consumes the token from a verification link and marks the
// user's email as verified. The token is not invalidated afterwards;
// replaying it hits the already-verified conflict instead.
func (srv *emailService) VerifyEmail(ctx context.Context, token string) error {
	claims, err := srv.tokenService.VerifyToken(service.TokenKindEmailVerification, token)
	if err != nil {
		srv.log(ctx).Warn("Email verification token rejected", slog.Any("error", err))

		return domainerrors.ErrInvalidToken
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}
	if err != nil {
		srv.log(ctx).Error("Failed to load user during email verification", slog.Any("error", err))

		return errors.Wrap(err, "failed to find user by id")
	}

	if user.IsEmailVerified {
		return domainerrors.ErrEmailAlreadyVerified
	}

	if err := srv.userRepo.MarkEmailVerified(ctx, user.ID); err != nil {
		srv.log(ctx).Error("Failed to mark email verified", slog.Any("userID", user.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to mark email verified")
	}

	srv.notifier.PushToUser(user.ID, "email.verified", map[string]any{
		"userId": user.ID.String(),
		"email":  user.Email,
	})

	srv.log(ctx).Info("Email verified", slog.Any("userID", user.ID))

	return nil
}

// SendVerificationMail renders and delivers the verification email for an
// enqueued job. The user's current address is loaded here, not taken from
// the job, so an address change between enqueue and send wins.
func (srv *emailService) SendVerificationMail(ctx context.Context, job service.VerifyEmailJob) error {
	if srv.mailer == nil {
		return errors.New("mailer is not configured")
	}

	user, err := srv.userRepo.FindByID(ctx, job.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		// The account was deleted before the worker got to the job.
		srv.log(ctx).Warn("Skipping verification mail for missing user", slog.Any("userID", job.UserID))

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to find user by id")
	}

	if user.IsEmailVerified {
		srv.log(ctx).Debug("Skipping verification mail for verified user", slog.Any("userID", user.ID))

		return nil
	}

	token, err := srv.tokenService.IssueToken(service.TokenKindEmailVerification, user.ID, user.Role, "")
	if err != nil {
		return errors.Wrap(err, "failed to issue email verification token")
	}

	mail := service.VerificationMail{
		To:        user.Email,
		Username:  user.Username,
		VerifyURL: fmt.Sprintf("%s/auth/verify-email?token=%s", srv.frontendURL, token),
	}
	if err := srv.mailer.SendVerificationMail(ctx, mail); err != nil {
		srv.log(ctx).Error("Failed to send verification mail", slog.Any("userID", user.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to send verification mail")
	}

	srv.log(ctx).Info("Verification mail sent", slog.Any("userID", user.ID))

	return nil
}
