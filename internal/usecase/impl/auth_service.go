// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"

	"bastion/config"
	deliverycontext "bastion/internal/delivery/context"
	"bastion/internal/domain/entity"
	domainerrors "bastion/internal/domain/errors"
	"bastion/internal/domain/repository"
	"bastion/internal/domain/service"
	"bastion/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	tokenCache   service.TokenCache
	emailQueue   service.EmailQueue
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	TokenCache   service.TokenCache
	EmailQueue   service.EmailQueue
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		tokenCache:   params.TokenCache,
		emailQueue:   params.EmailQueue,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// newRotationHash generates the opaque hash that binds one login/refresh
// generation together. Tokens carry it in their claims; the cache keeps
// one validity entry per hash.
func newRotationHash() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes for rotation hash")
	}

	sum := sha256.Sum256(buf)

	return hex.EncodeToString(sum[:]), nil
}

// Register creates a new user account and schedules a verification email.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if err := srv.hasher.ValidateStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, domainerrors.ErrPasswordStrength.WrapMessage(err.Error())
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	newUser := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleUser,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		exists, err := userRepo.ExistsByEmailOrUsername(ctx, input.Email, input.Username)
		if err != nil {
			return errors.Wrap(err, "failed to check existing users")
		}
		if exists {
			return domainerrors.ErrUserAlreadyExists
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	// The account exists regardless of whether the mail job lands; the
	// verification email can be re-requested later.
	job := service.VerifyEmailJob{
		UserID:    newUser.ID,
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
	}
	if err := srv.emailQueue.EnqueueVerifyEmail(ctx, job); err != nil {
		srv.log(ctx).Error("Failed to enqueue verification email", slog.Any("userID", newUser.ID), slog.Any("error", err))
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login verifies credentials and opens a new session.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		// Same error as a wrong password so the response never reveals
		// whether the email is registered.
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		srv.log(ctx).Error("Failed to find user during login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch during login", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	tokens, err := srv.openSession(ctx, user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Login completed", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{Tokens: *tokens, User: user}, nil
}

// openSession mints a rotation hash, records it in the cache and issues
// the token pair bound to it.
func (srv *authService) openSession(ctx context.Context, user *entity.User) (*usecase.TokenPair, error) {
	hash, err := newRotationHash()
	if err != nil {
		return nil, err
	}

	if err := srv.tokenCache.SetAccessHash(ctx, hash, user.ID); err != nil {
		srv.log(ctx).Error("Failed to record session in cache", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrInfrastructure.WrapMessage("failed to record session")
	}

	return srv.issueTokenPair(user, hash)
}

func (srv *authService) issueTokenPair(user *entity.User, hash string) (*usecase.TokenPair, error) {
	accessToken, err := srv.tokenService.IssueToken(service.TokenKindAccess, user.ID, user.Role, hash)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	refreshToken, err := srv.tokenService.IssueToken(service.TokenKindRefresh, user.ID, user.Role, hash)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue refresh token")
	}

	return &usecase.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		AccessTTL:    srv.tokenService.AccessTokenTTL(),
	}, nil
}

// RefreshTokens rotates a session. The presented refresh token must both
// verify cryptographically and belong to a generation that is still live
// in the cache, so a stolen token replayed after rotation is rejected.
func (srv *authService) RefreshTokens(ctx context.Context, refreshToken string) (*usecase.TokenPair, error) {
	claims, err := srv.tokenService.VerifyToken(service.TokenKindRefresh, refreshToken)
	if err != nil {
		srv.log(ctx).Warn("Refresh token verification failed", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidToken
	}

	cachedUserID, err := srv.tokenCache.GetAccessHash(ctx, claims.Hash)
	if errors.Is(err, service.ErrCacheMiss) {
		srv.log(ctx).Warn("Refresh attempted against retired session", slog.Any("userID", claims.UserID))

		return nil, domainerrors.ErrInvalidToken
	}
	if err != nil {
		srv.log(ctx).Error("Failed to resolve session in cache", slog.Any("error", err))

		return nil, domainerrors.ErrInfrastructure.WrapMessage("failed to resolve session")
	}
	if cachedUserID != claims.UserID {
		srv.log(ctx).Warn("Session hash bound to different user", slog.Any("userID", claims.UserID))

		return nil, domainerrors.ErrInvalidToken
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		srv.log(ctx).Error("Failed to load user during refresh", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	newHash, err := newRotationHash()
	if err != nil {
		return nil, err
	}

	// Retire the old generation before the new one goes live. If the set
	// fails after the delete the session is closed rather than duplicated.
	if err := srv.tokenCache.DeleteAccessHash(ctx, claims.Hash); err != nil {
		srv.log(ctx).Error("Failed to retire old session", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrInfrastructure.WrapMessage("failed to retire session")
	}
	if err := srv.tokenCache.SetAccessHash(ctx, newHash, user.ID); err != nil {
		srv.log(ctx).Error("Failed to record rotated session", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrInfrastructure.WrapMessage("failed to record session")
	}

	tokens, err := srv.issueTokenPair(user, newHash)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Session rotated", slog.Any("userID", user.ID))

	return tokens, nil
}

// Logout revokes the session the access token belongs to. The refresh
// token of the same generation dies with the cache entry.
func (srv *authService) Logout(ctx context.Context, accessToken string) error {
	claims, err := srv.tokenService.VerifyToken(service.TokenKindAccess, accessToken)
	if err != nil {
		srv.log(ctx).Warn("Access token verification failed during logout", slog.Any("error", err))

		return domainerrors.ErrInvalidToken
	}

	if err := srv.tokenCache.DeleteAccessHash(ctx, claims.Hash); err != nil {
		srv.log(ctx).Error("Failed to revoke session", slog.Any("userID", claims.UserID), slog.Any("error", err))

		return domainerrors.ErrInfrastructure.WrapMessage("failed to revoke session")
	}

	srv.log(ctx).Debug("Logout completed", slog.Any("userID", claims.UserID))

	return nil
}

// VerifyAccessToken checks an access token without touching the database.
// Signature and expiry come from the token itself; revocation state comes
// from the cache.
func (srv *authService) VerifyAccessToken(ctx context.Context, accessToken string) (*usecase.AccessInfo, error) {
	claims, err := srv.tokenService.VerifyToken(service.TokenKindAccess, accessToken)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken
	}

	cachedUserID, err := srv.tokenCache.GetAccessHash(ctx, claims.Hash)
	if errors.Is(err, service.ErrCacheMiss) {
		return nil, domainerrors.ErrInvalidToken
	}
	if err != nil {
		srv.log(ctx).Error("Failed to check session in cache", slog.Any("error", err))

		return nil, domainerrors.ErrInfrastructure.WrapMessage("failed to check session")
	}
	if cachedUserID != claims.UserID {
		return nil, domainerrors.ErrInvalidToken
	}

	return &usecase.AccessInfo{
		UserID: claims.UserID,
		Role:   claims.Role,
		Hash:   claims.Hash,
	}, nil
}
