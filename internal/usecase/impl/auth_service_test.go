package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bastion/internal/domain/entity"
	domainerrors "bastion/internal/domain/errors"
	"bastion/internal/domain/repository"
	"bastion/internal/domain/service"
	mockRepo "bastion/internal/mocks/repository"
	mockSvc "bastion/internal/mocks/service"
	"bastion/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixture struct {
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	tokenCache   *mockSvc.MockTokenCache
	emailQueue   *mockSvc.MockEmailQueue
	service      usecase.AuthUsecase
}

func createTestAuthService(t *testing.T) *authServiceFixture {
	t.Helper()

	fx := &authServiceFixture{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
		tokenCache:   mockSvc.NewMockTokenCache(t),
		emailQueue:   mockSvc.NewMockEmailQueue(t),
	}

	fx.service = NewAuthService(AuthServiceParams{
		TxManager:    fx.txManager,
		UserRepo:     fx.userRepo,
		Hasher:       fx.hasher,
		TokenService: fx.tokenService,
		TokenCache:   fx.tokenCache,
		EmailQueue:   fx.emailQueue,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return fx
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	input := usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "S3curePass!",
	}

	fx.hasher.EXPECT().ValidateStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed-password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().ExistsByEmailOrUsername(ctx, input.Email, input.Username).Return(false, nil)
			mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.emailQueue.EXPECT().
		EnqueueVerifyEmail(ctx, mock.AnythingOfType("service.VerifyEmailJob")).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Username, output.User.Username)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, "hashed-password", output.User.PasswordHash)
	assert.Equal(t, entity.RoleUser, output.User.Role)
}

func TestAuthService_Register_DuplicateIdentifier(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	input := usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "S3curePass!",
	}

	fx.hasher.EXPECT().ValidateStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed-password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().ExistsByEmailOrUsername(ctx, input.Email, input.Username).Return(true, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrUserAlreadyExists)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	input := usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "short",
	}

	fx.hasher.EXPECT().ValidateStrength(input.Password).Return(assert.AnError)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestAuthService_Register_EnqueueFailureStillSucceeds(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	input := usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "S3curePass!",
	}

	fx.hasher.EXPECT().ValidateStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed-password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().ExistsByEmailOrUsername(ctx, input.Email, input.Username).Return(false, nil)
			mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.emailQueue.EXPECT().
		EnqueueVerifyEmail(ctx, mock.AnythingOfType("service.VerifyEmailJob")).
		Return(assert.AnError)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed-password",
		Role:         entity.RoleUser,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("S3curePass!", user.PasswordHash).Return(true)

	var recordedHash string
	fx.tokenCache.EXPECT().
		SetAccessHash(ctx, mock.AnythingOfType("string"), userID).
		Run(func(ctx context.Context, hash string, _ uuid.UUID) {
			recordedHash = hash
		}).
		Return(nil)

	fx.tokenService.EXPECT().
		IssueToken(service.TokenKindAccess, userID, entity.RoleUser, mock.AnythingOfType("string")).
		Return("access-token", nil)
	fx.tokenService.EXPECT().
		IssueToken(service.TokenKindRefresh, userID, entity.RoleUser, mock.AnythingOfType("string")).
		Return("refresh-token", nil)
	fx.tokenService.EXPECT().AccessTokenTTL().Return(15 * time.Minute)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "S3curePass!"})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "access-token", output.Tokens.AccessToken)
	assert.Equal(t, "refresh-token", output.Tokens.RefreshToken)
	assert.Equal(t, 15*time.Minute, output.Tokens.AccessTTL)
	assert.Equal(t, userID, output.User.ID)
	assert.Len(t, recordedHash, 64)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		PasswordHash: "hashed-password",
		Role:         entity.RoleUser,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", user.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "wrong"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_RefreshTokens_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{ID: userID, Role: entity.RoleUser}
	oldHash := "old-rotation-hash"
	claims := &service.Claims{UserID: userID, Role: entity.RoleUser, Hash: oldHash}

	fx.tokenService.EXPECT().
		VerifyToken(service.TokenKindRefresh, "refresh-token").
		Return(claims, nil)
	fx.tokenCache.EXPECT().GetAccessHash(ctx, oldHash).Return(userID, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	// The old generation must be retired before the new one is recorded.
	var deletedBeforeSet bool
	fx.tokenCache.EXPECT().
		DeleteAccessHash(ctx, oldHash).
		Run(func(ctx context.Context, _ string) {
			deletedBeforeSet = true
		}).
		Return(nil)
	fx.tokenCache.EXPECT().
		SetAccessHash(ctx, mock.AnythingOfType("string"), userID).
		Run(func(ctx context.Context, hash string, _ uuid.UUID) {
			assert.True(t, deletedBeforeSet)
			assert.NotEqual(t, oldHash, hash)
		}).
		Return(nil)

	fx.tokenService.EXPECT().
		IssueToken(service.TokenKindAccess, userID, entity.RoleUser, mock.AnythingOfType("string")).
		Return("new-access-token", nil)
	fx.tokenService.EXPECT().
		IssueToken(service.TokenKindRefresh, userID, entity.RoleUser, mock.AnythingOfType("string")).
		Return("new-refresh-token", nil)
	fx.tokenService.EXPECT().AccessTokenTTL().Return(15 * time.Minute)

	tokens, err := fx.service.RefreshTokens(ctx, "refresh-token")

	require.NoError(t, err)
	require.NotNil(t, tokens)
	assert.Equal(t, "new-access-token", tokens.AccessToken)
	assert.Equal(t, "new-refresh-token", tokens.RefreshToken)
	assert.Equal(t, 15*time.Minute, tokens.AccessTTL)
}

func TestAuthService_RefreshTokens_ReplayAfterRotation(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	userID := uuid.New()
	claims := &service.Claims{UserID: userID, Role: entity.RoleUser, Hash: "retired-hash"}

	fx.tokenService.EXPECT().
		VerifyToken(service.TokenKindRefresh, "stale-refresh-token").
		Return(claims, nil)
	fx.tokenCache.EXPECT().GetAccessHash(ctx, "retired-hash").Return(uuid.Nil, service.ErrCacheMiss)

	tokens, err := fx.service.RefreshTokens(ctx, "stale-refresh-token")

	require.Error(t, err)
	assert.Nil(t, tokens)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthService_RefreshTokens_UserMismatch(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	claims := &service.Claims{UserID: uuid.New(), Role: entity.RoleUser, Hash: "hash"}

	fx.tokenService.EXPECT().
		VerifyToken(service.TokenKindRefresh, "refresh-token").
		Return(claims, nil)
	fx.tokenCache.EXPECT().GetAccessHash(ctx, "hash").Return(uuid.New(), nil)

	tokens, err := fx.service.RefreshTokens(ctx, "refresh-token")

	require.Error(t, err)
	assert.Nil(t, tokens)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthService_Logout_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	claims := &service.Claims{UserID: uuid.New(), Role: entity.RoleUser, Hash: "session-hash"}

	fx.tokenService.EXPECT().
		VerifyToken(service.TokenKindAccess, "access-token").
		Return(claims, nil)
	fx.tokenCache.EXPECT().DeleteAccessHash(ctx, "session-hash").Return(nil)

	err := fx.service.Logout(ctx, "access-token")

	require.NoError(t, err)
}

func TestAuthService_Logout_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().
		VerifyToken(service.TokenKindAccess, "garbage").
		Return(nil, assert.AnError)

	err := fx.service.Logout(ctx, "garbage")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthService_VerifyAccessToken_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	userID := uuid.New()
	claims := &service.Claims{UserID: userID, Role: entity.RoleAdmin, Hash: "session-hash"}

	fx.tokenService.EXPECT().
		VerifyToken(service.TokenKindAccess, "access-token").
		Return(claims, nil)
	fx.tokenCache.EXPECT().GetAccessHash(ctx, "session-hash").Return(userID, nil)

	info, err := fx.service.VerifyAccessToken(ctx, "access-token")

	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, userID, info.UserID)
	assert.Equal(t, entity.RoleAdmin, info.Role)
	assert.Equal(t, "session-hash", info.Hash)
}

func TestAuthService_VerifyAccessToken_RevokedSession(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	claims := &service.Claims{UserID: uuid.New(), Role: entity.RoleUser, Hash: "revoked-hash"}

	fx.tokenService.EXPECT().
		VerifyToken(service.TokenKindAccess, "access-token").
		Return(claims, nil)
	fx.tokenCache.EXPECT().GetAccessHash(ctx, "revoked-hash").Return(uuid.Nil, service.ErrCacheMiss)

	info, err := fx.service.VerifyAccessToken(ctx, "access-token")

	require.Error(t, err)
	assert.Nil(t, info)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}
