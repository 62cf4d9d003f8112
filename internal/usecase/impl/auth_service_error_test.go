package impl

import (
	"context"
	"testing"

	"bastion/internal/domain/entity"
	domainerrors "bastion/internal/domain/errors"
	"bastion/internal/domain/repository"
	"bastion/internal/domain/service"
	"bastion/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	input := usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "S3curePass!",
	}

	fx.hasher.EXPECT().ValidateStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("", assert.AnError)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAuthService_Login_CacheWriteFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		PasswordHash: "hashed-password",
		Role:         entity.RoleUser,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("S3curePass!", user.PasswordHash).Return(true)
	fx.tokenCache.EXPECT().
		SetAccessHash(ctx, mock.AnythingOfType("string"), user.ID).
		Return(assert.AnError)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "S3curePass!"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInfrastructure)
}

func TestAuthService_RefreshTokens_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().
		VerifyToken(service.TokenKindRefresh, "garbage").
		Return(nil, assert.AnError)

	tokens, err := fx.service.RefreshTokens(ctx, "garbage")

	require.Error(t, err)
	assert.Nil(t, tokens)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthService_RefreshTokens_CacheUnavailable(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	claims := &service.Claims{UserID: uuid.New(), Role: entity.RoleUser, Hash: "hash"}

	fx.tokenService.EXPECT().
		VerifyToken(service.TokenKindRefresh, "refresh-token").
		Return(claims, nil)
	fx.tokenCache.EXPECT().GetAccessHash(ctx, "hash").Return(uuid.Nil, assert.AnError)

	tokens, err := fx.service.RefreshTokens(ctx, "refresh-token")

	require.Error(t, err)
	assert.Nil(t, tokens)
	assert.ErrorIs(t, err, domainerrors.ErrInfrastructure)
}

func TestAuthService_RefreshTokens_UserDeleted(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	userID := uuid.New()
	claims := &service.Claims{UserID: userID, Role: entity.RoleUser, Hash: "hash"}

	fx.tokenService.EXPECT().
		VerifyToken(service.TokenKindRefresh, "refresh-token").
		Return(claims, nil)
	fx.tokenCache.EXPECT().GetAccessHash(ctx, "hash").Return(userID, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	tokens, err := fx.service.RefreshTokens(ctx, "refresh-token")

	require.Error(t, err)
	assert.Nil(t, tokens)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthService_RefreshTokens_RetireFailureClosesSession(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{ID: userID, Role: entity.RoleUser}
	claims := &service.Claims{UserID: userID, Role: entity.RoleUser, Hash: "old-hash"}

	fx.tokenService.EXPECT().
		VerifyToken(service.TokenKindRefresh, "refresh-token").
		Return(claims, nil)
	fx.tokenCache.EXPECT().GetAccessHash(ctx, "old-hash").Return(userID, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.tokenCache.EXPECT().DeleteAccessHash(ctx, "old-hash").Return(assert.AnError)

	tokens, err := fx.service.RefreshTokens(ctx, "refresh-token")

	require.Error(t, err)
	assert.Nil(t, tokens)
	assert.ErrorIs(t, err, domainerrors.ErrInfrastructure)
}

func TestAuthService_Logout_CacheUnavailable(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	claims := &service.Claims{UserID: uuid.New(), Role: entity.RoleUser, Hash: "session-hash"}

	fx.tokenService.EXPECT().
		VerifyToken(service.TokenKindAccess, "access-token").
		Return(claims, nil)
	fx.tokenCache.EXPECT().DeleteAccessHash(ctx, "session-hash").Return(assert.AnError)

	err := fx.service.Logout(ctx, "access-token")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInfrastructure)
}

func TestAuthService_VerifyAccessToken_CacheUnavailable(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	claims := &service.Claims{UserID: uuid.New(), Role: entity.RoleUser, Hash: "session-hash"}

	fx.tokenService.EXPECT().
		VerifyToken(service.TokenKindAccess, "access-token").
		Return(claims, nil)
	fx.tokenCache.EXPECT().GetAccessHash(ctx, "session-hash").Return(uuid.Nil, assert.AnError)

	info, err := fx.service.VerifyAccessToken(ctx, "access-token")

	require.Error(t, err)
	assert.Nil(t, info)
	assert.ErrorIs(t, err, domainerrors.ErrInfrastructure)
}

func TestAuthService_VerifyAccessToken_UserMismatch(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	claims := &service.Claims{UserID: uuid.New(), Role: entity.RoleUser, Hash: "session-hash"}

	fx.tokenService.EXPECT().
		VerifyToken(service.TokenKindAccess, "access-token").
		Return(claims, nil)
	fx.tokenCache.EXPECT().GetAccessHash(ctx, "session-hash").Return(uuid.New(), nil)

	info, err := fx.service.VerifyAccessToken(ctx, "access-token")

	require.Error(t, err)
	assert.Nil(t, info)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}
