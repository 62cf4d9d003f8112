package auth

import (
	"testing"
	"time"

	"bastion/config"
	"bastion/internal/domain/entity"
	"bastion/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestTokenService(t *testing.T) service.TokenService {
	t.Helper()

	svc, err := NewJWTService(&config.Config{
		Auth: &config.AuthConfig{
			AccessSecret:            "access-secret-for-tests",
			RefreshSecret:           "refresh-secret-for-tests",
			EmailVerificationSecret: "email-secret-for-tests",
			AccessTTL:               15 * time.Minute,
			RefreshTTL:              7 * 24 * time.Hour,
			EmailVerificationTTL:    24 * time.Hour,
		},
	})
	require.NoError(t, err)

	return svc
}

func TestJWTService_IssueAndVerify_RoundTrip(t *testing.T) {
	svc := createTestTokenService(t)
	userID := uuid.New()

	for _, kind := range []service.TokenKind{
		service.TokenKindAccess,
		service.TokenKindRefresh,
	} {
		token, err := svc.IssueToken(kind, userID, entity.RoleUser, "rotation-hash")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.VerifyToken(kind, token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, entity.RoleUser, claims.Role)
		assert.Equal(t, "rotation-hash", claims.Hash)
	}
}

func TestJWTService_EmailVerificationToken_CarriesNoHash(t *testing.T) {
	svc := createTestTokenService(t)
	userID := uuid.New()

	token, err := svc.IssueToken(service.TokenKindEmailVerification, userID, entity.RoleUser, "rotation-hash")
	require.NoError(t, err)

	claims, err := svc.VerifyToken(service.TokenKindEmailVerification, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Empty(t, claims.Hash)
}

func TestJWTService_VerifyToken_KindMismatch(t *testing.T) {
	svc := createTestTokenService(t)

	refreshToken, err := svc.IssueToken(service.TokenKindRefresh, uuid.New(), entity.RoleUser, "hash")
	require.NoError(t, err)

	claims, err := svc.VerifyToken(service.TokenKindAccess, refreshToken)

	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_VerifyToken_KindMismatchWithSharedSecret(t *testing.T) {
	// With a single secret for every kind, only the kind claim stands
	// between a refresh token and the access verification path.
	svc, err := NewJWTService(&config.Config{
		Auth: &config.AuthConfig{
			AccessSecret:            "shared-secret",
			RefreshSecret:           "shared-secret",
			EmailVerificationSecret: "shared-secret",
			AccessTTL:               time.Minute,
			RefreshTTL:              time.Minute,
			EmailVerificationTTL:    time.Minute,
		},
	})
	require.NoError(t, err)

	refreshToken, err := svc.IssueToken(service.TokenKindRefresh, uuid.New(), entity.RoleUser, "hash")
	require.NoError(t, err)

	claims, err := svc.VerifyToken(service.TokenKindAccess, refreshToken)

	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_VerifyToken_Expired(t *testing.T) {
	svc, err := NewJWTService(&config.Config{
		Auth: &config.AuthConfig{
			AccessSecret:            "access-secret-for-tests",
			RefreshSecret:           "refresh-secret-for-tests",
			EmailVerificationSecret: "email-secret-for-tests",
			AccessTTL:               -time.Minute,
			RefreshTTL:              time.Minute,
			EmailVerificationTTL:    time.Minute,
		},
	})
	require.NoError(t, err)

	token, err := svc.IssueToken(service.TokenKindAccess, uuid.New(), entity.RoleUser, "hash")
	require.NoError(t, err)

	claims, err := svc.VerifyToken(service.TokenKindAccess, token)

	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_VerifyToken_Garbage(t *testing.T) {
	svc := createTestTokenService(t)

	claims, err := svc.VerifyToken(service.TokenKindAccess, "not-a-jwt")

	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_AccessTokenTTL(t *testing.T) {
	svc := createTestTokenService(t)

	assert.Equal(t, 15*time.Minute, svc.AccessTokenTTL())
}

func TestJWTService_MissingSecrets(t *testing.T) {
	svc, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{}})

	assert.Error(t, err)
	assert.Nil(t, svc)
}
