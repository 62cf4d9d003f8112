// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"bastion/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// TokenPair bundles the two tokens returned by login and refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	// AccessTTL is the effective lifetime of the access token, so the
	// delivery layer can expose an expiry without decoding the token.
	AccessTTL time.Duration
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	Tokens TokenPair
	User   *entity.User
}

// AccessInfo describes the authenticated caller of a verified request.
type AccessInfo struct {
	UserID uuid.UUID
	Role   entity.Role
	// Hash identifies the session generation the access token belongs to.
	Hash string
}

// AuthUsecase defines the interface for authentication and session
// lifecycle operations. This is the contract the delivery layer depends on.
type AuthUsecase interface {
	// Register creates a new user account and schedules a verification email.
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and opens a new session.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// RefreshTokens rotates a session: the presented refresh token's
	// generation is retired and a fresh token pair is issued.
	RefreshTokens(ctx context.Context, refreshToken string) (*TokenPair, error)

	// Logout revokes the session the access token belongs to.
	Logout(ctx context.Context, accessToken string) error

	// VerifyAccessToken checks an access token's signature, expiry and
	// revocation state without touching the database.
	VerifyAccessToken(ctx context.Context, accessToken string) (*AccessInfo, error)
}
