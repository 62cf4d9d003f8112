package service

import (
	"time"

	"bastion/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenKind distinguishes the three token families issued by the service.
// Each kind is signed with its own secret, so a token of one kind can never
// pass verification as another.
type TokenKind string

const (
	// TokenKindAccess is the short-lived bearer token for API access.
	TokenKindAccess TokenKind = "access"

	// TokenKindRefresh is the long-lived token used only to obtain new pairs.
	TokenKindRefresh TokenKind = "refresh"

	// TokenKindEmailVerification is the single-purpose token embedded in
	// verification emails.
	TokenKindEmailVerification TokenKind = "email-verification"
)

// Claims defines the custom claims carried by every issued JWT.
type Claims struct {
	UserID uuid.UUID
	Role   entity.Role
	// Hash is the session rotation hash binding this token to one
	// login/refresh generation. Empty for email verification tokens.
	Hash string
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// IssueToken creates a signed token of the given kind for a user.
	// The hash argument is ignored for email verification tokens.
	IssueToken(kind TokenKind, userID uuid.UUID, role entity.Role, hash string) (string, error)

	// VerifyToken checks signature, expiry and kind of a token string.
	// A token signed for a different kind fails verification.
	VerifyToken(kind TokenKind, tokenString string) (*Claims, error)

	// AccessTokenTTL returns the configured lifetime of access tokens.
	AccessTokenTTL() time.Duration
}
