// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"bastion/config"
	"bastion/internal/domain/entity"
	"bastion/internal/domain/service"
)

// kindConfig bundles the secret and lifetime of one token kind.
type kindConfig struct {
	secret []byte
	ttl    time.Duration
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Each token kind is signed with its own secret and carries the kind in a
// claim, so both checks must pass during verification.
type jwtService struct {
	kinds map[service.TokenKind]kindConfig
}

// wireClaims is the on-the-wire claim layout.
type wireClaims struct {
	Role string `json:"role,omitempty"`
	Hash string `json:"hash,omitempty"`
	Kind string `json:"kind"`
	jwt.RegisteredClaims
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	auth := cfg.Auth
	if auth == nil {
		return nil, errors.New("auth config must be provided")
	}
	if auth.AccessSecret == "" || auth.RefreshSecret == "" || auth.EmailVerificationSecret == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtService{
		kinds: map[service.TokenKind]kindConfig{
			service.TokenKindAccess: {
				secret: []byte(auth.AccessSecret),
				ttl:    auth.AccessTTL,
			},
			service.TokenKindRefresh: {
				secret: []byte(auth.RefreshSecret),
				ttl:    auth.RefreshTTL,
			},
			service.TokenKindEmailVerification: {
				secret: []byte(auth.EmailVerificationSecret),
				ttl:    auth.EmailVerificationTTL,
			},
		},
	}, nil
}

// IssueToken creates a signed token of the given kind for a user.
func (s *jwtService) IssueToken(kind service.TokenKind, userID uuid.UUID, role entity.Role, hash string) (string, error) {
	cfg, ok := s.kinds[kind]
	if !ok {
		return "", errors.Errorf("unknown token kind %q", kind)
	}

	now := time.Now()
	claims := wireClaims{
		Role: role.String(),
		Hash: hash,
		Kind: string(kind),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.ttl)),
		},
	}
	// Email verification tokens are not bound to a session generation.
	if kind == service.TokenKindEmailVerification {
		claims.Hash = ""
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(cfg.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// VerifyToken checks signature, expiry and kind of a token string.
func (s *jwtService) VerifyToken(kind service.TokenKind, tokenString string) (*service.Claims, error) {
	cfg, ok := s.kinds[kind]
	if !ok {
		return nil, errors.Errorf("unknown token kind %q", kind)
	}

	parsed := &wireClaims{}
	_, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return cfg.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}

	// The kind claim is verified on top of the per-kind secret so a
	// mislabelled token never passes, even with shared secrets in dev.
	if parsed.Kind != string(kind) {
		return nil, errors.Errorf("token kind mismatch: expected %q", kind)
	}

	userID, err := uuid.Parse(parsed.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject claim")
	}

	return &service.Claims{
		UserID:           userID,
		Role:             entity.RoleFromString(parsed.Role),
		Hash:             parsed.Hash,
		RegisteredClaims: parsed.RegisteredClaims,
	}, nil
}

// AccessTokenTTL returns the configured lifetime of access tokens.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.kinds[service.TokenKindAccess].ttl
}
