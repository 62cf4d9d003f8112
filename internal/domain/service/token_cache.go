package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrCacheMiss is returned when no validity entry exists for a rotation hash.
// A miss means the session was revoked, rotated away, or expired; callers
// treat it as an authorization failure, never as a transient fault.
var ErrCacheMiss = errors.New("token cache entry not found")

// TokenCache tracks which session rotation hashes are currently valid.
// One entry exists per live session; deleting it revokes every token
// minted for that rotation generation.
type TokenCache interface {
	// SetAccessHash records a rotation hash as valid for the given user.
	// The entry expires on its own after the access token lifetime.
	SetAccessHash(ctx context.Context, hash string, userID uuid.UUID) error

	// GetAccessHash resolves a rotation hash to the user it belongs to.
	// Returns ErrCacheMiss when the entry does not exist.
	GetAccessHash(ctx context.Context, hash string) (uuid.UUID, error)

	// DeleteAccessHash removes a rotation hash, revoking the session.
	// Deleting an absent entry is not an error.
	DeleteAccessHash(ctx context.Context, hash string) error
}
