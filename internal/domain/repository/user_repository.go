// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bastion/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	// Soft-deleted users are excluded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	// Soft-deleted users are excluded.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmailOrUsername reports whether an active user already holds
	// the given email or username. Soft-deleted rows do not count, so a
	// deleted account frees its identifiers for re-registration.
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user's profile fields.
	// The password hash is intentionally not touched by this method;
	// use UpdatePassword for credential changes.
	Update(ctx context.Context, user *entity.User) error

	// UpdatePassword replaces the stored password hash for a user.
	// The hash must already be computed by the caller.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	// MarkEmailVerified sets the email verification flag for a user.
	MarkEmailVerified(ctx context.Context, id uuid.UUID) error

	// SoftDelete marks a user as deleted without removing the row.
	SoftDelete(ctx context.Context, id uuid.UUID) error

	// List returns a page of active users ordered by creation time.
	List(ctx context.Context, offset, limit int) ([]*entity.User, int64, error)
}
