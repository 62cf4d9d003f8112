package usecase

import (
	"context"

	"bastion/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput defines the profile fields a user may change.
// The password is intentionally absent; credential changes go through
// ChangePasswordInput so profile updates can never touch the hash.
type UpdateProfileInput struct {
	Username *string
	Bio      *string
}

// ChangePasswordInput defines the data required to change a password.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// ListUsersInput defines pagination for the admin user listing.
type ListUsersInput struct {
	Page    int
	PerPage int
}

// ListUsersOutput returns one page of users with the total count.
type ListUsersOutput struct {
	Users []*entity.User
	Total int64
}

// UserUsecase defines the interface for user profile operations.
type UserUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*entity.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, input ChangePasswordInput) error
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
	ListUsers(ctx context.Context, input ListUsersInput) (*ListUsersOutput, error)
}
