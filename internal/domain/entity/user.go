// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity record (the "principal") of the system.
// Accounts are never hard-deleted; DeletedAt marks a soft-deleted row that is
// excluded from lookups and from the username/email uniqueness constraints.
type User struct {
	ID              uuid.UUID  // The unique identifier for the user.
	Username        string     // Unique handle among non-deleted users.
	Email           string     // Unique login identifier among non-deleted users.
	PasswordHash    string     // bcrypt hash of the password; empty for externally authenticated accounts.
	Role            Role       // The user's role, e.g. "user" or "admin".
	Bio             string     // Optional free-form profile text.
	IsEmailVerified bool       // Set once the email-verification token has been redeemed.
	CreatedAt       time.Time  // Timestamp of when this account was created.
	UpdatedAt       time.Time  // Timestamp of the last modification to this account.
	DeletedAt       *time.Time // Soft-delete marker; nil for live accounts.
}

// IsDeleted reports whether the account has been soft-deleted.
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}
