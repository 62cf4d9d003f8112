package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// Uniqueness of email and username is enforced by partial indexes scoped to
// live rows, so a soft-deleted account frees its identifiers.
type UserModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username        string    `gorm:"type:varchar(100);not null;index:idx_users_username,unique,where:deleted_at IS NULL"`
	Email           string    `gorm:"type:varchar(255);not null;index:idx_users_email,unique,where:deleted_at IS NULL"`
	PasswordHash    string    `gorm:"type:varchar(255);not null"`
	Role            string    `gorm:"type:varchar(20);not null;default:'user'"`
	Bio             string    `gorm:"type:text"`
	IsEmailVerified bool      `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
