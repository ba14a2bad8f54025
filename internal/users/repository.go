package users

import (
	"context"
	"time"
)

// Repository is the persistence capability set the account Service needs.
//
// Implementations return common.ErrorNotFound when no row matches the email
// and common.ErrorDuplicateEmail when an insert loses to the unique email
// constraint. Any other error means the storage engine itself failed.
type Repository interface {
	// GetByEmail loads the full user record for an email.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Create inserts a new user and fills in the assigned ID.
	Create(ctx context.Context, user *User) (*User, error)

	// Activate marks the user active and stamps the activation date.
	// Re-activating simply re-stamps the date.
	Activate(ctx context.Context, email string, at time.Time) error

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, email string, passwordHash string) error
}
