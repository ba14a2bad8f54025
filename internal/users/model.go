package users

import (
	"database/sql"
	"time"
)

// User is one row of the users table. Email is the identity key and is
// immutable once set; there is no rename or delete operation.
type User struct {
	ID               int64
	Email            string
	PasswordHash     string
	IsActive         bool
	RegistrationDate time.Time
	ActivationDate   sql.NullTime
}
