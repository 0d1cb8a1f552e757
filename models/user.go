package models

import "time"

// User represents an account entity used for authentication and as the owner
// of categories and notes.
type User struct {
	// UserID is the server-assigned identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique login identifier. It is stored exactly as provided
	// at sign-up and compared exactly on login.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It never leaves the server.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}
