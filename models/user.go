package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Email is the unique user identifier used during authentication.
	Email string `json:"email"`

	// Password carries the plaintext password on inbound requests only.
	// It is never persisted and never serialized back to clients.
	Password string `json:"password,omitempty"`

	// PasswordHash is the stored PBKDF2 credential derived from Password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// FirstName is the user's given name. Non-sensitive, may be shown in UI.
	FirstName string `json:"first_name"`

	// LastName is the user's family name.
	LastName string `json:"last_name"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
