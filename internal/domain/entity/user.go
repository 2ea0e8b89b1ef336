// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core identity in the system. Every authenticated request
// resolves to exactly one User, and owned resources reference its ID.
type User struct {
	ID           int64     // Primary identifier, assigned by the database.
	Username     string    // Unique display/login name.
	Email        string    // Unique contact email, also used for password recovery.
	PasswordHash string    // bcrypt hash of the user's password. Never the plaintext.
	IsActive     bool      // Inactive users cannot authenticate.
	IsAdmin      bool      // Admins may mutate any owned resource and unowned ones.
	IsDeleted    bool      // Soft-delete flag; deleted users are invisible to lookups.
	CreatedAt    time.Time // Timestamp of account creation.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// RefreshToken represents a long-lived, revocable user session. It is used
// to obtain a new access token after the old one expires, without
// re-submitting credentials.
type RefreshToken struct {
	ID        int64     // Primary identifier for this session record.
	UserID    int64     // The user this session belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token; the raw value is never stored.
	ExpiresAt time.Time // When this session becomes invalid.
	CreatedAt time.Time // When the session was created (login time).
}

// PasswordResetToken maps a hashed, single-use reset credential to a user.
// The row is deleted on consumption or expiry; at most one confirm call can
// ever succeed for a given token.
type PasswordResetToken struct {
	ID        int64
	UserID    int64
	TokenHash string    // SHA-256 hash of the raw token delivered out-of-band.
	ExpiresAt time.Time
	CreatedAt time.Time
}
