// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"gamedash/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Username string
	Password string
}

// RefreshTokenInput carries the raw refresh token presented by the client.
type RefreshTokenInput struct {
	RefreshToken string
}

// UpdateProfileInput carries replacement profile values. Nil pointers mean
// "leave unchanged".
type UpdateProfileInput struct {
	Email *string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshTokenOutput returns the rotated token pair.
type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
}

// UserUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer depends on.
type UserUsecase interface {
	// Register creates a new active, non-admin account.
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and opens a new session.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// RefreshToken trades a valid refresh token for a new token pair,
	// revoking the presented one.
	RefreshToken(ctx context.Context, input RefreshTokenInput) (*RefreshTokenOutput, error)

	// Logout revokes the session identified by the refresh token.
	Logout(ctx context.Context, input RefreshTokenInput) error

	// GetProfile returns the authenticated user's own record.
	GetProfile(ctx context.Context) (*entity.User, error)

	// UpdateProfile modifies the authenticated user's own record. A profile
	// is owned by its user, so the ownership guard admits the user and
	// admins only.
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*entity.User, error)

	// GetUser returns a single user by ID. Admin only.
	GetUser(ctx context.Context, id int64) (*entity.User, error)

	// ListUsers returns all non-deleted users. Admin only.
	ListUsers(ctx context.Context) ([]*entity.User, error)
}
