// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"gamedash/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrResetTokenNotFound is returned when a reset token is absent, expired or
// already consumed. Callers must not distinguish those cases.
var ErrResetTokenNotFound = errors.New("password reset token not found")

// ResetTokenRepository manages single-use password-reset credentials.
type ResetTokenRepository interface {
	// CreateResetToken persists a new reset token hash with its expiry.
	CreateResetToken(ctx context.Context, token *entity.PasswordResetToken) error

	// ConsumeResetToken atomically deletes the row matching the hash and
	// returns it. The delete-and-return must be a single atomic operation:
	// when two callers race on the same token, exactly one receives the row
	// and the other receives ErrResetTokenNotFound. Expired rows are treated
	// as absent (and discarded).
	ConsumeResetToken(ctx context.Context, tokenHash string) (*entity.PasswordResetToken, error)

	// DeleteExpiredResetTokens removes expired reset tokens. Periodic cleanup.
	DeleteExpiredResetTokens(ctx context.Context) error
}
