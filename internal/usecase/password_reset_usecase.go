package usecase

import "context"

// RequestPasswordResetInput identifies the account to recover.
type RequestPasswordResetInput struct {
	Email string
}

// ConfirmPasswordResetInput carries the raw reset token and the new password.
type ConfirmPasswordResetInput struct {
	Token       string
	NewPassword string
}

// PasswordResetUsecase defines the two-step password recovery flow.
// Both operations respond identically whether or not the email or token
// matches anything, so callers cannot enumerate registered accounts.
type PasswordResetUsecase interface {
	// RequestReset issues a single-use reset token for the account with the
	// given email, delivered out-of-band. Unknown emails are a silent no-op.
	RequestReset(ctx context.Context, input RequestPasswordResetInput) error

	// ConfirmReset consumes the token and replaces the account password.
	// A token can succeed at most once; all sessions are revoked on success.
	ConfirmReset(ctx context.Context, input ConfirmPasswordResetInput) error
}
