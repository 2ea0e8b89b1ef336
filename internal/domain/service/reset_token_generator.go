package service

// ResetTokenGenerator produces a raw, single-use password-reset credential.
// Implementations must draw from a cryptographically secure source.
type ResetTokenGenerator func() (string, error)
