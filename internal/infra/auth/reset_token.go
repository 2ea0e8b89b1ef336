package auth

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/pkg/errors"
)

const resetTokenBytes = 32

// NewResetToken generates a cryptographically random, URL-safe reset token.
// Only its SHA-256 hash is ever persisted; the raw value goes out-of-band
// to the user.
func NewResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate reset token")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
