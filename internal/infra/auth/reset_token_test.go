package auth

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResetToken(t *testing.T) {
	token, err := NewResetToken()
	require.NoError(t, err)

	decoded, err := base64.RawURLEncoding.DecodeString(token)
	require.NoError(t, err)
	assert.Len(t, decoded, resetTokenBytes)
}

func TestNewResetToken_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for range 64 {
		token, err := NewResetToken()
		require.NoError(t, err)

		_, dup := seen[token]
		require.False(t, dup)
		seen[token] = struct{}{}
	}
}
