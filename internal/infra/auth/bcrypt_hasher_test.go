package auth

import (
	"testing"

	"gamedash/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() *bcryptHasher {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, hasher.Check("correct horse battery staple", hash))
	assert.False(t, hasher.Check("correct horse battery stapler", hash))
}

func TestBcryptHasher_UniqueSalts(t *testing.T) {
	hasher := newTestHasher()

	first, err := hasher.Hash("same password")
	require.NoError(t, err)
	second, err := hasher.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same password", first))
	assert.True(t, hasher.Check("same password", second))
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	hasher := newTestHasher()

	assert.False(t, hasher.Check("anything", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Check("anything", ""))
}

func TestBcryptHasher_CostFallback(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{}).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)

	hasher = NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}
