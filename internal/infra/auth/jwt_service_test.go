package auth

import (
	"testing"
	"time"

	"gamedash/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	accessToken, refreshToken, err := jwtService.GenerateTokens(42, "gordon", true)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	accessClaims, err := jwtService.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), accessClaims.UserID)
	assert.Equal(t, "gordon", accessClaims.Username)
	assert.True(t, accessClaims.IsAdmin)
	assert.Equal(t, "access", accessClaims.Type)

	refreshClaims, err := jwtService.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), refreshClaims.UserID)
	// Refresh tokens carry identity only, no role material.
	assert.Empty(t, refreshClaims.Username)
	assert.False(t, refreshClaims.IsAdmin)
	assert.Equal(t, "refresh", refreshClaims.Type)
}

func TestJWTService_RejectsWrongTypeToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	accessToken, refreshToken, err := jwtService.GenerateTokens(42, "gordon", false)
	require.NoError(t, err)

	_, err = jwtService.ValidateAccessToken(refreshToken)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = jwtService.ValidateRefreshToken(accessToken)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	accessToken, _, err := jwtService.GenerateTokens(42, "gordon", false)
	require.NoError(t, err)

	tampered := accessToken[:len(accessToken)-2] + "xx"
	_, err = jwtService.ValidateAccessToken(tampered)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = jwtService.ValidateAccessToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := &jwtService{
		accessSecret:  "expired_access_secret",
		refreshSecret: "expired_refresh_secret",
		accessTTL:     -time.Minute,
		refreshTTL:    -time.Minute,
	}

	accessToken, refreshToken, err := svc.GenerateTokens(42, "gordon", false)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(accessToken)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = svc.ValidateRefreshToken(refreshToken)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestJWTService_RejectsMissingSubject(t *testing.T) {
	svc := &jwtService{
		accessSecret:  "subject_access_secret",
		refreshSecret: "subject_refresh_secret",
		accessTTL:     time.Minute,
		refreshTTL:    time.Minute,
	}

	token, err := svc.generateToken(0, "ghost", false, time.Minute, svc.accessSecret, tokenTypeAccess)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestJWTService_RequiresSecrets(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "only-access"

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_HashToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	first := jwtService.HashToken("some-refresh-token")
	second := jwtService.HashToken("some-refresh-token")
	other := jwtService.HashToken("another-token")

	assert.Len(t, first, 64)
	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
}
