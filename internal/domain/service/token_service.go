package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by the service's JWTs.
type Claims struct {
	UserID   int64  `json:"uid"`
	Username string `json:"username,omitempty"`
	IsAdmin  bool   `json:"adm,omitempty"`
	Type     string `json:"typ"` // "access" or "refresh"
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a user.
	GenerateTokens(userID int64, username string, isAdmin bool) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token string. Every failure mode
	// (bad signature, expiry, malformed input, missing subject, wrong token
	// type) yields the same uniform error so callers cannot distinguish them.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks a refresh token string under the same
	// uniform-failure contract.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// HashToken returns the hex SHA-256 digest of a raw token, the only form
	// in which refresh and reset tokens are persisted.
	HashToken(token string) string

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
