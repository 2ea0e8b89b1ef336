// Package middleware contains the HTTP middleware for the delivery layer.
package middleware

import (
	"strings"

	deliverycontext "gamedash/internal/delivery/context"
	"gamedash/internal/delivery/http/response"
	"gamedash/internal/domain/repository"
	"gamedash/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// authFailedMessage is the single message for every authentication failure.
// A missing header, a bad signature, an expired token and a deleted account
// must be indistinguishable to the caller.
const authFailedMessage = "could not validate credentials"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the bearer access token and resolves it to a live
// user, which is stored in the request context as the principal.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", authFailedMessage)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", authFailedMessage)
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHENTICATED", authFailedMessage)
		}

		// The token may outlive the account. Resolve against the store so a
		// deleted or deactivated user is rejected even with a valid token.
		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil || !user.IsActive {
			return response.Unauthorized(c, "UNAUTHENTICATED", authFailedMessage)
		}

		ctx := deliverycontext.WithPrincipal(c.Request().Context(), user)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireAdmin rejects non-admin principals. It must be used AFTER the
// Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := deliverycontext.GetPrincipal(c.Request().Context())
		if user == nil {
			return response.Unauthorized(c, "UNAUTHENTICATED", authFailedMessage)
		}
		if !user.IsAdmin {
			return response.Forbidden(c, "FORBIDDEN", "admin privileges required")
		}

		return next(c)
	}
}
