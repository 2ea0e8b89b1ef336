package handler

import (
	"log/slog"
	"net/http"

	"gamedash/internal/delivery/http/response"
	"gamedash/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PasswordResetHandler holds dependencies for the password recovery flow.
type PasswordResetHandler struct {
	uc     usecase.PasswordResetUsecase
	logger *slog.Logger
}

// NewPasswordResetHandler is the constructor for PasswordResetHandler, injected by Fx.
func NewPasswordResetHandler(uc usecase.PasswordResetUsecase, logger *slog.Logger) *PasswordResetHandler {
	return &PasswordResetHandler{uc: uc, logger: logger}
}

type requestResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type confirmResetRequest struct {
	Token       string `json:"token" validate:"required"`
	// bcrypt reads at most 72 bytes of input; longer passwords are rejected
	// up front instead of being silently truncated.
	NewPassword string `json:"new_password" validate:"required,min=8,maxbytes=72"`
}

// neutralResetMessage is the single body for every reset request outcome.
const neutralResetMessage = "if the email is registered, a reset token has been sent"

// RequestReset handles the first recovery step. The response is identical
// for known and unknown emails.
func (h *PasswordResetHandler) RequestReset(c echo.Context) error {
	var req requestResetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "invalid reset request input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.RequestReset(c.Request().Context(), usecase.RequestPasswordResetInput{
		Email: req.Email,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": neutralResetMessage}, "")
}

// ConfirmReset handles the second recovery step: consume the token, set the
// new password.
func (h *PasswordResetHandler) ConfirmReset(c echo.Context) error {
	var req confirmResetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "invalid reset confirmation input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.ConfirmReset(c.Request().Context(), usecase.ConfirmPasswordResetInput{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "password has been reset"}, "")
}
