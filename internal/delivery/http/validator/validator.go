// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// echoValidator wraps a validator instance for use as echo.Validator.
type echoValidator struct {
	validate *validator.Validate
}

// New creates an echo-compatible request validator.
func New() echo.Validator {
	v := validator.New()
	// The builtin max tag counts runes. Password limits come from bcrypt,
	// which reads at most 72 bytes, so those fields need a byte count.
	_ = v.RegisterValidation("maxbytes", validateMaxBytes)

	return &echoValidator{validate: v}
}

// Validate checks struct tags and converts failures into a 400 response.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}

func validateMaxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}

	return len(fl.Field().String()) <= limit
}
