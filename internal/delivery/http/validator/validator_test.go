package validator

import (
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type passwordPayload struct {
	Password string `validate:"required,min=8,maxbytes=72"`
}

func TestValidate_MaxBytesCountsBytesNotRunes(t *testing.T) {
	v := New()

	// 72 ASCII characters are exactly at the bcrypt input limit.
	assert.NoError(t, v.Validate(passwordPayload{Password: strings.Repeat("a", 72)}))

	// 72 two-byte runes are 144 bytes and must fail even though the rune
	// count is within the limit.
	err := v.Validate(passwordPayload{Password: strings.Repeat("é", 72)})
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestValidate_RejectsMissingFields(t *testing.T) {
	v := New()

	err := v.Validate(passwordPayload{})
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
