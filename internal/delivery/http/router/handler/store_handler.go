package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"gamedash/internal/delivery/http/response"
	"gamedash/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StoreHandler holds dependencies for the external store proxy handlers.
type StoreHandler struct {
	uc     usecase.StoreUsecase
	logger *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(uc usecase.StoreUsecase, logger *slog.Logger) *StoreHandler {
	return &StoreHandler{uc: uc, logger: logger}
}

// GetAppDetails proxies a live metadata lookup for one store app.
func (h *StoreHandler) GetAppDetails(c echo.Context) error {
	appID, err := strconv.ParseInt(c.Param("appid"), 10, 64)
	if err != nil || appID <= 0 {
		return response.BadRequest(c, "INVALID_INPUT", "invalid app id")
	}

	details, err := h.uc.GetAppDetails(c.Request().Context(), appID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, details, "")
}
