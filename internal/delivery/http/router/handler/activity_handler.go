package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"gamedash/internal/delivery/http/response"
	"gamedash/internal/domain/entity"
	"gamedash/internal/domain/repository"
	"gamedash/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ActivityHandler holds dependencies for player analytics handlers.
type ActivityHandler struct {
	uc     usecase.ActivityUsecase
	logger *slog.Logger
}

// NewActivityHandler is the constructor for ActivityHandler, injected by Fx.
func NewActivityHandler(uc usecase.ActivityUsecase, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{uc: uc, logger: logger}
}

type recordActivityRequest struct {
	PlayerID     int64          `json:"player_id" validate:"required,gt=0"`
	GameID       int64          `json:"game_id" validate:"required,gt=0"`
	ActivityType string         `json:"activity_type" validate:"required,max=50"`
	OccurredAt   *time.Time     `json:"occurred_at"`
	Details      map[string]any `json:"details"`
}

type activityResponse struct {
	ID           int64          `json:"id"`
	PlayerID     int64          `json:"player_id"`
	GameID       int64          `json:"game_id"`
	ActivityType string         `json:"activity_type"`
	OccurredAt   time.Time      `json:"occurred_at"`
	Details      map[string]any `json:"details,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

func toActivityResponse(a *entity.PlayerActivity) activityResponse {
	return activityResponse{
		ID:           a.ID,
		PlayerID:     a.PlayerID,
		GameID:       a.GameID,
		ActivityType: a.ActivityType,
		OccurredAt:   a.OccurredAt,
		Details:      a.Details,
		CreatedAt:    a.CreatedAt,
	}
}

// RecordActivity stores a new analytics event.
func (h *ActivityHandler) RecordActivity(c echo.Context) error {
	var req recordActivityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "invalid activity input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := usecase.RecordActivityInput{
		PlayerID:     req.PlayerID,
		GameID:       req.GameID,
		ActivityType: req.ActivityType,
		Details:      req.Details,
	}
	if req.OccurredAt != nil {
		input.OccurredAt = *req.OccurredAt
	}

	activity, err := h.uc.RecordActivity(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toActivityResponse(activity), "activity recorded")
}

// GetActivity returns a single activity record by ID.
func (h *ActivityHandler) GetActivity(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "invalid activity id")
	}

	activity, err := h.uc.GetActivity(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toActivityResponse(activity), "")
}

// ListActivities returns activity records filtered by player_id and game_id.
func (h *ActivityHandler) ListActivities(c echo.Context) error {
	var filter repository.ActivityFilter
	if raw := c.QueryParam("player_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "invalid player_id filter")
		}
		filter.PlayerID = parsed
	}
	if raw := c.QueryParam("game_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "invalid game_id filter")
		}
		filter.GameID = parsed
	}

	activities, err := h.uc.ListActivities(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]activityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, toActivityResponse(a))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// DeleteActivity soft-deletes an activity record. Admin only.
func (h *ActivityHandler) DeleteActivity(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "invalid activity id")
	}

	if err := h.uc.DeleteActivity(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
