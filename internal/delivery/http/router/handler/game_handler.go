package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"gamedash/internal/delivery/http/response"
	"gamedash/internal/domain/entity"
	"gamedash/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GameHandler holds dependencies for catalog handlers.
type GameHandler struct {
	uc     usecase.GameUsecase
	logger *slog.Logger
}

// NewGameHandler is the constructor for GameHandler, injected by Fx.
func NewGameHandler(uc usecase.GameUsecase, logger *slog.Logger) *GameHandler {
	return &GameHandler{uc: uc, logger: logger}
}

type createGameRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Developer   string  `json:"developer" validate:"max=255"`
	Publisher   string  `json:"publisher" validate:"max=255"`
	Genres      string  `json:"genres"`
	Tags        string  `json:"tags"`
	ReleaseDate string  `json:"release_date" validate:"max=32"`
	Price       float64 `json:"price" validate:"gte=0"`
	SteamAppID  int64   `json:"steam_app_id" validate:"required,gt=0"`
}

type updateGameRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=1,max=255"`
	Developer   *string  `json:"developer" validate:"omitempty,max=255"`
	Publisher   *string  `json:"publisher" validate:"omitempty,max=255"`
	Genres      *string  `json:"genres"`
	Tags        *string  `json:"tags"`
	ReleaseDate *string  `json:"release_date" validate:"omitempty,max=32"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
}

type gameResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Developer   string    `json:"developer,omitempty"`
	Publisher   string    `json:"publisher,omitempty"`
	Genres      string    `json:"genres,omitempty"`
	Tags        string    `json:"tags,omitempty"`
	ReleaseDate string    `json:"release_date,omitempty"`
	Price       float64   `json:"price"`
	SteamAppID  int64     `json:"steam_app_id"`
	OwnerID     *int64    `json:"owner_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toGameResponse(g *entity.Game) gameResponse {
	return gameResponse{
		ID:          g.ID,
		Title:       g.Title,
		Developer:   g.Developer,
		Publisher:   g.Publisher,
		Genres:      g.Genres,
		Tags:        g.Tags,
		ReleaseDate: g.ReleaseDate,
		Price:       g.Price,
		SteamAppID:  g.SteamAppID,
		OwnerID:     g.OwnerID,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

// ListGames returns the catalog, optionally filtered by a title substring.
func (h *GameHandler) ListGames(c echo.Context) error {
	games, err := h.uc.ListGames(c.Request().Context(), c.QueryParam("title"))
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]gameResponse, 0, len(games))
	for _, g := range games {
		out = append(out, toGameResponse(g))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// GetGame returns a single game by ID.
func (h *GameHandler) GetGame(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "invalid game id")
	}

	game, err := h.uc.GetGame(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toGameResponse(game), "")
}

// CreateGame adds a new game owned by the caller.
func (h *GameHandler) CreateGame(c echo.Context) error {
	var req createGameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "invalid game input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	game, err := h.uc.CreateGame(c.Request().Context(), usecase.CreateGameInput{
		Title:       req.Title,
		Developer:   req.Developer,
		Publisher:   req.Publisher,
		Genres:      req.Genres,
		Tags:        req.Tags,
		ReleaseDate: req.ReleaseDate,
		Price:       req.Price,
		SteamAppID:  req.SteamAppID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toGameResponse(game), "game created")
}

// UpdateGame modifies a game; omitted fields keep their values.
func (h *GameHandler) UpdateGame(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "invalid game id")
	}

	var req updateGameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "invalid game input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	game, err := h.uc.UpdateGame(c.Request().Context(), id, usecase.UpdateGameInput{
		Title:       req.Title,
		Developer:   req.Developer,
		Publisher:   req.Publisher,
		Genres:      req.Genres,
		Tags:        req.Tags,
		ReleaseDate: req.ReleaseDate,
		Price:       req.Price,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toGameResponse(game), "game updated")
}

// DeleteGame soft-deletes a game.
func (h *GameHandler) DeleteGame(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "invalid game id")
	}

	if err := h.uc.DeleteGame(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
