package usecase

import (
	"context"

	"gamedash/internal/domain/entity"
)

// CreateGameInput defines the data required to add a game to the catalog.
type CreateGameInput struct {
	Title       string
	Developer   string
	Publisher   string
	Genres      string
	Tags        string
	ReleaseDate string
	Price       float64
	SteamAppID  int64
}

// UpdateGameInput carries the replacement field values for a game. Nil
// pointers mean "leave unchanged".
type UpdateGameInput struct {
	Title       *string
	Developer   *string
	Publisher   *string
	Genres      *string
	Tags        *string
	ReleaseDate *string
	Price       *float64
}

// GameUsecase defines catalog operations. Reads are public; mutations
// require the caller to own the game or hold the admin role.
type GameUsecase interface {
	// ListGames returns non-deleted games, optionally filtered by a title substring.
	ListGames(ctx context.Context, titleQuery string) ([]*entity.Game, error)

	// GetGame returns a single game by ID.
	GetGame(ctx context.Context, id int64) (*entity.Game, error)

	// CreateGame adds a game owned by the authenticated caller.
	CreateGame(ctx context.Context, input CreateGameInput) (*entity.Game, error)

	// UpdateGame modifies a game the caller is allowed to mutate.
	UpdateGame(ctx context.Context, id int64, input UpdateGameInput) (*entity.Game, error)

	// DeleteGame soft-deletes a game the caller is allowed to mutate.
	DeleteGame(ctx context.Context, id int64) error
}
