// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"gamedash/internal/domain/entity"
)

// ErrGameNotFound is returned when a game does not exist or is soft-deleted.
var ErrGameNotFound = errors.New("game not found")

// ErrGameConflict is returned when a game with the same store app ID already exists.
var ErrGameConflict = errors.New("game with this store app id already exists")

// GameRepository defines the standard operations for game persistence.
// All lookups exclude soft-deleted rows; Delete is a soft delete.
type GameRepository interface {
	// FindByID retrieves a single game by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Game, error)

	// List retrieves non-deleted games, optionally filtered by a title substring.
	List(ctx context.Context, titleQuery string) ([]*entity.Game, error)

	// Create persists a new game entity to the storage.
	Create(ctx context.Context, game *entity.Game) error

	// Update modifies an existing game entity in the storage.
	Update(ctx context.Context, game *entity.Game) error

	// SoftDelete marks a game as deleted without removing the row.
	SoftDelete(ctx context.Context, id int64) error
}
