// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"gamedash/internal/domain/entity"
)

// ErrReviewNotFound is returned when a review does not exist or is soft-deleted.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the standard operations for review persistence.
// All lookups exclude soft-deleted rows; Delete is a soft delete.
type ReviewRepository interface {
	// FindByID retrieves a single review by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Review, error)

	// ListByGame retrieves non-deleted reviews for a specific game.
	ListByGame(ctx context.Context, gameID int64) ([]*entity.Review, error)

	// List retrieves non-deleted reviews; gameID of zero means no filter.
	List(ctx context.Context, gameID int64) ([]*entity.Review, error)

	// Create persists a new review entity to the storage.
	Create(ctx context.Context, review *entity.Review) error

	// Update modifies an existing review entity in the storage.
	Update(ctx context.Context, review *entity.Review) error

	// SoftDelete marks a review as deleted without removing the row.
	SoftDelete(ctx context.Context, id int64) error
}
