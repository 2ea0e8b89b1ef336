// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"gamedash/internal/domain/entity"
)

// ErrActivityNotFound is returned when an activity record does not exist or is soft-deleted.
var ErrActivityNotFound = errors.New("player activity not found")

// ActivityFilter narrows activity listings; zero values mean no filter.
type ActivityFilter struct {
	PlayerID int64
	GameID   int64
}

// ActivityRepository defines the standard operations for player-activity persistence.
type ActivityRepository interface {
	// FindByID retrieves a single activity record by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.PlayerActivity, error)

	// List retrieves non-deleted activity records matching the filter.
	List(ctx context.Context, filter ActivityFilter) ([]*entity.PlayerActivity, error)

	// Create persists a new activity record.
	Create(ctx context.Context, activity *entity.PlayerActivity) error

	// SoftDelete marks an activity record as deleted without removing the row.
	SoftDelete(ctx context.Context, id int64) error
}
