package usecase

import (
	"context"
	"time"

	"gamedash/internal/domain/entity"
	"gamedash/internal/domain/repository"
)

// RecordActivityInput defines the data for one analytics event.
type RecordActivityInput struct {
	PlayerID     int64
	GameID       int64
	ActivityType string
	OccurredAt   time.Time
	Details      map[string]any
}

// ActivityUsecase defines player analytics operations. Activity rows carry
// no owner, so deletion is admin only.
type ActivityUsecase interface {
	// RecordActivity stores a new analytics event.
	RecordActivity(ctx context.Context, input RecordActivityInput) (*entity.PlayerActivity, error)

	// GetActivity returns a single activity record by ID.
	GetActivity(ctx context.Context, id int64) (*entity.PlayerActivity, error)

	// ListActivities returns non-deleted activity records matching the filter.
	ListActivities(ctx context.Context, filter repository.ActivityFilter) ([]*entity.PlayerActivity, error)

	// DeleteActivity soft-deletes an activity record. Admin only.
	DeleteActivity(ctx context.Context, id int64) error
}
