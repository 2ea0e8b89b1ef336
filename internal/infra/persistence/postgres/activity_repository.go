package postgres

import (
	"context"
	"encoding/json"

	"gamedash/internal/domain/entity"
	"gamedash/internal/domain/repository"
	"gamedash/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// activityRepository is the GORM implementation of repository.ActivityRepository.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository bound to the given
// DB handle.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

func toActivityDomain(m *model.PlayerActivityModel) (*entity.PlayerActivity, error) {
	var details map[string]any
	if len(m.Details) > 0 {
		if err := json.Unmarshal(m.Details, &details); err != nil {
			return nil, errors.Wrap(err, "failed to decode activity details")
		}
	}

	return &entity.PlayerActivity{
		ID:           m.ID,
		PlayerID:     m.PlayerID,
		GameID:       m.GameID,
		ActivityType: m.ActivityType,
		OccurredAt:   m.OccurredAt,
		Details:      details,
		IsDeleted:    m.IsDeleted,
		CreatedAt:    m.CreatedAt,
	}, nil
}

func fromActivityDomain(a *entity.PlayerActivity) (*model.PlayerActivityModel, error) {
	var details datatypes.JSON
	if a.Details != nil {
		raw, err := json.Marshal(a.Details)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode activity details")
		}
		details = datatypes.JSON(raw)
	}

	return &model.PlayerActivityModel{
		ID:           a.ID,
		PlayerID:     a.PlayerID,
		GameID:       a.GameID,
		ActivityType: a.ActivityType,
		OccurredAt:   a.OccurredAt,
		Details:      details,
		IsDeleted:    a.IsDeleted,
		CreatedAt:    a.CreatedAt,
	}, nil
}

// FindByID retrieves a single activity record by ID, excluding soft-deleted rows.
func (r *activityRepository) FindByID(ctx context.Context, id int64) (*entity.PlayerActivity, error) {
	var m model.PlayerActivityModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrActivityNotFound
		}

		return nil, errors.Wrap(err, "failed to find activity by id")
	}

	return toActivityDomain(&m)
}

// List retrieves non-deleted activity records matching the filter, newest first.
func (r *activityRepository) List(ctx context.Context, filter repository.ActivityFilter) ([]*entity.PlayerActivity, error) {
	query := r.db.WithContext(ctx).Where("is_deleted = ?", false)
	if filter.PlayerID != 0 {
		query = query.Where("player_id = ?", filter.PlayerID)
	}
	if filter.GameID != 0 {
		query = query.Where("game_id = ?", filter.GameID)
	}

	var ms []model.PlayerActivityModel
	if err := query.Order("occurred_at DESC, id DESC").Find(&ms).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list activities")
	}

	activities := make([]*entity.PlayerActivity, 0, len(ms))
	for i := range ms {
		a, err := toActivityDomain(&ms[i])
		if err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}

	return activities, nil
}

// Create persists a new activity record and writes the generated ID back.
func (r *activityRepository) Create(ctx context.Context, activity *entity.PlayerActivity) error {
	m, err := fromActivityDomain(activity)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return errors.Wrap(err, "failed to create activity")
	}

	activity.ID = m.ID
	activity.CreatedAt = m.CreatedAt

	return nil
}

// SoftDelete marks an activity record as deleted without removing the row.
func (r *activityRepository) SoftDelete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Model(&model.PlayerActivityModel{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete activity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrActivityNotFound
	}

	return nil
}
