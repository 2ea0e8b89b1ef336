package postgres

import (
	"context"

	"gamedash/internal/domain/entity"
	"gamedash/internal/domain/repository"
	"gamedash/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository is the GORM implementation of repository.ReviewRepository.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository bound to the given DB
// handle, which may be a live transaction.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func toReviewDomain(m *model.ReviewModel) *entity.Review {
	return &entity.Review{
		ID:            m.ID,
		GameID:        m.GameID,
		UserID:        m.UserID,
		ReviewText:    m.ReviewText,
		Rating:        m.Rating,
		ImageFilename: m.ImageFilename,
		IsDeleted:     m.IsDeleted,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func fromReviewDomain(rv *entity.Review) *model.ReviewModel {
	return &model.ReviewModel{
		ID:            rv.ID,
		GameID:        rv.GameID,
		UserID:        rv.UserID,
		ReviewText:    rv.ReviewText,
		Rating:        rv.Rating,
		ImageFilename: rv.ImageFilename,
		IsDeleted:     rv.IsDeleted,
		CreatedAt:     rv.CreatedAt,
		UpdatedAt:     rv.UpdatedAt,
	}
}

// FindByID retrieves a single review by ID, excluding soft-deleted rows.
func (r *reviewRepository) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	var m model.ReviewModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by id")
	}

	return toReviewDomain(&m), nil
}

// ListByGame retrieves non-deleted reviews for a specific game.
func (r *reviewRepository) ListByGame(ctx context.Context, gameID int64) ([]*entity.Review, error) {
	return r.List(ctx, gameID)
}

// List retrieves non-deleted reviews; a gameID of zero means no filter.
func (r *reviewRepository) List(ctx context.Context, gameID int64) ([]*entity.Review, error) {
	query := r.db.WithContext(ctx).Where("is_deleted = ?", false)
	if gameID != 0 {
		query = query.Where("game_id = ?", gameID)
	}

	var ms []model.ReviewModel
	if err := query.Order("id").Find(&ms).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(ms))
	for i := range ms {
		reviews = append(reviews, toReviewDomain(&ms[i]))
	}

	return reviews, nil
}

// Create persists a new review and writes the generated ID back to the entity.
func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	m := fromReviewDomain(review)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "referenced game or user does not exist")
		}

		return errors.Wrap(err, "failed to create review")
	}

	review.ID = m.ID
	review.CreatedAt = m.CreatedAt
	review.UpdatedAt = m.UpdatedAt

	return nil
}

// Update saves the mutable fields of an existing review row.
func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	m := fromReviewDomain(review)
	result := r.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ? AND is_deleted = ?", review.ID, false).
		Updates(map[string]any{
			"review_text":    m.ReviewText,
			"rating":         m.Rating,
			"image_filename": m.ImageFilename,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// SoftDelete marks a review as deleted without removing the row.
func (r *reviewRepository) SoftDelete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}
