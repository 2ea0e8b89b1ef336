package postgres

import (
	"context"
	"time"

	"gamedash/internal/domain/entity"
	"gamedash/internal/domain/repository"
	"gamedash/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// refreshTokenRepository is the GORM implementation of
// repository.RefreshTokenRepository.
type refreshTokenRepository struct {
	db *gorm.DB
}

// NewRefreshTokenRepository creates a new refresh token repository bound to
// the given DB handle.
func NewRefreshTokenRepository(db *gorm.DB) repository.RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

func toRefreshTokenDomain(m *model.RefreshTokenModel) *entity.RefreshToken {
	return &entity.RefreshToken{
		ID:        m.ID,
		UserID:    m.UserID,
		TokenHash: m.TokenHash,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
}

// CreateRefreshToken persists a new refresh token row.
func (r *refreshTokenRepository) CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error {
	m := &model.RefreshTokenModel{
		UserID:    token.UserID,
		TokenHash: token.TokenHash,
		ExpiresAt: token.ExpiresAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return errors.Wrap(err, "failed to create refresh token")
	}

	token.ID = m.ID
	token.CreatedAt = m.CreatedAt

	return nil
}

// FindRefreshTokenByHash looks up a token row by its stored hash. An expired
// row is reported as ErrRefreshTokenExpired, not as a live session.
func (r *refreshTokenRepository) FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	var m model.RefreshTokenModel
	err := r.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRefreshTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}

	if time.Now().After(m.ExpiresAt) {
		return nil, repository.ErrRefreshTokenExpired
	}

	return toRefreshTokenDomain(&m), nil
}

// DeleteRefreshTokenByHash removes a single session row by its token hash.
func (r *refreshTokenRepository) DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error {
	result := r.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		Delete(&model.RefreshTokenModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete refresh token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRefreshTokenNotFound
	}

	return nil
}

// DeleteRefreshTokensByUserID removes every session row for a user.
func (r *refreshTokenRepository) DeleteRefreshTokensByUserID(ctx context.Context, userID int64) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.RefreshTokenModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete refresh tokens for user")
	}

	return nil
}

// DeleteExpiredRefreshTokens removes all rows whose expiry has passed.
func (r *refreshTokenRepository) DeleteExpiredRefreshTokens(ctx context.Context) error {
	err := r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&model.RefreshTokenModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete expired refresh tokens")
	}

	return nil
}
