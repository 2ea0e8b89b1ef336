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

// resetTokenRepository is the GORM implementation of
// repository.ResetTokenRepository.
type resetTokenRepository struct {
	db *gorm.DB
}

// NewResetTokenRepository creates a new reset token repository bound to the
// given DB handle.
func NewResetTokenRepository(db *gorm.DB) repository.ResetTokenRepository {
	return &resetTokenRepository{db: db}
}

// CreateResetToken persists a new reset token row.
func (r *resetTokenRepository) CreateResetToken(ctx context.Context, token *entity.PasswordResetToken) error {
	m := &model.PasswordResetTokenModel{
		UserID:    token.UserID,
		TokenHash: token.TokenHash,
		ExpiresAt: token.ExpiresAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return errors.Wrap(err, "failed to create reset token")
	}

	token.ID = m.ID
	token.CreatedAt = m.CreatedAt

	return nil
}

// ConsumeResetToken deletes the row matching the hash and returns its
// contents. The read happens first, then a single DELETE keyed on the unique
// hash decides the winner: when two callers race, the database lets exactly
// one DELETE report an affected row, and the loser gets
// ErrResetTokenNotFound. Expired rows are discarded and reported as absent.
func (r *resetTokenRepository) ConsumeResetToken(ctx context.Context, tokenHash string) (*entity.PasswordResetToken, error) {
	var m model.PasswordResetTokenModel
	err := r.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResetTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find reset token")
	}

	result := r.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		Delete(&model.PasswordResetTokenModel{})
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to consume reset token")
	}
	if result.RowsAffected == 0 {
		// Another caller consumed the token between the read and the delete.
		return nil, repository.ErrResetTokenNotFound
	}

	if time.Now().After(m.ExpiresAt) {
		return nil, repository.ErrResetTokenNotFound
	}

	return &entity.PasswordResetToken{
		ID:        m.ID,
		UserID:    m.UserID,
		TokenHash: m.TokenHash,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}, nil
}

// DeleteExpiredResetTokens removes all rows whose expiry has passed.
func (r *resetTokenRepository) DeleteExpiredResetTokens(ctx context.Context) error {
	err := r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&model.PasswordResetTokenModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete expired reset tokens")
	}

	return nil
}
