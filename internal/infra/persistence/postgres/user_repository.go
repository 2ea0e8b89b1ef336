// Package postgres provides the GORM-backed implementation of the domain
// repository interfaces.
package postgres

import (
	"context"

	"gamedash/internal/domain/entity"
	"gamedash/internal/domain/repository"
	"gamedash/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository is the GORM implementation of repository.UserRepository.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository bound to the given DB
// handle, which may be a live transaction.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func toUserDomain(m *model.UserModel) *entity.User {
	return &entity.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		IsActive:     m.IsActive,
		IsAdmin:      m.IsAdmin,
		IsDeleted:    m.IsDeleted,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromUserDomain(u *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		IsActive:     u.IsActive,
		IsAdmin:      u.IsAdmin,
		IsDeleted:    u.IsDeleted,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// FindByID retrieves a single user by ID, excluding soft-deleted rows.
func (r *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var m model.UserModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&m), nil
}

// FindByUsername retrieves a single user by username, excluding soft-deleted rows.
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var m model.UserModel
	err := r.db.WithContext(ctx).
		Where("username = ? AND is_deleted = ?", username, false).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return toUserDomain(&m), nil
}

// FindByEmail retrieves a single user by email, excluding soft-deleted rows.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var m model.UserModel
	err := r.db.WithContext(ctx).
		Where("email = ? AND is_deleted = ?", email, false).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&m), nil
}

// List retrieves all non-deleted users ordered by ID.
func (r *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	var ms []model.UserModel
	err := r.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("id").
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(ms))
	for i := range ms {
		users = append(users, toUserDomain(&ms[i]))
	}

	return users, nil
}

// Create persists a new user and writes the generated ID back to the entity.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	m := fromUserDomain(user)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUserConflict
		}

		return errors.Wrap(err, "failed to create user")
	}

	user.ID = m.ID
	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt

	return nil
}

// Update saves the full user row.
func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	m := fromUserDomain(user)
	result := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND is_deleted = ?", user.ID, false).
		Updates(map[string]any{
			"username":      m.Username,
			"email":         m.Email,
			"password_hash": m.PasswordHash,
			"is_active":     m.IsActive,
			"is_admin":      m.IsAdmin,
			"is_deleted":    m.IsDeleted,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrUserConflict
		}

		return errors.Wrap(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdatePassword replaces only the credential hash for the given user.
func (r *userRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	result := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update password")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}
