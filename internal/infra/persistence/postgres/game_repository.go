package postgres

import (
	"context"
	"strings"

	"gamedash/internal/domain/entity"
	"gamedash/internal/domain/repository"
	"gamedash/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gameRepository is the GORM implementation of repository.GameRepository.
type gameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a new game repository bound to the given DB
// handle, which may be a live transaction.
func NewGameRepository(db *gorm.DB) repository.GameRepository {
	return &gameRepository{db: db}
}

func toGameDomain(m *model.GameModel) *entity.Game {
	return &entity.Game{
		ID:          m.ID,
		Title:       m.Title,
		Developer:   m.Developer,
		Publisher:   m.Publisher,
		Genres:      m.Genres,
		Tags:        m.Tags,
		ReleaseDate: m.ReleaseDate,
		Price:       m.Price,
		SteamAppID:  m.SteamAppID,
		OwnerID:     m.OwnerID,
		IsDeleted:   m.IsDeleted,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromGameDomain(g *entity.Game) *model.GameModel {
	return &model.GameModel{
		ID:          g.ID,
		Title:       g.Title,
		Developer:   g.Developer,
		Publisher:   g.Publisher,
		Genres:      g.Genres,
		Tags:        g.Tags,
		ReleaseDate: g.ReleaseDate,
		Price:       g.Price,
		SteamAppID:  g.SteamAppID,
		OwnerID:     g.OwnerID,
		IsDeleted:   g.IsDeleted,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

// FindByID retrieves a single game by ID, excluding soft-deleted rows.
func (r *gameRepository) FindByID(ctx context.Context, id int64) (*entity.Game, error) {
	var m model.GameModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGameNotFound
		}

		return nil, errors.Wrap(err, "failed to find game by id")
	}

	return toGameDomain(&m), nil
}

// List retrieves non-deleted games, optionally filtered by a title substring.
// The match is case-insensitive.
func (r *gameRepository) List(ctx context.Context, titleQuery string) ([]*entity.Game, error) {
	query := r.db.WithContext(ctx).Where("is_deleted = ?", false)
	if titleQuery != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(titleQuery)+"%")
	}

	var ms []model.GameModel
	if err := query.Order("id").Find(&ms).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list games")
	}

	games := make([]*entity.Game, 0, len(ms))
	for i := range ms {
		games = append(games, toGameDomain(&ms[i]))
	}

	return games, nil
}

// Create persists a new game and writes the generated ID back to the entity.
func (r *gameRepository) Create(ctx context.Context, game *entity.Game) error {
	m := fromGameDomain(game)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrGameConflict
		}

		return errors.Wrap(err, "failed to create game")
	}

	game.ID = m.ID
	game.CreatedAt = m.CreatedAt
	game.UpdatedAt = m.UpdatedAt

	return nil
}

// Update saves the mutable fields of an existing game row.
func (r *gameRepository) Update(ctx context.Context, game *entity.Game) error {
	m := fromGameDomain(game)
	result := r.db.WithContext(ctx).
		Model(&model.GameModel{}).
		Where("id = ? AND is_deleted = ?", game.ID, false).
		Updates(map[string]any{
			"title":        m.Title,
			"developer":    m.Developer,
			"publisher":    m.Publisher,
			"genres":       m.Genres,
			"tags":         m.Tags,
			"release_date": m.ReleaseDate,
			"price":        m.Price,
			"steam_app_id": m.SteamAppID,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrGameConflict
		}

		return errors.Wrap(result.Error, "failed to update game")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGameNotFound
	}

	return nil
}

// SoftDelete marks a game as deleted without removing the row.
func (r *gameRepository) SoftDelete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Model(&model.GameModel{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete game")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGameNotFound
	}

	return nil
}
