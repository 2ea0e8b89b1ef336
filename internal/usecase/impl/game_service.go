package impl

import (
	"context"
	"log/slog"

	deliverycontext "gamedash/internal/delivery/context"
	"gamedash/internal/domain/entity"
	domainerrors "gamedash/internal/domain/errors"
	"gamedash/internal/domain/repository"
	"gamedash/internal/domain/service"
	"gamedash/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// gameService implements the GameUsecase interface.
type gameService struct {
	gameRepo repository.GameRepository
	logger   *slog.Logger
}

// GameServiceParams holds dependencies for gameService, injected by Fx.
type GameServiceParams struct {
	fx.In

	GameRepo repository.GameRepository
	Logger   *slog.Logger
}

// NewGameService is the constructor for gameService.
func NewGameService(params GameServiceParams) usecase.GameUsecase {
	return &gameService{
		gameRepo: params.GameRepo,
		logger:   params.Logger,
	}
}

func (srv *gameService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListGames returns non-deleted games, optionally filtered by title substring.
func (srv *gameService) ListGames(ctx context.Context, titleQuery string) ([]*entity.Game, error) {
	games, err := srv.gameRepo.List(ctx, titleQuery)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list games")
	}

	return games, nil
}

// GetGame returns a single game by ID.
func (srv *gameService) GetGame(ctx context.Context, id int64) (*entity.Game, error) {
	game, err := srv.gameRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			return nil, domainerrors.ErrGameNotFound
		}

		return nil, errors.Wrap(err, "failed to load game")
	}

	return game, nil
}

// CreateGame adds a catalog entry owned by the authenticated caller.
func (srv *gameService) CreateGame(ctx context.Context, input usecase.CreateGameInput) (*entity.Game, error) {
	actor, err := requirePrincipal(ctx)
	if err != nil {
		return nil, err
	}

	game := &entity.Game{
		Title:       input.Title,
		Developer:   input.Developer,
		Publisher:   input.Publisher,
		Genres:      input.Genres,
		Tags:        input.Tags,
		ReleaseDate: input.ReleaseDate,
		Price:       input.Price,
		SteamAppID:  input.SteamAppID,
		OwnerID:     &actor.ID,
	}
	if err := srv.gameRepo.Create(ctx, game); err != nil {
		if errors.Is(err, repository.ErrGameConflict) {
			return nil, domainerrors.ErrGameAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create game")
	}

	srv.log(ctx).Info("Game created", slog.Int64("gameID", game.ID), slog.Int64("ownerID", actor.ID))

	return game, nil
}

// UpdateGame modifies a game the caller is allowed to mutate. Nil input
// fields keep their stored values.
func (srv *gameService) UpdateGame(ctx context.Context, id int64, input usecase.UpdateGameInput) (*entity.Game, error) {
	actor, err := requirePrincipal(ctx)
	if err != nil {
		return nil, err
	}

	game, err := srv.gameRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			return nil, domainerrors.ErrGameNotFound
		}

		return nil, errors.Wrap(err, "failed to load game")
	}

	if !service.CanMutate(actor, game.OwnerID) {
		return nil, domainerrors.ErrForbidden
	}

	if input.Title != nil {
		game.Title = *input.Title
	}
	if input.Developer != nil {
		game.Developer = *input.Developer
	}
	if input.Publisher != nil {
		game.Publisher = *input.Publisher
	}
	if input.Genres != nil {
		game.Genres = *input.Genres
	}
	if input.Tags != nil {
		game.Tags = *input.Tags
	}
	if input.ReleaseDate != nil {
		game.ReleaseDate = *input.ReleaseDate
	}
	if input.Price != nil {
		game.Price = *input.Price
	}

	if err := srv.gameRepo.Update(ctx, game); err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			return nil, domainerrors.ErrGameNotFound
		}

		return nil, errors.Wrap(err, "failed to update game")
	}

	srv.log(ctx).Info("Game updated", slog.Int64("gameID", game.ID), slog.Int64("actorID", actor.ID))

	return game, nil
}

// DeleteGame soft-deletes a game the caller is allowed to mutate.
func (srv *gameService) DeleteGame(ctx context.Context, id int64) error {
	actor, err := requirePrincipal(ctx)
	if err != nil {
		return err
	}

	game, err := srv.gameRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			return domainerrors.ErrGameNotFound
		}

		return errors.Wrap(err, "failed to load game")
	}

	if !service.CanMutate(actor, game.OwnerID) {
		return domainerrors.ErrForbidden
	}

	if err := srv.gameRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			return domainerrors.ErrGameNotFound
		}

		return errors.Wrap(err, "failed to delete game")
	}

	srv.log(ctx).Info("Game deleted", slog.Int64("gameID", id), slog.Int64("actorID", actor.ID))

	return nil
}
