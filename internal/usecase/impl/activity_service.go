package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "gamedash/internal/delivery/context"
	"gamedash/internal/domain/entity"
	domainerrors "gamedash/internal/domain/errors"
	"gamedash/internal/domain/repository"
	"gamedash/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// activityService implements the ActivityUsecase interface.
type activityService struct {
	activityRepo repository.ActivityRepository
	gameRepo     repository.GameRepository
	logger       *slog.Logger
}

// ActivityServiceParams holds dependencies for activityService, injected by Fx.
type ActivityServiceParams struct {
	fx.In

	ActivityRepo repository.ActivityRepository
	GameRepo     repository.GameRepository
	Logger       *slog.Logger
}

// NewActivityService is the constructor for activityService.
func NewActivityService(params ActivityServiceParams) usecase.ActivityUsecase {
	return &activityService{
		activityRepo: params.ActivityRepo,
		gameRepo:     params.GameRepo,
		logger:       params.Logger,
	}
}

func (srv *activityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordActivity stores a new analytics event. The referenced game must
// exist; an omitted timestamp defaults to now.
func (srv *activityService) RecordActivity(ctx context.Context, input usecase.RecordActivityInput) (*entity.PlayerActivity, error) {
	if _, err := requirePrincipal(ctx); err != nil {
		return nil, err
	}

	if _, err := srv.gameRepo.FindByID(ctx, input.GameID); err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			return nil, domainerrors.ErrGameNotFound
		}

		return nil, errors.Wrap(err, "failed to load game for activity")
	}

	occurredAt := input.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	activity := &entity.PlayerActivity{
		PlayerID:     input.PlayerID,
		GameID:       input.GameID,
		ActivityType: input.ActivityType,
		OccurredAt:   occurredAt,
		Details:      input.Details,
	}
	if err := srv.activityRepo.Create(ctx, activity); err != nil {
		return nil, errors.Wrap(err, "failed to record activity")
	}

	srv.log(ctx).Debug("Activity recorded",
		slog.Int64("activityID", activity.ID),
		slog.String("type", activity.ActivityType),
	)

	return activity, nil
}

// GetActivity returns a single activity record by ID.
func (srv *activityService) GetActivity(ctx context.Context, id int64) (*entity.PlayerActivity, error) {
	activity, err := srv.activityRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return nil, domainerrors.ErrActivityNotFound
		}

		return nil, errors.Wrap(err, "failed to load activity")
	}

	return activity, nil
}

// ListActivities returns non-deleted activity records matching the filter.
func (srv *activityService) ListActivities(ctx context.Context, filter repository.ActivityFilter) ([]*entity.PlayerActivity, error) {
	activities, err := srv.activityRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activities")
	}

	return activities, nil
}

// DeleteActivity soft-deletes an activity record. Activity rows have no
// owner, so only administrators may remove them.
func (srv *activityService) DeleteActivity(ctx context.Context, id int64) error {
	actor, err := requireAdmin(ctx)
	if err != nil {
		return err
	}

	if err := srv.activityRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return domainerrors.ErrActivityNotFound
		}

		return errors.Wrap(err, "failed to delete activity")
	}

	srv.log(ctx).Info("Activity deleted", slog.Int64("activityID", id), slog.Int64("actorID", actor.ID))

	return nil
}
