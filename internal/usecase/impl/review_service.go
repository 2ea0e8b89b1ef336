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

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviewRepo repository.ReviewRepository
	gameRepo   repository.GameRepository
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo repository.ReviewRepository
	GameRepo   repository.GameRepository
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo: params.ReviewRepo,
		gameRepo:   params.GameRepo,
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListReviews returns non-deleted reviews; a gameID of zero means all.
func (srv *reviewService) ListReviews(ctx context.Context, gameID int64) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.List(ctx, gameID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

// ListGameReviews returns the reviews for one game. Unlike ListReviews,
// the game itself is checked first so a missing game reads as not found
// rather than an empty list.
func (srv *reviewService) ListGameReviews(ctx context.Context, gameID int64) ([]*entity.Review, error) {
	if _, err := srv.gameRepo.FindByID(ctx, gameID); err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			return nil, domainerrors.ErrGameNotFound
		}

		return nil, errors.Wrap(err, "failed to load game for reviews")
	}

	reviews, err := srv.reviewRepo.ListByGame(ctx, gameID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list game reviews")
	}

	return reviews, nil
}

// GetReview returns a single review by ID.
func (srv *reviewService) GetReview(ctx context.Context, id int64) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to load review")
	}

	return review, nil
}

// CreateReview posts a review authored by the authenticated caller. The
// target game must exist and not be deleted.
func (srv *reviewService) CreateReview(ctx context.Context, input usecase.CreateReviewInput) (*entity.Review, error) {
	actor, err := requirePrincipal(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := srv.gameRepo.FindByID(ctx, input.GameID); err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			return nil, domainerrors.ErrGameNotFound
		}

		return nil, errors.Wrap(err, "failed to load game for review")
	}

	review := &entity.Review{
		GameID:     input.GameID,
		UserID:     &actor.ID,
		ReviewText: input.ReviewText,
		Rating:     input.Rating,
	}
	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}

	srv.log(ctx).Info("Review created", slog.Int64("reviewID", review.ID), slog.Int64("gameID", review.GameID))

	return review, nil
}

// UpdateReview modifies a review the caller is allowed to mutate. Nil input
// fields keep their stored values.
func (srv *reviewService) UpdateReview(ctx context.Context, id int64, input usecase.UpdateReviewInput) (*entity.Review, error) {
	actor, err := requirePrincipal(ctx)
	if err != nil {
		return nil, err
	}

	review, err := srv.reviewRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to load review")
	}

	if !service.CanMutate(actor, review.UserID) {
		return nil, domainerrors.ErrForbidden
	}

	if input.ReviewText != nil {
		review.ReviewText = *input.ReviewText
	}
	if input.Rating != nil {
		review.Rating = input.Rating
	}

	if err := srv.reviewRepo.Update(ctx, review); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to update review")
	}

	srv.log(ctx).Info("Review updated", slog.Int64("reviewID", review.ID), slog.Int64("actorID", actor.ID))

	return review, nil
}

// DeleteReview soft-deletes a review the caller is allowed to mutate.
func (srv *reviewService) DeleteReview(ctx context.Context, id int64) error {
	actor, err := requirePrincipal(ctx)
	if err != nil {
		return err
	}

	review, err := srv.reviewRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrReviewNotFound
		}

		return errors.Wrap(err, "failed to load review")
	}

	if !service.CanMutate(actor, review.UserID) {
		return domainerrors.ErrForbidden
	}

	if err := srv.reviewRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrReviewNotFound
		}

		return errors.Wrap(err, "failed to delete review")
	}

	srv.log(ctx).Info("Review deleted", slog.Int64("reviewID", id), slog.Int64("actorID", actor.ID))

	return nil
}

// AttachImage records an uploaded image filename on a review the caller is
// allowed to mutate. It returns the filename that was replaced, if any, so
// the delivery layer can clean up the orphaned file.
func (srv *reviewService) AttachImage(ctx context.Context, id int64, filename string) (string, error) {
	actor, err := requirePrincipal(ctx)
	if err != nil {
		return "", err
	}

	review, err := srv.reviewRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return "", domainerrors.ErrReviewNotFound
		}

		return "", errors.Wrap(err, "failed to load review")
	}

	if !service.CanMutate(actor, review.UserID) {
		return "", domainerrors.ErrForbidden
	}

	previous := review.ImageFilename
	review.ImageFilename = filename

	if err := srv.reviewRepo.Update(ctx, review); err != nil {
		return "", errors.Wrap(err, "failed to attach review image")
	}

	srv.log(ctx).Info("Review image attached", slog.Int64("reviewID", id), slog.String("filename", filename))

	return previous, nil
}
