package usecase

import (
	"context"

	"gamedash/internal/domain/entity"
)

// CreateReviewInput defines the data required to post a review.
type CreateReviewInput struct {
	GameID     int64
	ReviewText string
	Rating     *int
}

// UpdateReviewInput carries replacement values for a review. Nil pointers
// mean "leave unchanged".
type UpdateReviewInput struct {
	ReviewText *string
	Rating     *int
}

// ReviewUsecase defines review operations. Reads are public; mutations
// require the caller to be the author or hold the admin role.
type ReviewUsecase interface {
	// ListReviews returns non-deleted reviews; a gameID of zero means all.
	ListReviews(ctx context.Context, gameID int64) ([]*entity.Review, error)

	// ListGameReviews returns the reviews for one game, failing when the
	// game does not exist or is deleted.
	ListGameReviews(ctx context.Context, gameID int64) ([]*entity.Review, error)

	// GetReview returns a single review by ID.
	GetReview(ctx context.Context, id int64) (*entity.Review, error)

	// CreateReview posts a review authored by the authenticated caller.
	CreateReview(ctx context.Context, input CreateReviewInput) (*entity.Review, error)

	// UpdateReview modifies a review the caller is allowed to mutate.
	UpdateReview(ctx context.Context, id int64, input UpdateReviewInput) (*entity.Review, error)

	// DeleteReview soft-deletes a review the caller is allowed to mutate.
	DeleteReview(ctx context.Context, id int64) error

	// AttachImage records an uploaded image filename on a review the caller
	// is allowed to mutate, returning the previous filename if any was
	// replaced.
	AttachImage(ctx context.Context, id int64, filename string) (previous string, err error)
}
