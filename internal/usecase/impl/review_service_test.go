package impl

import (
	"context"
	"testing"

	"gamedash/internal/domain/entity"
	domainerrors "gamedash/internal/domain/errors"
	"gamedash/internal/domain/repository"
	"gamedash/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReviewService(reviewRepo *mockReviewRepo, gameRepo *mockGameRepo) usecase.ReviewUsecase {
	return NewReviewService(ReviewServiceParams{
		ReviewRepo: reviewRepo,
		GameRepo:   gameRepo,
		Logger:     newDiscardLogger(),
	})
}

func TestCreateReview_SetsAuthor(t *testing.T) {
	reviewRepo := new(mockReviewRepo)
	gameRepo := new(mockGameRepo)
	svc := newReviewService(reviewRepo, gameRepo)
	ctx := ctxWithUser(8, false)

	gameRepo.On("FindByID", ctx, int64(2)).Return(&entity.Game{ID: 2}, nil)
	reviewRepo.On("Create", ctx, mock.MatchedBy(func(r *entity.Review) bool {
		return r.UserID != nil && *r.UserID == 8 && r.GameID == 2
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Review).ID = 31
	}).Return(nil)

	rating := 5
	review, err := svc.CreateReview(ctx, usecase.CreateReviewInput{
		GameID:     2,
		ReviewText: "superb",
		Rating:     &rating,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(31), review.ID)
}

func TestCreateReview_MissingGame(t *testing.T) {
	reviewRepo := new(mockReviewRepo)
	gameRepo := new(mockGameRepo)
	svc := newReviewService(reviewRepo, gameRepo)
	ctx := ctxWithUser(8, false)

	gameRepo.On("FindByID", ctx, int64(404)).Return(nil, repository.ErrGameNotFound)

	_, err := svc.CreateReview(ctx, usecase.CreateReviewInput{GameID: 404, ReviewText: "?"})
	assert.ErrorIs(t, err, domainerrors.ErrGameNotFound)
	reviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateReview_AuthorshipMatrix(t *testing.T) {
	authorID := int64(8)

	tests := []struct {
		name    string
		actorID int64
		admin   bool
		author  *int64
		wantErr error
	}{
		{name: "author may update", actorID: 8, author: &authorID},
		{name: "admin may update", actorID: 1, admin: true, author: &authorID},
		{name: "other user denied", actorID: 9, author: &authorID, wantErr: domainerrors.ErrForbidden},
		{name: "unattributed admin only", actorID: 8, author: nil, wantErr: domainerrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reviewRepo := new(mockReviewRepo)
			svc := newReviewService(reviewRepo, new(mockGameRepo))
			ctx := ctxWithUser(tt.actorID, tt.admin)

			stored := &entity.Review{ID: 31, GameID: 2, UserID: tt.author, ReviewText: "old"}
			reviewRepo.On("FindByID", ctx, int64(31)).Return(stored, nil)
			if tt.wantErr == nil {
				reviewRepo.On("Update", ctx, mock.Anything).Return(nil)
			}

			text := "updated"
			_, err := svc.UpdateReview(ctx, 31, usecase.UpdateReviewInput{ReviewText: &text})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDeleteReview_OtherUserDenied(t *testing.T) {
	reviewRepo := new(mockReviewRepo)
	svc := newReviewService(reviewRepo, new(mockGameRepo))
	authorID := int64(8)
	ctx := ctxWithUser(9, false)

	reviewRepo.On("FindByID", ctx, int64(31)).Return(&entity.Review{ID: 31, UserID: &authorID}, nil)

	err := svc.DeleteReview(ctx, 31)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	reviewRepo.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything)
}

func TestAttachImage_ReturnsPrevious(t *testing.T) {
	reviewRepo := new(mockReviewRepo)
	svc := newReviewService(reviewRepo, new(mockGameRepo))
	authorID := int64(8)
	ctx := ctxWithUser(8, false)

	stored := &entity.Review{ID: 31, UserID: &authorID, ImageFilename: "img_old.png"}
	reviewRepo.On("FindByID", ctx, int64(31)).Return(stored, nil)
	reviewRepo.On("Update", ctx, mock.MatchedBy(func(r *entity.Review) bool {
		return r.ImageFilename == "img_new.png"
	})).Return(nil)

	previous, err := svc.AttachImage(ctx, 31, "img_new.png")
	require.NoError(t, err)
	assert.Equal(t, "img_old.png", previous)
}

func TestAttachImage_RequiresOwnership(t *testing.T) {
	reviewRepo := new(mockReviewRepo)
	svc := newReviewService(reviewRepo, new(mockGameRepo))
	authorID := int64(8)
	ctx := ctxWithUser(9, false)

	reviewRepo.On("FindByID", ctx, int64(31)).Return(&entity.Review{ID: 31, UserID: &authorID}, nil)

	_, err := svc.AttachImage(ctx, 31, "img_x.png")
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestListGameReviews_MissingGame(t *testing.T) {
	reviewRepo := new(mockReviewRepo)
	gameRepo := new(mockGameRepo)
	svc := newReviewService(reviewRepo, gameRepo)

	gameRepo.On("FindByID", mock.Anything, int64(404)).Return(nil, repository.ErrGameNotFound)

	_, err := svc.ListGameReviews(context.Background(), 404)
	assert.ErrorIs(t, err, domainerrors.ErrGameNotFound)
	reviewRepo.AssertNotCalled(t, "ListByGame", mock.Anything, mock.Anything)
}

func TestListGameReviews_ReturnsGameReviews(t *testing.T) {
	reviewRepo := new(mockReviewRepo)
	gameRepo := new(mockGameRepo)
	svc := newReviewService(reviewRepo, gameRepo)

	gameRepo.On("FindByID", mock.Anything, int64(2)).Return(&entity.Game{ID: 2}, nil)
	reviewRepo.On("ListByGame", mock.Anything, int64(2)).Return([]*entity.Review{{ID: 31, GameID: 2}}, nil)

	reviews, err := svc.ListGameReviews(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, int64(31), reviews[0].ID)
}

func TestListReviews_GameFilter(t *testing.T) {
	reviewRepo := new(mockReviewRepo)
	svc := newReviewService(reviewRepo, new(mockGameRepo))
	ctx := context.Background()

	reviewRepo.On("List", ctx, int64(2)).Return([]*entity.Review{{ID: 31}}, nil)

	reviews, err := svc.ListReviews(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
}
