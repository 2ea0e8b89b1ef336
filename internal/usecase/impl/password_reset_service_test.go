package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"gamedash/config"
	"gamedash/internal/domain/entity"
	domainerrors "gamedash/internal/domain/errors"
	"gamedash/internal/domain/repository"
	"gamedash/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type resetServiceFixture struct {
	userRepo         *mockUserRepo
	resetRepo        *mockResetTokenRepo
	refreshTokenRepo *mockRefreshTokenRepo
	hasher           *mockHasher
	tokenService     *mockTokenService
	mailer           *mockMailer
	service          usecase.PasswordResetUsecase
}

func newResetServiceFixture() *resetServiceFixture {
	userRepo := new(mockUserRepo)
	resetRepo := new(mockResetTokenRepo)
	refreshTokenRepo := new(mockRefreshTokenRepo)
	hasher := new(mockHasher)
	tokenService := new(mockTokenService)
	mailer := new(mockMailer)

	svc := NewPasswordResetService(PasswordResetServiceParams{
		TxManager: &fakeTxManager{factory: &fakeRepoFactory{
			userRepo:         userRepo,
			resetTokenRepo:   resetRepo,
			refreshTokenRepo: refreshTokenRepo,
		}},
		UserRepo:      userRepo,
		ResetRepo:     resetRepo,
		Hasher:        hasher,
		TokenService:  tokenService,
		GenerateToken: func() (string, error) { return "raw-reset-token", nil },
		Mailer:        mailer,
		Config: &config.Config{Auth: &config.AuthConfig{
			ResetTokenTTL: 15 * time.Minute,
		}},
		Logger: newDiscardLogger(),
	})

	return &resetServiceFixture{
		userRepo:         userRepo,
		resetRepo:        resetRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
		mailer:           mailer,
		service:          svc,
	}
}

func TestRequestReset_KnownEmail(t *testing.T) {
	f := newResetServiceFixture()
	ctx := context.Background()

	user := &entity.User{ID: 11, Email: "alice@example.com", IsActive: true}
	f.resetRepo.On("DeleteExpiredResetTokens", ctx).Return(nil)
	f.userRepo.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)
	f.tokenService.On("HashToken", "raw-reset-token").Return("reset-hash")
	f.resetRepo.On("CreateResetToken", ctx, mock.MatchedBy(func(rt *entity.PasswordResetToken) bool {
		return rt.UserID == 11 && rt.TokenHash == "reset-hash" && rt.ExpiresAt.After(time.Now())
	})).Return(nil)
	f.mailer.On("Send", ctx, "alice@example.com", mock.Anything, mock.MatchedBy(func(body string) bool {
		// The raw token, never its hash, goes out-of-band.
		return strings.Contains(body, "raw-reset-token") && !strings.Contains(body, "reset-hash")
	})).Return(nil)

	err := f.service.RequestReset(ctx, usecase.RequestPasswordResetInput{Email: "alice@example.com"})
	require.NoError(t, err)
	f.resetRepo.AssertExpectations(t)
	f.mailer.AssertExpectations(t)
}

// Unknown and inactive emails produce the same nil result as known ones,
// with no token issued and no mail sent.
func TestRequestReset_NeutralOnUnknownEmail(t *testing.T) {
	f := newResetServiceFixture()
	ctx := context.Background()

	f.resetRepo.On("DeleteExpiredResetTokens", ctx).Return(nil)
	f.userRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	err := f.service.RequestReset(ctx, usecase.RequestPasswordResetInput{Email: "ghost@example.com"})
	assert.NoError(t, err)
	f.resetRepo.AssertNotCalled(t, "CreateResetToken", mock.Anything, mock.Anything)
	f.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRequestReset_NeutralOnInactiveAccount(t *testing.T) {
	f := newResetServiceFixture()
	ctx := context.Background()

	f.resetRepo.On("DeleteExpiredResetTokens", ctx).Return(nil)
	user := &entity.User{ID: 12, Email: "off@example.com", IsActive: false}
	f.userRepo.On("FindByEmail", ctx, "off@example.com").Return(user, nil)

	err := f.service.RequestReset(ctx, usecase.RequestPasswordResetInput{Email: "off@example.com"})
	assert.NoError(t, err)
	f.resetRepo.AssertNotCalled(t, "CreateResetToken", mock.Anything, mock.Anything)
}

// Stale tokens are swept on each request, and a failing sweep never blocks
// the reset itself.
func TestRequestReset_PurgeFailureTolerated(t *testing.T) {
	f := newResetServiceFixture()
	ctx := context.Background()

	user := &entity.User{ID: 13, Email: "dora@example.com", IsActive: true}
	f.resetRepo.On("DeleteExpiredResetTokens", ctx).Return(assert.AnError)
	f.userRepo.On("FindByEmail", ctx, "dora@example.com").Return(user, nil)
	f.tokenService.On("HashToken", "raw-reset-token").Return("reset-hash")
	f.resetRepo.On("CreateResetToken", ctx, mock.Anything).Return(nil)
	f.mailer.On("Send", ctx, "dora@example.com", mock.Anything, mock.Anything).Return(nil)

	err := f.service.RequestReset(ctx, usecase.RequestPasswordResetInput{Email: "dora@example.com"})
	assert.NoError(t, err)
	f.resetRepo.AssertCalled(t, "DeleteExpiredResetTokens", ctx)
}

func TestConfirmReset_Success(t *testing.T) {
	f := newResetServiceFixture()
	ctx := context.Background()

	f.hasher.On("Hash", "new-password").Return("new-hash", nil)
	f.tokenService.On("HashToken", "raw-reset-token").Return("reset-hash")
	f.resetRepo.On("ConsumeResetToken", ctx, "reset-hash").
		Return(&entity.PasswordResetToken{UserID: 11, TokenHash: "reset-hash"}, nil)
	f.userRepo.On("UpdatePassword", ctx, int64(11), "new-hash").Return(nil)
	f.refreshTokenRepo.On("DeleteRefreshTokensByUserID", ctx, int64(11)).Return(nil)

	err := f.service.ConfirmReset(ctx, usecase.ConfirmPasswordResetInput{
		Token:       "raw-reset-token",
		NewPassword: "new-password",
	})
	require.NoError(t, err)
	f.refreshTokenRepo.AssertExpectations(t)
}

func TestConfirmReset_ConsumedTokenRejected(t *testing.T) {
	f := newResetServiceFixture()
	ctx := context.Background()

	f.hasher.On("Hash", "new-password").Return("new-hash", nil)
	f.tokenService.On("HashToken", "spent-token").Return("spent-hash")
	f.resetRepo.On("ConsumeResetToken", ctx, "spent-hash").
		Return(nil, repository.ErrResetTokenNotFound)

	err := f.service.ConfirmReset(ctx, usecase.ConfirmPasswordResetInput{
		Token:       "spent-token",
		NewPassword: "new-password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrResetTokenInvalid)
	f.userRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirmReset_MissingAccountRejected(t *testing.T) {
	f := newResetServiceFixture()
	ctx := context.Background()

	f.hasher.On("Hash", "new-password").Return("new-hash", nil)
	f.tokenService.On("HashToken", "orphan-token").Return("orphan-hash")
	f.resetRepo.On("ConsumeResetToken", ctx, "orphan-hash").
		Return(&entity.PasswordResetToken{UserID: 99, TokenHash: "orphan-hash"}, nil)
	f.userRepo.On("UpdatePassword", ctx, int64(99), "new-hash").Return(repository.ErrUserNotFound)

	err := f.service.ConfirmReset(ctx, usecase.ConfirmPasswordResetInput{
		Token:       "orphan-token",
		NewPassword: "new-password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrResetTokenInvalid)
}

// The token is consumed before the password transaction opens, so a failing
// transaction cannot roll the consumption back and resurrect the token. The
// transaction-scoped reset repository must never see the consume.
func TestConfirmReset_ConsumeSurvivesFailedTransaction(t *testing.T) {
	userRepo := new(mockUserRepo)
	resetRepo := new(mockResetTokenRepo)
	txResetRepo := new(mockResetTokenRepo)
	refreshTokenRepo := new(mockRefreshTokenRepo)
	hasher := new(mockHasher)
	tokenService := new(mockTokenService)

	svc := NewPasswordResetService(PasswordResetServiceParams{
		TxManager: &fakeTxManager{factory: &fakeRepoFactory{
			userRepo:         userRepo,
			resetTokenRepo:   txResetRepo,
			refreshTokenRepo: refreshTokenRepo,
		}},
		UserRepo:      userRepo,
		ResetRepo:     resetRepo,
		Hasher:        hasher,
		TokenService:  tokenService,
		GenerateToken: func() (string, error) { return "raw-reset-token", nil },
		Mailer:        new(mockMailer),
		Config: &config.Config{Auth: &config.AuthConfig{
			ResetTokenTTL: 15 * time.Minute,
		}},
		Logger: newDiscardLogger(),
	})

	ctx := context.Background()
	hasher.On("Hash", "new-password").Return("new-hash", nil)
	tokenService.On("HashToken", "doomed-token").Return("doomed-hash")
	resetRepo.On("ConsumeResetToken", ctx, "doomed-hash").
		Return(&entity.PasswordResetToken{UserID: 77, TokenHash: "doomed-hash"}, nil).
		Once()
	userRepo.On("UpdatePassword", ctx, int64(77), "new-hash").Return(repository.ErrUserNotFound)

	err := svc.ConfirmReset(ctx, usecase.ConfirmPasswordResetInput{
		Token:       "doomed-token",
		NewPassword: "new-password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrResetTokenInvalid)
	resetRepo.AssertExpectations(t)
	txResetRepo.AssertNotCalled(t, "ConsumeResetToken", mock.Anything, mock.Anything)
}
