package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gamedash/config"
	deliverycontext "gamedash/internal/delivery/context"
	"gamedash/internal/domain/entity"
	domainerrors "gamedash/internal/domain/errors"
	"gamedash/internal/domain/repository"
	"gamedash/internal/domain/service"
	"gamedash/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultResetTokenTTL = 30 * time.Minute

// passwordResetService implements the PasswordResetUsecase interface.
type passwordResetService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	resetRepo     repository.ResetTokenRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	generateToken service.ResetTokenGenerator
	mailer        service.Mailer
	resetTokenTTL time.Duration
	logger        *slog.Logger
}

// PasswordResetServiceParams holds dependencies for passwordResetService, injected by Fx.
type PasswordResetServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	UserRepo      repository.UserRepository
	ResetRepo     repository.ResetTokenRepository
	Hasher        service.PasswordHasher
	TokenService  service.TokenService
	GenerateToken service.ResetTokenGenerator
	Mailer        service.Mailer
	Config        *config.Config
	Logger        *slog.Logger
}

// NewPasswordResetService is the constructor for passwordResetService.
func NewPasswordResetService(params PasswordResetServiceParams) usecase.PasswordResetUsecase {
	resetTokenTTL := defaultResetTokenTTL
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.ResetTokenTTL > 0 {
		resetTokenTTL = params.Config.Auth.ResetTokenTTL
	}

	return &passwordResetService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		resetRepo:     params.ResetRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		generateToken: params.GenerateToken,
		mailer:        params.Mailer,
		resetTokenTTL: resetTokenTTL,
		logger:        params.Logger,
	}
}

func (srv *passwordResetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestReset issues a reset token for the account with the given email.
// The caller always receives the same nil result: an unknown or inactive
// email is handled silently so the endpoint cannot be used to enumerate
// registered accounts.
func (srv *passwordResetService) RequestReset(ctx context.Context, input usecase.RequestPasswordResetInput) error {
	// Opportunistic cleanup of stale tokens; a failure must not block the
	// request.
	if err := srv.resetRepo.DeleteExpiredResetTokens(ctx); err != nil {
		srv.log(ctx).Warn("Failed to purge expired reset tokens", slog.Any("error", err))
	}
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Info("Password reset requested for unknown email")

			return nil
		}

		return errors.Wrap(err, "failed to look up account for reset")
	}
	if !user.IsActive {
		srv.log(ctx).Info("Password reset requested for inactive account", slog.Int64("userID", user.ID))

		return nil
	}

	rawToken, err := srv.generateToken()
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}

	record := &entity.PasswordResetToken{
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(rawToken),
		ExpiresAt: time.Now().Add(srv.resetTokenTTL),
	}
	if err := srv.resetRepo.CreateResetToken(ctx, record); err != nil {
		return errors.Wrap(err, "failed to persist reset token")
	}

	body := fmt.Sprintf(
		"A password reset was requested for your account.\n\nReset token: %s\n\nThe token expires in %s. If you did not request this, ignore this message.",
		rawToken, srv.resetTokenTTL,
	)
	if err := srv.mailer.Send(ctx, user.Email, "Password reset request", body); err != nil {
		// Delivery problems stay server-side; the response must not reveal them.
		srv.log(ctx).Error("Failed to deliver reset mail", slog.Int64("userID", user.ID), slog.Any("error", err))
	}

	srv.log(ctx).Info("Password reset token issued", slog.Int64("userID", user.ID))

	return nil
}

// ConfirmReset consumes the token and replaces the account password. The
// consume step is atomic: of two racing confirmations with the same token,
// exactly one succeeds. It also runs outside the password transaction, so a
// presented token is discarded even when the rest of the reset fails. All
// sessions are revoked on success.
func (srv *passwordResetService) ConfirmReset(ctx context.Context, input usecase.ConfirmPasswordResetInput) error {
	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed
	}

	tokenHash := srv.tokenService.HashToken(input.Token)

	record, err := srv.resetRepo.ConsumeResetToken(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrResetTokenNotFound) {
			return domainerrors.ErrResetTokenInvalid
		}

		return errors.Wrap(err, "failed to consume reset token")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().UpdatePassword(ctx, record.UserID, newHash); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				// Account vanished after the token was issued. The token
				// was already discarded above and stays gone.
				return domainerrors.ErrResetTokenInvalid
			}

			return errors.Wrap(err, "failed to update password")
		}

		// A successful reset ends every open session for the account.
		if err := repoFactory.NewRefreshTokenRepository().DeleteRefreshTokensByUserID(ctx, record.UserID); err != nil {
			return errors.Wrap(err, "failed to revoke sessions after reset")
		}

		srv.log(ctx).Info("Password reset completed", slog.Int64("userID", record.UserID))

		return nil
	})

	return err
}
