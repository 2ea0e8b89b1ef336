package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "gamedash/internal/delivery/context"
	"gamedash/internal/domain/entity"
	domainerrors "gamedash/internal/domain/errors"
	"gamedash/internal/domain/repository"
	"gamedash/internal/domain/service"
	"gamedash/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	logger           *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new active, non-admin account. Username and email must
// both be unused among non-deleted users.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	var registered *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if _, err := userRepo.FindByUsername(ctx, input.Username); err == nil {
			return domainerrors.ErrUserAlreadyExists
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check username availability")
		}

		if _, err := userRepo.FindByEmail(ctx, input.Email); err == nil {
			return domainerrors.ErrUserAlreadyExists
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email availability")
		}

		registered = &entity.User{
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: hashedPassword,
			IsActive:     true,
		}

		if err := userRepo.Create(ctx, registered); err != nil {
			// A concurrent registration can slip past the availability
			// checks; the unique constraint is the final arbiter.
			if errors.Is(err, repository.ErrUserConflict) {
				return domainerrors.ErrUserAlreadyExists
			}

			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("userID", registered.ID))

	return &usecase.RegisterOutput{User: registered}, nil
}

// Login verifies credentials and opens a new refresh-token session. Every
// failure path returns the same invalid-credentials error: unknown username,
// wrong password and deactivated account are indistinguishable to the caller.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up user for login")
	}

	if !user.IsActive || !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login rejected", slog.Int64("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Username, user.IsAdmin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	// Opportunistic cleanup keeps the session table from accumulating dead
	// rows; a failure here must not block the login.
	if err := srv.refreshTokenRepo.DeleteExpiredRefreshTokens(ctx); err != nil {
		srv.log(ctx).Warn("Failed to purge expired sessions", slog.Any("error", err))
	}

	session := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := srv.refreshTokenRepo.CreateRefreshToken(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to persist session")
	}

	srv.log(ctx).Info("Login succeeded", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// RefreshToken rotates a session: the presented refresh token is revoked and
// a fresh pair is issued. The token must validate cryptographically and its
// hash must still exist in the session store.
func (srv *userService) RefreshToken(ctx context.Context, input usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	var output *usecase.RefreshTokenOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.NewRefreshTokenRepository()

		session, err := tokenRepo.FindRefreshTokenByHash(ctx, tokenHash)
		if err != nil {
			return domainerrors.ErrRefreshTokenInvalid
		}
		if session.UserID != claims.UserID {
			return domainerrors.ErrRefreshTokenInvalid
		}

		user, err := repoFactory.NewUserRepository().FindByID(ctx, session.UserID)
		if err != nil || !user.IsActive {
			return domainerrors.ErrRefreshTokenInvalid
		}

		if err := tokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
			return domainerrors.ErrRefreshTokenInvalid
		}

		accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Username, user.IsAdmin)
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		if err := tokenRepo.CreateRefreshToken(ctx, &entity.RefreshToken{
			UserID:    user.ID,
			TokenHash: srv.tokenService.HashToken(refreshToken),
			ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
		}); err != nil {
			return errors.Wrap(err, "failed to persist rotated session")
		}

		output = &usecase.RefreshTokenOutput{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// Logout revokes the session for the presented refresh token. Revoking an
// unknown or already-revoked token is a silent success.
func (srv *userService) Logout(ctx context.Context, input usecase.RefreshTokenInput) error {
	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash)
	if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return errors.Wrap(err, "failed to revoke session")
	}

	return nil
}

// GetProfile returns the authenticated caller's own record, freshly loaded.
func (srv *userService) GetProfile(ctx context.Context) (*entity.User, error) {
	actor, err := requirePrincipal(ctx)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthenticated
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return user, nil
}

// UpdateProfile modifies the caller's own record. The new email must not be
// claimed by another non-deleted user.
func (srv *userService) UpdateProfile(ctx context.Context, input usecase.UpdateProfileInput) (*entity.User, error) {
	actor, err := requirePrincipal(ctx)
	if err != nil {
		return nil, err
	}

	var updated *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, actor.ID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUnauthenticated
			}

			return errors.Wrap(err, "failed to load profile")
		}

		if input.Email != nil && *input.Email != user.Email {
			if other, err := userRepo.FindByEmail(ctx, *input.Email); err == nil && other.ID != user.ID {
				return domainerrors.ErrUserAlreadyExists
			} else if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(err, "failed to check email availability")
			}
			user.Email = *input.Email
		}

		if err := userRepo.Update(ctx, user); err != nil {
			if errors.Is(err, repository.ErrUserConflict) {
				return domainerrors.ErrUserAlreadyExists
			}

			return errors.Wrap(err, "failed to update profile")
		}

		updated = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Profile updated", slog.Int64("userID", updated.ID))

	return updated, nil
}

// GetUser returns a single user by ID. Admin only.
func (srv *userService) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	return user, nil
}

// ListUsers returns all non-deleted users. Admin only.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}
