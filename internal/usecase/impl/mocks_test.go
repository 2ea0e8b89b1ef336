package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"gamedash/internal/domain/entity"
	"gamedash/internal/domain/repository"
	"gamedash/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeTxManager runs the callback directly against the provided factory,
// without any real transaction semantics.
type fakeTxManager struct {
	factory repository.RepositoryFactory
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

// fakeRepoFactory hands out whatever repositories the test wired in.
type fakeRepoFactory struct {
	userRepo         repository.UserRepository
	gameRepo         repository.GameRepository
	reviewRepo       repository.ReviewRepository
	refreshTokenRepo repository.RefreshTokenRepository
	resetTokenRepo   repository.ResetTokenRepository
}

func (f *fakeRepoFactory) NewUserRepository() repository.UserRepository {
	return f.userRepo
}

func (f *fakeRepoFactory) NewGameRepository() repository.GameRepository {
	return f.gameRepo
}

func (f *fakeRepoFactory) NewReviewRepository() repository.ReviewRepository {
	return f.reviewRepo
}

func (f *fakeRepoFactory) NewRefreshTokenRepository() repository.RefreshTokenRepository {
	return f.refreshTokenRepo
}

func (f *fakeRepoFactory) NewResetTokenRepository() repository.ResetTokenRepository {
	return f.resetTokenRepo
}

// mockUserRepo is a testify mock for repository.UserRepository.
type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if u := args.Get(0); u != nil {
		return u.([]*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

// mockGameRepo is a testify mock for repository.GameRepository.
type mockGameRepo struct {
	mock.Mock
}

func (m *mockGameRepo) FindByID(ctx context.Context, id int64) (*entity.Game, error) {
	args := m.Called(ctx, id)
	if g := args.Get(0); g != nil {
		return g.(*entity.Game), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockGameRepo) List(ctx context.Context, titleQuery string) ([]*entity.Game, error) {
	args := m.Called(ctx, titleQuery)
	if g := args.Get(0); g != nil {
		return g.([]*entity.Game), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockGameRepo) Create(ctx context.Context, game *entity.Game) error {
	return m.Called(ctx, game).Error(0)
}

func (m *mockGameRepo) Update(ctx context.Context, game *entity.Game) error {
	return m.Called(ctx, game).Error(0)
}

func (m *mockGameRepo) SoftDelete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// mockReviewRepo is a testify mock for repository.ReviewRepository.
type mockReviewRepo struct {
	mock.Mock
}

func (m *mockReviewRepo) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*entity.Review), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockReviewRepo) ListByGame(ctx context.Context, gameID int64) ([]*entity.Review, error) {
	args := m.Called(ctx, gameID)
	if r := args.Get(0); r != nil {
		return r.([]*entity.Review), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockReviewRepo) List(ctx context.Context, gameID int64) ([]*entity.Review, error) {
	args := m.Called(ctx, gameID)
	if r := args.Get(0); r != nil {
		return r.([]*entity.Review), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *mockReviewRepo) Update(ctx context.Context, review *entity.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *mockReviewRepo) SoftDelete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// mockActivityRepo is a testify mock for repository.ActivityRepository.
type mockActivityRepo struct {
	mock.Mock
}

func (m *mockActivityRepo) FindByID(ctx context.Context, id int64) (*entity.PlayerActivity, error) {
	args := m.Called(ctx, id)
	if a := args.Get(0); a != nil {
		return a.(*entity.PlayerActivity), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockActivityRepo) List(ctx context.Context, filter repository.ActivityFilter) ([]*entity.PlayerActivity, error) {
	args := m.Called(ctx, filter)
	if a := args.Get(0); a != nil {
		return a.([]*entity.PlayerActivity), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockActivityRepo) Create(ctx context.Context, activity *entity.PlayerActivity) error {
	return m.Called(ctx, activity).Error(0)
}

func (m *mockActivityRepo) SoftDelete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// mockRefreshTokenRepo is a testify mock for repository.RefreshTokenRepository.
type mockRefreshTokenRepo struct {
	mock.Mock
}

func (m *mockRefreshTokenRepo) CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error {
	return m.Called(ctx, token).Error(0)
}

func (m *mockRefreshTokenRepo) FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	args := m.Called(ctx, tokenHash)
	if t := args.Get(0); t != nil {
		return t.(*entity.RefreshToken), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockRefreshTokenRepo) DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error {
	return m.Called(ctx, tokenHash).Error(0)
}

func (m *mockRefreshTokenRepo) DeleteRefreshTokensByUserID(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *mockRefreshTokenRepo) DeleteExpiredRefreshTokens(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// mockResetTokenRepo is a testify mock for repository.ResetTokenRepository.
type mockResetTokenRepo struct {
	mock.Mock
}

func (m *mockResetTokenRepo) CreateResetToken(ctx context.Context, token *entity.PasswordResetToken) error {
	return m.Called(ctx, token).Error(0)
}

func (m *mockResetTokenRepo) ConsumeResetToken(ctx context.Context, tokenHash string) (*entity.PasswordResetToken, error) {
	args := m.Called(ctx, tokenHash)
	if t := args.Get(0); t != nil {
		return t.(*entity.PasswordResetToken), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockResetTokenRepo) DeleteExpiredResetTokens(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// mockHasher is a testify mock for service.PasswordHasher.
type mockHasher struct {
	mock.Mock
}

func (m *mockHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

// mockTokenService is a testify mock for service.TokenService.
type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) GenerateTokens(userID int64, username string, isAdmin bool) (string, string, error) {
	args := m.Called(userID, username, isAdmin)

	return args.String(0), args.String(1), args.Error(2)
}

func (m *mockTokenService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if c := args.Get(0); c != nil {
		return c.(*service.Claims), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockTokenService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if c := args.Get(0); c != nil {
		return c.(*service.Claims), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockTokenService) HashToken(token string) string {
	return m.Called(token).String(0)
}

func (m *mockTokenService) GetRefreshTokenDuration() time.Duration {
	return m.Called().Get(0).(time.Duration)
}

// mockMailer is a testify mock for service.Mailer.
type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) Send(ctx context.Context, to, subject, body string) error {
	return m.Called(ctx, to, subject, body).Error(0)
}

// mockStoreClient is a testify mock for service.StoreClient.
type mockStoreClient struct {
	mock.Mock
}

func (m *mockStoreClient) AppDetails(ctx context.Context, appID int64) (*entity.StoreAppDetails, error) {
	args := m.Called(ctx, appID)
	if d := args.Get(0); d != nil {
		return d.(*entity.StoreAppDetails), args.Error(1)
	}

	return nil, args.Error(1)
}
