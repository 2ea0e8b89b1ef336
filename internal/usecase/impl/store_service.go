package impl

import (
	"context"
	"log/slog"

	deliverycontext "gamedash/internal/delivery/context"
	"gamedash/internal/domain/entity"
	domainerrors "gamedash/internal/domain/errors"
	"gamedash/internal/domain/service"
	"gamedash/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// storeService implements the StoreUsecase interface.
type storeService struct {
	client service.StoreClient
	logger *slog.Logger
}

// StoreServiceParams holds dependencies for storeService, injected by Fx.
type StoreServiceParams struct {
	fx.In

	Client service.StoreClient
	Logger *slog.Logger
}

// NewStoreService is the constructor for storeService.
func NewStoreService(params StoreServiceParams) usecase.StoreUsecase {
	return &storeService{
		client: params.Client,
		logger: params.Logger,
	}
}

func (srv *storeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetAppDetails fetches live store metadata for one app. Upstream failures
// surface as a bad-gateway error; an unknown app as not found.
func (srv *storeService) GetAppDetails(ctx context.Context, appID int64) (*entity.StoreAppDetails, error) {
	details, err := srv.client.AppDetails(ctx, appID)
	if err != nil {
		if errors.Is(err, service.ErrStoreAppNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		srv.log(ctx).Error("Store lookup failed", slog.Int64("appID", appID), slog.Any("error", err))

		return nil, domainerrors.ErrStoreUnavailable
	}

	return details, nil
}
