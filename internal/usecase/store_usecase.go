package usecase

import (
	"context"

	"gamedash/internal/domain/entity"
)

// StoreUsecase proxies read-only lookups against the external game store.
type StoreUsecase interface {
	// GetAppDetails fetches live store metadata for one app.
	GetAppDetails(ctx context.Context, appID int64) (*entity.StoreAppDetails, error)
}
