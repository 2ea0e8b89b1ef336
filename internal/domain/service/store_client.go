package service

import (
	"context"
	"errors"

	"gamedash/internal/domain/entity"
)

// ErrStoreAppNotFound is returned when the store reports no app for the
// requested ID.
var ErrStoreAppNotFound = errors.New("store app not found")

// StoreClient is the read-only gateway to the external game store API.
type StoreClient interface {
	// AppDetails fetches the store metadata for a single app ID.
	AppDetails(ctx context.Context, appID int64) (*entity.StoreAppDetails, error)
}
