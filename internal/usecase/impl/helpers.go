// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"

	deliverycontext "gamedash/internal/delivery/context"
	"gamedash/internal/domain/entity"
	domainerrors "gamedash/internal/domain/errors"
)

// requirePrincipal returns the authenticated user from the context or an
// unauthenticated error. Use cases never trust a missing principal.
func requirePrincipal(ctx context.Context) (*entity.User, error) {
	actor := deliverycontext.GetPrincipal(ctx)
	if actor == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	return actor, nil
}

// requireAdmin returns the authenticated user only if they hold the admin role.
func requireAdmin(ctx context.Context) (*entity.User, error) {
	actor, err := requirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin {
		return nil, domainerrors.ErrForbidden
	}

	return actor, nil
}
