package service

import "gamedash/internal/domain/entity"

// CanMutate decides whether actor may update or soft-delete a resource with
// the given owner. The policy is uniform across every owned resource type:
//
//   - the owner may mutate their own resource
//   - an admin may mutate anything
//   - unowned resources (nil owner) are admin-only
//   - everyone else is denied
//
// Reads are not guarded here; listings are public to authenticated users.
func CanMutate(actor *entity.User, ownerID *int64) bool {
	if actor == nil {
		return false
	}
	if actor.IsAdmin {
		return true
	}

	return ownerID != nil && *ownerID == actor.ID
}
