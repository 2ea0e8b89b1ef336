// Package entity contains the core business objects of the project.
package entity

import "time"

// PlayerActivity is a single analytics event for a player and game, e.g. a
// play session, a purchase or an achievement unlock. Activity rows carry no
// owner, so only administrators may remove them.
type PlayerActivity struct {
	ID           int64
	PlayerID     int64
	GameID       int64
	ActivityType string         // "play", "purchase", "achievement", ...
	OccurredAt   time.Time      // When the activity happened, not when it was recorded.
	Details      map[string]any // Free-form payload (score, item_id, ...).
	IsDeleted    bool
	CreatedAt    time.Time
}
