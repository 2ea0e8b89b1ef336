// Package entity contains the core business objects of the project.
package entity

import "time"

// Game is a catalog entry for a store title. Games are owned by the user
// who created them; a nil OwnerID marks seeded/imported rows that only
// administrators may mutate.
type Game struct {
	ID          int64
	Title       string
	Developer   string
	Publisher   string
	Genres      string // Comma-separated genre list, mirroring the store metadata.
	Tags        string // Comma-separated tag list.
	ReleaseDate string
	Price       float64
	SteamAppID  int64  // Unique external store identifier.
	OwnerID     *int64 // Creating user; nil for unowned rows.
	IsDeleted   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
