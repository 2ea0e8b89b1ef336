// Package entity contains the core business objects of the project.
package entity

import "time"

// Review is a user's written opinion on a game, optionally with a star
// rating and an uploaded image. The author is the review's owner for
// authorization purposes.
type Review struct {
	ID            int64
	GameID        int64
	UserID        *int64 // Author; nil only for rows imported without attribution.
	ReviewText    string
	Rating        *int   // 1..5 stars, optional.
	ImageFilename string // Name of an uploaded image under the uploads dir, if any.
	IsDeleted     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
