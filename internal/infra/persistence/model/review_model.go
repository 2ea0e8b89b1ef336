package model

import "time"

// ReviewModel mirrors the 'reviews' table.
type ReviewModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	GameID        int64  `gorm:"not null;index"`
	UserID        *int64 `gorm:"index"`
	ReviewText    string `gorm:"type:text;not null"`
	Rating        *int
	ImageFilename string `gorm:"type:varchar(255)"`
	IsDeleted     bool   `gorm:"not null;default:false;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
