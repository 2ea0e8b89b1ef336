package model

import (
	"time"

	"gorm.io/datatypes"
)

// PlayerActivityModel mirrors the 'player_activities' table. Details is a
// free-form JSON column; both PostgreSQL and SQLite store it natively.
type PlayerActivityModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	PlayerID     int64  `gorm:"not null;index"`
	GameID       int64  `gorm:"not null;index"`
	ActivityType string `gorm:"type:varchar(50);not null"`
	OccurredAt   time.Time `gorm:"not null"`
	Details      datatypes.JSON
	IsDeleted    bool `gorm:"not null;default:false;index"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlayerActivityModel) TableName() string {
	return "player_activities"
}
