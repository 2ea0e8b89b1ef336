package model

import "time"

// GameModel mirrors the 'games' table.
type GameModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Title       string  `gorm:"type:varchar(255);not null;index"`
	Developer   string  `gorm:"type:varchar(255)"`
	Publisher   string  `gorm:"type:varchar(255)"`
	Genres      string  `gorm:"type:text"`
	Tags        string  `gorm:"type:text"`
	ReleaseDate string  `gorm:"type:varchar(32)"`
	Price       float64 `gorm:"not null;default:0"`
	SteamAppID  int64   `gorm:"uniqueIndex;not null"`
	OwnerID     *int64  `gorm:"index"`
	IsDeleted   bool    `gorm:"not null;default:false;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Reviews []ReviewModel `gorm:"foreignKey:GameID"`
}

// TableName explicitly sets the table name for GORM.
func (GameModel) TableName() string {
	return "games"
}
