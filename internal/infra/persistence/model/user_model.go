// Package model contains the GORM persistence models mirroring the database schema.
package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	IsActive     bool   `gorm:"not null;default:true"`
	IsAdmin      bool   `gorm:"not null;default:false"`
	IsDeleted    bool   `gorm:"not null;default:false;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Reviews []ReviewModel `gorm:"foreignKey:UserID"`
	Games   []GameModel   `gorm:"foreignKey:OwnerID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// RefreshTokenModel mirrors the 'refresh_tokens' table.
type RefreshTokenModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UserID    int64  `gorm:"not null;index"`
	TokenHash string `gorm:"type:varchar(64);uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}

// PasswordResetTokenModel mirrors the 'password_reset_tokens' table.
// Rows are deleted on consumption; the unique hash index is what makes the
// consume operation race-safe.
type PasswordResetTokenModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UserID    int64  `gorm:"not null;index"`
	TokenHash string `gorm:"type:varchar(64);uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PasswordResetTokenModel) TableName() string {
	return "password_reset_tokens"
}
