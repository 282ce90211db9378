package models

import "time"

// RefreshTokenModel represents the database persistence model for the
// refresh-token ledger. JTIHash is unique across all records; a collision is
// treated as unexpected.
type RefreshTokenModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	JTIHash   string    `gorm:"column:jti_hash;size:64;uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	Revoked   bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null"`
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
