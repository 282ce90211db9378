package models

import "time"

// UserModel represents the database persistence model for users.
type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:50;not null;default:owner"`
	OrgID        *uint  `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Note: No foreign key associations. Relationships are managed by
	// application business logic plus the FK constraints in migrations.
}

func (UserModel) TableName() string {
	return "users"
}
