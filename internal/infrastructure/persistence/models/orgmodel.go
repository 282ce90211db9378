package models

import "time"

// OrgModel represents the database persistence model for organizations.
type OrgModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255;uniqueIndex;not null"`
	CreatedAt time.Time
}

func (OrgModel) TableName() string {
	return "orgs"
}
