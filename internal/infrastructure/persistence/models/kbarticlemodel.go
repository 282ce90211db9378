package models

import "time"

type KBArticleModel struct {
	ID        uint      `gorm:"primaryKey"`
	Title     string    `gorm:"size:200;not null;index"`
	Body      string    `gorm:"type:text;not null"`
	Tags      string    `gorm:"size:1000;not null;default:''"`
	CreatedAt time.Time `gorm:"not null"`
}

func (KBArticleModel) TableName() string {
	return "kb_articles"
}
