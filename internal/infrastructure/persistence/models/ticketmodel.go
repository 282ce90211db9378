package models

import "time"

type TicketModel struct {
	ID        uint      `gorm:"primaryKey"`
	OrgID     uint      `gorm:"not null;index"`
	Subject   string    `gorm:"size:200;not null"`
	Status    string    `gorm:"size:20;not null;index"`
	Priority  string    `gorm:"size:20;not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null;index"`
}

func (TicketModel) TableName() string {
	return "tickets"
}

type TicketMessageModel struct {
	ID        uint      `gorm:"primaryKey"`
	TicketID  uint      `gorm:"not null;index"`
	Role      string    `gorm:"size:20;not null;index"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (TicketMessageModel) TableName() string {
	return "ticket_messages"
}
