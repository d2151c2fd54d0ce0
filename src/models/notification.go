package models

import "time"

type Notification struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RecipientID uint      `gorm:"not null;index" json:"recipient_id"`
	Type        string    `gorm:"size:50;not null" json:"type"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Message     string    `gorm:"type:text" json:"message"`
	Read        bool      `gorm:"not null;default:false;index" json:"read"`
	CreatedAt   time.Time `json:"created_at"`
}
