package models

import (
	"time"

	"gorm.io/datatypes"
)

type FreelancerProfile struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UserID       uint           `gorm:"not null;uniqueIndex" json:"user_id"`
	Title        string         `gorm:"size:100" json:"title"`
	Bio          string         `gorm:"type:text" json:"bio"`
	Skills       datatypes.JSON `gorm:"type:jsonb" json:"skills"`
	HourlyRate   float64        `json:"hourly_rate"`
	Available    bool           `gorm:"not null;default:true" json:"available"`
	// Derived from ratings on read.
	AvgRating   float64   `gorm:"-" json:"avg_rating"`
	RatingCount int64     `gorm:"-" json:"rating_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PortfolioItem struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ProfileID     uint      `gorm:"not null;index" json:"profile_id"`
	Title         string    `gorm:"size:200;not null" json:"title"`
	Description   string    `gorm:"type:text" json:"description"`
	ProjectURL    string    `gorm:"size:300" json:"project_url"`
	AttachmentKey string    `gorm:"size:300" json:"attachment_key,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Rating struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProfileID uint      `gorm:"not null;uniqueIndex:idx_rating_once;index" json:"profile_id"`
	ProjectID uint      `gorm:"not null;uniqueIndex:idx_rating_once" json:"project_id"`
	ClientID  uint      `gorm:"not null;uniqueIndex:idx_rating_once" json:"client_id"`
	Score     int       `gorm:"not null" json:"score"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
