package models

import "time"

type UserRole string

const (
	RoleClient     UserRole = "CLIENT"
	RoleFreelancer UserRole = "FREELANCER"
	RoleAdmin      UserRole = "ADMIN"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Email        string    `gorm:"size:120;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	FullName     string    `gorm:"size:100" json:"full_name"`
	Role         UserRole  `gorm:"size:20;not null;default:CLIENT" json:"role"`
	Active       bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
