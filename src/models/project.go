package models

import (
	"time"

	"gorm.io/datatypes"
)

type ProjectStatus string

const (
	ProjectStatusOpen       ProjectStatus = "OPEN"
	ProjectStatusInProgress ProjectStatus = "IN_PROGRESS"
	ProjectStatusCompleted  ProjectStatus = "COMPLETED"
	ProjectStatusCancelled  ProjectStatus = "CANCELLED"
)

type Project struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	ClientID           uint           `gorm:"not null;index" json:"client_id"`
	Title              string         `gorm:"size:200;not null" json:"title"`
	Description        string         `gorm:"type:text" json:"description"`
	BudgetMin          float64        `gorm:"not null" json:"budget_min"`
	BudgetMax          float64        `gorm:"not null" json:"budget_max"`
	RequiredSkills     datatypes.JSON `gorm:"type:jsonb" json:"required_skills"`
	Category           string         `gorm:"size:100;index" json:"category"`
	DurationDays       int            `json:"duration_days"`
	Deadline           time.Time      `json:"deadline"`
	Status             ProjectStatus  `gorm:"size:20;not null;default:OPEN;index" json:"status"`
	AssignedFreelancer *uint          `json:"assigned_freelancer"`
	// Derived from the proposals table on read, never stored.
	ProposalCount int       `gorm:"-" json:"proposal_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
