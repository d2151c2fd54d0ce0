package models

import "time"

type ProposalStatus string

const (
	ProposalStatusPending  ProposalStatus = "PENDING"
	ProposalStatusAccepted ProposalStatus = "ACCEPTED"
	ProposalStatusRejected ProposalStatus = "REJECTED"
)

type Proposal struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	ProjectID      uint           `gorm:"not null;uniqueIndex:idx_project_freelancer;index" json:"project_id"`
	FreelancerID   uint           `gorm:"not null;uniqueIndex:idx_project_freelancer;index" json:"freelancer_id"`
	CoverLetter    string         `gorm:"type:text;not null" json:"cover_letter"`
	ProposedBudget float64        `gorm:"not null" json:"proposed_budget"`
	DeliveryDays   int            `gorm:"not null" json:"delivery_days"`
	Status         ProposalStatus `gorm:"size:20;not null;default:PENDING;index" json:"status"`
	CreatedAt      time.Time      `json:"submitted_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
