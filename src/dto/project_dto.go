package dto

import "time"

type CreateProjectDTO struct {
	ClientID       uint     `json:"client_id" binding:"required"`
	Title          string   `json:"title" binding:"required,max=200"`
	Description    string   `json:"description" binding:"required"`
	BudgetMin      float64  `json:"budget_min" binding:"required,gt=0"`
	BudgetMax      float64  `json:"budget_max" binding:"required,gt=0"`
	RequiredSkills []string `json:"required_skills" binding:"required,min=1"`
	Category       string   `json:"category" binding:"required"`
	DurationDays   int      `json:"duration_days" binding:"required,gt=0"`
	Deadline       time.Time `json:"deadline" binding:"required"`
}

type UpdateProjectDTO struct {
	Title          *string   `json:"title,omitempty"`
	Description    *string   `json:"description,omitempty"`
	BudgetMin      *float64  `json:"budget_min,omitempty"`
	BudgetMax      *float64  `json:"budget_max,omitempty"`
	RequiredSkills []string  `json:"required_skills,omitempty"`
	Category       *string   `json:"category,omitempty"`
	DurationDays   *int      `json:"duration_days,omitempty"`
	Deadline       *time.Time `json:"deadline,omitempty"`
}
