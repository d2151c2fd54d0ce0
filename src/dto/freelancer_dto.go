package dto

type CreateFreelancerProfileDTO struct {
	UserID     uint     `json:"user_id" binding:"required"`
	Title      string   `json:"title" binding:"required,max=100"`
	Bio        string   `json:"bio"`
	Skills     []string `json:"skills" binding:"required,min=1"`
	HourlyRate float64  `json:"hourly_rate" binding:"required,gt=0"`
}

type UpdateFreelancerProfileDTO struct {
	Title      *string  `json:"title,omitempty"`
	Bio        *string  `json:"bio,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	HourlyRate *float64 `json:"hourly_rate,omitempty"`
	Available  *bool    `json:"available,omitempty"`
}

type CreatePortfolioItemDTO struct {
	Title       string `form:"title" binding:"required,max=200"`
	Description string `form:"description"`
	ProjectURL  string `form:"project_url"`
}

type UpdatePortfolioItemDTO struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	ProjectURL  *string `json:"project_url,omitempty"`
}

type AddRatingDTO struct {
	ProjectID uint   `json:"project_id" binding:"required"`
	ClientID  uint   `json:"client_id" binding:"required"`
	Score     int    `json:"score" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}
