package dto

type SubmitProposalDTO struct {
	CoverLetter    string  `json:"cover_letter" binding:"required,min=50"`
	ProposedBudget float64 `json:"proposed_budget" binding:"required,gt=0"`
	DeliveryDays   int     `json:"delivery_days" binding:"required,gt=0"`
}
