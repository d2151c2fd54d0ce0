package dto

// RankedProposal is the AI verdict for a single proposal.
type RankedProposal struct {
	ProposalID   uint    `json:"proposal_id"`
	FreelancerID uint    `json:"freelancer_id"`
	Score        float64 `json:"score"`
	Reason       string  `json:"reason"`
}

type AIRecommendation struct {
	ProjectID  uint    `json:"project_id"`
	Title      string  `json:"title"`
	MatchScore float64 `json:"match_score"`
	Reason     string  `json:"reason"`
}

type ProjectSummary struct {
	ProjectID uint   `json:"project_id"`
	Summary   string `json:"summary"`
}
