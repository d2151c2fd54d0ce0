package mq

// Routing keys on the topic exchange. Consumers bind per key.
const (
	RoutingKeyProjectCreated    = "project.created"
	RoutingKeyProposalSubmitted = "proposal.submitted"
	RoutingKeyProposalAccepted  = "proposal.accepted"
	RoutingKeyProposalRejected  = "proposal.rejected"
	RoutingKeyPaymentCompleted  = "payment.completed"
	RoutingKeyUserRegistered    = "user.registered"
)

type ProjectCreatedEvent struct {
	ProjectID uint   `json:"project_id"`
	ClientID  uint   `json:"client_id"`
	Title     string `json:"title"`
}

type ProposalSubmittedEvent struct {
	ProposalID   uint   `json:"proposal_id"`
	ProjectID    uint   `json:"project_id"`
	ClientID     uint   `json:"client_id"`
	FreelancerID uint   `json:"freelancer_id"`
	ProjectTitle string `json:"project_title"`
}

type ProposalAcceptedEvent struct {
	ProposalID   uint   `json:"proposal_id"`
	ProjectID    uint   `json:"project_id"`
	FreelancerID uint   `json:"freelancer_id"`
	ProjectTitle string `json:"project_title"`
}

type ProposalRejectedEvent struct {
	ProposalID   uint   `json:"proposal_id"`
	ProjectID    uint   `json:"project_id"`
	FreelancerID uint   `json:"freelancer_id"`
	ProjectTitle string `json:"project_title"`
}

type PaymentCompletedEvent struct {
	PaymentID     uint    `json:"payment_id"`
	ProjectID     uint    `json:"project_id"`
	PayerID       uint    `json:"payer_id"`
	PayeeID       uint    `json:"payee_id"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	TransactionID string  `json:"transaction_id"`
}

type UserRegisteredEvent struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
