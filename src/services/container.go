package services

import (
	"github.com/freelancenexus/nexus-go/src/cache"
	"github.com/freelancenexus/nexus-go/src/repositories"
	"github.com/freelancenexus/nexus-go/src/storage"
	"github.com/freelancenexus/nexus-go/src/ws"
)

// Deps carries the external collaborators shared by the services.
// Nil members disable the corresponding concern (events, cache, AI).
type Deps struct {
	Repos  *repositories.Repos
	Events EventPublisher
	Gemini GeminiClient
	Cache  *cache.Client
	Store  storage.ObjectStore
	Hub    *ws.Hub
	Email  EmailSender
}

type Services struct {
	Project      *ProjectService
	Proposal     *ProposalService
	AI           *AIService
	User         *UserService
	Freelancer   *FreelancerService
	Portfolio    *PortfolioService
	UPI          *UPIService
	Payment      *PaymentService
	Notification *NotificationService
}

func New(d Deps) *Services {
	ai := NewAIService(d.Repos, d.Gemini, d.Cache)
	upi := NewUPIService()

	var ranker ProposalRanker
	if d.Gemini != nil {
		ranker = ai
	}

	return &Services{
		Project:      NewProjectService(d.Repos, d.Events),
		Proposal:     NewProposalService(d.Repos, d.Events, ranker),
		AI:           ai,
		User:         NewUserService(d.Repos, d.Events),
		Freelancer:   NewFreelancerService(d.Repos),
		Portfolio:    NewPortfolioService(d.Repos, d.Store),
		UPI:          upi,
		Payment:      NewPaymentService(d.Repos, upi, d.Events),
		Notification: NewNotificationService(d.Repos, d.Hub, d.Email),
	}
}
