package handlers

import (
	"github.com/freelancenexus/nexus-go/src/services"
	"github.com/freelancenexus/nexus-go/src/ws"
)

type Handlers struct {
	Project      *ProjectHandler
	Proposal     *ProposalHandler
	AI           *AIHandler
	User         *UserHandler
	Freelancer   *FreelancerHandler
	Portfolio    *PortfolioHandler
	Payment      *PaymentHandler
	Notification *NotificationHandler
	WS           *WSHandler
}

func New(svc *services.Services, hub *ws.Hub) *Handlers {
	return &Handlers{
		Project:      NewProjectHandler(svc.Project),
		Proposal:     NewProposalHandler(svc.Proposal),
		AI:           NewAIHandler(svc.AI, svc.Freelancer),
		User:         NewUserHandler(svc.User),
		Freelancer:   NewFreelancerHandler(svc.Freelancer),
		Portfolio:    NewPortfolioHandler(svc.Portfolio),
		Payment:      NewPaymentHandler(svc.Payment),
		Notification: NewNotificationHandler(svc.Notification),
		WS:           NewWSHandler(hub),
	}
}
