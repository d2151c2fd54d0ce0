package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/freelancenexus/nexus-go/src/logger"
	"github.com/freelancenexus/nexus-go/src/metrics"
	"github.com/freelancenexus/nexus-go/src/models"
	"github.com/freelancenexus/nexus-go/src/mq"
	"github.com/freelancenexus/nexus-go/src/repositories"
	"github.com/freelancenexus/nexus-go/src/ws"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationService struct {
	Repos *repositories.Repos
	Hub   *ws.Hub
	Email EmailSender
}

func NewNotificationService(repos *repositories.Repos, hub *ws.Hub, email EmailSender) *NotificationService {
	return &NotificationService{
		Repos: repos,
		Hub:   hub,
		Email: email,
	}
}

// Notify persists a notification, then fans it out over the live
// websocket feed and email. Fan-out is best effort; the stored row is
// the source of truth.
func (s *NotificationService) Notify(recipientID uint, ntype, title, message string) (models.Notification, error) {
	notification := models.Notification{
		RecipientID: recipientID,
		Type:        ntype,
		Title:       title,
		Message:     message,
	}
	if err := s.Repos.Notification.Create(&notification); err != nil {
		return models.Notification{}, err
	}
	metrics.NotificationsDelivered.Inc()

	if s.Hub != nil {
		s.Hub.Send(recipientID, notification)
	}
	s.sendEmail(recipientID, title, message)

	return notification, nil
}

func (s *NotificationService) ListForRecipient(recipientID uint) ([]models.Notification, error) {
	return s.Repos.Notification.ListByRecipient(recipientID)
}

func (s *NotificationService) UnreadCount(recipientID uint) (int64, error) {
	return s.Repos.Notification.CountUnread(recipientID)
}

func (s *NotificationService) MarkRead(id, recipientID uint) error {
	notification, err := s.Repos.Notification.GetByID(id)
	if err != nil {
		return asNotFound(err, ErrNotificationNotFound)
	}
	if notification.RecipientID != recipientID {
		return ErrNotificationNotFound
	}
	return s.Repos.Notification.MarkRead(id)
}

func (s *NotificationService) MarkAllRead(recipientID uint) error {
	return s.Repos.Notification.MarkAllRead(recipientID)
}

// Event handlers below match mq.MessageHandler and are bound to
// routing keys by the consumer wiring.

func (s *NotificationService) HandleProjectCreated(_ context.Context, body json.RawMessage) error {
	var event mq.ProjectCreatedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return err
	}
	_, err := s.Notify(event.ClientID, "PROJECT_CREATED",
		"Project published",
		fmt.Sprintf("Your project %q is live and accepting proposals.", event.Title))
	return err
}

func (s *NotificationService) HandleProposalSubmitted(_ context.Context, body json.RawMessage) error {
	var event mq.ProposalSubmittedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return err
	}
	_, err := s.Notify(event.ClientID, "PROPOSAL_SUBMITTED",
		"New proposal received",
		fmt.Sprintf("A freelancer submitted a proposal for %q.", event.ProjectTitle))
	return err
}

func (s *NotificationService) HandleProposalAccepted(_ context.Context, body json.RawMessage) error {
	var event mq.ProposalAcceptedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return err
	}
	_, err := s.Notify(event.FreelancerID, "PROPOSAL_ACCEPTED",
		"Proposal accepted",
		fmt.Sprintf("Your proposal for %q was accepted. The project is now in progress.", event.ProjectTitle))
	return err
}

func (s *NotificationService) HandleProposalRejected(_ context.Context, body json.RawMessage) error {
	var event mq.ProposalRejectedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return err
	}
	_, err := s.Notify(event.FreelancerID, "PROPOSAL_REJECTED",
		"Proposal not selected",
		fmt.Sprintf("Your proposal for %q was not selected.", event.ProjectTitle))
	return err
}

func (s *NotificationService) HandlePaymentCompleted(_ context.Context, body json.RawMessage) error {
	var event mq.PaymentCompletedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return err
	}
	message := fmt.Sprintf("Payment of %.2f %s completed (transaction %s).",
		event.Amount, event.Currency, event.TransactionID)
	if _, err := s.Notify(event.PayeeID, "PAYMENT_RECEIVED", "Payment received", message); err != nil {
		return err
	}
	_, err := s.Notify(event.PayerID, "PAYMENT_SENT", "Payment completed", message)
	return err
}

func (s *NotificationService) HandleUserRegistered(_ context.Context, body json.RawMessage) error {
	var event mq.UserRegisteredEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return err
	}
	_, err := s.Notify(event.UserID, "WELCOME",
		"Welcome to FreelanceNexus",
		fmt.Sprintf("Hi %s, your account is ready.", event.Username))
	return err
}

func (s *NotificationService) sendEmail(recipientID uint, subject, body string) {
	if s.Email == nil {
		return
	}
	user, err := s.Repos.User.GetByID(recipientID)
	if err != nil {
		logger.WithField("recipient_id", recipientID).Warn("Skipping email, recipient not found")
		return
	}
	if err := s.Email.Send(user.Email, subject, body); err != nil {
		logger.WithError(err).Error("Failed to send notification email")
	}
}
