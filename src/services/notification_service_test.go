package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"gorm.io/gorm"

	"github.com/freelancenexus/nexus-go/src/models"
	"github.com/freelancenexus/nexus-go/src/mq"
	"github.com/freelancenexus/nexus-go/src/repositories"
	"github.com/freelancenexus/nexus-go/src/repositories/mock_repositories"
	"github.com/freelancenexus/nexus-go/src/services"
)

type recordingEmailSender struct {
	sent []string
}

func (r *recordingEmailSender) Send(to, subject, body string) error {
	r.sent = append(r.sent, to)
	return nil
}

func setupNotificationMocks(t *testing.T) (*services.NotificationService, *mock_repositories.MockNotificationRepo, *mock_repositories.MockUserRepo, *recordingEmailSender) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	notificationRepo := mock_repositories.NewMockNotificationRepo(ctrl)
	userRepo := mock_repositories.NewMockUserRepo(ctrl)
	email := &recordingEmailSender{}

	svc := services.NewNotificationService(&repositories.Repos{
		Notification: notificationRepo,
		User:         userRepo,
	}, nil, email)
	return svc, notificationRepo, userRepo, email
}

func TestNotificationServiceNotify(t *testing.T) {
	t.Run("persists and emails", func(t *testing.T) {
		svc, notificationRepo, userRepo, email := setupNotificationMocks(t)

		notificationRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(n *models.Notification) error {
			n.ID = 1
			return nil
		})
		userRepo.EXPECT().GetByID(uint(3)).Return(models.User{ID: 3, Email: "alice@example.com"}, nil)

		notification, err := svc.Notify(3, "WELCOME", "Welcome", "Your account is ready.")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if notification.RecipientID != 3 || notification.Read {
			t.Fatalf("unexpected notification: %+v", notification)
		}
		if len(email.sent) != 1 || email.sent[0] != "alice@example.com" {
			t.Fatalf("expected one email to alice, got %v", email.sent)
		}
	})

	t.Run("missing recipient skips the email", func(t *testing.T) {
		svc, notificationRepo, userRepo, email := setupNotificationMocks(t)

		notificationRepo.EXPECT().Create(gomock.Any()).Return(nil)
		userRepo.EXPECT().GetByID(uint(3)).Return(models.User{}, gorm.ErrRecordNotFound)

		if _, err := svc.Notify(3, "WELCOME", "Welcome", "hi"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(email.sent) != 0 {
			t.Fatalf("expected no email, got %v", email.sent)
		}
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		svc, notificationRepo, _, _ := setupNotificationMocks(t)

		notificationRepo.EXPECT().Create(gomock.Any()).Return(errors.New("connection refused"))

		if _, err := svc.Notify(3, "WELCOME", "Welcome", "hi"); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestNotificationServiceMarkRead(t *testing.T) {
	t.Run("owner marks read", func(t *testing.T) {
		svc, notificationRepo, _, _ := setupNotificationMocks(t)

		notificationRepo.EXPECT().GetByID(uint(1)).Return(models.Notification{ID: 1, RecipientID: 3}, nil)
		notificationRepo.EXPECT().MarkRead(uint(1)).Return(nil)

		if err := svc.MarkRead(1, 3); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("someone else's notification reads like a missing one", func(t *testing.T) {
		svc, notificationRepo, _, _ := setupNotificationMocks(t)

		notificationRepo.EXPECT().GetByID(uint(1)).Return(models.Notification{ID: 1, RecipientID: 7}, nil)

		if err := svc.MarkRead(1, 3); !errors.Is(err, services.ErrNotificationNotFound) {
			t.Fatalf("expected ErrNotificationNotFound, got %v", err)
		}
	})
}

func TestNotificationServiceEventHandlers(t *testing.T) {
	t.Run("project created confirms to the client", func(t *testing.T) {
		svc, notificationRepo, userRepo, _ := setupNotificationMocks(t)

		body, _ := json.Marshal(mq.ProjectCreatedEvent{
			ProjectID: 1, ClientID: 3, Title: "Landing page",
		})

		notificationRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(n *models.Notification) error {
			if n.RecipientID != 3 || n.Type != "PROJECT_CREATED" {
				t.Fatalf("unexpected notification: %+v", n)
			}
			return nil
		})
		userRepo.EXPECT().GetByID(uint(3)).Return(models.User{ID: 3, Email: "client@example.com"}, nil)

		if err := svc.HandleProjectCreated(context.Background(), body); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("proposal submitted notifies the client", func(t *testing.T) {
		svc, notificationRepo, userRepo, _ := setupNotificationMocks(t)

		body, _ := json.Marshal(mq.ProposalSubmittedEvent{
			ProposalID: 20, ProjectID: 1, ClientID: 3, FreelancerID: 9, ProjectTitle: "Landing page",
		})

		notificationRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(n *models.Notification) error {
			if n.RecipientID != 3 || n.Type != "PROPOSAL_SUBMITTED" {
				t.Fatalf("unexpected notification: %+v", n)
			}
			return nil
		})
		userRepo.EXPECT().GetByID(uint(3)).Return(models.User{ID: 3, Email: "client@example.com"}, nil)

		if err := svc.HandleProposalSubmitted(context.Background(), body); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("proposal accepted notifies the freelancer", func(t *testing.T) {
		svc, notificationRepo, userRepo, _ := setupNotificationMocks(t)

		body, _ := json.Marshal(mq.ProposalAcceptedEvent{
			ProposalID: 20, ProjectID: 1, FreelancerID: 9, ProjectTitle: "Landing page",
		})

		notificationRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(n *models.Notification) error {
			if n.RecipientID != 9 || n.Type != "PROPOSAL_ACCEPTED" {
				t.Fatalf("unexpected notification: %+v", n)
			}
			return nil
		})
		userRepo.EXPECT().GetByID(uint(9)).Return(models.User{ID: 9, Email: "dev@example.com"}, nil)

		if err := svc.HandleProposalAccepted(context.Background(), body); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("payment completed notifies both sides", func(t *testing.T) {
		svc, notificationRepo, userRepo, _ := setupNotificationMocks(t)

		body, _ := json.Marshal(mq.PaymentCompletedEvent{
			PaymentID: 5, ProjectID: 1, PayerID: 3, PayeeID: 9,
			Amount: 1200, Currency: "INR", TransactionID: "TXN-1",
		})

		var recipients []uint
		notificationRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(n *models.Notification) error {
			recipients = append(recipients, n.RecipientID)
			return nil
		}).Times(2)
		userRepo.EXPECT().GetByID(gomock.Any()).Return(models.User{Email: "x@example.com"}, nil).Times(2)

		if err := svc.HandlePaymentCompleted(context.Background(), body); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(recipients) != 2 || recipients[0] != 9 || recipients[1] != 3 {
			t.Fatalf("expected payee then payer, got %v", recipients)
		}
	})

	t.Run("malformed event body", func(t *testing.T) {
		svc, _, _, _ := setupNotificationMocks(t)

		if err := svc.HandleUserRegistered(context.Background(), json.RawMessage(`not json`)); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
