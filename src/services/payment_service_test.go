package services_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"gorm.io/gorm"

	"github.com/freelancenexus/nexus-go/src/dto"
	"github.com/freelancenexus/nexus-go/src/models"
	"github.com/freelancenexus/nexus-go/src/repositories"
	"github.com/freelancenexus/nexus-go/src/repositories/mock_repositories"
	"github.com/freelancenexus/nexus-go/src/services"
)

func setupPaymentMocks(t *testing.T) (*services.PaymentService, *mock_repositories.MockPaymentRepo, *services.UPIService) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	paymentRepo := mock_repositories.NewMockPaymentRepo(ctrl)
	upi := services.NewUPIService()
	svc := services.NewPaymentService(&repositories.Repos{Payment: paymentRepo}, upi, nil)
	return svc, paymentRepo, upi
}

func TestPaymentServiceInitiate(t *testing.T) {
	input := dto.InitiatePaymentDTO{
		ProjectID: 1,
		PayerID:   3,
		PayeeID:   9,
		Amount:    1200,
		UpiID:     "alice@upi",
	}

	t.Run("initiates with a generated transaction id", func(t *testing.T) {
		svc, paymentRepo, upi := setupPaymentMocks(t)

		paymentRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.Payment) error {
			p.ID = 5
			return nil
		})
		paymentRepo.EXPECT().AddHistory(gomock.Any()).Return(nil)

		payment, err := svc.InitiatePayment(input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payment.Status != models.PaymentStatusInitiated {
			t.Fatalf("expected INITIATED, got %s", payment.Status)
		}
		if !strings.HasPrefix(payment.TransactionID, "TXN-") {
			t.Fatalf("unexpected transaction id: %s", payment.TransactionID)
		}
		if payment.Currency != "INR" {
			t.Fatalf("expected currency to default to INR, got %s", payment.Currency)
		}
		if payment.PaymentLink == "" {
			t.Fatal("expected a payment link")
		}
		if _, err := upi.GetTransaction(payment.TransactionID); err != nil {
			t.Fatalf("gateway has no record of the transaction: %v", err)
		}
	})

	t.Run("rejects a malformed UPI id", func(t *testing.T) {
		svc, _, _ := setupPaymentMocks(t)

		bad := input
		bad.UpiID = "not-a-upi-id"

		if _, err := svc.InitiatePayment(bad); !errors.Is(err, services.ErrInvalidUPIID) {
			t.Fatalf("expected ErrInvalidUPIID, got %v", err)
		}
	})

	t.Run("history failure does not fail the payment", func(t *testing.T) {
		svc, paymentRepo, _ := setupPaymentMocks(t)

		paymentRepo.EXPECT().Create(gomock.Any()).Return(nil)
		paymentRepo.EXPECT().AddHistory(gomock.Any()).Return(errors.New("log table unavailable"))

		if _, err := svc.InitiatePayment(input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPaymentServiceVerify(t *testing.T) {
	t.Run("settles the record with the gateway verdict", func(t *testing.T) {
		svc, paymentRepo, upi := setupPaymentMocks(t)

		upi.GeneratePaymentLink("TXN-1", 100, "alice@upi", "INR")
		// Resolve through the callback first so verification is
		// deterministic.
		upi.ProcessCallback("TXN-1", "SUCCESS")

		paymentRepo.EXPECT().GetByTransactionID("TXN-1").Return(models.Payment{
			ID: 5, TransactionID: "TXN-1", PayerID: 3, Status: models.PaymentStatusInitiated,
		}, nil)
		paymentRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(p *models.Payment) error {
			if p.Status != models.PaymentStatusCompleted {
				t.Fatalf("expected COMPLETED, got %s", p.Status)
			}
			return nil
		})
		paymentRepo.EXPECT().AddHistory(gomock.Any()).Return(nil)

		status, err := svc.VerifyPayment("TXN-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !status.Success || status.Status != "COMPLETED" {
			t.Fatalf("unexpected status: %+v", status)
		}
	})

	t.Run("unknown transaction", func(t *testing.T) {
		svc, paymentRepo, _ := setupPaymentMocks(t)

		paymentRepo.EXPECT().GetByTransactionID("TXN-MISSING").Return(models.Payment{}, gorm.ErrRecordNotFound)

		if _, err := svc.VerifyPayment("TXN-MISSING"); !errors.Is(err, services.ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})
}

func TestPaymentServiceCallback(t *testing.T) {
	t.Run("mirrors a known callback onto the record", func(t *testing.T) {
		svc, paymentRepo, upi := setupPaymentMocks(t)

		upi.GeneratePaymentLink("TXN-1", 100, "alice@upi", "INR")

		paymentRepo.EXPECT().GetByTransactionID("TXN-1").Return(models.Payment{
			ID: 5, TransactionID: "TXN-1", PayerID: 3, Status: models.PaymentStatusInitiated,
		}, nil)
		paymentRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(p *models.Payment) error {
			if p.Status != models.PaymentStatusFailed {
				t.Fatalf("expected FAILED, got %s", p.Status)
			}
			return nil
		})
		paymentRepo.EXPECT().AddHistory(gomock.Any()).Return(nil)

		resp := svc.ProcessCallback("TXN-1", "FAILED")
		if resp["updated"] != true {
			t.Fatalf("expected updated=true, got %v", resp)
		}
	})

	t.Run("unknown transaction is acknowledged without touching the store", func(t *testing.T) {
		svc, _, _ := setupPaymentMocks(t)

		resp := svc.ProcessCallback("TXN-MISSING", "SUCCESS")
		if resp["acknowledged"] != true || resp["updated"] != false {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

func TestPaymentServiceRefund(t *testing.T) {
	t.Run("refunds a completed payment", func(t *testing.T) {
		svc, paymentRepo, upi := setupPaymentMocks(t)

		upi.GeneratePaymentLink("TXN-1", 100, "alice@upi", "INR")
		upi.ProcessCallback("TXN-1", "SUCCESS")

		paymentRepo.EXPECT().GetByID(uint(5)).Return(models.Payment{
			ID: 5, TransactionID: "TXN-1", Amount: 100, PayerID: 3, Status: models.PaymentStatusCompleted,
		}, nil)
		paymentRepo.EXPECT().Update(gomock.Any()).Return(nil)
		paymentRepo.EXPECT().AddHistory(gomock.Any()).DoAndReturn(func(h *models.PaymentHistory) error {
			if h.Action != "REFUND" || h.Detail != "client cancelled" {
				t.Fatalf("unexpected history entry: %+v", h)
			}
			return nil
		})

		payment, err := svc.RefundPayment(5, "client cancelled")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payment.Status != models.PaymentStatusRefunded {
			t.Fatalf("expected REFUNDED, got %s", payment.Status)
		}
	})

	t.Run("only completed payments refund", func(t *testing.T) {
		svc, paymentRepo, _ := setupPaymentMocks(t)

		paymentRepo.EXPECT().GetByID(uint(5)).Return(models.Payment{
			ID: 5, Status: models.PaymentStatusInitiated,
		}, nil)

		if _, err := svc.RefundPayment(5, ""); !errors.Is(err, services.ErrNotRefundable) {
			t.Fatalf("expected ErrNotRefundable, got %v", err)
		}
	})

	t.Run("gateway rejection surfaces", func(t *testing.T) {
		svc, paymentRepo, _ := setupPaymentMocks(t)

		// The gateway never saw this transaction, so the refund is
		// rejected even though the record claims completion.
		paymentRepo.EXPECT().GetByID(uint(5)).Return(models.Payment{
			ID: 5, TransactionID: "TXN-GONE", Status: models.PaymentStatusCompleted,
		}, nil)

		_, err := svc.RefundPayment(5, "")
		if err == nil || !strings.Contains(err.Error(), "refund rejected") {
			t.Fatalf("expected a refund rejection, got %v", err)
		}
	})
}

func TestPaymentServiceHistory(t *testing.T) {
	t.Run("history requires the payment to exist", func(t *testing.T) {
		svc, paymentRepo, _ := setupPaymentMocks(t)

		paymentRepo.EXPECT().GetByID(uint(9)).Return(models.Payment{}, gorm.ErrRecordNotFound)

		if _, err := svc.GetTransactionHistory(9); !errors.Is(err, services.ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("lists history for a payment", func(t *testing.T) {
		svc, paymentRepo, _ := setupPaymentMocks(t)

		paymentRepo.EXPECT().GetByID(uint(5)).Return(models.Payment{ID: 5}, nil)
		paymentRepo.EXPECT().HistoryByPayment(uint(5)).Return([]models.PaymentHistory{
			{Action: "INITIATE"}, {Action: "VERIFY"},
		}, nil)

		history, err := svc.GetTransactionHistory(5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(history) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(history))
		}
	})
}
