package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/freelancenexus/nexus-go/src/dto"
	"github.com/freelancenexus/nexus-go/src/models"
	"github.com/freelancenexus/nexus-go/src/mq"
	"github.com/freelancenexus/nexus-go/src/repositories"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrInvalidUPIID    = errors.New("invalid UPI id")
	ErrNotRefundable   = errors.New("only completed payments can be refunded")
)

type PaymentService struct {
	Repos  *repositories.Repos
	UPI    *UPIService
	Events EventPublisher
}

func NewPaymentService(repos *repositories.Repos, upi *UPIService, events EventPublisher) *PaymentService {
	return &PaymentService{
		Repos:  repos,
		UPI:    upi,
		Events: events,
	}
}

func (s *PaymentService) InitiatePayment(input dto.InitiatePaymentDTO) (models.Payment, error) {
	if !s.UPI.IsValidUPIID(input.UpiID) {
		return models.Payment{}, ErrInvalidUPIID
	}

	currency := strings.ToUpper(input.Currency)
	if currency == "" {
		currency = "INR"
	}

	transactionID := "TXN-" + strings.ToUpper(uuid.NewString()[:12])
	txn := s.UPI.GeneratePaymentLink(transactionID, input.Amount, input.UpiID, currency)

	payment := models.Payment{
		ProjectID:     input.ProjectID,
		PayerID:       input.PayerID,
		PayeeID:       input.PayeeID,
		Amount:        input.Amount,
		Currency:      currency,
		TransactionID: transactionID,
		UpiID:         input.UpiID,
		PaymentLink:   txn.PaymentLink,
		Status:        models.PaymentStatusInitiated,
	}

	if err := s.Repos.Payment.Create(&payment); err != nil {
		return models.Payment{}, err
	}

	s.addHistory(&payment, payment.PayerID, "INITIATE", "Payment initiated")
	return payment, nil
}

// VerifyPayment asks the gateway simulator for a verdict and settles
// the payment record accordingly. A completed payment fires the
// payment.completed event.
func (s *PaymentService) VerifyPayment(transactionID string) (dto.TransactionStatusDTO, error) {
	payment, err := s.Repos.Payment.GetByTransactionID(transactionID)
	if err != nil {
		return dto.TransactionStatusDTO{}, asNotFound(err, ErrPaymentNotFound)
	}

	result := s.UPI.VerifyPayment(transactionID)

	if result.Success {
		payment.Status = models.PaymentStatusCompleted
	} else if result.Status == upiStatusFailed {
		payment.Status = models.PaymentStatusFailed
	}
	if err := s.Repos.Payment.Update(&payment); err != nil {
		return dto.TransactionStatusDTO{}, err
	}

	s.addHistory(&payment, payment.PayerID, "VERIFY", result.Message)

	if payment.Status == models.PaymentStatusCompleted {
		publishEvent(s.Events, mq.RoutingKeyPaymentCompleted, mq.PaymentCompletedEvent{
			PaymentID:     payment.ID,
			ProjectID:     payment.ProjectID,
			PayerID:       payment.PayerID,
			PayeeID:       payment.PayeeID,
			Amount:        payment.Amount,
			Currency:      payment.Currency,
			TransactionID: payment.TransactionID,
		})
	}

	return dto.TransactionStatusDTO{
		TransactionID: transactionID,
		Status:        string(payment.Status),
		Message:       result.Message,
		Success:       result.Success,
	}, nil
}

// ProcessCallback acknowledges an asynchronous gateway update and
// mirrors it onto the payment record when the transaction is known.
func (s *PaymentService) ProcessCallback(transactionID, status string) map[string]any {
	resp := s.UPI.ProcessCallback(transactionID, status)

	if updated, _ := resp["updated"].(bool); updated {
		if payment, err := s.Repos.Payment.GetByTransactionID(transactionID); err == nil {
			switch status {
			case upiStatusSuccess:
				payment.Status = models.PaymentStatusCompleted
			case upiStatusFailed:
				payment.Status = models.PaymentStatusFailed
			}
			if err := s.Repos.Payment.Update(&payment); err == nil {
				s.addHistory(&payment, payment.PayerID, "CALLBACK", "Gateway callback: "+status)
			}
		}
	}
	return resp
}

func (s *PaymentService) RefundPayment(id uint, reason string) (models.Payment, error) {
	payment, err := s.Repos.Payment.GetByID(id)
	if err != nil {
		return models.Payment{}, asNotFound(err, ErrPaymentNotFound)
	}
	if payment.Status != models.PaymentStatusCompleted {
		return models.Payment{}, ErrNotRefundable
	}

	result := s.UPI.InitiateRefund(payment.TransactionID, payment.Amount)
	if !result.Success {
		return models.Payment{}, fmt.Errorf("refund rejected: %s", result.Message)
	}

	payment.Status = models.PaymentStatusRefunded
	if err := s.Repos.Payment.Update(&payment); err != nil {
		return models.Payment{}, err
	}

	s.addHistory(&payment, payment.PayerID, "REFUND", reason)
	return payment, nil
}

func (s *PaymentService) GetPayment(id uint) (models.Payment, error) {
	payment, err := s.Repos.Payment.GetByID(id)
	if err != nil {
		return models.Payment{}, asNotFound(err, ErrPaymentNotFound)
	}
	return payment, nil
}

func (s *PaymentService) GetPaymentByTransactionID(transactionID string) (models.Payment, error) {
	payment, err := s.Repos.Payment.GetByTransactionID(transactionID)
	if err != nil {
		return models.Payment{}, asNotFound(err, ErrPaymentNotFound)
	}
	return payment, nil
}

func (s *PaymentService) GetPaymentsByProject(projectID uint) ([]models.Payment, error) {
	return s.Repos.Payment.ListByProject(projectID)
}

func (s *PaymentService) GetUserPaymentHistory(userID uint) ([]models.Payment, error) {
	return s.Repos.Payment.ListByUser(userID)
}

func (s *PaymentService) GetTransactionHistory(paymentID uint) ([]models.PaymentHistory, error) {
	if _, err := s.Repos.Payment.GetByID(paymentID); err != nil {
		return nil, asNotFound(err, ErrPaymentNotFound)
	}
	return s.Repos.Payment.HistoryByPayment(paymentID)
}

func (s *PaymentService) GetUserTransactionHistory(userID uint) ([]models.PaymentHistory, error) {
	return s.Repos.Payment.HistoryByUser(userID)
}

// addHistory appends to the transaction log; the log is advisory and
// must not fail the payment operation.
func (s *PaymentService) addHistory(payment *models.Payment, userID uint, action, detail string) {
	_ = s.Repos.Payment.AddHistory(&models.PaymentHistory{
		PaymentID:     payment.ID,
		UserID:        userID,
		TransactionID: payment.TransactionID,
		Action:        action,
		Status:        string(payment.Status),
		Amount:        payment.Amount,
		Detail:        detail,
	})
}
