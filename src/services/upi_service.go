package services

import (
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"sync"
	"time"
)

// UPIService simulates a UPI gateway: transactions live in an
// in-memory map, verification flips a coin, nothing settles for real.

const (
	upiStatusInitiated = "INITIATED"
	upiStatusSuccess   = "SUCCESS"
	upiStatusFailed    = "FAILED"
	upiStatusRefunded  = "REFUNDED"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")

	upiIDPattern = regexp.MustCompile(`^[a-zA-Z0-9.\-_]{2,}@[a-zA-Z]{2,}$`)
)

type UPITransaction struct {
	TransactionID string
	Amount        float64
	UpiID         string
	Currency      string
	Status        string
	PaymentLink   string
	CreatedAt     time.Time
}

type VerificationResult struct {
	Success bool
	Status  string
	Message string
}

type RefundResult struct {
	Success             bool
	RefundTransactionID string
	Message             string
}

type UPIService struct {
	mu           sync.Mutex
	transactions map[string]*UPITransaction
}

func NewUPIService() *UPIService {
	return &UPIService{
		transactions: make(map[string]*UPITransaction),
	}
}

func (s *UPIService) IsValidUPIID(upiID string) bool {
	return upiIDPattern.MatchString(upiID)
}

func (s *UPIService) GeneratePaymentLink(transactionID string, amount float64, upiID, currency string) *UPITransaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	txn := &UPITransaction{
		TransactionID: transactionID,
		Amount:        amount,
		UpiID:         upiID,
		Currency:      currency,
		Status:        upiStatusInitiated,
		PaymentLink: fmt.Sprintf("upi://pay?pa=%s&am=%.2f&cu=%s&tr=%s",
			upiID, amount, currency, transactionID),
		CreatedAt: time.Now(),
	}
	s.transactions[transactionID] = txn
	return txn
}

// VerifyPayment resolves an INITIATED transaction to SUCCESS or FAILED.
// The simulator succeeds ~90% of the time.
func (s *UPIService) VerifyPayment(transactionID string) VerificationResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	txn, ok := s.transactions[transactionID]
	if !ok {
		return VerificationResult{
			Success: false,
			Status:  "INVALID",
			Message: "Transaction not found",
		}
	}

	if txn.Status != upiStatusInitiated {
		return VerificationResult{
			Success: txn.Status == upiStatusSuccess,
			Status:  txn.Status,
			Message: "Transaction already resolved",
		}
	}

	if rand.Intn(10) < 9 {
		txn.Status = upiStatusSuccess
		return VerificationResult{
			Success: true,
			Status:  upiStatusSuccess,
			Message: "Payment verified successfully",
		}
	}

	txn.Status = upiStatusFailed
	return VerificationResult{
		Success: false,
		Status:  upiStatusFailed,
		Message: "Payment verification failed",
	}
}

// ProcessCallback applies an asynchronous gateway status update.
func (s *UPIService) ProcessCallback(transactionID, status string) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp := map[string]any{
		"acknowledged":  true,
		"transactionId": transactionID,
	}

	txn, ok := s.transactions[transactionID]
	if !ok {
		resp["updated"] = false
		resp["message"] = "Transaction not found"
		return resp
	}

	txn.Status = status
	resp["updated"] = true
	return resp
}

func (s *UPIService) InitiateRefund(transactionID string, amount float64) RefundResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	txn, ok := s.transactions[transactionID]
	if !ok {
		return RefundResult{Success: false, Message: "Transaction not found"}
	}
	if txn.Status != upiStatusSuccess {
		return RefundResult{Success: false, Message: "Can only refund successful transactions"}
	}

	txn.Status = upiStatusRefunded
	return RefundResult{
		Success:             true,
		RefundTransactionID: "RFD-" + transactionID,
		Message:             fmt.Sprintf("Refund of %.2f initiated", amount),
	}
}

func (s *UPIService) GetTransaction(transactionID string) (*UPITransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txn, ok := s.transactions[transactionID]
	if !ok {
		return nil, ErrTransactionNotFound
	}
	cp := *txn
	return &cp, nil
}
