package models

import "time"

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusInitiated PaymentStatus = "INITIATED"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

type Payment struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	ProjectID     uint          `gorm:"not null;index" json:"project_id"`
	PayerID       uint          `gorm:"not null;index" json:"payer_id"`
	PayeeID       uint          `gorm:"not null;index" json:"payee_id"`
	Amount        float64       `gorm:"not null" json:"amount"`
	Currency      string        `gorm:"size:3;not null;default:INR" json:"currency"`
	TransactionID string        `gorm:"size:64;not null;uniqueIndex" json:"transaction_id"`
	UpiID         string        `gorm:"size:100" json:"upi_id"`
	PaymentLink   string        `gorm:"size:300" json:"payment_link"`
	Status        PaymentStatus `gorm:"size:20;not null;default:PENDING;index" json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// PaymentHistory is an append-only log of transaction state changes.
type PaymentHistory struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PaymentID     uint      `gorm:"not null;index" json:"payment_id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	TransactionID string    `gorm:"size:64;not null" json:"transaction_id"`
	Action        string    `gorm:"size:30;not null" json:"action"`
	Status        string    `gorm:"size:20;not null" json:"status"`
	Amount        float64   `gorm:"not null" json:"amount"`
	Detail        string    `gorm:"size:300" json:"detail"`
	CreatedAt     time.Time `json:"created_at"`
}
