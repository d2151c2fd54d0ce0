package dto

type InitiatePaymentDTO struct {
	ProjectID uint    `json:"project_id" binding:"required"`
	PayerID   uint    `json:"payer_id" binding:"required"`
	PayeeID   uint    `json:"payee_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Currency  string  `json:"currency"`
	UpiID     string  `json:"upi_id" binding:"required"`
}

type RefundRequestDTO struct {
	Reason string `json:"reason"`
}

type TransactionStatusDTO struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
	Message       string `json:"message"`
	Success       bool   `json:"success"`
}
