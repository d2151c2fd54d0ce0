package repositories

import (
	"gorm.io/gorm"

	"github.com/freelancenexus/nexus-go/src/models"
)

type PaymentRepo interface {
	Create(p *models.Payment) error
	GetByID(id uint) (models.Payment, error)
	GetByTransactionID(transactionID string) (models.Payment, error)
	Update(p *models.Payment) error
	ListByProject(projectID uint) ([]models.Payment, error)
	ListByUser(userID uint) ([]models.Payment, error)
	AddHistory(h *models.PaymentHistory) error
	HistoryByPayment(paymentID uint) ([]models.PaymentHistory, error)
	HistoryByUser(userID uint) ([]models.PaymentHistory, error)
}

type DBPaymentRepo struct {
	db *gorm.DB
}

func (r *DBPaymentRepo) Create(p *models.Payment) error {
	return r.db.Create(p).Error
}

func (r *DBPaymentRepo) GetByID(id uint) (models.Payment, error) {
	var payment models.Payment
	err := r.db.First(&payment, id).Error
	return payment, err
}

func (r *DBPaymentRepo) GetByTransactionID(transactionID string) (models.Payment, error) {
	var payment models.Payment
	err := r.db.Where("transaction_id = ?", transactionID).First(&payment).Error
	return payment, err
}

func (r *DBPaymentRepo) Update(p *models.Payment) error {
	return r.db.Save(p).Error
}

func (r *DBPaymentRepo) ListByProject(projectID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Where("project_id = ?", projectID).Order("created_at desc").Find(&payments).Error
	return payments, err
}

// ListByUser returns payments where the user is payer or payee.
func (r *DBPaymentRepo) ListByUser(userID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Where("payer_id = ? OR payee_id = ?", userID, userID).
		Order("created_at desc").Find(&payments).Error
	return payments, err
}

func (r *DBPaymentRepo) AddHistory(h *models.PaymentHistory) error {
	return r.db.Create(h).Error
}

func (r *DBPaymentRepo) HistoryByPayment(paymentID uint) ([]models.PaymentHistory, error) {
	var history []models.PaymentHistory
	err := r.db.Where("payment_id = ?", paymentID).Order("created_at asc").Find(&history).Error
	return history, err
}

func (r *DBPaymentRepo) HistoryByUser(userID uint) ([]models.PaymentHistory, error) {
	var history []models.PaymentHistory
	err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&history).Error
	return history, err
}
