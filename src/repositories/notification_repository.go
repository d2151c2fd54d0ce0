package repositories

import (
	"gorm.io/gorm"

	"github.com/freelancenexus/nexus-go/src/models"
)

type NotificationRepo interface {
	Create(n *models.Notification) error
	GetByID(id uint) (models.Notification, error)
	ListByRecipient(recipientID uint) ([]models.Notification, error)
	CountUnread(recipientID uint) (int64, error)
	MarkRead(id uint) error
	MarkAllRead(recipientID uint) error
}

type DBNotificationRepo struct {
	db *gorm.DB
}

func (r *DBNotificationRepo) Create(n *models.Notification) error {
	return r.db.Create(n).Error
}

func (r *DBNotificationRepo) GetByID(id uint) (models.Notification, error) {
	var n models.Notification
	err := r.db.First(&n, id).Error
	return n, err
}

func (r *DBNotificationRepo) ListByRecipient(recipientID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("recipient_id = ?", recipientID).Order("created_at desc").Find(&notifications).Error
	return notifications, err
}

func (r *DBNotificationRepo) CountUnread(recipientID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND read = false", recipientID).Count(&count).Error
	return count, err
}

func (r *DBNotificationRepo) MarkRead(id uint) error {
	return r.db.Model(&models.Notification{}).Where("id = ?", id).Update("read", true).Error
}

func (r *DBNotificationRepo) MarkAllRead(recipientID uint) error {
	return r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND read = false", recipientID).Update("read", true).Error
}
