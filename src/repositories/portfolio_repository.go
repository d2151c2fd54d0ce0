package repositories

import (
	"gorm.io/gorm"

	"github.com/freelancenexus/nexus-go/src/models"
)

type PortfolioRepo interface {
	Create(item *models.PortfolioItem) error
	GetByID(id uint) (models.PortfolioItem, error)
	ListByProfile(profileID uint) ([]models.PortfolioItem, error)
	Update(item *models.PortfolioItem) error
	Delete(id uint) error
}

type DBPortfolioRepo struct {
	db *gorm.DB
}

func (r *DBPortfolioRepo) Create(item *models.PortfolioItem) error {
	return r.db.Create(item).Error
}

func (r *DBPortfolioRepo) GetByID(id uint) (models.PortfolioItem, error) {
	var item models.PortfolioItem
	err := r.db.First(&item, id).Error
	return item, err
}

func (r *DBPortfolioRepo) ListByProfile(profileID uint) ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	err := r.db.Where("profile_id = ?", profileID).Order("created_at desc").Find(&items).Error
	return items, err
}

func (r *DBPortfolioRepo) Update(item *models.PortfolioItem) error {
	return r.db.Save(item).Error
}

func (r *DBPortfolioRepo) Delete(id uint) error {
	return r.db.Delete(&models.PortfolioItem{}, id).Error
}
