package repositories

import (
	"gorm.io/gorm"

	"github.com/freelancenexus/nexus-go/src/models"
)

type FreelancerRepo interface {
	Create(p *models.FreelancerProfile) error
	GetByID(id uint) (models.FreelancerProfile, error)
	GetByUserID(userID uint) (models.FreelancerProfile, error)
	Update(p *models.FreelancerProfile) error
	Delete(id uint) error
	List() ([]models.FreelancerProfile, error)
	SearchBySkill(skill string) ([]models.FreelancerProfile, error)
}

type DBFreelancerRepo struct {
	db *gorm.DB
}

func (r *DBFreelancerRepo) Create(p *models.FreelancerProfile) error {
	return r.db.Create(p).Error
}

func (r *DBFreelancerRepo) GetByID(id uint) (models.FreelancerProfile, error) {
	var profile models.FreelancerProfile
	err := r.db.First(&profile, id).Error
	return profile, err
}

func (r *DBFreelancerRepo) GetByUserID(userID uint) (models.FreelancerProfile, error) {
	var profile models.FreelancerProfile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	return profile, err
}

func (r *DBFreelancerRepo) Update(p *models.FreelancerProfile) error {
	return r.db.Save(p).Error
}

func (r *DBFreelancerRepo) Delete(id uint) error {
	return r.db.Delete(&models.FreelancerProfile{}, id).Error
}

func (r *DBFreelancerRepo) List() ([]models.FreelancerProfile, error) {
	var profiles []models.FreelancerProfile
	err := r.db.Order("id asc").Find(&profiles).Error
	return profiles, err
}

func (r *DBFreelancerRepo) SearchBySkill(skill string) ([]models.FreelancerProfile, error) {
	var profiles []models.FreelancerProfile
	err := r.db.Where("skills::text ILIKE ?", "%"+skill+"%").Find(&profiles).Error
	return profiles, err
}
