package repositories

import (
	"gorm.io/gorm"

	"github.com/freelancenexus/nexus-go/src/models"
)

type UserRepo interface {
	Create(u *models.User) error
	GetByID(id uint) (models.User, error)
	GetByUsername(username string) (models.User, error)
	GetByEmail(email string) (models.User, error)
	List() ([]models.User, error)
	Update(u *models.User) error
	Delete(id uint) error
}

type DBUserRepo struct {
	db *gorm.DB
}

func (r *DBUserRepo) Create(u *models.User) error {
	return r.db.Create(u).Error
}

func (r *DBUserRepo) GetByID(id uint) (models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	return user, err
}

func (r *DBUserRepo) GetByUsername(username string) (models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	return user, err
}

func (r *DBUserRepo) GetByEmail(email string) (models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	return user, err
}

func (r *DBUserRepo) List() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("id asc").Find(&users).Error
	return users, err
}

func (r *DBUserRepo) Update(u *models.User) error {
	return r.db.Save(u).Error
}

func (r *DBUserRepo) Delete(id uint) error {
	return r.db.Delete(&models.User{}, id).Error
}
