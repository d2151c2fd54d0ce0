package repositories

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/freelancenexus/nexus-go/src/models"
)

type ProjectRepo interface {
	Create(p *models.Project) error
	GetByID(id uint) (models.Project, error)
	GetByIDForUpdate(id uint) (models.Project, error)
	Update(p *models.Project) error
	Delete(id uint) error
	List() ([]models.Project, error)
	ListByClient(clientID uint) ([]models.Project, error)
	ListOpen() ([]models.Project, error)
	ListByCategory(category string) ([]models.Project, error)
	Search(keyword, status string) ([]models.Project, error)
}

type DBProjectRepo struct {
	db *gorm.DB
}

func (r *DBProjectRepo) Create(p *models.Project) error {
	return r.db.Create(p).Error
}

func (r *DBProjectRepo) GetByID(id uint) (models.Project, error) {
	var project models.Project
	err := r.db.First(&project, id).Error
	return project, err
}

// GetByIDForUpdate takes a row lock so concurrent writers serialize on
// the project. Only meaningful inside a transaction.
func (r *DBProjectRepo) GetByIDForUpdate(id uint) (models.Project, error) {
	var project models.Project
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&project, id).Error
	return project, err
}

func (r *DBProjectRepo) Update(p *models.Project) error {
	return r.db.Save(p).Error
}

func (r *DBProjectRepo) Delete(id uint) error {
	return r.db.Delete(&models.Project{}, id).Error
}

func (r *DBProjectRepo) List() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Order("created_at desc").Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) ListByClient(clientID uint) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Where("client_id = ?", clientID).Order("created_at desc").Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) ListOpen() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Where("status = ?", models.ProjectStatusOpen).Order("created_at desc").Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) ListByCategory(category string) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Where("category = ?", category).Order("created_at desc").Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) Search(keyword, status string) ([]models.Project, error) {
	var projects []models.Project
	q := r.db.Where("title ILIKE ? OR description ILIKE ?", "%"+keyword+"%", "%"+keyword+"%")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Order("created_at desc").Find(&projects).Error
	return projects, err
}
