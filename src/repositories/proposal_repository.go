package repositories

import (
	"gorm.io/gorm"

	"github.com/freelancenexus/nexus-go/src/models"
)

type ProposalRepo interface {
	Create(p *models.Proposal) error
	GetByID(id uint) (models.Proposal, error)
	Update(p *models.Proposal) error
	ListByProject(projectID uint) ([]models.Proposal, error)
	ListByProjectAndStatus(projectID uint, status models.ProposalStatus) ([]models.Proposal, error)
	ListByFreelancer(freelancerID uint) ([]models.Proposal, error)
	ExistsByProjectAndFreelancer(projectID, freelancerID uint) (bool, error)
	CountByProject(projectID uint) (int64, error)
	DeleteByProject(projectID uint) error
}

type DBProposalRepo struct {
	db *gorm.DB
}

func (r *DBProposalRepo) Create(p *models.Proposal) error {
	return r.db.Create(p).Error
}

func (r *DBProposalRepo) GetByID(id uint) (models.Proposal, error) {
	var proposal models.Proposal
	err := r.db.First(&proposal, id).Error
	return proposal, err
}

func (r *DBProposalRepo) Update(p *models.Proposal) error {
	return r.db.Save(p).Error
}

func (r *DBProposalRepo) ListByProject(projectID uint) ([]models.Proposal, error) {
	var proposals []models.Proposal
	err := r.db.Where("project_id = ?", projectID).Order("created_at asc").Find(&proposals).Error
	return proposals, err
}

func (r *DBProposalRepo) ListByProjectAndStatus(projectID uint, status models.ProposalStatus) ([]models.Proposal, error) {
	var proposals []models.Proposal
	err := r.db.Where("project_id = ? AND status = ?", projectID, status).
		Order("created_at asc").Find(&proposals).Error
	return proposals, err
}

func (r *DBProposalRepo) ListByFreelancer(freelancerID uint) ([]models.Proposal, error) {
	var proposals []models.Proposal
	err := r.db.Where("freelancer_id = ?", freelancerID).Order("created_at desc").Find(&proposals).Error
	return proposals, err
}

func (r *DBProposalRepo) ExistsByProjectAndFreelancer(projectID, freelancerID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Proposal{}).
		Where("project_id = ? AND freelancer_id = ?", projectID, freelancerID).
		Count(&count).Error
	return count > 0, err
}

func (r *DBProposalRepo) CountByProject(projectID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Proposal{}).Where("project_id = ?", projectID).Count(&count).Error
	return count, err
}

func (r *DBProposalRepo) DeleteByProject(projectID uint) error {
	return r.db.Where("project_id = ?", projectID).Delete(&models.Proposal{}).Error
}
