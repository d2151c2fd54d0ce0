package services

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"

	"github.com/freelancenexus/nexus-go/src/dto"
	"github.com/freelancenexus/nexus-go/src/models"
	"github.com/freelancenexus/nexus-go/src/mq"
	"github.com/freelancenexus/nexus-go/src/repositories"
)

var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrInvalidBudgetRange  = errors.New("budget minimum cannot exceed maximum")
	ErrDeadlineInPast      = errors.New("deadline must be in the future")
	ErrProjectNotOpen      = errors.New("project is not accepting proposals")
	ErrInvalidProjectState = errors.New("project status does not allow this action")
	ErrProjectNotDeletable = errors.New("only open projects can be deleted")
)

type ProjectService struct {
	Repos  *repositories.Repos
	Events EventPublisher
}

func NewProjectService(repos *repositories.Repos, events EventPublisher) *ProjectService {
	return &ProjectService{
		Repos:  repos,
		Events: events,
	}
}

func (s *ProjectService) CreateProject(input dto.CreateProjectDTO) (models.Project, error) {
	if input.BudgetMin > input.BudgetMax {
		return models.Project{}, ErrInvalidBudgetRange
	}
	if !input.Deadline.After(time.Now()) {
		return models.Project{}, ErrDeadlineInPast
	}

	skills, err := json.Marshal(input.RequiredSkills)
	if err != nil {
		return models.Project{}, err
	}

	project := models.Project{
		ClientID:       input.ClientID,
		Title:          input.Title,
		Description:    input.Description,
		BudgetMin:      input.BudgetMin,
		BudgetMax:      input.BudgetMax,
		RequiredSkills: datatypes.JSON(skills),
		Category:       input.Category,
		DurationDays:   input.DurationDays,
		Deadline:       input.Deadline,
		Status:         models.ProjectStatusOpen,
	}

	if err := s.Repos.Project.Create(&project); err != nil {
		return models.Project{}, err
	}

	publishEvent(s.Events, mq.RoutingKeyProjectCreated, mq.ProjectCreatedEvent{
		ProjectID: project.ID,
		ClientID:  project.ClientID,
		Title:     project.Title,
	})

	return project, nil
}

func (s *ProjectService) GetProject(id uint) (models.Project, error) {
	project, err := s.Repos.Project.GetByID(id)
	if err != nil {
		return models.Project{}, asNotFound(err, ErrProjectNotFound)
	}
	s.fillProposalCount(&project)
	return project, nil
}

func (s *ProjectService) GetProjectsByClient(clientID uint) ([]models.Project, error) {
	projects, err := s.Repos.Project.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	s.fillProposalCounts(projects)
	return projects, nil
}

func (s *ProjectService) ListProjects() ([]models.Project, error) {
	projects, err := s.Repos.Project.List()
	if err != nil {
		return nil, err
	}
	s.fillProposalCounts(projects)
	return projects, nil
}

func (s *ProjectService) ListOpenProjects() ([]models.Project, error) {
	projects, err := s.Repos.Project.ListOpen()
	if err != nil {
		return nil, err
	}
	s.fillProposalCounts(projects)
	return projects, nil
}

func (s *ProjectService) GetProjectsByCategory(category string) ([]models.Project, error) {
	projects, err := s.Repos.Project.ListByCategory(category)
	if err != nil {
		return nil, err
	}
	s.fillProposalCounts(projects)
	return projects, nil
}

func (s *ProjectService) SearchProjects(keyword, status string) ([]models.Project, error) {
	projects, err := s.Repos.Project.Search(keyword, status)
	if err != nil {
		return nil, err
	}
	s.fillProposalCounts(projects)
	return projects, nil
}

func (s *ProjectService) UpdateProject(id uint, input dto.UpdateProjectDTO) (models.Project, error) {
	project, err := s.Repos.Project.GetByID(id)
	if err != nil {
		return models.Project{}, asNotFound(err, ErrProjectNotFound)
	}

	if input.Title != nil {
		project.Title = *input.Title
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.BudgetMin != nil {
		project.BudgetMin = *input.BudgetMin
	}
	if input.BudgetMax != nil {
		project.BudgetMax = *input.BudgetMax
	}
	if project.BudgetMin > project.BudgetMax {
		return models.Project{}, ErrInvalidBudgetRange
	}
	if input.RequiredSkills != nil {
		skills, err := json.Marshal(input.RequiredSkills)
		if err != nil {
			return models.Project{}, err
		}
		project.RequiredSkills = datatypes.JSON(skills)
	}
	if input.Category != nil {
		project.Category = *input.Category
	}
	if input.DurationDays != nil {
		project.DurationDays = *input.DurationDays
	}
	if input.Deadline != nil {
		if !input.Deadline.After(time.Now()) {
			return models.Project{}, ErrDeadlineInPast
		}
		project.Deadline = *input.Deadline
	}

	if err := s.Repos.Project.Update(&project); err != nil {
		return models.Project{}, err
	}
	s.fillProposalCount(&project)
	return project, nil
}

// DeleteProject removes a project and its proposals. Projects that
// already progressed past OPEN keep their record.
func (s *ProjectService) DeleteProject(id uint) error {
	project, err := s.Repos.Project.GetByID(id)
	if err != nil {
		return asNotFound(err, ErrProjectNotFound)
	}
	if project.Status != models.ProjectStatusOpen {
		return ErrProjectNotDeletable
	}

	return s.Repos.Tx.InTx(func(r *repositories.Repos) error {
		if err := r.Proposal.DeleteByProject(id); err != nil {
			return err
		}
		return r.Project.Delete(id)
	})
}

// AssignFreelancer moves an OPEN project to IN_PROGRESS. Reassigning a
// project that already left OPEN is refused.
func (s *ProjectService) AssignFreelancer(projectID, freelancerID uint) (models.Project, error) {
	project, err := s.Repos.Project.GetByID(projectID)
	if err != nil {
		return models.Project{}, asNotFound(err, ErrProjectNotFound)
	}
	if project.Status != models.ProjectStatusOpen {
		return models.Project{}, ErrProjectNotOpen
	}

	project.Status = models.ProjectStatusInProgress
	project.AssignedFreelancer = &freelancerID

	if err := s.Repos.Project.Update(&project); err != nil {
		return models.Project{}, err
	}
	s.fillProposalCount(&project)
	return project, nil
}

func (s *ProjectService) CompleteProject(id uint) (models.Project, error) {
	return s.closeProject(id, models.ProjectStatusInProgress, models.ProjectStatusCompleted)
}

func (s *ProjectService) CancelProject(id uint) (models.Project, error) {
	return s.closeProject(id, models.ProjectStatusOpen, models.ProjectStatusCancelled)
}

func (s *ProjectService) closeProject(id uint, from, to models.ProjectStatus) (models.Project, error) {
	project, err := s.Repos.Project.GetByID(id)
	if err != nil {
		return models.Project{}, asNotFound(err, ErrProjectNotFound)
	}
	if project.Status != from {
		return models.Project{}, ErrInvalidProjectState
	}

	project.Status = to
	if err := s.Repos.Project.Update(&project); err != nil {
		return models.Project{}, err
	}
	s.fillProposalCount(&project)
	return project, nil
}

func (s *ProjectService) fillProposalCount(project *models.Project) {
	count, err := s.Repos.Proposal.CountByProject(project.ID)
	if err == nil {
		project.ProposalCount = int(count)
	}
}

func (s *ProjectService) fillProposalCounts(projects []models.Project) {
	for i := range projects {
		s.fillProposalCount(&projects[i])
	}
}
