package services

import (
	"errors"

	"github.com/freelancenexus/nexus-go/src/dto"
	"github.com/freelancenexus/nexus-go/src/models"
	"github.com/freelancenexus/nexus-go/src/mq"
	"github.com/freelancenexus/nexus-go/src/repositories"
)

var (
	ErrProposalNotFound   = errors.New("proposal not found")
	ErrDuplicateProposal  = errors.New("freelancer already submitted a proposal for this project")
	ErrProposalNotPending = errors.New("proposal is no longer pending")
)

// ProposalRanker scores the pending proposals of a project. Failures
// must be absorbed by the caller, never surfaced to clients.
type ProposalRanker interface {
	RankProposalsForProject(projectID uint) ([]dto.RankedProposal, error)
}

type ProposalService struct {
	Repos  *repositories.Repos
	Events EventPublisher
	Ranker ProposalRanker
}

func NewProposalService(repos *repositories.Repos, events EventPublisher, ranker ProposalRanker) *ProposalService {
	return &ProposalService{
		Repos:  repos,
		Events: events,
		Ranker: ranker,
	}
}

func (s *ProposalService) SubmitProposal(projectID, freelancerID uint, input dto.SubmitProposalDTO) (models.Proposal, error) {
	project, err := s.Repos.Project.GetByID(projectID)
	if err != nil {
		return models.Proposal{}, asNotFound(err, ErrProjectNotFound)
	}
	if project.Status != models.ProjectStatusOpen {
		return models.Proposal{}, ErrProjectNotOpen
	}

	exists, err := s.Repos.Proposal.ExistsByProjectAndFreelancer(projectID, freelancerID)
	if err != nil {
		return models.Proposal{}, err
	}
	if exists {
		return models.Proposal{}, ErrDuplicateProposal
	}

	proposal := models.Proposal{
		ProjectID:      projectID,
		FreelancerID:   freelancerID,
		CoverLetter:    input.CoverLetter,
		ProposedBudget: input.ProposedBudget,
		DeliveryDays:   input.DeliveryDays,
		Status:         models.ProposalStatusPending,
	}

	if err := s.Repos.Proposal.Create(&proposal); err != nil {
		return models.Proposal{}, err
	}

	publishEvent(s.Events, mq.RoutingKeyProposalSubmitted, mq.ProposalSubmittedEvent{
		ProposalID:   proposal.ID,
		ProjectID:    project.ID,
		ClientID:     project.ClientID,
		FreelancerID: proposal.FreelancerID,
		ProjectTitle: project.Title,
	})

	return proposal, nil
}

// AcceptProposal marks the target ACCEPTED, rejects every other pending
// proposal on the same project and moves the project to IN_PROGRESS.
// The whole update runs in one database transaction; events go out only
// after it commits.
func (s *ProposalService) AcceptProposal(id uint) (models.Proposal, error) {
	var (
		accepted models.Proposal
		losers   []models.Proposal
		project  models.Project
	)

	err := s.Repos.Tx.InTx(func(r *repositories.Repos) error {
		proposal, err := r.Proposal.GetByID(id)
		if err != nil {
			return asNotFound(err, ErrProposalNotFound)
		}
		if proposal.Status != models.ProposalStatusPending {
			return ErrProposalNotPending
		}

		// Row lock on the project: concurrent accepts serialize here,
		// and the loser observes IN_PROGRESS once the winner commits.
		project, err = r.Project.GetByIDForUpdate(proposal.ProjectID)
		if err != nil {
			return asNotFound(err, ErrProjectNotFound)
		}
		if project.Status != models.ProjectStatusOpen {
			return ErrProjectNotOpen
		}

		pending, err := r.Proposal.ListByProjectAndStatus(proposal.ProjectID, models.ProposalStatusPending)
		if err != nil {
			return err
		}

		targetPending := false
		for i := range pending {
			p := pending[i]
			if p.ID == proposal.ID {
				p.Status = models.ProposalStatusAccepted
				accepted = p
				targetPending = true
			} else {
				p.Status = models.ProposalStatusRejected
				losers = append(losers, p)
			}
			if err := r.Proposal.Update(&p); err != nil {
				return err
			}
		}
		// The target left the pending set between the first read and
		// the locked one (a concurrent reject).
		if !targetPending {
			return ErrProposalNotPending
		}

		project.Status = models.ProjectStatusInProgress
		project.AssignedFreelancer = &proposal.FreelancerID
		return r.Project.Update(&project)
	})
	if err != nil {
		return models.Proposal{}, err
	}

	publishEvent(s.Events, mq.RoutingKeyProposalAccepted, mq.ProposalAcceptedEvent{
		ProposalID:   accepted.ID,
		ProjectID:    project.ID,
		FreelancerID: accepted.FreelancerID,
		ProjectTitle: project.Title,
	})
	for _, loser := range losers {
		publishEvent(s.Events, mq.RoutingKeyProposalRejected, mq.ProposalRejectedEvent{
			ProposalID:   loser.ID,
			ProjectID:    project.ID,
			FreelancerID: loser.FreelancerID,
			ProjectTitle: project.Title,
		})
	}

	return accepted, nil
}

// RejectProposal is terminal for the target only; other proposals on
// the project are untouched.
func (s *ProposalService) RejectProposal(id uint) (models.Proposal, error) {
	proposal, err := s.Repos.Proposal.GetByID(id)
	if err != nil {
		return models.Proposal{}, asNotFound(err, ErrProposalNotFound)
	}
	if proposal.Status != models.ProposalStatusPending {
		return models.Proposal{}, ErrProposalNotPending
	}

	proposal.Status = models.ProposalStatusRejected
	if err := s.Repos.Proposal.Update(&proposal); err != nil {
		return models.Proposal{}, err
	}

	title := ""
	if project, err := s.Repos.Project.GetByID(proposal.ProjectID); err == nil {
		title = project.Title
	}
	publishEvent(s.Events, mq.RoutingKeyProposalRejected, mq.ProposalRejectedEvent{
		ProposalID:   proposal.ID,
		ProjectID:    proposal.ProjectID,
		FreelancerID: proposal.FreelancerID,
		ProjectTitle: title,
	})

	return proposal, nil
}

func (s *ProposalService) GetProposal(id uint) (models.Proposal, error) {
	proposal, err := s.Repos.Proposal.GetByID(id)
	if err != nil {
		return models.Proposal{}, asNotFound(err, ErrProposalNotFound)
	}
	return proposal, nil
}

func (s *ProposalService) GetProposalsByProject(projectID uint) ([]models.Proposal, error) {
	if _, err := s.Repos.Project.GetByID(projectID); err != nil {
		return nil, asNotFound(err, ErrProjectNotFound)
	}
	return s.Repos.Proposal.ListByProject(projectID)
}

func (s *ProposalService) GetProposalsByFreelancer(freelancerID uint) ([]models.Proposal, error) {
	return s.Repos.Proposal.ListByFreelancer(freelancerID)
}

// GetRankedProposals delegates to the AI ranker. Any ranker failure
// degrades to an empty result.
func (s *ProposalService) GetRankedProposals(projectID uint) []dto.RankedProposal {
	if s.Ranker == nil {
		return []dto.RankedProposal{}
	}
	ranked, err := s.Ranker.RankProposalsForProject(projectID)
	if err != nil || ranked == nil {
		return []dto.RankedProposal{}
	}
	return ranked
}
