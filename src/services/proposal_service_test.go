package services_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/freelancenexus/nexus-go/src/dto"
	"github.com/freelancenexus/nexus-go/src/models"
	"github.com/freelancenexus/nexus-go/src/repositories"
	"github.com/freelancenexus/nexus-go/src/repositories/mock_repositories"
	"github.com/freelancenexus/nexus-go/src/services"
)

func setupProposalMocks(t *testing.T) (*services.ProposalService, *mock_repositories.MockProjectRepo, *mock_repositories.MockProposalRepo, *mock_repositories.MockTxRunner) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	projectRepo := mock_repositories.NewMockProjectRepo(ctrl)
	proposalRepo := mock_repositories.NewMockProposalRepo(ctrl)
	tx := mock_repositories.NewMockTxRunner(ctrl)

	repos := &repositories.Repos{
		Project:  projectRepo,
		Proposal: proposalRepo,
		Tx:       tx,
	}
	svc := services.NewProposalService(repos, nil, nil)
	return svc, projectRepo, proposalRepo, tx
}

func TestProposalServiceSubmit(t *testing.T) {
	input := dto.SubmitProposalDTO{
		CoverLetter:    "I have shipped three marketplaces just like this one and can start right away.",
		ProposedBudget: 800,
		DeliveryDays:   10,
	}

	t.Run("submits a pending proposal", func(t *testing.T) {
		svc, projectRepo, proposalRepo, _ := setupProposalMocks(t)

		projectRepo.EXPECT().GetByID(uint(1)).Return(models.Project{ID: 1, ClientID: 3, Status: models.ProjectStatusOpen}, nil)
		proposalRepo.EXPECT().ExistsByProjectAndFreelancer(uint(1), uint(9)).Return(false, nil)
		proposalRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.Proposal) error {
			p.ID = 11
			return nil
		})

		proposal, err := svc.SubmitProposal(1, 9, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if proposal.Status != models.ProposalStatusPending {
			t.Fatalf("expected PENDING, got %s", proposal.Status)
		}
		if proposal.ProjectID != 1 || proposal.FreelancerID != 9 {
			t.Fatal("proposal not bound to the project and freelancer")
		}
	})

	t.Run("refuses a closed project", func(t *testing.T) {
		svc, projectRepo, _, _ := setupProposalMocks(t)

		projectRepo.EXPECT().GetByID(uint(1)).Return(models.Project{ID: 1, Status: models.ProjectStatusInProgress}, nil)

		if _, err := svc.SubmitProposal(1, 9, input); !errors.Is(err, services.ErrProjectNotOpen) {
			t.Fatalf("expected ErrProjectNotOpen, got %v", err)
		}
	})

	t.Run("one proposal per freelancer per project", func(t *testing.T) {
		svc, projectRepo, proposalRepo, _ := setupProposalMocks(t)

		projectRepo.EXPECT().GetByID(uint(1)).Return(models.Project{ID: 1, Status: models.ProjectStatusOpen}, nil)
		proposalRepo.EXPECT().ExistsByProjectAndFreelancer(uint(1), uint(9)).Return(true, nil)

		if _, err := svc.SubmitProposal(1, 9, input); !errors.Is(err, services.ErrDuplicateProposal) {
			t.Fatalf("expected ErrDuplicateProposal, got %v", err)
		}
	})
}

func TestProposalServiceAccept(t *testing.T) {
	t.Run("accepting rejects the other pending proposals", func(t *testing.T) {
		svc, projectRepo, proposalRepo, tx := setupProposalMocks(t)

		tx.EXPECT().InTx(gomock.Any()).DoAndReturn(func(fn func(*repositories.Repos) error) error {
			return fn(&repositories.Repos{Project: projectRepo, Proposal: proposalRepo})
		})
		proposalRepo.EXPECT().GetByID(uint(20)).Return(models.Proposal{
			ID: 20, ProjectID: 1, FreelancerID: 9, Status: models.ProposalStatusPending,
		}, nil)
		projectRepo.EXPECT().GetByIDForUpdate(uint(1)).Return(models.Project{ID: 1, Status: models.ProjectStatusOpen}, nil)
		proposalRepo.EXPECT().ListByProjectAndStatus(uint(1), models.ProposalStatusPending).Return([]models.Proposal{
			{ID: 20, ProjectID: 1, FreelancerID: 9, Status: models.ProposalStatusPending},
			{ID: 21, ProjectID: 1, FreelancerID: 10, Status: models.ProposalStatusPending},
		}, nil)

		var statuses []models.ProposalStatus
		proposalRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(p *models.Proposal) error {
			statuses = append(statuses, p.Status)
			return nil
		}).Times(2)
		projectRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(p *models.Project) error {
			if p.Status != models.ProjectStatusInProgress {
				t.Fatalf("expected IN_PROGRESS, got %s", p.Status)
			}
			if p.AssignedFreelancer == nil || *p.AssignedFreelancer != 9 {
				t.Fatal("expected assigned freelancer 9")
			}
			return nil
		})

		accepted, err := svc.AcceptProposal(20)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if accepted.Status != models.ProposalStatusAccepted {
			t.Fatalf("expected ACCEPTED, got %s", accepted.Status)
		}
		if len(statuses) != 2 || statuses[0] != models.ProposalStatusAccepted || statuses[1] != models.ProposalStatusRejected {
			t.Fatalf("unexpected status sequence: %v", statuses)
		}
	})

	t.Run("only pending proposals can be accepted", func(t *testing.T) {
		svc, _, proposalRepo, tx := setupProposalMocks(t)

		tx.EXPECT().InTx(gomock.Any()).DoAndReturn(func(fn func(*repositories.Repos) error) error {
			return fn(&repositories.Repos{Proposal: proposalRepo})
		})
		proposalRepo.EXPECT().GetByID(uint(20)).Return(models.Proposal{
			ID: 20, Status: models.ProposalStatusRejected,
		}, nil)

		if _, err := svc.AcceptProposal(20); !errors.Is(err, services.ErrProposalNotPending) {
			t.Fatalf("expected ErrProposalNotPending, got %v", err)
		}
	})

	t.Run("a concurrent accept already closed the project", func(t *testing.T) {
		svc, projectRepo, proposalRepo, tx := setupProposalMocks(t)

		tx.EXPECT().InTx(gomock.Any()).DoAndReturn(func(fn func(*repositories.Repos) error) error {
			return fn(&repositories.Repos{Project: projectRepo, Proposal: proposalRepo})
		})
		proposalRepo.EXPECT().GetByID(uint(20)).Return(models.Proposal{
			ID: 20, ProjectID: 1, Status: models.ProposalStatusPending,
		}, nil)
		projectRepo.EXPECT().GetByIDForUpdate(uint(1)).Return(models.Project{ID: 1, Status: models.ProjectStatusInProgress}, nil)

		if _, err := svc.AcceptProposal(20); !errors.Is(err, services.ErrProjectNotOpen) {
			t.Fatalf("expected ErrProjectNotOpen, got %v", err)
		}
	})

	t.Run("locks the project row before deciding", func(t *testing.T) {
		svc, projectRepo, proposalRepo, tx := setupProposalMocks(t)

		tx.EXPECT().InTx(gomock.Any()).DoAndReturn(func(fn func(*repositories.Repos) error) error {
			return fn(&repositories.Repos{Project: projectRepo, Proposal: proposalRepo})
		})
		proposalRepo.EXPECT().GetByID(uint(20)).Return(models.Proposal{
			ID: 20, ProjectID: 1, FreelancerID: 9, Status: models.ProposalStatusPending,
		}, nil)
		// The plain read must never be used inside the accept
		// transaction; the locking variant is what serializes
		// concurrent accepts on the project row.
		projectRepo.EXPECT().GetByID(gomock.Any()).Times(0)
		projectRepo.EXPECT().GetByIDForUpdate(uint(1)).Return(models.Project{ID: 1, Status: models.ProjectStatusOpen}, nil)
		proposalRepo.EXPECT().ListByProjectAndStatus(uint(1), models.ProposalStatusPending).Return([]models.Proposal{
			{ID: 20, ProjectID: 1, FreelancerID: 9, Status: models.ProposalStatusPending},
		}, nil)
		proposalRepo.EXPECT().Update(gomock.Any()).Return(nil)
		projectRepo.EXPECT().Update(gomock.Any()).Return(nil)

		if _, err := svc.AcceptProposal(20); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("target rejected between the first read and the lock", func(t *testing.T) {
		svc, projectRepo, proposalRepo, tx := setupProposalMocks(t)

		tx.EXPECT().InTx(gomock.Any()).DoAndReturn(func(fn func(*repositories.Repos) error) error {
			return fn(&repositories.Repos{Project: projectRepo, Proposal: proposalRepo})
		})
		proposalRepo.EXPECT().GetByID(uint(20)).Return(models.Proposal{
			ID: 20, ProjectID: 1, Status: models.ProposalStatusPending,
		}, nil)
		projectRepo.EXPECT().GetByIDForUpdate(uint(1)).Return(models.Project{ID: 1, Status: models.ProjectStatusOpen}, nil)
		proposalRepo.EXPECT().ListByProjectAndStatus(uint(1), models.ProposalStatusPending).Return([]models.Proposal{
			{ID: 21, ProjectID: 1, FreelancerID: 10, Status: models.ProposalStatusPending},
		}, nil)
		proposalRepo.EXPECT().Update(gomock.Any()).Return(nil)

		if _, err := svc.AcceptProposal(20); !errors.Is(err, services.ErrProposalNotPending) {
			t.Fatalf("expected ErrProposalNotPending, got %v", err)
		}
	})
}

func TestProposalServiceReject(t *testing.T) {
	t.Run("rejects a pending proposal", func(t *testing.T) {
		svc, projectRepo, proposalRepo, _ := setupProposalMocks(t)

		proposalRepo.EXPECT().GetByID(uint(30)).Return(models.Proposal{
			ID: 30, ProjectID: 1, FreelancerID: 9, Status: models.ProposalStatusPending,
		}, nil)
		proposalRepo.EXPECT().Update(gomock.Any()).Return(nil)
		projectRepo.EXPECT().GetByID(uint(1)).Return(models.Project{ID: 1, Title: "Landing page"}, nil)

		proposal, err := svc.RejectProposal(30)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if proposal.Status != models.ProposalStatusRejected {
			t.Fatalf("expected REJECTED, got %s", proposal.Status)
		}
	})

	t.Run("rejection is terminal", func(t *testing.T) {
		svc, _, proposalRepo, _ := setupProposalMocks(t)

		proposalRepo.EXPECT().GetByID(uint(30)).Return(models.Proposal{
			ID: 30, Status: models.ProposalStatusAccepted,
		}, nil)

		if _, err := svc.RejectProposal(30); !errors.Is(err, services.ErrProposalNotPending) {
			t.Fatalf("expected ErrProposalNotPending, got %v", err)
		}
	})
}

type stubRanker struct {
	ranked []dto.RankedProposal
	err    error
}

func (s stubRanker) RankProposalsForProject(projectID uint) ([]dto.RankedProposal, error) {
	return s.ranked, s.err
}

func TestProposalServiceRanking(t *testing.T) {
	t.Run("no ranker configured", func(t *testing.T) {
		svc, _, _, _ := setupProposalMocks(t)

		if ranked := svc.GetRankedProposals(1); len(ranked) != 0 {
			t.Fatalf("expected empty ranking, got %d entries", len(ranked))
		}
	})

	t.Run("ranker failure degrades to empty", func(t *testing.T) {
		svc, _, _, _ := setupProposalMocks(t)
		svc.Ranker = stubRanker{err: errors.New("model unavailable")}

		if ranked := svc.GetRankedProposals(1); ranked == nil || len(ranked) != 0 {
			t.Fatalf("expected empty ranking, got %v", ranked)
		}
	})

	t.Run("passes the ranker result through", func(t *testing.T) {
		svc, _, _, _ := setupProposalMocks(t)
		svc.Ranker = stubRanker{ranked: []dto.RankedProposal{{ProposalID: 20, Score: 87}}}

		ranked := svc.GetRankedProposals(1)
		if len(ranked) != 1 || ranked[0].ProposalID != 20 {
			t.Fatalf("unexpected ranking: %v", ranked)
		}
	})
}
