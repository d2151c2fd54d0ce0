package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/freelancenexus/nexus-go/src/cache"
	"github.com/freelancenexus/nexus-go/src/dto"
	"github.com/freelancenexus/nexus-go/src/logger"
	"github.com/freelancenexus/nexus-go/src/models"
	"github.com/freelancenexus/nexus-go/src/repositories"
)

const rankingCacheTTL = 10 * time.Minute

// AIService wraps the Gemini collaborator. Every entry point degrades
// to a safe empty value when the model, the cache or the database
// misbehaves; errors here never reach the primary business flow.
type AIService struct {
	Repos  *repositories.Repos
	Gemini GeminiClient
	Cache  *cache.Client
}

func NewAIService(repos *repositories.Repos, gemini GeminiClient, c *cache.Client) *AIService {
	return &AIService{
		Repos:  repos,
		Gemini: gemini,
		Cache:  c,
	}
}

func (s *AIService) RankProposalsForProject(projectID uint) ([]dto.RankedProposal, error) {
	if s.Gemini == nil {
		return []dto.RankedProposal{}, nil
	}

	ctx := context.Background()
	cacheKey := fmt.Sprintf("ai:rank:%d", projectID)

	if s.Cache != nil {
		var cached []dto.RankedProposal
		if s.Cache.GetJSON(ctx, cacheKey, &cached) {
			return cached, nil
		}
	}

	project, err := s.Repos.Project.GetByID(projectID)
	if err != nil {
		logger.WithError(err).Warn("AI ranking: project lookup failed, falling back to empty")
		return []dto.RankedProposal{}, nil
	}

	pending, err := s.Repos.Proposal.ListByProjectAndStatus(projectID, models.ProposalStatusPending)
	if err != nil || len(pending) == 0 {
		return []dto.RankedProposal{}, nil
	}

	prompt := buildRankingPrompt(project, pending)
	raw, err := s.Gemini.GenerateJSON(ctx, prompt)
	if err != nil {
		logger.WithError(err).Warn("AI ranking unavailable, falling back to empty")
		return []dto.RankedProposal{}, nil
	}

	var ranked []dto.RankedProposal
	if err := json.Unmarshal(raw, &ranked); err != nil {
		logger.WithError(err).Warn("AI ranking returned unusable JSON, falling back to empty")
		return []dto.RankedProposal{}, nil
	}

	// Drop entries for proposals the model invented.
	valid := ranked[:0]
	known := make(map[uint]bool, len(pending))
	for _, p := range pending {
		known[p.ID] = true
	}
	for _, r := range ranked {
		if known[r.ProposalID] {
			valid = append(valid, r)
		}
	}

	if s.Cache != nil {
		s.Cache.SetJSON(ctx, cacheKey, valid, rankingCacheTTL)
	}
	return valid, nil
}

func (s *AIService) RecommendProjectsForFreelancer(freelancerID uint, skills []string, bio string) []dto.AIRecommendation {
	if s.Gemini == nil {
		return []dto.AIRecommendation{}
	}

	ctx := context.Background()

	open, err := s.Repos.Project.ListOpen()
	if err != nil || len(open) == 0 {
		return []dto.AIRecommendation{}
	}

	cacheKey := fmt.Sprintf("ai:recommend:%d:%s", freelancerID, strings.Join(skills, ","))
	if s.Cache != nil {
		var cached []dto.AIRecommendation
		if s.Cache.GetJSON(ctx, cacheKey, &cached) {
			return cached
		}
	}

	prompt := buildRecommendationPrompt(skills, bio, open)
	raw, err := s.Gemini.GenerateJSON(ctx, prompt)
	if err != nil {
		logger.WithError(err).Warn("AI recommendation unavailable, falling back to empty")
		return []dto.AIRecommendation{}
	}

	var recs []dto.AIRecommendation
	if err := json.Unmarshal(raw, &recs); err != nil {
		return []dto.AIRecommendation{}
	}

	if s.Cache != nil {
		s.Cache.SetJSON(ctx, cacheKey, recs, rankingCacheTTL)
	}
	return recs
}

func (s *AIService) GenerateProjectSummary(projectID uint) dto.ProjectSummary {
	fallback := dto.ProjectSummary{
		ProjectID: projectID,
		Summary:   "Summary generation failed",
	}
	if s.Gemini == nil {
		return fallback
	}

	project, err := s.Repos.Project.GetByID(projectID)
	if err != nil {
		return fallback
	}

	prompt := fmt.Sprintf(
		"Summarize this freelance project in two sentences for a freelancer deciding whether to bid. "+
			"Respond with a JSON object {\"summary\": \"...\"}.\n"+
			"Title: %s\nCategory: %s\nBudget: %.2f-%.2f\nDuration: %d days\nDescription: %s",
		project.Title, project.Category, project.BudgetMin, project.BudgetMax,
		project.DurationDays, project.Description,
	)

	raw, err := s.Gemini.GenerateJSON(context.Background(), prompt)
	if err != nil {
		logger.WithError(err).Warn("AI summary unavailable, using fallback")
		return fallback
	}

	var parsed struct {
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil || parsed.Summary == "" {
		return fallback
	}

	return dto.ProjectSummary{ProjectID: projectID, Summary: parsed.Summary}
}

func buildRankingPrompt(project models.Project, proposals []models.Proposal) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are ranking freelance proposals for the project %q (category %s, budget %.2f-%.2f, %d days).\n",
		project.Title, project.Category, project.BudgetMin, project.BudgetMax, project.DurationDays)
	b.WriteString("Score each proposal from 0 to 100 on fit, price and delivery time. ")
	b.WriteString("Respond ONLY with a JSON array of objects {\"proposal_id\", \"freelancer_id\", \"score\", \"reason\"}, best first.\n\nProposals:\n")
	for _, p := range proposals {
		fmt.Fprintf(&b, "- id=%d freelancer=%d budget=%.2f days=%d cover=%q\n",
			p.ID, p.FreelancerID, p.ProposedBudget, p.DeliveryDays, p.CoverLetter)
	}
	return b.String()
}

func buildRecommendationPrompt(skills []string, bio string, projects []models.Project) string {
	var b strings.Builder
	fmt.Fprintf(&b, "A freelancer with skills [%s]", strings.Join(skills, ", "))
	if bio != "" {
		fmt.Fprintf(&b, " and bio %q", bio)
	}
	b.WriteString(" is looking for work. Rank the open projects below by fit. ")
	b.WriteString("Respond ONLY with a JSON array of objects {\"project_id\", \"title\", \"match_score\", \"reason\"}, best first.\n\nProjects:\n")
	for _, p := range projects {
		fmt.Fprintf(&b, "- id=%d title=%q category=%s skills=%s budget=%.2f-%.2f\n",
			p.ID, p.Title, p.Category, string(p.RequiredSkills), p.BudgetMin, p.BudgetMax)
	}
	return b.String()
}
