package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freelancenexus/nexus-go/src/response"
	"github.com/freelancenexus/nexus-go/src/services"
	"github.com/freelancenexus/nexus-go/src/utils"
)

type AIHandler struct {
	svc        *services.AIService
	freelancer *services.FreelancerService
}

func NewAIHandler(svc *services.AIService, freelancer *services.FreelancerService) *AIHandler {
	return &AIHandler{svc: svc, freelancer: freelancer}
}

// RecommendProjects godoc
// @Summary Recommend open projects matching a freelancer profile
// @Tags ai
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Freelancer profile ID"
// @Success 200 {array} dto.AIRecommendation
// @Router /recommendations/{id} [get]
func (h *AIHandler) RecommendProjects(c *gin.Context) {
	profileID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid profile id"})
		return
	}

	profile, err := h.freelancer.GetProfile(profileID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	recommendations := h.svc.RecommendProjectsForFreelancer(profile.ID, profile.SkillList(), profile.Bio)
	c.JSON(http.StatusOK, recommendations)
}

// SummarizeProject godoc
// @Summary Generate a short AI summary of a project
// @Tags ai
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Success 200 {object} dto.ProjectSummary
// @Router /projects/{id}/summary [get]
func (h *AIHandler) SummarizeProject(c *gin.Context) {
	projectID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}
	c.JSON(http.StatusOK, h.svc.GenerateProjectSummary(projectID))
}
