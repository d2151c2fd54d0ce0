package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freelancenexus/nexus-go/src/dto"
	"github.com/freelancenexus/nexus-go/src/response"
	"github.com/freelancenexus/nexus-go/src/services"
	"github.com/freelancenexus/nexus-go/src/utils"
)

type ProposalHandler struct {
	svc *services.ProposalService
}

func NewProposalHandler(svc *services.ProposalService) *ProposalHandler {
	return &ProposalHandler{svc: svc}
}

// SubmitProposal godoc
// @Summary Submit a proposal for an open project
// @Tags proposals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Project ID"
// @Success 201 {object} models.Proposal
// @Failure 400 {object} response.ErrorResponse "Project not accepting proposals"
// @Failure 409 {object} response.ErrorResponse "Duplicate proposal"
// @Router /projects/{id}/proposals [post]
func (h *ProposalHandler) SubmitProposal(c *gin.Context) {
	projectID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}
	var input dto.SubmitProposalDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	// The submitter is always the authenticated user.
	freelancerID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	proposal, err := h.svc.SubmitProposal(projectID, freelancerID, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, proposal)
}

// GetProposalsByProject godoc
// @Summary List proposals for a project
// @Tags proposals
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Success 200 {array} models.Proposal
// @Router /projects/{id}/proposals [get]
func (h *ProposalHandler) GetProposalsByProject(c *gin.Context) {
	projectID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}
	proposals, err := h.svc.GetProposalsByProject(projectID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, proposals)
}

// GetProposalByID godoc
// @Summary Get proposal by ID
// @Tags proposals
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Proposal ID"
// @Success 200 {object} models.Proposal
// @Failure 404 {object} response.ErrorResponse "Proposal not found"
// @Router /proposals/{id} [get]
func (h *ProposalHandler) GetProposalByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid proposal id"})
		return
	}
	proposal, err := h.svc.GetProposal(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, proposal)
}

// GetMyProposals godoc
// @Summary List proposals submitted by the caller
// @Tags proposals
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Proposal
// @Router /proposals/mine [get]
func (h *ProposalHandler) GetMyProposals(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	proposals, err := h.svc.GetProposalsByFreelancer(userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, proposals)
}

// AcceptProposal godoc
// @Summary Accept a pending proposal
// @Tags proposals
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Proposal ID"
// @Success 200 {object} models.Proposal
// @Failure 400 {object} response.ErrorResponse "Proposal no longer pending"
// @Router /proposals/{id}/accept [put]
func (h *ProposalHandler) AcceptProposal(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid proposal id"})
		return
	}
	proposal, err := h.svc.AcceptProposal(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, proposal)
}

// RejectProposal godoc
// @Summary Reject a pending proposal
// @Tags proposals
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Proposal ID"
// @Success 200 {object} models.Proposal
// @Failure 400 {object} response.ErrorResponse "Proposal no longer pending"
// @Router /proposals/{id}/reject [put]
func (h *ProposalHandler) RejectProposal(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid proposal id"})
		return
	}
	proposal, err := h.svc.RejectProposal(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, proposal)
}

// GetRankedProposals godoc
// @Summary Rank pending proposals of a project
// @Tags proposals
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Success 200 {array} dto.RankedProposal
// @Router /projects/{id}/proposals/ranked [get]
func (h *ProposalHandler) GetRankedProposals(c *gin.Context) {
	projectID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}
	c.JSON(http.StatusOK, h.svc.GetRankedProposals(projectID))
}
