package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freelancenexus/nexus-go/src/dto"
	"github.com/freelancenexus/nexus-go/src/models"
	"github.com/freelancenexus/nexus-go/src/response"
	"github.com/freelancenexus/nexus-go/src/services"
	"github.com/freelancenexus/nexus-go/src/utils"
)

type ProjectHandler struct {
	svc *services.ProjectService
}

func NewProjectHandler(svc *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// CreateProject godoc
// @Summary Post a new project
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} models.Project
// @Failure 400 {object} response.ErrorResponse "Bad request"
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var input dto.CreateProjectDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	project, err := h.svc.CreateProject(input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// GetProjects godoc
// @Summary List projects, optionally filtered by keyword, status or category
// @Tags projects
// @Produce json
// @Param q query string false "Keyword"
// @Param status query string false "Project status"
// @Param category query string false "Category"
// @Success 200 {array} models.Project
// @Router /projects [get]
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	keyword := c.Query("q")
	status := c.Query("status")
	category := c.Query("category")

	var (
		projects []models.Project
		err      error
	)
	switch {
	case keyword != "" || status != "":
		projects, err = h.svc.SearchProjects(keyword, status)
	case category != "":
		projects, err = h.svc.GetProjectsByCategory(category)
	default:
		projects, err = h.svc.ListProjects()
	}
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetOpenProjects godoc
// @Summary List projects open for proposals
// @Tags projects
// @Produce json
// @Success 200 {array} models.Project
// @Router /projects/open [get]
func (h *ProjectHandler) GetOpenProjects(c *gin.Context) {
	projects, err := h.svc.ListOpenProjects()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetMyProjects godoc
// @Summary List projects posted by the caller
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Project
// @Router /projects/mine [get]
func (h *ProjectHandler) GetMyProjects(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	projects, err := h.svc.GetProjectsByClient(userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetProjectByID godoc
// @Summary Get project by ID
// @Tags projects
// @Produce json
// @Param id path uint true "Project ID"
// @Success 200 {object} models.Project
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProjectByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}
	project, err := h.svc.GetProject(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// UpdateProject godoc
// @Summary Update project by ID
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Project ID"
// @Success 200 {object} models.Project
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}
	var input dto.UpdateProjectDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	project, err := h.svc.UpdateProject(id, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// DeleteProject godoc
// @Summary Delete an open project and its proposals
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Success 200 {object} response.MessageResponse "Project deleted"
// @Failure 400 {object} response.ErrorResponse "Project already in progress"
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}
	if err := h.svc.DeleteProject(id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "project deleted"})
}

// AssignFreelancer godoc
// @Summary Assign a freelancer to an open project
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Param freelancer_id query uint true "Freelancer ID"
// @Success 200 {object} models.Project
// @Failure 400 {object} response.ErrorResponse "Project not open"
// @Router /projects/{id}/assign [put]
func (h *ProjectHandler) AssignFreelancer(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}
	freelancerID, err := utils.ParseQueryUintParam(c, "freelancer_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid freelancer id"})
		return
	}

	project, err := h.svc.AssignFreelancer(id, freelancerID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// CompleteProject godoc
// @Summary Mark an in-progress project as completed
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Success 200 {object} models.Project
// @Router /projects/{id}/complete [put]
func (h *ProjectHandler) CompleteProject(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}
	project, err := h.svc.CompleteProject(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// CancelProject godoc
// @Summary Cancel an open project
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Success 200 {object} models.Project
// @Router /projects/{id}/cancel [put]
func (h *ProjectHandler) CancelProject(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}
	project, err := h.svc.CancelProject(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}
