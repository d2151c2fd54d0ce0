package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freelancenexus/nexus-go/src/dto"
	"github.com/freelancenexus/nexus-go/src/response"
	"github.com/freelancenexus/nexus-go/src/services"
	"github.com/freelancenexus/nexus-go/src/utils"
)

type FreelancerHandler struct {
	svc *services.FreelancerService
}

func NewFreelancerHandler(svc *services.FreelancerService) *FreelancerHandler {
	return &FreelancerHandler{svc: svc}
}

// CreateProfile godoc
// @Summary Create a freelancer profile
// @Tags freelancers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} models.FreelancerProfile
// @Failure 409 {object} response.ErrorResponse "Profile already exists"
// @Router /freelancers [post]
func (h *FreelancerHandler) CreateProfile(c *gin.Context) {
	var input dto.CreateFreelancerProfileDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	profile, err := h.svc.CreateProfile(input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// GetProfiles godoc
// @Summary List freelancer profiles, optionally filtered by skill
// @Tags freelancers
// @Produce json
// @Param skill query string false "Skill"
// @Success 200 {array} models.FreelancerProfile
// @Router /freelancers [get]
func (h *FreelancerHandler) GetProfiles(c *gin.Context) {
	if skill := c.Query("skill"); skill != "" {
		profiles, err := h.svc.SearchBySkill(skill)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, profiles)
		return
	}

	profiles, err := h.svc.ListProfiles()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// GetProfileByID godoc
// @Summary Get freelancer profile by ID
// @Tags freelancers
// @Produce json
// @Param id path uint true "Profile ID"
// @Success 200 {object} models.FreelancerProfile
// @Failure 404 {object} response.ErrorResponse "Profile not found"
// @Router /freelancers/{id} [get]
func (h *FreelancerHandler) GetProfileByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid profile id"})
		return
	}
	profile, err := h.svc.GetProfile(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetMyProfile godoc
// @Summary Get the caller's freelancer profile
// @Tags freelancers
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.FreelancerProfile
// @Router /freelancers/me [get]
func (h *FreelancerHandler) GetMyProfile(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	profile, err := h.svc.GetProfileByUser(userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Update freelancer profile by ID
// @Tags freelancers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Profile ID"
// @Success 200 {object} models.FreelancerProfile
// @Router /freelancers/{id} [put]
func (h *FreelancerHandler) UpdateProfile(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid profile id"})
		return
	}
	var input dto.UpdateFreelancerProfileDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	profile, err := h.svc.UpdateProfile(id, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// DeleteProfile godoc
// @Summary Delete freelancer profile by ID
// @Tags freelancers
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Profile ID"
// @Success 200 {object} response.MessageResponse "Profile deleted"
// @Router /freelancers/{id} [delete]
func (h *FreelancerHandler) DeleteProfile(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid profile id"})
		return
	}
	if err := h.svc.DeleteProfile(id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "profile deleted"})
}

// AddRating godoc
// @Summary Rate a freelancer for a completed project
// @Tags freelancers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Profile ID"
// @Success 201 {object} models.Rating
// @Failure 409 {object} response.ErrorResponse "Already rated"
// @Router /freelancers/{id}/ratings [post]
func (h *FreelancerHandler) AddRating(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid profile id"})
		return
	}
	var input dto.AddRatingDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	rating, err := h.svc.AddRating(id, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rating)
}

// GetRatings godoc
// @Summary List ratings of a freelancer
// @Tags freelancers
// @Produce json
// @Param id path uint true "Profile ID"
// @Success 200 {array} models.Rating
// @Router /freelancers/{id}/ratings [get]
func (h *FreelancerHandler) GetRatings(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid profile id"})
		return
	}
	ratings, err := h.svc.ListRatings(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ratings)
}
