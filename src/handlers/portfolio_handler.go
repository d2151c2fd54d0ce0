package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freelancenexus/nexus-go/src/dto"
	"github.com/freelancenexus/nexus-go/src/response"
	"github.com/freelancenexus/nexus-go/src/services"
	"github.com/freelancenexus/nexus-go/src/utils"
)

type PortfolioHandler struct {
	svc *services.PortfolioService
}

func NewPortfolioHandler(svc *services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{svc: svc}
}

// CreateItem godoc
// @Summary Add a portfolio item, optionally with a file attachment
// @Tags portfolio
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path uint true "Profile ID"
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param project_url formData string false "Project URL"
// @Param attachment formData file false "Attachment"
// @Success 201 {object} models.PortfolioItem
// @Router /freelancers/{id}/portfolio [post]
func (h *PortfolioHandler) CreateItem(c *gin.Context) {
	profileID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid profile id"})
		return
	}
	var input dto.CreatePortfolioItemDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	fileHeader, err := c.FormFile("attachment")
	if err != nil {
		// No attachment is fine.
		item, err := h.svc.CreateItem(c, profileID, input, nil, 0, "", "")
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, item)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "failed to read attachment"})
		return
	}
	defer file.Close()

	item, err := h.svc.CreateItem(c, profileID, input,
		file, fileHeader.Size, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// GetItems godoc
// @Summary List portfolio items of a freelancer
// @Tags portfolio
// @Produce json
// @Param id path uint true "Profile ID"
// @Success 200 {array} models.PortfolioItem
// @Router /freelancers/{id}/portfolio [get]
func (h *PortfolioHandler) GetItems(c *gin.Context) {
	profileID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid profile id"})
		return
	}
	items, err := h.svc.ListItems(profileID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetItem godoc
// @Summary Get a single portfolio item
// @Tags portfolio
// @Produce json
// @Param id path uint true "Portfolio item ID"
// @Success 200 {object} models.PortfolioItem
// @Failure 404 {object} response.ErrorResponse "Item not found"
// @Router /portfolio/{id} [get]
func (h *PortfolioHandler) GetItem(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid item id"})
		return
	}
	item, err := h.svc.GetItem(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateItem godoc
// @Summary Update a portfolio item
// @Tags portfolio
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Portfolio item ID"
// @Param input body dto.UpdatePortfolioItemDTO true "Fields to update"
// @Success 200 {object} models.PortfolioItem
// @Router /portfolio/{id} [put]
func (h *PortfolioHandler) UpdateItem(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid item id"})
		return
	}
	var input dto.UpdatePortfolioItemDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	item, err := h.svc.UpdateItem(id, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// GetAttachmentURL godoc
// @Summary Get a temporary download link for a portfolio attachment
// @Tags portfolio
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Portfolio item ID"
// @Success 200 {object} response.PortfolioDownloadResponse
// @Failure 404 {object} response.ErrorResponse "Item or attachment not found"
// @Router /portfolio/{id}/download [get]
func (h *PortfolioHandler) GetAttachmentURL(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid item id"})
		return
	}
	url, err := h.svc.AttachmentURL(c, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.PortfolioDownloadResponse{URL: url})
}

// DeleteItem godoc
// @Summary Delete a portfolio item and its attachment
// @Tags portfolio
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Portfolio item ID"
// @Success 200 {object} response.MessageResponse "Item deleted"
// @Router /portfolio/{id} [delete]
func (h *PortfolioHandler) DeleteItem(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid item id"})
		return
	}
	if err := h.svc.DeleteItem(c, id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "portfolio item deleted"})
}
