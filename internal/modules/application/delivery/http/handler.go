package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shelterworks/petadopt/internal/modules/application/dto"
	applicationService "github.com/shelterworks/petadopt/internal/modules/application/service"
	"github.com/shelterworks/petadopt/pkg/response"
	"github.com/shelterworks/petadopt/pkg/validator"
)

type ApplicationHandler struct {
	service applicationService.ApplicationService
}

func NewApplicationHandler(service applicationService.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var input dto.CreateApplicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	app, err := h.service.CreateApplication(c.Request.Context(), userID, input.PetID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, app)
}

func (h *ApplicationHandler) GetApplications(c *gin.Context) {
	var query dto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	filter := dto.ListFilter{Status: query.Status}
	if query.PetID != "" {
		id, err := uuid.Parse(query.PetID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pet id"})
			return
		}
		filter.PetID = &id
	}
	if query.UserID != "" {
		id, err := uuid.Parse(query.UserID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}
		filter.UserID = &id
	}

	apps, err := h.service.ListApplications(c.Request.Context(), filter)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) GetMyApplications(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	apps, err := h.service.ListApplicationsByUser(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid application id"})
		return
	}

	app, err := h.service.GetApplication(c.Request.Context(), id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid application id"})
		return
	}

	reviewerID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var input dto.UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	app, err := h.service.UpdateStatus(c.Request.Context(), id, input.Status, reviewerID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) CountApplications(c *gin.Context) {
	var filter dto.CountFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	count, err := h.service.CountApplications(c.Request.Context(), filter.Status)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CountResponse{Count: count})
}
