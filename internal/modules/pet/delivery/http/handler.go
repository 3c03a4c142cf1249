package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shelterworks/petadopt/internal/modules/pet/dto"
	petService "github.com/shelterworks/petadopt/internal/modules/pet/service"
	"github.com/shelterworks/petadopt/pkg/response"
	"github.com/shelterworks/petadopt/pkg/validator"
)

type PetHandler struct {
	service petService.PetService
}

func NewPetHandler(service petService.PetService) *PetHandler {
	return &PetHandler{service: service}
}

func (h *PetHandler) CreatePet(c *gin.Context) {
	var input dto.CreatePetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	pet, err := h.service.CreatePet(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, pet)
}

// GetPets lists the catalog. Any search query parameter switches to filtered
// search, which always applies a status predicate (default available).
func (h *PetHandler) GetPets(c *gin.Context) {
	if len(c.Request.URL.Query()) > 0 {
		var filter dto.SearchFilter
		if err := c.ShouldBindQuery(&filter); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
			return
		}

		pets, err := h.service.SearchPets(c.Request.Context(), filter)
		if err != nil {
			response.ResponseError(c, err)
			return
		}
		c.JSON(http.StatusOK, pets)
		return
	}

	pets, err := h.service.GetAllPets(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, pets)
}

func (h *PetHandler) GetPet(c *gin.Context) {
	id, ok := h.petID(c)
	if !ok {
		return
	}

	pet, err := h.service.GetPet(c.Request.Context(), id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, pet)
}

func (h *PetHandler) UpdatePet(c *gin.Context) {
	id, ok := h.petID(c)
	if !ok {
		return
	}

	var input dto.UpdatePetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	pet, err := h.service.UpdatePet(c.Request.Context(), id, input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, pet)
}

func (h *PetHandler) UpdatePetStatus(c *gin.Context) {
	id, ok := h.petID(c)
	if !ok {
		return
	}

	var input dto.UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	pet, err := h.service.UpdatePetStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, pet)
}

func (h *PetHandler) DeletePet(c *gin.Context) {
	id, ok := h.petID(c)
	if !ok {
		return
	}

	if err := h.service.DeletePet(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "pet deleted successfully"})
}

func (h *PetHandler) GetSpecies(c *gin.Context) {
	species, err := h.service.ListSpecies(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, species)
}

func (h *PetHandler) GetBreeds(c *gin.Context) {
	breeds, err := h.service.ListBreeds(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, breeds)
}

func (h *PetHandler) UploadPhoto(c *gin.Context) {
	id, ok := h.petID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image file"})
		return
	}
	defer file.Close()

	pet, err := h.service.UploadPhoto(c.Request.Context(), id, file, fileHeader.Filename)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, pet)
}

func (h *PetHandler) petID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pet id"})
		return uuid.Nil, false
	}
	return id, true
}
