package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shelterworks/petadopt/internal/modules/questionnaire/dto"
	questionnaireService "github.com/shelterworks/petadopt/internal/modules/questionnaire/service"
	"github.com/shelterworks/petadopt/pkg/response"
	"github.com/shelterworks/petadopt/pkg/validator"
)

type QuestionnaireHandler struct {
	service questionnaireService.QuestionnaireService
}

func NewQuestionnaireHandler(service questionnaireService.QuestionnaireService) *QuestionnaireHandler {
	return &QuestionnaireHandler{service: service}
}

func (h *QuestionnaireHandler) GetQuestionnaire(c *gin.Context) {
	questions, err := h.service.GetQuestionnaire(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, questions)
}

func (h *QuestionnaireHandler) SetQuestionnaire(c *gin.Context) {
	var input dto.SetQuestionnaireInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if err := h.service.SetQuestionnaire(c.Request.Context(), input); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "questions replaced successfully"})
}

func (h *QuestionnaireHandler) SubmitAnswers(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var input dto.SubmitAnswersInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if err := h.service.AnswerQuestionnaire(c.Request.Context(), userID, input); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "answers submitted successfully"})
}

// GetAnswered returns another user's answered form, for staff review.
func (h *QuestionnaireHandler) GetAnswered(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	answered, err := h.service.GetAnsweredQuestionnaire(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, answered)
}

func (h *QuestionnaireHandler) HasOpen(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	hasOpen, err := h.service.HasOpenQuestionnaire(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.HasOpenResponse{HasOpen: hasOpen})
}

func (h *QuestionnaireHandler) ListOpen(c *gin.Context) {
	open, err := h.service.ListOpenQuestionnaires(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, open)
}

func (h *QuestionnaireHandler) CountOpen(c *gin.Context) {
	count, err := h.service.CountOpenQuestionnaires(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OpenCountResponse{Count: count})
}

func (h *QuestionnaireHandler) ApproveUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	if err := h.service.ApproveQuestionnaire(c.Request.Context(), userID); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "applicant approved"})
}
