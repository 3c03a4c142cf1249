package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/shelterworks/petadopt/internal/entity"
	"github.com/shelterworks/petadopt/internal/modules/questionnaire/dto"
	"github.com/shelterworks/petadopt/internal/modules/questionnaire/repository"
	userRepo "github.com/shelterworks/petadopt/internal/modules/user/repository"
	"github.com/shelterworks/petadopt/pkg/apperror"
	"gorm.io/gorm"
)

type QuestionnaireService interface {
	GetQuestionnaire(ctx context.Context) ([]dto.QuestionResponse, error)
	SetQuestionnaire(ctx context.Context, input dto.SetQuestionnaireInput) error
	AnswerQuestionnaire(ctx context.Context, userID uuid.UUID, input dto.SubmitAnswersInput) error
	GetAnsweredQuestionnaire(ctx context.Context, userID uuid.UUID) ([]dto.AnsweredQuestionResponse, error)
	// HasOpenQuestionnaire reports whether the user has a submission awaiting
	// review. An approved user always reports false, even though the response
	// rows still exist.
	HasOpenQuestionnaire(ctx context.Context, userID uuid.UUID) (bool, error)
	ListOpenQuestionnaires(ctx context.Context) ([]dto.OpenQuestionnaireResponse, error)
	CountOpenQuestionnaires(ctx context.Context) (int64, error)
	ApproveQuestionnaire(ctx context.Context, userID uuid.UUID) error
}

type questionnaireService struct {
	repo  repository.QuestionnaireRepository
	users userRepo.UserRepository
}

func NewQuestionnaireService(repo repository.QuestionnaireRepository, users userRepo.UserRepository) QuestionnaireService {
	return &questionnaireService{
		repo:  repo,
		users: users,
	}
}

func (s *questionnaireService) GetQuestionnaire(ctx context.Context) ([]dto.QuestionResponse, error) {
	questions, err := s.repo.FindQuestions(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]dto.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		options := make([]string, 0, len(q.Choices))
		for _, choice := range q.Choices {
			options = append(options, choice.Text)
		}
		res = append(res, dto.QuestionResponse{
			ID:      q.ID,
			Text:    q.Text,
			Type:    q.Type,
			Options: options,
		})
	}
	return res, nil
}

func (s *questionnaireService) SetQuestionnaire(ctx context.Context, input dto.SetQuestionnaireInput) error {
	questions := make([]*entity.Question, 0, len(input.Questions))
	for _, q := range input.Questions {
		question := &entity.Question{
			Text: q.Text,
			Type: q.Type,
		}
		if q.Type == entity.QuestionMultipleChoice {
			for _, opt := range q.Options {
				question.Choices = append(question.Choices, entity.Choice{Text: opt})
			}
		}
		questions = append(questions, question)
	}

	return s.repo.ReplaceQuestions(ctx, questions)
}

func (s *questionnaireService) AnswerQuestionnaire(ctx context.Context, userID uuid.UUID, input dto.SubmitAnswersInput) error {
	responses := make([]entity.QuestionnaireResponse, 0, len(input.Answers))
	for _, a := range input.Answers {
		responses = append(responses, entity.QuestionnaireResponse{
			UserID:     userID,
			QuestionID: a.QuestionID,
			AnswerText: a.AnswerText,
		})
	}

	if err := s.repo.SubmitResponses(ctx, userID, responses); err != nil {
		if errors.Is(err, repository.ErrAlreadySubmitted) {
			return apperror.New(http.StatusBadRequest, "questionnaire already submitted", apperror.ErrConflict)
		}
		return err
	}
	return nil
}

func (s *questionnaireService) GetAnsweredQuestionnaire(ctx context.Context, userID uuid.UUID) ([]dto.AnsweredQuestionResponse, error) {
	rows, err := s.repo.FindAnswered(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := make([]dto.AnsweredQuestionResponse, 0, len(rows))
	for _, row := range rows {
		res = append(res, dto.AnsweredQuestionResponse{
			ID:     row.ID,
			Text:   row.Text,
			Type:   row.Type,
			Answer: row.Answer,
		})
	}
	return res, nil
}

func (s *questionnaireService) HasOpenQuestionnaire(ctx context.Context, userID uuid.UUID) (bool, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apperror.New(http.StatusNotFound, "user not found", apperror.ErrNotFound)
		}
		return false, err
	}

	if user.Approved {
		return false, nil
	}

	count, err := s.repo.CountResponses(ctx, userID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *questionnaireService) ListOpenQuestionnaires(ctx context.Context) ([]dto.OpenQuestionnaireResponse, error) {
	users, err := s.repo.FindOpenUsers(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]dto.OpenQuestionnaireResponse, 0, len(users))
	for _, user := range users {
		res = append(res, dto.OpenQuestionnaireResponse{
			UserID:   user.ID,
			FullName: user.FullName,
		})
	}
	return res, nil
}

func (s *questionnaireService) CountOpenQuestionnaires(ctx context.Context) (int64, error) {
	return s.repo.CountOpenUsers(ctx)
}

func (s *questionnaireService) ApproveQuestionnaire(ctx context.Context, userID uuid.UUID) error {
	if err := s.users.SetApproved(ctx, userID, true); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(http.StatusNotFound, "user not found", apperror.ErrNotFound)
		}
		return err
	}
	return nil
}
