package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shelterworks/petadopt/internal/entity"
	"gorm.io/gorm"
)

// ErrAlreadySubmitted is returned when a user who already has stored
// responses tries to submit again.
var ErrAlreadySubmitted = errors.New("questionnaire already submitted")

type QuestionnaireRepository interface {
	FindQuestions(ctx context.Context) ([]*entity.Question, error)
	// ReplaceQuestions swaps the entire question set atomically: on any
	// failure the previous questionnaire stays intact.
	ReplaceQuestions(ctx context.Context, questions []*entity.Question) error
	// SubmitResponses inserts all responses for a user, or none. A user with
	// any existing responses gets ErrAlreadySubmitted.
	SubmitResponses(ctx context.Context, userID uuid.UUID, responses []entity.QuestionnaireResponse) error
	FindAnswered(ctx context.Context, userID uuid.UUID) ([]AnsweredQuestion, error)
	CountResponses(ctx context.Context, userID uuid.UUID) (int64, error)
	FindOpenUsers(ctx context.Context) ([]*entity.User, error)
	CountOpenUsers(ctx context.Context) (int64, error)
}

// AnsweredQuestion is one row of a user's answered form.
type AnsweredQuestion struct {
	ID     uint
	Text   string
	Type   string
	Answer string
}

type questionnaireRepository struct {
	db *gorm.DB
}

func NewQuestionnaireRepository(db *gorm.DB) QuestionnaireRepository {
	return &questionnaireRepository{db: db}
}

func (r *questionnaireRepository) FindQuestions(ctx context.Context) ([]*entity.Question, error) {
	var questions []*entity.Question
	err := r.db.WithContext(ctx).Preload("Choices").Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionnaireRepository) ReplaceQuestions(ctx context.Context, questions []*entity.Question) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM choices").Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM questions").Error; err != nil {
			return err
		}

		for _, q := range questions {
			if err := tx.Create(q).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *questionnaireRepository) SubmitResponses(ctx context.Context, userID uuid.UUID, responses []entity.QuestionnaireResponse) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entity.QuestionnaireResponse{}).
			Where("user_id = ?", userID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadySubmitted
		}

		// The unique (user_id, question_id) index makes one of two racing
		// submissions fail here, rolling its inserts back.
		return tx.Create(&responses).Error
	})
}

func (r *questionnaireRepository) FindAnswered(ctx context.Context, userID uuid.UUID) ([]AnsweredQuestion, error) {
	var rows []AnsweredQuestion
	err := r.db.WithContext(ctx).
		Table("questions").
		Select("questions.id, questions.text, questions.type, questionnaire_responses.answer_text AS answer").
		Joins("JOIN questionnaire_responses ON questionnaire_responses.question_id = questions.id").
		Where("questionnaire_responses.user_id = ?", userID).
		Order("questions.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *questionnaireRepository) CountResponses(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.QuestionnaireResponse{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *questionnaireRepository) FindOpenUsers(ctx context.Context) ([]*entity.User, error) {
	var users []*entity.User
	err := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("approved = ?", false).
		Where("EXISTS (SELECT 1 FROM questionnaire_responses WHERE questionnaire_responses.user_id = users.id)").
		Order("created_at").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *questionnaireRepository) CountOpenUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("approved = ?", false).
		Where("EXISTS (SELECT 1 FROM questionnaire_responses WHERE questionnaire_responses.user_id = users.id)").
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
