package dto

import "github.com/google/uuid"

type QuestionInput struct {
	Text    string   `json:"text" binding:"required"`
	Type    string   `json:"type" binding:"required,oneof=text multiple_choice"`
	Options []string `json:"options"`
}

type SetQuestionnaireInput struct {
	Questions []QuestionInput `json:"questions" binding:"required,dive"`
}

type AnswerInput struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	AnswerText string `json:"answer_text" binding:"required"`
}

type SubmitAnswersInput struct {
	Answers []AnswerInput `json:"answers" binding:"required,min=1,dive"`
}

type QuestionResponse struct {
	ID      uint     `json:"id"`
	Text    string   `json:"text"`
	Type    string   `json:"type"`
	Options []string `json:"options"`
}

type AnsweredQuestionResponse struct {
	ID     uint   `json:"id"`
	Text   string `json:"text"`
	Type   string `json:"type"`
	Answer string `json:"answer"`
}

type HasOpenResponse struct {
	HasOpen bool `json:"has_open"`
}

// OpenQuestionnaireResponse identifies an applicant awaiting staff review.
type OpenQuestionnaireResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	FullName string    `json:"full_name"`
}

type OpenCountResponse struct {
	Count int64 `json:"count"`
}
