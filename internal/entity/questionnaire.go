package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	QuestionText           = "text"
	QuestionMultipleChoice = "multiple_choice"
)

// ValidQuestionType reports whether s is a known question type.
func ValidQuestionType(s string) bool {
	return s == QuestionText || s == QuestionMultipleChoice
}

// Question ordering is implicit by creation: the autoincrement id is the
// display order of the questionnaire.
type Question struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Type      string    `gorm:"size:20;not null" json:"type"`
	Choices   []Choice  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type Choice struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	QuestionID uint   `gorm:"not null;index" json:"question_id"`
	Text       string `gorm:"type:text;not null" json:"text"`
}

// QuestionnaireResponse holds one user's answer to one question. The composite
// unique index enforces the one-submission-per-user rule at the storage layer,
// so two concurrent submissions cannot both slip past the application check.
type QuestionnaireResponse struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_response_user_question" json:"user_id"`
	QuestionID uint      `gorm:"not null;uniqueIndex:idx_response_user_question" json:"question_id"`
	AnswerText string    `gorm:"type:text;not null" json:"answer_text"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	User     User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Question Question `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
}

func (QuestionnaireResponse) TableName() string {
	return "questionnaire_responses"
}
