package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ApplicationPending  = "pending"
	ApplicationApproved = "approved"
	ApplicationRejected = "rejected"
)

// ValidApplicationStatus reports whether s is a known application status.
// The statuses form a flat set: any status may overwrite any other.
func ValidApplicationStatus(s string) bool {
	return s == ApplicationPending || s == ApplicationApproved || s == ApplicationRejected
}

type Application struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"application_id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	PetID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"pet_id"`
	Status      string     `gorm:"size:20;not null;default:pending" json:"status"`
	SubmittedAt time.Time  `gorm:"autoCreateTime" json:"submitted_at"`
	LastUpdated *time.Time `gorm:"column:updated_at" json:"updated_at,omitempty"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
	ReviewerID  *uuid.UUID `gorm:"type:uuid" json:"reviewer_id,omitempty"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Pet  Pet  `gorm:"foreignKey:PetID;constraint:OnDelete:CASCADE" json:"-"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
