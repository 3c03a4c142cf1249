package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PetAvailable = "available"
	PetAdopted   = "adopted"
)

// ValidPetStatus reports whether s is a known adoption status.
func ValidPetStatus(s string) bool {
	return s == PetAvailable || s == PetAdopted
}

type Pet struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"pet_id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Species     string    `gorm:"size:50;not null" json:"species"`
	Breed       string    `gorm:"size:100;not null" json:"breed"`
	Age         int       `gorm:"not null" json:"age"`
	Description string    `gorm:"type:text" json:"description"`
	Status      string    `gorm:"size:20;not null;default:available" json:"status"`
	ImageURL    *string   `gorm:"type:text" json:"image_url,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (p *Pet) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
