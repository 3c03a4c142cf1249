package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is an ordinal permission tier. Comparison is strictly by value:
// a route requiring a role admits that role and everything above it.
type Role int

const (
	RoleGuest Role = 0
	RoleUser  Role = 1
	RoleStaff Role = 2
	RoleAdmin Role = 3
)

// AtLeast reports whether r meets the given minimum tier.
func (r Role) AtLeast(min Role) bool {
	return r >= min
}

// Valid reports whether r is one of the known tiers.
func (r Role) Valid() bool {
	return r >= RoleGuest && r <= RoleAdmin
}

func (r Role) String() string {
	switch r {
	case RoleGuest:
		return "guest"
	case RoleUser:
		return "user"
	case RoleStaff:
		return "staff"
	case RoleAdmin:
		return "admin"
	}
	return "unknown"
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	FullName     string    `gorm:"size:100;not null" json:"full_name"`
	Phone        *string   `gorm:"size:30" json:"phone,omitempty"`
	Role         Role      `gorm:"not null;default:1" json:"role"`
	Approved     bool      `gorm:"not null;default:false" json:"approved"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
