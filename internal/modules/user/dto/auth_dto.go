package dto

import (
	"github.com/google/uuid"
	"github.com/shelterworks/petadopt/internal/entity"
)

type RegisterInput struct {
	Email    string       `json:"email" binding:"required,email"`
	Password string       `json:"password" binding:"required,min=8"`
	FullName string       `json:"full_name" binding:"required,max=100"`
	Phone    *string      `json:"phone"`
	Role     *entity.Role `json:"role"`
}

type RegisterResponse struct {
	UserID uuid.UUID `json:"user_id"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse mirrors what the frontend expects after a successful login:
// identity basics plus a role-dependent landing page.
type LoginResponse struct {
	Message     string      `json:"message"`
	UserID      uuid.UUID   `json:"user_id"`
	FullName    string      `json:"full_name"`
	Role        entity.Role `json:"role"`
	Approved    bool        `json:"approved"`
	RedirectURL string      `json:"redirect_url"`
}

// MeResponse is the current-user record. It deliberately carries neither the
// password hash nor the creation timestamp.
type MeResponse struct {
	UserID   uuid.UUID   `json:"user_id"`
	Email    string      `json:"email"`
	FullName string      `json:"full_name"`
	Phone    *string     `json:"phone,omitempty"`
	Role     entity.Role `json:"role"`
	Approved bool        `json:"approved"`
}
