package dto

import "github.com/shelterworks/petadopt/internal/entity"

type CreateUserInput struct {
	Email    string       `json:"email" binding:"required,email"`
	Password string       `json:"password" binding:"required,min=8"`
	FullName string       `json:"full_name" binding:"required,max=100"`
	Phone    *string      `json:"phone"`
	Role     *entity.Role `json:"role"`
}

type ListUsersFilter struct {
	Role *entity.Role `form:"role"`
}
