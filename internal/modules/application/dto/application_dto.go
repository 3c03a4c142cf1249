package dto

import "github.com/google/uuid"

type CreateApplicationInput struct {
	PetID uuid.UUID `json:"pet_id" binding:"required"`
}

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected"`
}

// ListQuery is the raw query-string form of the staff listing filters. The
// uuid values arrive as strings and are parsed at the handler boundary.
type ListQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
	PetID  string `form:"pet_id"`
	UserID string `form:"user_id"`
}

// ListFilter narrows the staff listing. Filters combine as exact matches.
type ListFilter struct {
	Status string
	PetID  *uuid.UUID
	UserID *uuid.UUID
}

type CountFilter struct {
	Status string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}
