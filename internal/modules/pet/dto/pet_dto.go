package dto

type CreatePetInput struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Species     string  `json:"species" binding:"required,max=50"`
	Breed       string  `json:"breed" binding:"required,max=100"`
	Age         *int    `json:"age" binding:"required,min=0"`
	Description string  `json:"description" binding:"required"`
	Status      string  `json:"status" binding:"omitempty,oneof=available adopted"`
	ImageURL    *string `json:"image_url"`
}

// UpdatePetInput is a full overwrite of the mutable fields.
type UpdatePetInput struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Species     string  `json:"species" binding:"required,max=50"`
	Breed       string  `json:"breed" binding:"required,max=100"`
	Age         *int    `json:"age" binding:"required,min=0"`
	Description string  `json:"description" binding:"required"`
	Status      string  `json:"status" binding:"required,oneof=available adopted"`
	ImageURL    *string `json:"image_url"`
}

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required,oneof=available adopted"`
}

// SearchFilter holds the optional exact-match predicates. Status always
// applies; it defaults to available when unspecified.
type SearchFilter struct {
	Species string `form:"species"`
	Breed   string `form:"breed"`
	Status  string `form:"status" binding:"omitempty,oneof=available adopted"`
}
