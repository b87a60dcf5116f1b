package dto

import "github.com/google/uuid"

type CreateCategoryRequest struct {
	Name             string     `json:"name" validate:"required,max=50"`
	Description      string     `json:"description,omitempty" validate:"max=500"`
	ParentCategoryID *uuid.UUID `json:"parent_category_id,omitempty"`
}

type UpdateCategoryRequest struct {
	Name             *string    `json:"name,omitempty" validate:"omitempty,max=50"`
	Description      *string    `json:"description,omitempty" validate:"omitempty,max=500"`
	ParentCategoryID *uuid.UUID `json:"parent_category_id,omitempty"`
}
