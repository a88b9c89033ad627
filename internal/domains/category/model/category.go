package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type Category struct {
	ID   int
	Name string
}

// ========================================
// DTOs
// ========================================

type CreateCategoryRequest struct {
	Name string `json:"name"`
}

func (r CreateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required"), validation.Length(1, 255)),
	)
}

// UpdateCategoryRequest is a partial update: a nil field keeps its value.
type UpdateCategoryRequest struct {
	ID   *int    `json:"id"`
	Name *string `json:"name"`
}

func (r UpdateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.NotNil.Error("id is required"), validation.Min(1)),
		validation.Field(&r.Name, validation.NilOrNotEmpty.Error("name must not be empty"), validation.Length(1, 255)),
	)
}

type CategoryResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func ToResponse(c *Category) *CategoryResponse {
	return &CategoryResponse{ID: c.ID, Name: c.Name}
}
