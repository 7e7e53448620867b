package dto

import (
	"github.com/fincheck/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for creating a category.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
	Icon string `json:"icon" binding:"required,min=1,max=50"`
	Type string `json:"type" binding:"required,oneof=INCOME OUTCOME"`
}

// UpdateCategoryRequest represents the request body for updating a category.
type UpdateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
	Icon string `json:"icon" binding:"required,min=1,max=50"`
	Type string `json:"type" binding:"required,oneof=INCOME OUTCOME"`
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
	Type string `json:"type"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:   category.ID.String(),
		Name: category.Name,
		Icon: category.Icon,
		Type: string(category.Type),
	}
}
