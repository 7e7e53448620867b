// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fincheck/backend/internal/application/adapter"
	"github.com/fincheck/backend/internal/domain/entity"
	domainerror "github.com/fincheck/backend/internal/domain/error"
)

// UpdateCategoryInput represents the input for category update. All fields
// are replaced, matching the PUT semantics of the endpoint.
type UpdateCategoryInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Name       string
	Icon       string
	Type       entity.TransactionType
}

// UpdateCategoryOutput represents the output of category update.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category update logic.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{categoryRepo: categoryRepo}
}

// Execute replaces the category's mutable fields after the owner-scoped
// fetch confirms ownership.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	if !isValidCategoryType(input.Type) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			"type must be INCOME or OUTCOME",
			domainerror.ErrInvalidCategoryType,
		)
	}

	category, err := uc.categoryRepo.FindByIDAndUser(ctx, input.CategoryID, input.UserID)
	if err != nil {
		return nil, err
	}

	category.Name = input.Name
	category.Icon = input.Icon
	category.Type = input.Type
	category.UpdatedAt = time.Now().UTC()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &UpdateCategoryOutput{Category: category}, nil
}
