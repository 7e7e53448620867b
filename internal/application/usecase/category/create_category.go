// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fincheck/backend/internal/application/adapter"
	"github.com/fincheck/backend/internal/domain/entity"
	domainerror "github.com/fincheck/backend/internal/domain/error"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	UserID uuid.UUID
	Name   string
	Icon   string
	Type   entity.TransactionType
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{categoryRepo: categoryRepo}
}

// Execute performs the category creation with the owner stamped.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	if !isValidCategoryType(input.Type) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			"type must be INCOME or OUTCOME",
			domainerror.ErrInvalidCategoryType,
		)
	}

	category := entity.NewCategory(input.UserID, input.Name, input.Icon, input.Type)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{Category: category}, nil
}

// isValidCategoryType validates the category type.
func isValidCategoryType(categoryType entity.TransactionType) bool {
	return categoryType == entity.TransactionTypeIncome || categoryType == entity.TransactionTypeOutcome
}
