// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fincheck/backend/internal/application/adapter"
)

// DeleteCategoryInput represents the input for category removal.
type DeleteCategoryInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
}

// DeleteCategoryUseCase handles category removal logic.
type DeleteCategoryUseCase struct {
	categoryRepo      adapter.CategoryRepository
	validateOwnership *ValidateCategoryOwnershipUseCase
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(
	categoryRepo adapter.CategoryRepository,
	validateOwnership *ValidateCategoryOwnershipUseCase,
) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo:      categoryRepo,
		validateOwnership: validateOwnership,
	}
}

// Execute validates ownership and then deletes the category.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	if err := uc.validateOwnership.Execute(ctx, input.UserID, input.CategoryID); err != nil {
		return err
	}

	if err := uc.categoryRepo.Delete(ctx, input.CategoryID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
