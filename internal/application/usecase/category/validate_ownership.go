// Package category contains category-related use cases.
package category

import (
	"context"

	"github.com/google/uuid"

	"github.com/fincheck/backend/internal/application/adapter"
)

// ValidateCategoryOwnershipUseCase confirms a category belongs to the
// requesting user before any operation that references it.
type ValidateCategoryOwnershipUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewValidateCategoryOwnershipUseCase creates a new instance.
func NewValidateCategoryOwnershipUseCase(categoryRepo adapter.CategoryRepository) *ValidateCategoryOwnershipUseCase {
	return &ValidateCategoryOwnershipUseCase{categoryRepo: categoryRepo}
}

// Execute returns nil when the category exists and is owned by the user, and
// domainerror.ErrCategoryNotFound otherwise.
func (uc *ValidateCategoryOwnershipUseCase) Execute(ctx context.Context, userID, categoryID uuid.UUID) error {
	_, err := uc.categoryRepo.FindByIDAndUser(ctx, categoryID, userID)
	return err
}
