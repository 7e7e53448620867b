package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/fincheck/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category data operations.
type CategoryRepository interface {
	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// FindByUser retrieves all categories owned by the user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// FindByIDAndUser retrieves the category matching both id and owner.
	// Returns domainerror.ErrCategoryNotFound when no such row exists.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error)

	// Update persists changes to an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes the category with the given id.
	Delete(ctx context.Context, id uuid.UUID) error
}
