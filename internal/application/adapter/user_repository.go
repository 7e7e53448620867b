// Package adapter defines interfaces for external dependencies (ports).
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/fincheck/backend/internal/domain/entity"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// CreateWithCategories persists the user together with its seeded
	// categories in a single transaction: either both land or neither does.
	// A duplicate email surfaces as domainerror.ErrEmailAlreadyInUse.
	CreateWithCategories(ctx context.Context, user *entity.User, categories []*entity.Category) error

	// FindByEmail retrieves a user by email. Returns
	// domainerror.ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user by id. Returns domainerror.ErrUserNotFound
	// when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// ExistsByEmail checks whether a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
