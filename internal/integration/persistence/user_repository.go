// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fincheck/backend/internal/application/adapter"
	"github.com/fincheck/backend/internal/domain/entity"
	domainerror "github.com/fincheck/backend/internal/domain/error"
	"github.com/fincheck/backend/internal/integration/persistence/model"
)

// userRepository implements the adapter.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance.
func NewUserRepository(db *gorm.DB) adapter.UserRepository {
	return &userRepository{
		db: db,
	}
}

// CreateWithCategories creates a user and its seed categories in a single
// transaction. A unique index on the email column resolves concurrent
// signups; the loser surfaces as ErrEmailAlreadyInUse.
func (r *userRepository) CreateWithCategories(ctx context.Context, user *entity.User, categories []*entity.Category) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		userModel := model.UserFromEntity(user)
		if result := tx.Create(userModel); result.Error != nil {
			return result.Error
		}
		categoryModels := make([]*model.CategoryModel, 0, len(categories))
		for _, category := range categories {
			categoryModels = append(categoryModels, model.CategoryFromEntity(category))
		}
		if result := tx.Create(categoryModels); result.Error != nil {
			return result.Error
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerror.ErrEmailAlreadyInUse
		}
		return err
	}
	return nil
}

// FindByEmail retrieves a user by email address.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.UserModel
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrUserNotFound
		}
		return nil, result.Error
	}
	return userModel.ToEntity(), nil
}

// FindByID retrieves a user by its ID.
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userModel model.UserModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrUserNotFound
		}
		return nil, result.Error
	}
	return userModel.ToEntity(), nil
}

// ExistsByEmail reports whether a user with the given email exists.
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.UserModel{}).Where("email = ?", email).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
