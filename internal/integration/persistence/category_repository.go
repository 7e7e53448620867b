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

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category in the database.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).Create(categoryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUser retrieves all categories for a given user.
func (r *categoryRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}
	categories := make([]*entity.Category, 0, len(categoryModels))
	for i := range categoryModels {
		categories = append(categories, categoryModels[i].ToEntity())
	}
	return categories, nil
}

// FindByIDAndUser retrieves a category by ID scoped to its owner.
func (r *categoryRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// Update persists changes to an existing category.
func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).Save(categoryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a category by its ID.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CategoryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
