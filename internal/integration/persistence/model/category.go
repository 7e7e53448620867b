// Package model defines database models for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/fincheck/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(50);not null"`
	Icon      string    `gorm:"type:varchar(50);not null"`
	Type      string    `gorm:"type:varchar(10);not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Icon:      m.Icon,
		Type:      entity.TransactionType(m.Type),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:        category.ID,
		UserID:    category.UserID,
		Name:      category.Name,
		Icon:      category.Icon,
		Type:      string(category.Type),
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}
