// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups transactions of a single type for one user.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Icon      string
	Type      TransactionType
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(userID uuid.UUID, name, icon string, categoryType TransactionType) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Icon:      icon,
		Type:      categoryType,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DefaultCategories returns the fixed seed of 12 categories (3 INCOME,
// 9 OUTCOME) created for every new user at signup.
func DefaultCategories(userID uuid.UUID) []*Category {
	seed := []struct {
		name string
		icon string
		typ  TransactionType
	}{
		{"Salário", "salary", TransactionTypeIncome},
		{"Freelance", "freelance", TransactionTypeIncome},
		{"Outro", "other", TransactionTypeIncome},
		{"Casa", "home", TransactionTypeOutcome},
		{"Alimentação", "food", TransactionTypeOutcome},
		{"Educação", "education", TransactionTypeOutcome},
		{"Lazer", "fun", TransactionTypeOutcome},
		{"Mercado", "grocery", TransactionTypeOutcome},
		{"Roupas", "clothes", TransactionTypeOutcome},
		{"Transporte", "transport", TransactionTypeOutcome},
		{"Viagem", "travel", TransactionTypeOutcome},
		{"Outro", "other", TransactionTypeOutcome},
	}

	categories := make([]*Category, len(seed))
	for i, s := range seed {
		categories[i] = NewCategory(userID, s.name, s.icon, s.typ)
	}
	return categories
}
