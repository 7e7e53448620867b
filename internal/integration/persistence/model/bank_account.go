// Package model defines database models for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fincheck/backend/internal/domain/entity"
)

// BankAccountModel represents the bank_accounts table in the database.
// Only the initial balance is stored; the current balance is always derived.
type BankAccountModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name           string          `gorm:"type:varchar(100);not null"`
	InitialBalance decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	Type           string          `gorm:"type:varchar(10);not null"`
	Color          string          `gorm:"type:varchar(7);not null"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BankAccountModel.
func (BankAccountModel) TableName() string {
	return "bank_accounts"
}

// ToEntity converts a BankAccountModel to a domain BankAccount entity.
func (m *BankAccountModel) ToEntity() *entity.BankAccount {
	return &entity.BankAccount{
		ID:             m.ID,
		UserID:         m.UserID,
		Name:           m.Name,
		InitialBalance: m.InitialBalance,
		Type:           entity.BankAccountType(m.Type),
		Color:          m.Color,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// BankAccountFromEntity creates a BankAccountModel from a domain BankAccount entity.
func BankAccountFromEntity(account *entity.BankAccount) *BankAccountModel {
	return &BankAccountModel{
		ID:             account.ID,
		UserID:         account.UserID,
		Name:           account.Name,
		InitialBalance: account.InitialBalance,
		Type:           string(account.Type),
		Color:          account.Color,
		CreatedAt:      account.CreatedAt,
		UpdatedAt:      account.UpdatedAt,
	}
}
