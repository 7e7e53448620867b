package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fincheck/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	BankAccountID uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID    uuid.UUID       `gorm:"type:uuid;not null"`
	Name          string          `gorm:"type:varchar(100);not null"`
	Value         decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	Date          time.Time       `gorm:"not null;index"`
	Type          string          `gorm:"type:varchar(10);not null"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:            m.ID,
		UserID:        m.UserID,
		BankAccountID: m.BankAccountID,
		CategoryID:    m.CategoryID,
		Name:          m.Name,
		Value:         m.Value,
		Date:          m.Date,
		Type:          entity.TransactionType(m.Type),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(tx *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:            tx.ID,
		UserID:        tx.UserID,
		BankAccountID: tx.BankAccountID,
		CategoryID:    tx.CategoryID,
		Name:          tx.Name,
		Value:         tx.Value,
		Date:          tx.Date,
		Type:          string(tx.Type),
		CreatedAt:     tx.CreatedAt,
		UpdatedAt:     tx.UpdatedAt,
	}
}
