// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of a money movement.
// Categories share the same enum: an INCOME category groups INCOME transactions.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeOutcome TransactionType = "OUTCOME"
)

// Transaction represents a single money movement on a bank account.
// Value is always stored positive; the sign of its contribution to the
// account balance comes from Type.
type Transaction struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	BankAccountID uuid.UUID
	CategoryID    uuid.UUID
	Name          string
	Value         decimal.Decimal
	Date          time.Time
	Type          TransactionType
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	bankAccountID uuid.UUID,
	categoryID uuid.UUID,
	name string,
	value decimal.Decimal,
	date time.Time,
	transactionType TransactionType,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:            uuid.New(),
		UserID:        userID,
		BankAccountID: bankAccountID,
		CategoryID:    categoryID,
		Name:          name,
		Value:         value,
		Date:          date,
		Type:          transactionType,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
