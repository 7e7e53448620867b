// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BankAccountType represents the kind of bank account.
type BankAccountType string

const (
	BankAccountTypeChecking   BankAccountType = "CHECKING"
	BankAccountTypeInvestment BankAccountType = "INVESTMENT"
	BankAccountTypeCash       BankAccountType = "CASH"
)

// BankAccount represents a bank account owned by a user. The current balance
// is never stored; it is derived from InitialBalance plus the transaction log.
type BankAccount struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	InitialBalance decimal.Decimal
	Type           BankAccountType
	Color          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewBankAccount creates a new BankAccount entity.
func NewBankAccount(userID uuid.UUID, name string, initialBalance decimal.Decimal, accountType BankAccountType, color string) *BankAccount {
	now := time.Now().UTC()

	return &BankAccount{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           name,
		InitialBalance: initialBalance,
		Type:           accountType,
		Color:          color,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// CurrentBalance derives the balance from the given transactions:
// InitialBalance + Σ INCOME values − Σ OUTCOME values. Transactions belonging
// to other accounts are ignored so callers may pass an unpartitioned log.
func (a *BankAccount) CurrentBalance(transactions []*Transaction) decimal.Decimal {
	balance := a.InitialBalance
	for _, tx := range transactions {
		if tx.BankAccountID != a.ID {
			continue
		}
		if tx.Type == TransactionTypeIncome {
			balance = balance.Add(tx.Value)
		} else {
			balance = balance.Sub(tx.Value)
		}
	}
	return balance
}

// BankAccountWithBalance pairs an account with its derived balance for
// read-time listing. The raw transaction log is deliberately absent.
type BankAccountWithBalance struct {
	BankAccount    *BankAccount
	CurrentBalance decimal.Decimal
}
