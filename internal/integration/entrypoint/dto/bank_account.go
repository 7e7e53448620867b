package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fincheck/backend/internal/domain/entity"
)

// CreateBankAccountRequest represents the request body for creating a bank account.
type CreateBankAccountRequest struct {
	Name           string   `json:"name" binding:"required,min=1,max=100"`
	InitialBalance *float64 `json:"initialBalance" binding:"required"`
	Type           string   `json:"type" binding:"required,oneof=CHECKING INVESTMENT CASH"`
	Color          string   `json:"color" binding:"required"`
}

// UpdateBankAccountRequest represents the request body for updating a bank account.
// Every field is replaced; there are no partial updates.
type UpdateBankAccountRequest struct {
	Name           string   `json:"name" binding:"required,min=1,max=100"`
	InitialBalance *float64 `json:"initialBalance" binding:"required"`
	Type           string   `json:"type" binding:"required,oneof=CHECKING INVESTMENT CASH"`
	Color          string   `json:"color" binding:"required"`
}

// BankAccountResponse represents a bank account in API responses.
type BankAccountResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	InitialBalance float64   `json:"initialBalance"`
	Type           string    `json:"type"`
	Color          string    `json:"color"`
	CreatedAt      time.Time `json:"createdAt"`
}

// BankAccountWithBalanceResponse is a bank account plus its derived balance.
type BankAccountWithBalanceResponse struct {
	BankAccountResponse
	CurrentBalance float64 `json:"currentBalance"`
}

// ToBankAccountResponse converts a domain BankAccount entity to its DTO.
func ToBankAccountResponse(account *entity.BankAccount) BankAccountResponse {
	return BankAccountResponse{
		ID:             account.ID.String(),
		Name:           account.Name,
		InitialBalance: account.InitialBalance.InexactFloat64(),
		Type:           string(account.Type),
		Color:          account.Color,
		CreatedAt:      account.CreatedAt,
	}
}

// ToBankAccountWithBalanceResponse converts an account and its derived
// balance to the list response DTO.
func ToBankAccountWithBalanceResponse(account *entity.BankAccount, currentBalance decimal.Decimal) BankAccountWithBalanceResponse {
	return BankAccountWithBalanceResponse{
		BankAccountResponse: ToBankAccountResponse(account),
		CurrentBalance:      currentBalance.InexactFloat64(),
	}
}
