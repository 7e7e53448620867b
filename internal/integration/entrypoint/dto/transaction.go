package dto

import (
	"time"

	"github.com/fincheck/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for creating a transaction.
type CreateTransactionRequest struct {
	BankAccountID string    `json:"bankAccountId" binding:"required,uuid"`
	CategoryID    string    `json:"categoryId" binding:"required,uuid"`
	Name          string    `json:"name" binding:"required,min=1,max=100"`
	Value         *float64  `json:"value" binding:"required,gt=0"`
	Date          time.Time `json:"date" binding:"required"`
	Type          string    `json:"type" binding:"required,oneof=INCOME OUTCOME"`
}

// UpdateTransactionRequest represents the request body for updating a transaction.
type UpdateTransactionRequest struct {
	BankAccountID string    `json:"bankAccountId" binding:"required,uuid"`
	CategoryID    string    `json:"categoryId" binding:"required,uuid"`
	Name          string    `json:"name" binding:"required,min=1,max=100"`
	Value         *float64  `json:"value" binding:"required,gt=0"`
	Date          time.Time `json:"date" binding:"required"`
	Type          string    `json:"type" binding:"required,oneof=INCOME OUTCOME"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID            string    `json:"id"`
	BankAccountID string    `json:"bankAccountId"`
	CategoryID    string    `json:"categoryId"`
	Name          string    `json:"name"`
	Value         float64   `json:"value"`
	Date          time.Time `json:"date"`
	Type          string    `json:"type"`
}

// ToTransactionResponse converts a domain Transaction entity to its DTO.
func ToTransactionResponse(transaction *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            transaction.ID.String(),
		BankAccountID: transaction.BankAccountID.String(),
		CategoryID:    transaction.CategoryID.String(),
		Name:          transaction.Name,
		Value:         transaction.Value.InexactFloat64(),
		Date:          transaction.Date,
		Type:          string(transaction.Type),
	}
}
