// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fincheck/backend/internal/application/adapter"
	"github.com/fincheck/backend/internal/domain/entity"
	domainerror "github.com/fincheck/backend/internal/domain/error"
)

// ListTransactionsInput represents the input for listing transactions.
// Month is zero-based (0 = January, 11 = December), following the API's
// original convention. BankAccountID and Type are optional filters.
type ListTransactionsInput struct {
	UserID        uuid.UUID
	Month         int
	Year          int
	BankAccountID *uuid.UUID
	Type          *entity.TransactionType
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
}

// ListTransactionsUseCase handles transaction listing logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{transactionRepo: transactionRepo}
}

// Execute lists the user's transactions inside the half-open UTC window
// [UTC(year, month), UTC(year, month+1)): the month's first instant is
// included, the next month's first instant is excluded.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	if input.Month < 0 || input.Month > 11 || input.Year < 1 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidPeriod,
			"month must be 0-11 and year must be positive",
			domainerror.ErrInvalidPeriod,
		)
	}

	from := time.Date(input.Year, time.Month(input.Month+1), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID:        input.UserID,
		From:          from,
		To:            to,
		BankAccountID: input.BankAccountID,
		Type:          input.Type,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &ListTransactionsOutput{Transactions: transactions}, nil
}
