// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/fincheck/backend/internal/application/adapter"
	"github.com/fincheck/backend/internal/application/usecase/bankaccount"
	"github.com/fincheck/backend/internal/application/usecase/category"
	"github.com/fincheck/backend/internal/domain/entity"
)

// UpdateTransactionInput represents the input for transaction update. All
// fields are replaced, matching the PUT semantics of the endpoint.
type UpdateTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
	BankAccountID uuid.UUID
	CategoryID    uuid.UUID
	Name          string
	Value         decimal.Decimal
	Date          time.Time
	Type          entity.TransactionType
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic. Because the
// referenced bank account and category may be changed by the update, their
// ownership is validated along with the transaction's own.
type UpdateTransactionUseCase struct {
	transactionRepo          adapter.TransactionRepository
	validateTransactionOwner *ValidateTransactionOwnershipUseCase
	validateBankAccountOwner *bankaccount.ValidateBankAccountOwnershipUseCase
	validateCategoryOwner    *category.ValidateCategoryOwnershipUseCase
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	validateTransactionOwner *ValidateTransactionOwnershipUseCase,
	validateBankAccountOwner *bankaccount.ValidateBankAccountOwnershipUseCase,
	validateCategoryOwner *category.ValidateCategoryOwnershipUseCase,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo:          transactionRepo,
		validateTransactionOwner: validateTransactionOwner,
		validateBankAccountOwner: validateBankAccountOwner,
		validateCategoryOwner:    validateCategoryOwner,
	}
}

// Execute validates the three ownerships concurrently, then replaces the
// transaction's mutable fields.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	if err := validateTransactionFields(input.Value, input.Type); err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return uc.validateTransactionOwner.Execute(gctx, input.UserID, input.TransactionID)
	})
	g.Go(func() error {
		return uc.validateBankAccountOwner.Execute(gctx, input.UserID, input.BankAccountID)
	})
	g.Go(func() error {
		return uc.validateCategoryOwner.Execute(gctx, input.UserID, input.CategoryID)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	tx, err := uc.transactionRepo.FindByIDAndUser(ctx, input.TransactionID, input.UserID)
	if err != nil {
		return nil, err
	}

	tx.BankAccountID = input.BankAccountID
	tx.CategoryID = input.CategoryID
	tx.Name = input.Name
	tx.Value = input.Value
	tx.Date = input.Date
	tx.Type = input.Type
	tx.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{Transaction: tx}, nil
}
