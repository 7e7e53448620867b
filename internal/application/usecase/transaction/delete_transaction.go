// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fincheck/backend/internal/application/adapter"
)

// DeleteTransactionInput represents the input for transaction removal.
type DeleteTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
}

// DeleteTransactionUseCase handles transaction removal logic.
type DeleteTransactionUseCase struct {
	transactionRepo          adapter.TransactionRepository
	validateTransactionOwner *ValidateTransactionOwnershipUseCase
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	validateTransactionOwner *ValidateTransactionOwnershipUseCase,
) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo:          transactionRepo,
		validateTransactionOwner: validateTransactionOwner,
	}
}

// Execute validates ownership and then deletes the transaction.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	if err := uc.validateTransactionOwner.Execute(ctx, input.UserID, input.TransactionID); err != nil {
		return err
	}

	if err := uc.transactionRepo.Delete(ctx, input.TransactionID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}
