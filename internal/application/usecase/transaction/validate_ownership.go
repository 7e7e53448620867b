// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/fincheck/backend/internal/application/adapter"
)

// ValidateTransactionOwnershipUseCase confirms a transaction belongs to the
// requesting user before any mutation.
type ValidateTransactionOwnershipUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewValidateTransactionOwnershipUseCase creates a new instance.
func NewValidateTransactionOwnershipUseCase(transactionRepo adapter.TransactionRepository) *ValidateTransactionOwnershipUseCase {
	return &ValidateTransactionOwnershipUseCase{transactionRepo: transactionRepo}
}

// Execute returns nil when the transaction exists and is owned by the user,
// and domainerror.ErrTransactionNotFound otherwise.
func (uc *ValidateTransactionOwnershipUseCase) Execute(ctx context.Context, userID, transactionID uuid.UUID) error {
	_, err := uc.transactionRepo.FindByIDAndUser(ctx, transactionID, userID)
	return err
}
