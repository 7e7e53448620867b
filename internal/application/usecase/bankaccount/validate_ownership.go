// Package bankaccount contains bank account-related use cases.
package bankaccount

import (
	"context"

	"github.com/google/uuid"

	"github.com/fincheck/backend/internal/application/adapter"
)

// ValidateBankAccountOwnershipUseCase confirms a bank account belongs to the
// requesting user before any operation that references it.
type ValidateBankAccountOwnershipUseCase struct {
	bankAccountRepo adapter.BankAccountRepository
}

// NewValidateBankAccountOwnershipUseCase creates a new instance.
func NewValidateBankAccountOwnershipUseCase(bankAccountRepo adapter.BankAccountRepository) *ValidateBankAccountOwnershipUseCase {
	return &ValidateBankAccountOwnershipUseCase{bankAccountRepo: bankAccountRepo}
}

// Execute returns nil when the account exists and is owned by the user, and
// domainerror.ErrBankAccountNotFound otherwise. Absent and foreign accounts
// are indistinguishable to the caller.
func (uc *ValidateBankAccountOwnershipUseCase) Execute(ctx context.Context, userID, bankAccountID uuid.UUID) error {
	_, err := uc.bankAccountRepo.FindByIDAndUser(ctx, bankAccountID, userID)
	return err
}
