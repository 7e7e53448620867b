// Package bankaccount contains bank account-related use cases.
package bankaccount

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fincheck/backend/internal/application/adapter"
)

// DeleteBankAccountInput represents the input for bank account removal.
type DeleteBankAccountInput struct {
	UserID        uuid.UUID
	BankAccountID uuid.UUID
}

// DeleteBankAccountUseCase handles bank account removal logic.
type DeleteBankAccountUseCase struct {
	bankAccountRepo   adapter.BankAccountRepository
	validateOwnership *ValidateBankAccountOwnershipUseCase
}

// NewDeleteBankAccountUseCase creates a new DeleteBankAccountUseCase instance.
func NewDeleteBankAccountUseCase(
	bankAccountRepo adapter.BankAccountRepository,
	validateOwnership *ValidateBankAccountOwnershipUseCase,
) *DeleteBankAccountUseCase {
	return &DeleteBankAccountUseCase{
		bankAccountRepo:   bankAccountRepo,
		validateOwnership: validateOwnership,
	}
}

// Execute validates ownership and then deletes the account.
func (uc *DeleteBankAccountUseCase) Execute(ctx context.Context, input DeleteBankAccountInput) error {
	if err := uc.validateOwnership.Execute(ctx, input.UserID, input.BankAccountID); err != nil {
		return err
	}

	if err := uc.bankAccountRepo.Delete(ctx, input.BankAccountID); err != nil {
		return fmt.Errorf("failed to delete bank account: %w", err)
	}
	return nil
}
