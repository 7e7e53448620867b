// Package bankaccount contains bank account-related use cases.
package bankaccount

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fincheck/backend/internal/application/adapter"
	"github.com/fincheck/backend/internal/domain/entity"
	domainerror "github.com/fincheck/backend/internal/domain/error"
)

// UpdateBankAccountInput represents the input for bank account update. All
// fields are replaced, matching the PUT semantics of the endpoint.
type UpdateBankAccountInput struct {
	UserID         uuid.UUID
	BankAccountID  uuid.UUID
	Name           string
	InitialBalance decimal.Decimal
	Type           entity.BankAccountType
	Color          string
}

// UpdateBankAccountOutput represents the output of bank account update.
type UpdateBankAccountOutput struct {
	BankAccount *entity.BankAccount
}

// UpdateBankAccountUseCase handles bank account update logic.
type UpdateBankAccountUseCase struct {
	bankAccountRepo adapter.BankAccountRepository
}

// NewUpdateBankAccountUseCase creates a new UpdateBankAccountUseCase instance.
func NewUpdateBankAccountUseCase(bankAccountRepo adapter.BankAccountRepository) *UpdateBankAccountUseCase {
	return &UpdateBankAccountUseCase{bankAccountRepo: bankAccountRepo}
}

// Execute replaces the account's mutable fields. The owner-scoped fetch is
// the ownership check: a foreign or absent account surfaces as not-found
// before any write happens.
func (uc *UpdateBankAccountUseCase) Execute(ctx context.Context, input UpdateBankAccountInput) (*UpdateBankAccountOutput, error) {
	if !isValidBankAccountType(input.Type) {
		return nil, domainerror.NewBankAccountError(
			domainerror.ErrCodeInvalidBankAccountType,
			"type must be CHECKING, INVESTMENT or CASH",
			domainerror.ErrInvalidBankAccountType,
		)
	}

	if !isValidHexColor(input.Color) {
		return nil, domainerror.NewBankAccountError(
			domainerror.ErrCodeInvalidColorFormat,
			"color must be a valid hex format (#XXXXXX)",
			domainerror.ErrInvalidColorFormat,
		)
	}

	account, err := uc.bankAccountRepo.FindByIDAndUser(ctx, input.BankAccountID, input.UserID)
	if err != nil {
		return nil, err
	}

	account.Name = input.Name
	account.InitialBalance = input.InitialBalance
	account.Type = input.Type
	account.Color = input.Color
	account.UpdatedAt = time.Now().UTC()

	if err := uc.bankAccountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update bank account: %w", err)
	}

	return &UpdateBankAccountOutput{BankAccount: account}, nil
}
