// Package bankaccount contains bank account-related use cases.
package bankaccount

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fincheck/backend/internal/application/adapter"
	"github.com/fincheck/backend/internal/domain/entity"
	domainerror "github.com/fincheck/backend/internal/domain/error"
)

// hexColorRegex is compiled once at package level.
var hexColorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// CreateBankAccountInput represents the input for bank account creation.
type CreateBankAccountInput struct {
	UserID         uuid.UUID
	Name           string
	InitialBalance decimal.Decimal
	Type           entity.BankAccountType
	Color          string
}

// CreateBankAccountOutput represents the output of bank account creation.
type CreateBankAccountOutput struct {
	BankAccount *entity.BankAccount
}

// CreateBankAccountUseCase handles bank account creation logic.
type CreateBankAccountUseCase struct {
	bankAccountRepo adapter.BankAccountRepository
}

// NewCreateBankAccountUseCase creates a new CreateBankAccountUseCase instance.
func NewCreateBankAccountUseCase(bankAccountRepo adapter.BankAccountRepository) *CreateBankAccountUseCase {
	return &CreateBankAccountUseCase{bankAccountRepo: bankAccountRepo}
}

// Execute performs the bank account creation with the owner stamped.
func (uc *CreateBankAccountUseCase) Execute(ctx context.Context, input CreateBankAccountInput) (*CreateBankAccountOutput, error) {
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

	account := entity.NewBankAccount(input.UserID, input.Name, input.InitialBalance, input.Type, input.Color)

	if err := uc.bankAccountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create bank account: %w", err)
	}

	return &CreateBankAccountOutput{BankAccount: account}, nil
}

// isValidHexColor validates hex color format (#XXXXXX or #XXX).
func isValidHexColor(color string) bool {
	return hexColorRegex.MatchString(color)
}

// isValidBankAccountType validates the bank account type.
func isValidBankAccountType(accountType entity.BankAccountType) bool {
	switch accountType {
	case entity.BankAccountTypeChecking, entity.BankAccountTypeInvestment, entity.BankAccountTypeCash:
		return true
	}
	return false
}
