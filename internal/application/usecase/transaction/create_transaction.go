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
	domainerror "github.com/fincheck/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID        uuid.UUID
	BankAccountID uuid.UUID
	CategoryID    uuid.UUID
	Name          string
	Value         decimal.Decimal
	Date          time.Time
	Type          entity.TransactionType
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic. The referenced
// bank account and category must both be owned by the requesting user.
type CreateTransactionUseCase struct {
	transactionRepo          adapter.TransactionRepository
	validateBankAccountOwner *bankaccount.ValidateBankAccountOwnershipUseCase
	validateCategoryOwner    *category.ValidateCategoryOwnershipUseCase
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	validateBankAccountOwner *bankaccount.ValidateBankAccountOwnershipUseCase,
	validateCategoryOwner *category.ValidateCategoryOwnershipUseCase,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo:          transactionRepo,
		validateBankAccountOwner: validateBankAccountOwner,
		validateCategoryOwner:    validateCategoryOwner,
	}
}

// Execute validates the referenced entities' ownership and inserts the
// transaction with the owner stamped.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateTransactionFields(input.Value, input.Type); err != nil {
		return nil, err
	}

	// Both checks are independent; run them concurrently and fail on the
	// first error.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return uc.validateBankAccountOwner.Execute(gctx, input.UserID, input.BankAccountID)
	})
	g.Go(func() error {
		return uc.validateCategoryOwner.Execute(gctx, input.UserID, input.CategoryID)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	tx := entity.NewTransaction(
		input.UserID,
		input.BankAccountID,
		input.CategoryID,
		input.Name,
		input.Value,
		input.Date,
		input.Type,
	)

	if err := uc.transactionRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{Transaction: tx}, nil
}

// validateTransactionFields checks the value and type constraints shared by
// create and update.
func validateTransactionFields(value decimal.Decimal, transactionType entity.TransactionType) error {
	if !value.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNonPositiveValue,
			"value must be a positive number",
			domainerror.ErrNonPositiveValue,
		)
	}
	if transactionType != entity.TransactionTypeIncome && transactionType != entity.TransactionTypeOutcome {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be INCOME or OUTCOME",
			domainerror.ErrInvalidTransactionType,
		)
	}
	return nil
}
