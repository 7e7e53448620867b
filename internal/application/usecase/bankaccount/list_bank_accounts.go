// Package bankaccount contains bank account-related use cases.
package bankaccount

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fincheck/backend/internal/application/adapter"
	"github.com/fincheck/backend/internal/domain/entity"
)

// ListBankAccountsInput represents the input for listing bank accounts.
type ListBankAccountsInput struct {
	UserID uuid.UUID
}

// ListBankAccountsOutput represents the output of listing bank accounts.
// Each account carries its derived balance; the raw transaction log is not
// part of the shape.
type ListBankAccountsOutput struct {
	BankAccounts []*entity.BankAccountWithBalance
}

// ListBankAccountsUseCase lists the user's accounts with their current
// balance recomputed from the transaction log on every call.
type ListBankAccountsUseCase struct {
	bankAccountRepo adapter.BankAccountRepository
	transactionRepo adapter.TransactionRepository
}

// NewListBankAccountsUseCase creates a new ListBankAccountsUseCase instance.
func NewListBankAccountsUseCase(
	bankAccountRepo adapter.BankAccountRepository,
	transactionRepo adapter.TransactionRepository,
) *ListBankAccountsUseCase {
	return &ListBankAccountsUseCase{
		bankAccountRepo: bankAccountRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute fetches all accounts and the full transaction log for the user and
// derives each account's balance.
func (uc *ListBankAccountsUseCase) Execute(ctx context.Context, input ListBankAccountsInput) (*ListBankAccountsOutput, error) {
	accounts, err := uc.bankAccountRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bank accounts: %w", err)
	}

	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	withBalance := make([]*entity.BankAccountWithBalance, len(accounts))
	for i, account := range accounts {
		withBalance[i] = &entity.BankAccountWithBalance{
			BankAccount:    account,
			CurrentBalance: account.CurrentBalance(transactions),
		}
	}

	return &ListBankAccountsOutput{BankAccounts: withBalance}, nil
}
