package bankaccount

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fincheck/backend/internal/application/adapter"
	"github.com/fincheck/backend/internal/domain/entity"
	domainerror "github.com/fincheck/backend/internal/domain/error"
)

// fakeBankAccountRepository is an in-memory BankAccountRepository.
type fakeBankAccountRepository struct {
	accounts map[uuid.UUID]*entity.BankAccount
	deleted  []uuid.UUID
}

func newFakeBankAccountRepository() *fakeBankAccountRepository {
	return &fakeBankAccountRepository{accounts: make(map[uuid.UUID]*entity.BankAccount)}
}

func (f *fakeBankAccountRepository) Create(_ context.Context, account *entity.BankAccount) error {
	f.accounts[account.ID] = account
	return nil
}

func (f *fakeBankAccountRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.BankAccount, error) {
	var result []*entity.BankAccount
	for _, account := range f.accounts {
		if account.UserID == userID {
			result = append(result, account)
		}
	}
	return result, nil
}

func (f *fakeBankAccountRepository) FindByIDAndUser(_ context.Context, id, userID uuid.UUID) (*entity.BankAccount, error) {
	account, exists := f.accounts[id]
	if !exists || account.UserID != userID {
		return nil, domainerror.ErrBankAccountNotFound
	}
	return account, nil
}

func (f *fakeBankAccountRepository) Update(_ context.Context, account *entity.BankAccount) error {
	f.accounts[account.ID] = account
	return nil
}

func (f *fakeBankAccountRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.accounts, id)
	f.deleted = append(f.deleted, id)
	return nil
}

// fakeTransactionLog serves only FindByUser; the balance derivation needs
// nothing else from the transaction repository.
type fakeTransactionLog struct {
	transactions []*entity.Transaction
}

func (f *fakeTransactionLog) Create(_ context.Context, tx *entity.Transaction) error {
	f.transactions = append(f.transactions, tx)
	return nil
}

func (f *fakeTransactionLog) FindByFilter(_ context.Context, _ adapter.TransactionFilter) ([]*entity.Transaction, error) {
	return f.transactions, nil
}

func (f *fakeTransactionLog) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	var result []*entity.Transaction
	for _, tx := range f.transactions {
		if tx.UserID == userID {
			result = append(result, tx)
		}
	}
	return result, nil
}

func (f *fakeTransactionLog) FindByIDAndUser(_ context.Context, id, userID uuid.UUID) (*entity.Transaction, error) {
	for _, tx := range f.transactions {
		if tx.ID == id && tx.UserID == userID {
			return tx, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

func (f *fakeTransactionLog) Update(_ context.Context, _ *entity.Transaction) error { return nil }

func (f *fakeTransactionLog) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func TestCreateBankAccountUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("creates account stamped with owner", func(t *testing.T) {
		repo := newFakeBankAccountRepository()
		uc := NewCreateBankAccountUseCase(repo)

		output, err := uc.Execute(ctx, CreateBankAccountInput{
			UserID:         userID,
			Name:           "Nubank",
			InitialBalance: decimal.NewFromInt(1000),
			Type:           entity.BankAccountTypeChecking,
			Color:          "#7950F2",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.BankAccount.UserID != userID {
			t.Error("account not stamped with requesting user")
		}
		if _, ok := repo.accounts[output.BankAccount.ID]; !ok {
			t.Error("account was not persisted")
		}
	})

	t.Run("rejects unknown account type", func(t *testing.T) {
		uc := NewCreateBankAccountUseCase(newFakeBankAccountRepository())

		_, err := uc.Execute(ctx, CreateBankAccountInput{
			UserID:         userID,
			Name:           "x",
			InitialBalance: decimal.Zero,
			Type:           "SAVINGS",
			Color:          "#FFFFFF",
		})
		assertBankAccountErrorCode(t, err, domainerror.ErrCodeInvalidBankAccountType)
	})

	t.Run("rejects malformed color", func(t *testing.T) {
		uc := NewCreateBankAccountUseCase(newFakeBankAccountRepository())

		_, err := uc.Execute(ctx, CreateBankAccountInput{
			UserID:         userID,
			Name:           "x",
			InitialBalance: decimal.Zero,
			Type:           entity.BankAccountTypeCash,
			Color:          "red",
		})
		assertBankAccountErrorCode(t, err, domainerror.ErrCodeInvalidColorFormat)
	})
}

func TestListBankAccountsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	date := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	repo := newFakeBankAccountRepository()
	account := entity.NewBankAccount(userID, "Nubank", decimal.NewFromInt(1000), entity.BankAccountTypeChecking, "#7950F2")
	repo.accounts[account.ID] = account

	log := &fakeTransactionLog{transactions: []*entity.Transaction{
		entity.NewTransaction(userID, account.ID, uuid.New(), "salary", decimal.NewFromInt(500), date, entity.TransactionTypeIncome),
		entity.NewTransaction(userID, account.ID, uuid.New(), "groceries", decimal.NewFromInt(200), date, entity.TransactionTypeOutcome),
	}}

	uc := NewListBankAccountsUseCase(repo, log)
	output, err := uc.Execute(ctx, ListBankAccountsInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.BankAccounts) != 1 {
		t.Fatalf("expected 1 account, got %d", len(output.BankAccounts))
	}
	if got := output.BankAccounts[0].CurrentBalance; !got.Equal(decimal.NewFromInt(1300)) {
		t.Errorf("expected derived balance 1300, got %s", got)
	}
}

func TestUpdateBankAccountUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	seededRepo := func() (*fakeBankAccountRepository, *entity.BankAccount) {
		repo := newFakeBankAccountRepository()
		account := entity.NewBankAccount(userID, "Old", decimal.NewFromInt(100), entity.BankAccountTypeChecking, "#000000")
		repo.accounts[account.ID] = account
		return repo, account
	}

	t.Run("replaces every mutable field", func(t *testing.T) {
		repo, account := seededRepo()
		uc := NewUpdateBankAccountUseCase(repo)

		output, err := uc.Execute(ctx, UpdateBankAccountInput{
			UserID:         userID,
			BankAccountID:  account.ID,
			Name:           "New",
			InitialBalance: decimal.NewFromInt(250),
			Type:           entity.BankAccountTypeInvestment,
			Color:          "#FF0000",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := output.BankAccount
		if got.Name != "New" || !got.InitialBalance.Equal(decimal.NewFromInt(250)) ||
			got.Type != entity.BankAccountTypeInvestment || got.Color != "#FF0000" {
			t.Errorf("fields were not fully replaced: %+v", got)
		}
	})

	t.Run("foreign account surfaces as not found", func(t *testing.T) {
		repo, account := seededRepo()
		uc := NewUpdateBankAccountUseCase(repo)

		_, err := uc.Execute(ctx, UpdateBankAccountInput{
			UserID:         uuid.New(),
			BankAccountID:  account.ID,
			Name:           "Hijack",
			InitialBalance: decimal.Zero,
			Type:           entity.BankAccountTypeCash,
			Color:          "#FFFFFF",
		})
		if !errors.Is(err, domainerror.ErrBankAccountNotFound) {
			t.Errorf("expected ErrBankAccountNotFound, got %v", err)
		}
	})
}

func TestDeleteBankAccountUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	repo := newFakeBankAccountRepository()
	account := entity.NewBankAccount(userID, "Nubank", decimal.NewFromInt(100), entity.BankAccountTypeChecking, "#7950F2")
	repo.accounts[account.ID] = account

	validator := NewValidateBankAccountOwnershipUseCase(repo)
	uc := NewDeleteBankAccountUseCase(repo, validator)

	t.Run("foreign account is not deleted", func(t *testing.T) {
		err := uc.Execute(ctx, DeleteBankAccountInput{UserID: uuid.New(), BankAccountID: account.ID})
		if !errors.Is(err, domainerror.ErrBankAccountNotFound) {
			t.Errorf("expected ErrBankAccountNotFound, got %v", err)
		}
		if len(repo.deleted) != 0 {
			t.Error("delete must not happen after a failed ownership check")
		}
	})

	t.Run("owner can delete", func(t *testing.T) {
		if err := uc.Execute(ctx, DeleteBankAccountInput{UserID: userID, BankAccountID: account.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.deleted) != 1 || repo.deleted[0] != account.ID {
			t.Error("account was not deleted")
		}
	})
}

func assertBankAccountErrorCode(t *testing.T, err error, code domainerror.BankAccountErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	var accountErr *domainerror.BankAccountError
	if !errors.As(err, &accountErr) {
		t.Fatalf("expected BankAccountError, got %T: %v", err, err)
	}
	if accountErr.Code != code {
		t.Errorf("expected code %s, got %s", code, accountErr.Code)
	}
}
