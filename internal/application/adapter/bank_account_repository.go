package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/fincheck/backend/internal/domain/entity"
)

// BankAccountRepository defines the interface for bank account data operations.
type BankAccountRepository interface {
	// Create persists a new bank account.
	Create(ctx context.Context, account *entity.BankAccount) error

	// FindByUser retrieves all bank accounts owned by the user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BankAccount, error)

	// FindByIDAndUser retrieves the account matching both id and owner.
	// Returns domainerror.ErrBankAccountNotFound when no such row exists,
	// whether the account is absent or owned by someone else.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.BankAccount, error)

	// Update persists changes to an existing bank account.
	Update(ctx context.Context, account *entity.BankAccount) error

	// Delete removes the bank account with the given id.
	Delete(ctx context.Context, id uuid.UUID) error
}
