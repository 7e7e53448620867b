package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fincheck/backend/internal/domain/entity"
)

// TransactionFilter narrows a transaction listing. From is inclusive, To is
// exclusive. BankAccountID and Type are optional.
type TransactionFilter struct {
	UserID        uuid.UUID
	From          time.Time
	To            time.Time
	BankAccountID *uuid.UUID
	Type          *entity.TransactionType
}

// TransactionRepository defines the interface for transaction data operations.
type TransactionRepository interface {
	// Create persists a new transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByFilter retrieves transactions matching the filter, ordered by date.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// FindByUser retrieves the full transaction log for the user, used for
	// balance derivation.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)

	// FindByIDAndUser retrieves the transaction matching both id and owner.
	// Returns domainerror.ErrTransactionNotFound when no such row exists.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error)

	// Update persists changes to an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes the transaction with the given id.
	Delete(ctx context.Context, id uuid.UUID) error
}
