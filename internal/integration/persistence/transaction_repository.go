package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fincheck/backend/internal/application/adapter"
	"github.com/fincheck/backend/internal/domain/entity"
	domainerror "github.com/fincheck/backend/internal/domain/error"
	"github.com/fincheck/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByFilter retrieves the user's transactions matching the filter. The
// date window is half-open: from is inclusive, to is exclusive.
func (r *transactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", filter.UserID).
		Where("date >= ? AND date < ?", filter.From, filter.To)
	if filter.BankAccountID != nil {
		query = query.Where("bank_account_id = ?", *filter.BankAccountID)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}

	var transactionModels []model.TransactionModel
	result := query.Order("date DESC, created_at DESC").Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	transactions := make([]*entity.Transaction, 0, len(transactionModels))
	for i := range transactionModels {
		transactions = append(transactions, transactionModels[i].ToEntity())
	}
	return transactions, nil
}

// FindByUser retrieves all transactions for a given user.
func (r *transactionRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	transactions := make([]*entity.Transaction, 0, len(transactionModels))
	for i := range transactionModels {
		transactions = append(transactions, transactionModels[i].ToEntity())
	}
	return transactions, nil
}

// FindByIDAndUser retrieves a transaction by ID scoped to its owner.
func (r *transactionRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// Update persists changes to an existing transaction.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Save(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a transaction by its ID.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TransactionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
