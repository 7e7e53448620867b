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

// bankAccountRepository implements the adapter.BankAccountRepository interface.
type bankAccountRepository struct {
	db *gorm.DB
}

// NewBankAccountRepository creates a new bank account repository instance.
func NewBankAccountRepository(db *gorm.DB) adapter.BankAccountRepository {
	return &bankAccountRepository{
		db: db,
	}
}

// Create creates a new bank account in the database.
func (r *bankAccountRepository) Create(ctx context.Context, account *entity.BankAccount) error {
	accountModel := model.BankAccountFromEntity(account)
	result := r.db.WithContext(ctx).Create(accountModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUser retrieves all bank accounts for a given user.
func (r *bankAccountRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BankAccount, error) {
	var accountModels []model.BankAccountModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&accountModels)
	if result.Error != nil {
		return nil, result.Error
	}
	accounts := make([]*entity.BankAccount, 0, len(accountModels))
	for i := range accountModels {
		accounts = append(accounts, accountModels[i].ToEntity())
	}
	return accounts, nil
}

// FindByIDAndUser retrieves a bank account by ID scoped to its owner. A
// record owned by another user is indistinguishable from a missing one.
func (r *bankAccountRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.BankAccount, error) {
	var accountModel model.BankAccountModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&accountModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBankAccountNotFound
		}
		return nil, result.Error
	}
	return accountModel.ToEntity(), nil
}

// Update persists changes to an existing bank account.
func (r *bankAccountRepository) Update(ctx context.Context, account *entity.BankAccount) error {
	accountModel := model.BankAccountFromEntity(account)
	result := r.db.WithContext(ctx).Save(accountModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a bank account by its ID.
func (r *bankAccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.BankAccountModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
