package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jvmonteiro/minipay/pkg/domain/account"
	"github.com/jvmonteiro/minipay/pkg/dto"
	"github.com/jvmonteiro/minipay/pkg/repository"
	"gorm.io/gorm"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates an account repository using the provided *gorm.DB.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// Create implements repository.AccountRepository.
func (r *accountRepository) Create(ctx context.Context, create dto.AccountCreate) error {
	m := Account{
		ID:            create.ID,
		AccountTypeID: create.AccountTypeID,
		Balance:       create.Balance,
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

// Get implements repository.AccountRepository.
func (r *accountRepository) Get(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	var m Account
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, account.ErrAccountNotFound
		}
		return nil, err
	}
	return mapAccountToDomain(&m)
}

// GetWithType implements repository.AccountRepository. The account and its
// type come back from one joined query, so the pair is a snapshot taken at a
// single point in time.
func (r *accountRepository) GetWithType(ctx context.Context, id uuid.UUID) (*account.Account, *account.AccountType, error) {
	var m Account
	err := r.db.WithContext(ctx).
		Joins("AccountType").
		First(&m, "accounts.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, account.ErrAccountNotFound
		}
		return nil, nil, err
	}
	a, err := mapAccountToDomain(&m)
	if err != nil {
		return nil, nil, err
	}
	if m.AccountType.ID == uuid.Nil {
		return nil, nil, account.ErrAccountTypeNotFound
	}
	return a, mapAccountTypeToDomain(&m.AccountType), nil
}

// UpdateBalance implements repository.AccountRepository.
func (r *accountRepository) UpdateBalance(ctx context.Context, id uuid.UUID, balance int64) error {
	res := r.db.WithContext(ctx).
		Model(&Account{}).
		Where("id = ?", id).
		Update("balance", balance)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return account.ErrAccountNotFound
	}
	return nil
}

func mapAccountToDomain(m *Account) (*account.Account, error) {
	return account.New().
		WithID(m.ID).
		WithAccountType(m.AccountTypeID).
		WithBalance(m.Balance).
		WithCreatedAt(m.CreatedAt).
		WithUpdatedAt(m.UpdatedAt).
		Build()
}
