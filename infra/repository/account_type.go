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

type accountTypeRepository struct {
	db *gorm.DB
}

// NewAccountTypeRepository creates an account type repository using the provided *gorm.DB.
func NewAccountTypeRepository(db *gorm.DB) repository.AccountTypeRepository {
	return &accountTypeRepository{db: db}
}

// Create implements repository.AccountTypeRepository.
func (r *accountTypeRepository) Create(ctx context.Context, create dto.AccountTypeCreate) error {
	m := AccountType{
		ID:          create.ID,
		Name:        create.Name,
		Permissions: create.Permissions,
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

// Get implements repository.AccountTypeRepository.
func (r *accountTypeRepository) Get(ctx context.Context, id uuid.UUID) (*account.AccountType, error) {
	var m AccountType
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, account.ErrAccountTypeNotFound
		}
		return nil, err
	}
	return mapAccountTypeToDomain(&m), nil
}

func mapAccountTypeToDomain(m *AccountType) *account.AccountType {
	return &account.AccountType{
		ID:          m.ID,
		Name:        m.Name,
		Permissions: account.ParsePermissions(m.Permissions),
		CreatedAt:   m.CreatedAt,
	}
}
