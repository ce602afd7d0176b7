package repository

import (
	"context"
	"fmt"
	"reflect"

	"github.com/jvmonteiro/minipay/pkg/repository"
	"gorm.io/gorm"
)

// UoW provides the transaction boundary and repository access in one
// abstraction. All repositories handed out inside Do share the transaction's
// DB session, so a debit, credit and ledger append either all commit or all
// roll back.
type UoW struct {
	db           *gorm.DB
	tx           *gorm.DB
	repoRegistry map[reflect.Type]func(*gorm.DB) any
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{
		db: db,
		repoRegistry: map[reflect.Type]func(*gorm.DB) any{
			reflect.TypeOf((*repository.AccountRepository)(nil)).Elem():     func(db *gorm.DB) any { return NewAccountRepository(db) },
			reflect.TypeOf((*repository.AccountTypeRepository)(nil)).Elem(): func(db *gorm.DB) any { return NewAccountTypeRepository(db) },
			reflect.TypeOf((*repository.TransferRepository)(nil)).Elem():    func(db *gorm.DB) any { return NewTransferRepository(db) },
		},
	}
}

// Do runs fn in a transaction boundary, providing a UoW bound to that
// transaction for repository access.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txnUow := &UoW{db: u.db, tx: tx, repoRegistry: u.repoRegistry}
		return fn(txnUow)
	})
}

// GetRepository provides type-safe access to repositories using the
// transaction session.
func (u *UoW) GetRepository(repoType reflect.Type) (any, error) {
	constructor, ok := u.repoRegistry[repoType]
	if !ok {
		return nil, fmt.Errorf("unsupported repository type: %v", repoType)
	}
	session := u.tx
	if session == nil {
		session = u.db
	}
	return constructor(session), nil
}

// AccountRepository implements repository.UnitOfWork.
func (u *UoW) AccountRepository() (repository.AccountRepository, error) {
	repoAny, err := u.GetRepository(reflect.TypeOf((*repository.AccountRepository)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	return repoAny.(repository.AccountRepository), nil
}

// AccountTypeRepository implements repository.UnitOfWork.
func (u *UoW) AccountTypeRepository() (repository.AccountTypeRepository, error) {
	repoAny, err := u.GetRepository(reflect.TypeOf((*repository.AccountTypeRepository)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	return repoAny.(repository.AccountTypeRepository), nil
}

// TransferRepository implements repository.UnitOfWork.
func (u *UoW) TransferRepository() (repository.TransferRepository, error) {
	repoAny, err := u.GetRepository(reflect.TypeOf((*repository.TransferRepository)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	return repoAny.(repository.TransferRepository), nil
}
