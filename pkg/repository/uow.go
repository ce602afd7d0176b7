package repository

import (
	"context"
	"reflect"
)

// UnitOfWork provides a transaction boundary and repository access in one
// abstraction. All repositories obtained inside Do share the same DB
// session, which is what makes the debit, credit and ledger append of a
// transfer atomic.
type UnitOfWork interface {
	// Do executes fn within a transaction boundary. If fn returns an error
	// the transaction is rolled back and the store is left unchanged.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// GetRepository returns a repository of the requested interface type,
	// bound to the current transaction/session.
	//
	//	repoAny, err := uow.GetRepository(reflect.TypeOf((*AccountRepository)(nil)).Elem())
	//	repo := repoAny.(AccountRepository)
	GetRepository(repoType reflect.Type) (any, error)

	// Typed convenience accessors.
	AccountRepository() (AccountRepository, error)
	AccountTypeRepository() (AccountTypeRepository, error)
	TransferRepository() (TransferRepository, error)
}
