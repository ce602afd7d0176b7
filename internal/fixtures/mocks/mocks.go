// Package mocks contains testify mocks for the persistence contracts.
package mocks

import (
	"context"
	"reflect"

	"github.com/google/uuid"
	"github.com/jvmonteiro/minipay/pkg/domain/account"
	"github.com/jvmonteiro/minipay/pkg/dto"
	"github.com/jvmonteiro/minipay/pkg/repository"
	"github.com/stretchr/testify/mock"
)

// MockUnitOfWork is a testify mock for repository.UnitOfWork.
type MockUnitOfWork struct {
	mock.Mock
}

// NewMockUnitOfWork creates a MockUnitOfWork with cleanup-time expectation checks.
func NewMockUnitOfWork(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUnitOfWork {
	m := &MockUnitOfWork{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUnitOfWork) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}

func (m *MockUnitOfWork) GetRepository(repoType reflect.Type) (any, error) {
	args := m.Called(repoType)
	return args.Get(0), args.Error(1)
}

func (m *MockUnitOfWork) AccountRepository() (repository.AccountRepository, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.AccountRepository), args.Error(1)
}

func (m *MockUnitOfWork) AccountTypeRepository() (repository.AccountTypeRepository, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.AccountTypeRepository), args.Error(1)
}

func (m *MockUnitOfWork) TransferRepository() (repository.TransferRepository, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.TransferRepository), args.Error(1)
}

// MockAccountRepository is a testify mock for repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

// NewMockAccountRepository creates a MockAccountRepository with cleanup-time
// expectation checks.
func NewMockAccountRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAccountRepository) Create(ctx context.Context, create dto.AccountCreate) error {
	args := m.Called(ctx, create)
	return args.Error(0)
}

func (m *MockAccountRepository) Get(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAccountRepository) GetWithType(ctx context.Context, id uuid.UUID) (*account.Account, *account.AccountType, error) {
	args := m.Called(ctx, id)
	var a *account.Account
	var t *account.AccountType
	if args.Get(0) != nil {
		a = args.Get(0).(*account.Account)
	}
	if args.Get(1) != nil {
		t = args.Get(1).(*account.AccountType)
	}
	return a, t, args.Error(2)
}

func (m *MockAccountRepository) UpdateBalance(ctx context.Context, id uuid.UUID, balance int64) error {
	args := m.Called(ctx, id, balance)
	return args.Error(0)
}

// MockAccountTypeRepository is a testify mock for repository.AccountTypeRepository.
type MockAccountTypeRepository struct {
	mock.Mock
}

// NewMockAccountTypeRepository creates a MockAccountTypeRepository with
// cleanup-time expectation checks.
func NewMockAccountTypeRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountTypeRepository {
	m := &MockAccountTypeRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAccountTypeRepository) Create(ctx context.Context, create dto.AccountTypeCreate) error {
	args := m.Called(ctx, create)
	return args.Error(0)
}

func (m *MockAccountTypeRepository) Get(ctx context.Context, id uuid.UUID) (*account.AccountType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.AccountType), args.Error(1)
}

// MockTransferRepository is a testify mock for repository.TransferRepository.
type MockTransferRepository struct {
	mock.Mock
}

// NewMockTransferRepository creates a MockTransferRepository with cleanup-time
// expectation checks.
func NewMockTransferRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransferRepository {
	m := &MockTransferRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTransferRepository) Create(ctx context.Context, transfer *account.Transfer) error {
	args := m.Called(ctx, transfer)
	return args.Error(0)
}

func (m *MockTransferRepository) List(ctx context.Context) ([]*account.Transfer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*account.Transfer), args.Error(1)
}
