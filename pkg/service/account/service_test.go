package account_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/jvmonteiro/minipay/internal/fixtures/mocks"
	"github.com/jvmonteiro/minipay/pkg/domain/account"
	"github.com/jvmonteiro/minipay/pkg/repository"
	accountsvc "github.com/jvmonteiro/minipay/pkg/service/account"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateAccountType_Success(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	typeRepo := mocks.NewMockAccountTypeRepository(t)

	uow.On("Do", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		fn := args.Get(1).(func(repository.UnitOfWork) error)
		require.NoError(t, fn(uow))
	}).Once()
	uow.On("AccountTypeRepository").Return(typeRepo, nil).Once()
	typeRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	svc := accountsvc.NewService(uow, slog.Default())
	at, err := svc.CreateAccountType(context.Background(), "merchant", []string{"receive"})
	require.NoError(t, err)
	assert.Equal(t, "merchant", at.Name)
	assert.True(t, at.Can(account.PermissionReceive))
	assert.False(t, at.Can(account.PermissionSend))
}

func TestCreateAccountType_EmptyName(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	svc := accountsvc.NewService(uow, slog.Default())

	_, err := svc.CreateAccountType(context.Background(), "", []string{"send"})
	require.Error(t, err)
	uow.AssertNotCalled(t, "Do")
}

func TestCreateAccount_Success(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	typeRepo := mocks.NewMockAccountTypeRepository(t)
	accountRepo := mocks.NewMockAccountRepository(t)
	typeID := uuid.New()

	uow.On("Do", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		fn := args.Get(1).(func(repository.UnitOfWork) error)
		require.NoError(t, fn(uow))
	}).Once()
	uow.On("AccountTypeRepository").Return(typeRepo, nil).Once()
	uow.On("AccountRepository").Return(accountRepo, nil).Once()
	typeRepo.On("Get", mock.Anything, typeID).
		Return(&account.AccountType{ID: typeID, Name: "personal"}, nil).Once()
	accountRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	svc := accountsvc.NewService(uow, slog.Default())
	a, err := svc.CreateAccount(context.Background(), typeID, 500)
	require.NoError(t, err)
	assert.Equal(t, typeID, a.AccountTypeID)
	assert.Equal(t, int64(500), a.Balance)
}

func TestCreateAccount_NegativeOpeningBalance(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	svc := accountsvc.NewService(uow, slog.Default())

	_, err := svc.CreateAccount(context.Background(), uuid.New(), -1)
	require.ErrorIs(t, err, account.ErrInvalidRequest)
	uow.AssertNotCalled(t, "Do")
}

func TestCreateAccount_UnknownType(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	typeRepo := mocks.NewMockAccountTypeRepository(t)
	typeID := uuid.New()

	uow.On("Do", mock.Anything, mock.Anything).Return(account.ErrAccountTypeNotFound).Run(func(args mock.Arguments) {
		fn := args.Get(1).(func(repository.UnitOfWork) error)
		require.ErrorIs(t, fn(uow), account.ErrAccountTypeNotFound)
	}).Once()
	uow.On("AccountTypeRepository").Return(typeRepo, nil).Once()
	typeRepo.On("Get", mock.Anything, typeID).Return(nil, account.ErrAccountTypeNotFound).Once()

	svc := accountsvc.NewService(uow, slog.Default())
	_, err := svc.CreateAccount(context.Background(), typeID, 0)
	require.ErrorIs(t, err, account.ErrAccountTypeNotFound)
}

func TestCreateAccount_RepoError(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	typeRepo := mocks.NewMockAccountTypeRepository(t)
	accountRepo := mocks.NewMockAccountRepository(t)
	typeID := uuid.New()
	repoErr := errors.New("insert failed")

	uow.On("Do", mock.Anything, mock.Anything).Return(repoErr).Run(func(args mock.Arguments) {
		fn := args.Get(1).(func(repository.UnitOfWork) error)
		require.ErrorIs(t, fn(uow), repoErr)
	}).Once()
	uow.On("AccountTypeRepository").Return(typeRepo, nil).Once()
	uow.On("AccountRepository").Return(accountRepo, nil).Once()
	typeRepo.On("Get", mock.Anything, typeID).
		Return(&account.AccountType{ID: typeID, Name: "personal"}, nil).Once()
	accountRepo.On("Create", mock.Anything, mock.Anything).Return(repoErr).Once()

	svc := accountsvc.NewService(uow, slog.Default())
	_, err := svc.CreateAccount(context.Background(), typeID, 0)
	require.ErrorIs(t, err, repoErr)
}

func TestGetAccountWithType_Success(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	accountRepo := mocks.NewMockAccountRepository(t)
	typeID := uuid.New()
	accountID := uuid.New()

	a := &account.Account{ID: accountID, AccountTypeID: typeID, Balance: 42}
	at := &account.AccountType{
		ID:          typeID,
		Name:        "personal",
		Permissions: account.Permissions{account.PermissionSend, account.PermissionReceive},
	}

	uow.On("Do", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		fn := args.Get(1).(func(repository.UnitOfWork) error)
		require.NoError(t, fn(uow))
	}).Once()
	uow.On("AccountRepository").Return(accountRepo, nil).Once()
	accountRepo.On("GetWithType", mock.Anything, accountID).Return(a, at, nil).Once()

	svc := accountsvc.NewService(uow, slog.Default())
	out, err := svc.GetAccountWithType(context.Background(), accountID)
	require.NoError(t, err)
	assert.Equal(t, accountID, out.Account.ID)
	assert.Equal(t, int64(42), out.Account.Balance)
	assert.Equal(t, "personal", out.Type.Name)
	assert.ElementsMatch(t, []string{"send", "receive"}, out.Type.Permissions)
}

func TestGetAccountWithType_NotFound(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	accountRepo := mocks.NewMockAccountRepository(t)
	accountID := uuid.New()

	uow.On("Do", mock.Anything, mock.Anything).Return(account.ErrAccountNotFound).Run(func(args mock.Arguments) {
		fn := args.Get(1).(func(repository.UnitOfWork) error)
		require.ErrorIs(t, fn(uow), account.ErrAccountNotFound)
	}).Once()
	uow.On("AccountRepository").Return(accountRepo, nil).Once()
	accountRepo.On("GetWithType", mock.Anything, accountID).Return(nil, nil, account.ErrAccountNotFound).Once()

	svc := accountsvc.NewService(uow, slog.Default())
	_, err := svc.GetAccountWithType(context.Background(), accountID)
	require.ErrorIs(t, err, account.ErrAccountNotFound)
}
