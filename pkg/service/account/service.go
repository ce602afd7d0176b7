// Package account provides the business operations around accounts and
// account types: creation and the joined account/type lookup. Balance
// mutation is owned exclusively by the transfer engine.
package account

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jvmonteiro/minipay/pkg/domain/account"
	"github.com/jvmonteiro/minipay/pkg/dto"
	"github.com/jvmonteiro/minipay/pkg/repository"
)

// Service provides account and account type operations.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewService creates a new account Service.
func NewService(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// CreateAccountType creates a named bundle of permissions that accounts can
// reference.
func (s *Service) CreateAccountType(ctx context.Context, name string, permissions []string) (*account.AccountType, error) {
	at, err := account.NewAccountType(name, account.ParsePermissions(permissions))
	if err != nil {
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountTypeRepository()
		if err != nil {
			return err
		}
		return repo.Create(ctx, dto.AccountTypeCreate{
			ID:          at.ID,
			Name:        at.Name,
			Permissions: at.Permissions.Strings(),
		})
	})
	if err != nil {
		s.logger.Error("create account type failed", "name", name, "error", err)
		return nil, err
	}
	s.logger.Info("account type created", "id", at.ID, "name", at.Name, "permissions", at.Permissions)
	return at, nil
}

// CreateAccount creates an account of the given type with an optional opening
// balance. The type must exist; the engine never creates one implicitly.
func (s *Service) CreateAccount(ctx context.Context, typeID uuid.UUID, initialBalance int64) (*account.Account, error) {
	if initialBalance < 0 {
		return nil, account.ErrInvalidRequest
	}
	a, err := account.New().
		WithAccountType(typeID).
		WithBalance(initialBalance).
		Build()
	if err != nil {
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		types, err := uow.AccountTypeRepository()
		if err != nil {
			return err
		}
		if _, err := types.Get(ctx, typeID); err != nil {
			return err
		}
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		return accounts.Create(ctx, dto.AccountCreate{
			ID:            a.ID,
			AccountTypeID: a.AccountTypeID,
			Balance:       a.Balance,
		})
	})
	if err != nil {
		s.logger.Error("create account failed", "type_id", typeID, "error", err)
		return nil, err
	}
	s.logger.Info("account created", "id", a.ID, "type_id", typeID, "balance", a.Balance)
	return a, nil
}

// GetAccountWithType resolves an account together with its account type as a
// single consistent snapshot.
func (s *Service) GetAccountWithType(ctx context.Context, id uuid.UUID) (*dto.AccountWithType, error) {
	var out *dto.AccountWithType
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		a, at, err := accounts.GetWithType(ctx, id)
		if err != nil {
			return err
		}
		out = &dto.AccountWithType{
			Account: dto.AccountRead{
				ID:            a.ID,
				AccountTypeID: a.AccountTypeID,
				Balance:       a.Balance,
				CreatedAt:     a.CreatedAt,
			},
			Type: dto.AccountTypeRead{
				ID:          at.ID,
				Name:        at.Name,
				Permissions: at.Permissions.Strings(),
				CreatedAt:   at.CreatedAt,
			},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
