// Package repository defines the persistence contracts consumed by the
// services. Implementations live in infra/repository; tests use the fakes in
// internal/fixtures.
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jvmonteiro/minipay/pkg/domain/account"
	"github.com/jvmonteiro/minipay/pkg/dto"
)

// AccountRepository defines data access for accounts. The engine is the only
// caller of UpdateBalance; nothing else writes balances.
type AccountRepository interface {
	Create(ctx context.Context, create dto.AccountCreate) error
	Get(ctx context.Context, id uuid.UUID) (*account.Account, error)
	// GetWithType resolves an account together with its account type as one
	// consistent snapshot (a single joined read, never two racing lookups).
	// Returns account.ErrAccountNotFound when the id does not resolve.
	GetWithType(ctx context.Context, id uuid.UUID) (*account.Account, *account.AccountType, error)
	// UpdateBalance sets the account balance to the given absolute value.
	UpdateBalance(ctx context.Context, id uuid.UUID, balance int64) error
}

// AccountTypeRepository defines data access for account types.
type AccountTypeRepository interface {
	Create(ctx context.Context, create dto.AccountTypeCreate) error
	Get(ctx context.Context, id uuid.UUID) (*account.AccountType, error)
}

// TransferRepository defines data access for the append-only ledger.
type TransferRepository interface {
	// Create appends a ledger entry. The store assigns the monotonic id and
	// fills it into the given transfer.
	Create(ctx context.Context, transfer *account.Transfer) error
	// List returns all committed entries ordered by id ascending.
	List(ctx context.Context) ([]*account.Transfer, error)
}
