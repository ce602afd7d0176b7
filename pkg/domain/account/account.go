// Package account holds the domain model of the funds-transfer engine:
// accounts, account types with their capability sets, ledger entries and the
// closed set of transfer error kinds.
//
// Balances are int64 values in the smallest currency unit. They are mutated
// only by the transfer engine; the invariant that
// sum(credits) - sum(debits) == balance for every account is owned there.
package account

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Account holds a balance and a reference to the account type that governs
// what it may do in a transfer.
type Account struct {
	ID            uuid.UUID
	AccountTypeID uuid.UUID
	Balance       int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Builder provides a fluent API for constructing Account instances, both for
// new accounts and for hydrating persisted ones.
type Builder struct {
	id            uuid.UUID
	accountTypeID uuid.UUID
	balance       int64
	createdAt     time.Time
	updatedAt     time.Time
}

// New creates a new Builder with a fresh UUID and creation timestamp.
func New() *Builder {
	return &Builder{
		id:        uuid.New(),
		createdAt: time.Now(),
	}
}

// WithID sets the ID for the account being built.
func (b *Builder) WithID(id uuid.UUID) *Builder {
	b.id = id
	return b
}

// WithAccountType sets the account type reference. This is a mandatory field.
func (b *Builder) WithAccountType(typeID uuid.UUID) *Builder {
	b.accountTypeID = typeID
	return b
}

// WithBalance sets the initial balance. Used for account creation with an
// opening balance and for hydrating an existing account from the store.
func (b *Builder) WithBalance(balance int64) *Builder {
	b.balance = balance
	return b
}

// WithCreatedAt sets the creation timestamp, primarily for hydration.
func (b *Builder) WithCreatedAt(t time.Time) *Builder {
	b.createdAt = t
	return b
}

// WithUpdatedAt sets the last-updated timestamp, primarily for hydration.
func (b *Builder) WithUpdatedAt(t time.Time) *Builder {
	b.updatedAt = t
	return b
}

// Build validates the invariants and returns the Account. An account must
// reference an account type. Negative balances are allowed here so persisted
// accounts always hydrate; opening balances are validated at creation.
func (b *Builder) Build() (*Account, error) {
	if b.accountTypeID == uuid.Nil {
		return nil, errors.New("account type is required")
	}
	return &Account{
		ID:            b.id,
		AccountTypeID: b.accountTypeID,
		Balance:       b.balance,
		CreatedAt:     b.createdAt,
		UpdatedAt:     b.updatedAt,
	}, nil
}

// FundsGate selects the balance precondition a sender must satisfy before a
// transfer may proceed.
type FundsGate string

const (
	// GatePositiveBalance requires only that the sender balance is > 0,
	// regardless of the transfer amount. This mirrors the historical behavior
	// and is the default.
	GatePositiveBalance FundsGate = "positive"
	// GateFullAmount requires balance >= amount, the stricter corrected gate.
	GateFullAmount FundsGate = "full-amount"
)

// CanDebit reports whether the account balance satisfies the given funds gate
// for a debit of amount.
func (a *Account) CanDebit(gate FundsGate, amount int64) bool {
	switch gate {
	case GateFullAmount:
		return a.Balance >= amount
	default:
		return a.Balance > 0
	}
}
