// Package fixtures provides test doubles for the persistence layer: a
// transactional in-memory store and testify mocks. The store mimics snapshot
// isolation: reads inside Do see a snapshot taken when the transaction began,
// writes are buffered and applied only when fn succeeds. A failed transfer
// therefore leaves balances and the ledger untouched, and the engine's
// per-account locking is what prevents stale-snapshot double-spends, exactly
// as with a real database.
package fixtures

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/google/uuid"
	"github.com/jvmonteiro/minipay/pkg/domain/account"
	"github.com/jvmonteiro/minipay/pkg/dto"
	"github.com/jvmonteiro/minipay/pkg/repository"
)

type storeState struct {
	accounts  map[uuid.UUID]*account.Account
	types     map[uuid.UUID]*account.AccountType
	transfers []*account.Transfer
	nextID    uint64
}

func (s *storeState) clone() *storeState {
	cp := &storeState{
		accounts:  make(map[uuid.UUID]*account.Account, len(s.accounts)),
		types:     make(map[uuid.UUID]*account.AccountType, len(s.types)),
		transfers: append([]*account.Transfer(nil), s.transfers...),
		nextID:    s.nextID,
	}
	for id, a := range s.accounts {
		c := *a
		cp.accounts[id] = &c
	}
	for id, t := range s.types {
		c := *t
		cp.types[id] = &c
	}
	return cp
}

// MemoryUoW is an in-memory repository.UnitOfWork.
type MemoryUoW struct {
	mu    sync.Mutex
	state *storeState

	// FailUpdateBalance, when set, makes UpdateBalance calls fail with this
	// error. Used to exercise commit-phase rollback.
	FailUpdateBalance error
	// FailTransferCreate, when set, makes ledger appends fail.
	FailTransferCreate error
}

// NewMemoryUoW creates an empty in-memory unit of work.
func NewMemoryUoW() *MemoryUoW {
	return &MemoryUoW{state: &storeState{
		accounts: make(map[uuid.UUID]*account.Account),
		types:    make(map[uuid.UUID]*account.AccountType),
		nextID:   1,
	}}
}

// SeedAccountType stores an account type directly, bypassing services.
func (m *MemoryUoW) SeedAccountType(t *account.AccountType) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := *t
	m.state.types[t.ID] = &c
}

// SeedAccount stores an account directly, bypassing services.
func (m *MemoryUoW) SeedAccount(a *account.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := *a
	m.state.accounts[a.ID] = &c
}

// Balance returns the committed balance of an account.
func (m *MemoryUoW) Balance(id uuid.UUID) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.state.accounts[id]; ok {
		return a.Balance
	}
	return 0
}

// LedgerSize returns the number of committed ledger entries.
func (m *MemoryUoW) LedgerSize() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.state.transfers)
}

// Do implements repository.UnitOfWork. Reads see the snapshot taken here;
// buffered writes are merged into committed state only if fn succeeds.
func (m *MemoryUoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	m.mu.Lock()
	snapshot := m.state.clone()
	m.mu.Unlock()

	txn := &memoryTxn{
		snapshot:           snapshot,
		failUpdateBalance:  m.FailUpdateBalance,
		failTransferCreate: m.FailTransferCreate,
	}
	if err := fn(txn); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for id, a := range txn.dirtyAccounts {
		c := *a
		m.state.accounts[id] = &c
	}
	for id, t := range txn.dirtyTypes {
		c := *t
		m.state.types[id] = &c
	}
	for _, e := range txn.appended {
		c := *e
		c.ID = m.state.nextID
		m.state.nextID++
		e.ID = c.ID
		m.state.transfers = append(m.state.transfers, &c)
	}
	return nil
}

// GetRepository implements repository.UnitOfWork.
func (m *MemoryUoW) GetRepository(repoType reflect.Type) (any, error) {
	return nil, fmt.Errorf("unsupported repository type: %v", repoType)
}

// AccountRepository implements repository.UnitOfWork.
func (m *MemoryUoW) AccountRepository() (repository.AccountRepository, error) {
	return nil, fmt.Errorf("repositories are only available inside Do")
}

// AccountTypeRepository implements repository.UnitOfWork.
func (m *MemoryUoW) AccountTypeRepository() (repository.AccountTypeRepository, error) {
	return nil, fmt.Errorf("repositories are only available inside Do")
}

// TransferRepository implements repository.UnitOfWork.
func (m *MemoryUoW) TransferRepository() (repository.TransferRepository, error) {
	return nil, fmt.Errorf("repositories are only available inside Do")
}

// memoryTxn is the in-transaction view handed to fn by Do. It is not itself
// safe for concurrent use, matching a real transaction session.
type memoryTxn struct {
	snapshot           *storeState
	dirtyAccounts      map[uuid.UUID]*account.Account
	dirtyTypes         map[uuid.UUID]*account.AccountType
	appended           []*account.Transfer
	failUpdateBalance  error
	failTransferCreate error
}

func (t *memoryTxn) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return fn(t)
}

func (t *memoryTxn) GetRepository(repoType reflect.Type) (any, error) {
	switch repoType {
	case reflect.TypeOf((*repository.AccountRepository)(nil)).Elem():
		return &memoryAccountRepo{txn: t}, nil
	case reflect.TypeOf((*repository.AccountTypeRepository)(nil)).Elem():
		return &memoryAccountTypeRepo{txn: t}, nil
	case reflect.TypeOf((*repository.TransferRepository)(nil)).Elem():
		return &memoryTransferRepo{txn: t}, nil
	}
	return nil, fmt.Errorf("unsupported repository type: %v", repoType)
}

func (t *memoryTxn) AccountRepository() (repository.AccountRepository, error) {
	return &memoryAccountRepo{txn: t}, nil
}

func (t *memoryTxn) AccountTypeRepository() (repository.AccountTypeRepository, error) {
	return &memoryAccountTypeRepo{txn: t}, nil
}

func (t *memoryTxn) TransferRepository() (repository.TransferRepository, error) {
	return &memoryTransferRepo{txn: t}, nil
}

func (t *memoryTxn) account(id uuid.UUID) (*account.Account, bool) {
	if t.dirtyAccounts != nil {
		if a, ok := t.dirtyAccounts[id]; ok {
			return a, true
		}
	}
	a, ok := t.snapshot.accounts[id]
	return a, ok
}

func (t *memoryTxn) writeAccount(a *account.Account) {
	if t.dirtyAccounts == nil {
		t.dirtyAccounts = make(map[uuid.UUID]*account.Account)
	}
	t.dirtyAccounts[a.ID] = a
}

type memoryAccountRepo struct {
	txn *memoryTxn
}

func (r *memoryAccountRepo) Create(ctx context.Context, create dto.AccountCreate) error {
	a, err := account.New().
		WithID(create.ID).
		WithAccountType(create.AccountTypeID).
		WithBalance(create.Balance).
		Build()
	if err != nil {
		return err
	}
	r.txn.writeAccount(a)
	return nil
}

func (r *memoryAccountRepo) Get(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	a, ok := r.txn.account(id)
	if !ok {
		return nil, account.ErrAccountNotFound
	}
	c := *a
	return &c, nil
}

func (r *memoryAccountRepo) GetWithType(ctx context.Context, id uuid.UUID) (*account.Account, *account.AccountType, error) {
	a, ok := r.txn.account(id)
	if !ok {
		return nil, nil, account.ErrAccountNotFound
	}
	t, ok := r.txn.snapshot.types[a.AccountTypeID]
	if !ok {
		if t, ok = r.txn.dirtyTypes[a.AccountTypeID]; !ok {
			return nil, nil, account.ErrAccountTypeNotFound
		}
	}
	ac, tc := *a, *t
	return &ac, &tc, nil
}

func (r *memoryAccountRepo) UpdateBalance(ctx context.Context, id uuid.UUID, balance int64) error {
	if err := r.txn.failUpdateBalance; err != nil {
		return err
	}
	a, ok := r.txn.account(id)
	if !ok {
		return account.ErrAccountNotFound
	}
	c := *a
	c.Balance = balance
	r.txn.writeAccount(&c)
	return nil
}

type memoryAccountTypeRepo struct {
	txn *memoryTxn
}

func (r *memoryAccountTypeRepo) Create(ctx context.Context, create dto.AccountTypeCreate) error {
	if r.txn.dirtyTypes == nil {
		r.txn.dirtyTypes = make(map[uuid.UUID]*account.AccountType)
	}
	r.txn.dirtyTypes[create.ID] = &account.AccountType{
		ID:          create.ID,
		Name:        create.Name,
		Permissions: account.ParsePermissions(create.Permissions),
	}
	return nil
}

func (r *memoryAccountTypeRepo) Get(ctx context.Context, id uuid.UUID) (*account.AccountType, error) {
	if t, ok := r.txn.dirtyTypes[id]; ok {
		c := *t
		return &c, nil
	}
	t, ok := r.txn.snapshot.types[id]
	if !ok {
		return nil, account.ErrAccountTypeNotFound
	}
	c := *t
	return &c, nil
}

type memoryTransferRepo struct {
	txn *memoryTxn
}

func (r *memoryTransferRepo) Create(ctx context.Context, transfer *account.Transfer) error {
	if err := r.txn.failTransferCreate; err != nil {
		return err
	}
	r.txn.appended = append(r.txn.appended, transfer)
	return nil
}

func (r *memoryTransferRepo) List(ctx context.Context) ([]*account.Transfer, error) {
	out := make([]*account.Transfer, len(r.txn.snapshot.transfers))
	for i, e := range r.txn.snapshot.transfers {
		c := *e
		out[i] = &c
	}
	return out, nil
}
