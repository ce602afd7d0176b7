// Package transfer implements the funds-transfer engine: the only writer of
// account balances and the only producer of ledger entries.
//
// Execute validates a request against an ordered list of gates, then applies
// the debit, the credit and the ledger append as one unit of work. Concurrent
// transfers touching the same account serialize on in-process account locks;
// transfers over disjoint account pairs run fully in parallel.
package transfer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jvmonteiro/minipay/pkg/domain/account"
	"github.com/jvmonteiro/minipay/pkg/repository"
)

// Command carries the inputs of a transfer request.
type Command struct {
	SenderID   uuid.UUID
	ReceiverID uuid.UUID
	Amount     int64
}

// Service is the transfer engine.
type Service struct {
	uow     repository.UnitOfWork
	locks   *accountLocker
	gate    account.FundsGate
	timeout time.Duration
	logger  *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithFundsGate overrides the default positive-balance funds gate.
func WithFundsGate(gate account.FundsGate) Option {
	return func(s *Service) { s.gate = gate }
}

// WithTimeout bounds how long Execute waits before giving up with
// account.ErrTimeout. The bound covers lock acquisition and validation; a
// commit that already began always runs to completion. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) { s.timeout = d }
}

// NewService creates a transfer engine on top of the given unit of work.
func NewService(uow repository.UnitOfWork, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		uow:    uow,
		locks:  newAccountLocker(),
		gate:   account.GatePositiveBalance,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Execute validates and commits a single transfer. Gates are evaluated
// fail-fast in a fixed order: self-transfer, non-positive amount, sender
// resolution, receiver resolution, funds gate, sender send permission,
// receiver receive permission. Each violation maps to a distinct error kind.
//
// On success exactly one ledger entry is appended and exactly two balances
// change, atomically. On a commit-phase failure the store is left unchanged
// and account.ErrTransferFailed is returned.
func (s *Service) Execute(ctx context.Context, cmd Command) (*account.Transfer, error) {
	logger := s.logger.With(
		"sender", cmd.SenderID,
		"receiver", cmd.ReceiverID,
		"amount", cmd.Amount,
	)

	if err := account.ValidateRequest(cmd.SenderID, cmd.ReceiverID, cmd.Amount); err != nil {
		logger.Warn("transfer rejected", "error", err)
		return nil, err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	release, err := s.locks.LockPair(ctx, cmd.SenderID, cmd.ReceiverID)
	if err != nil {
		logger.Warn("transfer abandoned waiting for account locks", "error", err)
		return nil, account.ErrTimeout
	}
	defer release()

	// The unit of work runs on a cancellation-detached context: once the
	// commit begins it must not be torn down by the caller going away.
	// Cancellation is honored explicitly between validation and commit.
	dbCtx := context.WithoutCancel(ctx)
	var entry *account.Transfer
	err = s.uow.Do(dbCtx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return fmt.Errorf("%w: %v", account.ErrTransferFailed, err)
		}
		ledger, err := uow.TransferRepository()
		if err != nil {
			return fmt.Errorf("%w: %v", account.ErrTransferFailed, err)
		}

		sender, senderType, err := accounts.GetWithType(dbCtx, cmd.SenderID)
		if err != nil {
			return fmt.Errorf("sender %s: %w", cmd.SenderID, err)
		}
		receiver, receiverType, err := accounts.GetWithType(dbCtx, cmd.ReceiverID)
		if err != nil {
			return fmt.Errorf("receiver %s: %w", cmd.ReceiverID, err)
		}

		if !sender.CanDebit(s.gate, cmd.Amount) {
			return account.ErrInsufficientFunds
		}
		if !senderType.Can(account.PermissionSend) {
			return &account.PermissionError{Side: account.SideSender, Permission: account.PermissionSend}
		}
		if !receiverType.Can(account.PermissionReceive) {
			return &account.PermissionError{Side: account.SideReceiver, Permission: account.PermissionReceive}
		}

		if err := ctx.Err(); err != nil {
			return account.ErrTimeout
		}

		// Commit phase. From here on the work runs to completion; any
		// storage error rolls the whole transaction back.
		if err := accounts.UpdateBalance(dbCtx, sender.ID, sender.Balance-cmd.Amount); err != nil {
			return fmt.Errorf("%w: debit: %v", account.ErrTransferFailed, err)
		}
		if err := accounts.UpdateBalance(dbCtx, receiver.ID, receiver.Balance+cmd.Amount); err != nil {
			return fmt.Errorf("%w: credit: %v", account.ErrTransferFailed, err)
		}
		entry = &account.Transfer{
			SenderID:   cmd.SenderID,
			ReceiverID: cmd.ReceiverID,
			Amount:     cmd.Amount,
			CreatedAt:  time.Now(),
		}
		if err := ledger.Create(dbCtx, entry); err != nil {
			return fmt.Errorf("%w: ledger append: %v", account.ErrTransferFailed, err)
		}
		return nil
	})
	if err != nil {
		logger.Warn("transfer not committed", "error", err)
		return nil, err
	}

	logger.Info("transfer committed", "transfer_id", entry.ID)
	return entry, nil
}

// ListTransfers returns the ledger ordered by creation sequence, ascending.
// Only committed entries are visible.
func (s *Service) ListTransfers(ctx context.Context) ([]*account.Transfer, error) {
	var entries []*account.Transfer
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		ledger, err := uow.TransferRepository()
		if err != nil {
			return err
		}
		entries, err = ledger.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}
