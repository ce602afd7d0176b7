package account

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest is returned when a transfer request is malformed
	// (self-transfer or a non-positive amount).
	ErrInvalidRequest = errors.New("invalid transfer request")

	// ErrCannotTransferToSameAccount is returned when a transfer is attempted
	// from an account to itself. It matches ErrInvalidRequest via errors.Is.
	ErrCannotTransferToSameAccount = fmt.Errorf("%w: cannot transfer to same account", ErrInvalidRequest)

	// ErrAmountMustBePositive is returned when a transfer amount is zero or
	// negative. It matches ErrInvalidRequest via errors.Is.
	ErrAmountMustBePositive = fmt.Errorf("%w: amount must be positive", ErrInvalidRequest)

	// ErrAccountNotFound is returned when the sender or receiver account cannot
	// be resolved together with its account type.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountTypeNotFound is returned when an account references an account
	// type that does not exist.
	ErrAccountTypeNotFound = errors.New("account type not found")

	// ErrInsufficientFunds is returned when the sender balance fails the
	// configured funds gate.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrPermissionDenied is the base error for a missing send or receive
	// capability. Use errors.As with *PermissionError to inspect which side
	// and which capability was missing.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrTransferFailed is returned when the commit phase fails after all
	// gates passed. The account store is guaranteed unchanged, so the caller
	// may retry the whole request.
	ErrTransferFailed = errors.New("transfer failed")

	// ErrTimeout is returned when the caller's deadline expires before the
	// commit phase begins.
	ErrTimeout = errors.New("transfer timed out")
)

// TransferSide identifies which party of a transfer an error refers to.
type TransferSide string

const (
	SideSender   TransferSide = "sender"
	SideReceiver TransferSide = "receiver"
)

// PermissionError reports a missing capability on one side of a transfer.
type PermissionError struct {
	Side       TransferSide
	Permission Permission
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: %s account lacks %q", e.Side, e.Permission)
}

// Is makes PermissionError match ErrPermissionDenied with errors.Is.
func (e *PermissionError) Is(target error) bool {
	return target == ErrPermissionDenied
}
