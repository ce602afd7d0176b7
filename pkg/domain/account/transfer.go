package account

import (
	"time"

	"github.com/google/uuid"
)

// Transfer is an immutable ledger entry recording a completed transfer.
// IDs are assigned by the store's sequence, so entries are totally ordered by
// creation. A reversal is a new entry in the opposite direction, never a
// mutation of an existing one.
type Transfer struct {
	ID         uint64
	SenderID   uuid.UUID
	ReceiverID uuid.UUID
	Amount     int64
	CreatedAt  time.Time
}

// NewTransferFromData hydrates a Transfer from raw store data. It bypasses
// invariants and is intended for repository hydration and test fixtures only.
func NewTransferFromData(
	id uint64,
	senderID, receiverID uuid.UUID,
	amount int64,
	created time.Time,
) *Transfer {
	return &Transfer{
		ID:         id,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Amount:     amount,
		CreatedAt:  created,
	}
}

// ValidateRequest checks the request-shape preconditions of a transfer: the
// sender and receiver must differ and the amount must be positive. Resolution,
// funds and permission gates are evaluated by the engine against live state.
func ValidateRequest(senderID, receiverID uuid.UUID, amount int64) error {
	if senderID == receiverID {
		return ErrCannotTransferToSameAccount
	}
	if amount <= 0 {
		return ErrAmountMustBePositive
	}
	return nil
}
