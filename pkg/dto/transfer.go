package dto

import (
	"time"

	"github.com/google/uuid"
)

// TransferRead is a read-optimized shape for ledger entries.
type TransferRead struct {
	ID         uint64    `json:"id"`
	SenderID   uuid.UUID `json:"sender_id"`
	ReceiverID uuid.UUID `json:"receiver_id"`
	Amount     int64     `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
}
