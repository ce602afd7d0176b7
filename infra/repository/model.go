// Package repository contains the gorm-backed implementations of the
// persistence contracts in pkg/repository, plus the unit of work that gives
// the transfer engine its atomic commit boundary.
package repository

import (
	"time"

	"github.com/google/uuid"
)

// Account is the persisted account record. Balances are stored in the
// smallest currency unit; the non-negativity rule is enforced by the engine,
// not by the schema.
type Account struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountTypeID uuid.UUID `gorm:"type:uuid;not null;index"`
	AccountType   AccountType
	Balance       int64 `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}

// AccountType is the persisted account type record. Permissions are a JSON
// array of capability tags.
type AccountType struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(64);not null"`
	Permissions []string  `gorm:"serializer:json;type:jsonb"`
	CreatedAt   time.Time
}

// TableName specifies the table name for the AccountType model.
func (AccountType) TableName() string {
	return "account_types"
}

// Transfer is the persisted ledger entry. The bigserial primary key is the
// monotonic ordering key; rows are never updated or deleted.
type Transfer struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	SenderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ReceiverID uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount     int64     `gorm:"not null"`
	CreatedAt  time.Time
}

// TableName specifies the table name for the Transfer model.
func (Transfer) TableName() string {
	return "transfers"
}
