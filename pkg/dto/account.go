// Package dto defines data-transfer shapes used between the service layer,
// the repositories and the API edge.
package dto

import (
	"time"

	"github.com/google/uuid"
)

// AccountCreate carries the inputs for creating a new account.
type AccountCreate struct {
	ID            uuid.UUID
	AccountTypeID uuid.UUID
	Balance       int64 // opening balance in the smallest currency unit
}

// AccountRead is a read-optimized shape for account queries and API responses.
type AccountRead struct {
	ID            uuid.UUID `json:"id"`
	AccountTypeID uuid.UUID `json:"account_type_id"`
	Balance       int64     `json:"balance"`
	CreatedAt     time.Time `json:"created_at"`
}

// AccountTypeCreate carries the inputs for creating a new account type.
type AccountTypeCreate struct {
	ID          uuid.UUID
	Name        string
	Permissions []string
}

// AccountTypeRead is a read-optimized shape for account type queries.
type AccountTypeRead struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
}

// AccountWithType is a consistent snapshot of an account joined with its
// account type, read at a single point in time.
type AccountWithType struct {
	Account AccountRead     `json:"account"`
	Type    AccountTypeRead `json:"type"`
}
