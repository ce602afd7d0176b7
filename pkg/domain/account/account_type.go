package account

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Permission is a capability tag granted by an account type.
type Permission string

const (
	// PermissionSend allows an account to be the sender of a transfer.
	PermissionSend Permission = "send"
	// PermissionReceive allows an account to be the receiver of a transfer.
	PermissionReceive Permission = "receive"
)

// Permissions is a set of capability tags. Order is irrelevant; only
// membership matters.
type Permissions []Permission

// Has reports whether the set contains the given permission.
func (p Permissions) Has(perm Permission) bool {
	for _, v := range p {
		if v == perm {
			return true
		}
	}
	return false
}

// Strings returns the permissions as plain strings, for persistence and DTOs.
func (p Permissions) Strings() []string {
	out := make([]string, len(p))
	for i, v := range p {
		out[i] = string(v)
	}
	return out
}

// ParsePermissions converts raw tags into a Permissions set. Unknown tags are
// kept as-is; the engine only ever asks for membership of known capabilities.
func ParsePermissions(tags []string) Permissions {
	perms := make(Permissions, len(tags))
	for i, t := range tags {
		perms[i] = Permission(t)
	}
	return perms
}

// AccountType is a named bundle of capabilities shared by many accounts.
// Once referenced by a committed transfer it is treated as immutable:
// changing permissions never rewrites past ledger entries.
type AccountType struct {
	ID          uuid.UUID
	Name        string
	Permissions Permissions
	CreatedAt   time.Time
}

// NewAccountType creates an account type with the given name and permissions.
func NewAccountType(name string, perms Permissions) (*AccountType, error) {
	if name == "" {
		return nil, errors.New("account type name is required")
	}
	return &AccountType{
		ID:          uuid.New(),
		Name:        name,
		Permissions: perms,
		CreatedAt:   time.Now(),
	}, nil
}

// Can reports whether accounts of this type hold the given capability.
func (t *AccountType) Can(perm Permission) bool {
	return t.Permissions.Has(perm)
}
