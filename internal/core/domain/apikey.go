package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Permission names a single operation an API key may perform.
type Permission string

const (
	PermissionDeposit  Permission = "deposit"
	PermissionTransfer Permission = "transfer"
	PermissionRead     Permission = "read"
)

// AllPermissions returns every grantable permission.
func AllPermissions() []Permission {
	return []Permission{PermissionDeposit, PermissionTransfer, PermissionRead}
}

// ValidPermission reports whether p is a known permission.
func ValidPermission(p Permission) bool {
	switch p {
	case PermissionDeposit, PermissionTransfer, PermissionRead:
		return true
	}
	return false
}

// KeyPrefix starts every issued API key. The plaintext key is shown once;
// only its SHA-256 digest is stored.
const KeyPrefix = "sk_live_"

// MaxActiveKeys caps how many unexpired, unrevoked keys a user can hold.
const MaxActiveKeys = 5

// APIKey is a long-lived machine credential scoped to a permission set.
type APIKey struct {
	ID          uuid.UUID    `json:"id"`
	UserID      uuid.UUID    `json:"user_id"`
	Name        string       `json:"name"`
	KeyDigest   string       `json:"-"`
	Permissions []Permission `json:"permissions"`
	ExpiresAt   time.Time    `json:"expires_at"`
	Revoked     bool         `json:"revoked"`
	CreatedAt   time.Time    `json:"created_at"`
}

// IsExpired reports whether the key passed its expiry.
func (k *APIKey) IsExpired(now time.Time) bool {
	return now.After(k.ExpiresAt)
}

// IsActive reports whether the key can still authenticate requests.
func (k *APIKey) IsActive(now time.Time) bool {
	return !k.Revoked && !k.IsExpired(now)
}

// HasPermission reports whether the key grants p.
func (k *APIKey) HasPermission(p Permission) bool {
	for _, kp := range k.Permissions {
		if kp == p {
			return true
		}
	}
	return false
}

// ExpiryDuration maps an expiry code (1H, 1D, 1M, 1Y) to a duration.
func ExpiryDuration(code string) (time.Duration, error) {
	switch code {
	case "1H":
		return time.Hour, nil
	case "1D":
		return 24 * time.Hour, nil
	case "1M":
		return 30 * 24 * time.Hour, nil
	case "1Y":
		return 365 * 24 * time.Hour, nil
	}
	return 0, fmt.Errorf("unknown expiry code %q", code)
}
