package domain

import "github.com/google/uuid"

// AuthMethod says how a principal authenticated.
type AuthMethod string

const (
	AuthMethodJWT    AuthMethod = "jwt"
	AuthMethodAPIKey AuthMethod = "api_key"
)

// Principal is the resolved caller of a request. It is built once by the
// auth middleware and treated as immutable afterwards; business code checks
// the capability set instead of inspecting credentials.
type Principal struct {
	UserID      uuid.UUID    `json:"user_id"`
	Email       string       `json:"email"`
	Method      AuthMethod   `json:"method"`
	Permissions []Permission `json:"permissions"`
}

// HasPermission reports whether the principal may perform p.
func (p *Principal) HasPermission(perm Permission) bool {
	for _, have := range p.Permissions {
		if have == perm {
			return true
		}
	}
	return false
}
