package ports

import "github.com/meshpay/meshpay-client/internal/domain"

// SessionStore persists the signed-in user. Exactly one session is active at
// a time: SetUser replaces any prior record wholesale, Clear deletes it.
type SessionStore interface {
	SetUser(user domain.User) error
	// GetUser returns nil when no session exists or the stored record is
	// malformed; it never fails hard.
	GetUser() *domain.User
	Clear() error
	IsAuthenticated() bool
	// IsAdmin is a deliberately weak client-only check, not a security
	// boundary: true iff the session email contains "admin".
	IsAdmin() bool
}
