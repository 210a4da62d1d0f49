package auth

// Package auth contains domain-level types for the authentication boundary.
// Authentication itself is an external collaborator; this subsystem only
// consumes the stable person identifier it yields.

import "time"

// Principal represents the authenticated person returned by an IdP.
// Adapters map provider-specific claims into this shape. PersonID is the
// stable identifier every profile in the system hangs off.
type Principal struct {
	PersonID  string // stable person identifier (e.g., sub)
	Name      string
	Email     string
	ExpiresAt time.Time // absolute expiry from IdP token
}

// Session is the server-side record persisted for an authenticated person.
// ID is an opaque session identifier (e.g., random URL-safe string).
type Session struct {
	ID        string    `json:"id"`
	PersonID  string    `json:"person_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
