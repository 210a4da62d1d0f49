package model

import "time"

// ActiveSession tracks which profile is currently acting for a person.
// At most one exists per person; it is created lazily on the first switch.
// The backing table is optional, so a missing session is a valid state and
// readers default to the general profile.
type ActiveSession struct {
	PersonID          string      `json:"person_id"           db:"person_id"`
	ActiveProfileID   string      `json:"active_profile_id"   db:"active_profile_id"`
	ActiveProfileType ProfileType `json:"active_profile_type" db:"active_profile_type"`
	LastActivity      time.Time   `json:"last_activity"       db:"last_activity"`
	CreatedAt         time.Time   `json:"created_at"          db:"created_at"`
}

// Ref returns the address of the tracked active profile.
func (s *ActiveSession) Ref() ProfileRef {
	return ProfileRef{ID: s.ActiveProfileID, Type: s.ActiveProfileType}
}
