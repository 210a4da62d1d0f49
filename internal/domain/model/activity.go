package model

import (
	"encoding/json"
	"time"
)

// ActionType labels an entry in the append-only activity log.
type ActionType string

const (
	ActionCreateProfile     ActionType = "create_profile"
	ActionSwitchProfile     ActionType = "switch_profile"
	ActionUpdatePermissions ActionType = "update_permissions"
	ActionPublishPost       ActionType = "publish_post"
)

// ActivityRecord is one append-only log entry written as a side effect of
// profile creation, permission changes, and context-scoped actions.
// Records are never mutated or deleted by this subsystem.
type ActivityRecord struct {
	ID               string          `json:"id"                 db:"id"`
	PersonID         string          `json:"person_id"          db:"person_id"`
	ActorProfileID   string          `json:"actor_profile_id"   db:"actor_profile_id"`
	ActorProfileType ProfileType     `json:"actor_profile_type" db:"actor_profile_type"`
	ActionType       ActionType      `json:"action_type"        db:"action_type"`
	ActionDetails    json.RawMessage `json:"action_details"     db:"action_details"`
	CreatedAt        time.Time       `json:"created_at"         db:"created_at"`
}

// ActivityListOptions controls paging when reading a person's activity feed.
type ActivityListOptions struct {
	Limit  int
	Offset int
}
