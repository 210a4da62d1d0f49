package model

import (
	"encoding/json"
	"time"
)

// GeneralRecord is the raw general-profile row for a person, including the
// settings blob that may still embed legacy organizer records. The person id
// and the general profile id are the same value.
type GeneralRecord struct {
	ID          string          `json:"id"           db:"id"`
	DisplayName string          `json:"display_name" db:"display_name"`
	Settings    json.RawMessage `json:"settings"     db:"settings"`
	CreatedAt   time.Time       `json:"created_at"   db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"   db:"updated_at"`
}
