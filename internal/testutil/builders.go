package testutil

// Test data builders for raw profile rows as the dedicated tables return
// them. Keeping the map shapes in one place saves every test from spelling
// out column names.

import (
	"encoding/json"
	"time"
)

// ArtistRow returns a raw artist_profiles row.
func ArtistRow(id, personID, name string) map[string]any {
	return map[string]any{
		"id":             id,
		"person_id":      personID,
		"artist_name":    name,
		"genre":          "indie",
		"website_domain": "example.com",
		"created_at":     TestTime(),
	}
}

// VenueRow returns a raw venue_profiles row.
func VenueRow(id, personID, name string) map[string]any {
	return map[string]any{
		"id":             id,
		"person_id":      personID,
		"venue_name":     name,
		"capacity":       350,
		"website_domain": "example.com",
		"created_at":     TestTime(),
	}
}

// OrganizerRow returns a raw organizer_profiles row.
func OrganizerRow(id, personID, name string) map[string]any {
	return map[string]any{
		"id":         id,
		"person_id":  personID,
		"org_name":   name,
		"org_type":   "festival",
		"is_active":  true,
		"created_at": TestTime(),
	}
}

// LegacyOrganizerEntry returns one entry of the organizer_profiles list as
// embedded in a settings blob (JSON-decoded shape, so timestamps are strings).
func LegacyOrganizerEntry(id, name string) map[string]any {
	return map[string]any{
		"id":         id,
		"org_name":   name,
		"org_type":   "promoter",
		"created_at": TestTime().Format(time.RFC3339),
	}
}

// SettingsWithOrganizerList returns a settings blob carrying the legacy
// organizer list form.
func SettingsWithOrganizerList(entries ...map[string]any) json.RawMessage {
	blob, err := json.Marshal(map[string]any{"organizer_profiles": entries})
	if err != nil {
		panic(err)
	}
	return blob
}

// SettingsWithOrganizerSingle returns a settings blob carrying the legacy
// single-object organizer form.
func SettingsWithOrganizerSingle(entry map[string]any) json.RawMessage {
	blob, err := json.Marshal(map[string]any{"organizer_profile": entry})
	if err != nil {
		panic(err)
	}
	return blob
}
