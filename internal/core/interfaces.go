package core

import (
	"context"

	"github.com/gigwire/identity-go/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// These interfaces define the contracts between the service layer and data layer.
// Service implementations should depend on these interfaces, not concrete implementations.
//
// Repos surface degraded schema states (missing optional tables, missing
// privileged procedures) as errors.IsSchemaUnavailable; services decide which
// fallback tier to try next.

// AccountRepository reads a person's general record. The general record is
// mandatory; its absence indicates a corrupted person record.
type AccountRepository interface {
	GetByPersonID(ctx context.Context, personID string) (*model.GeneralRecord, error)
}

// CreateArtistParams groups parameters for artist profile creation.
type CreateArtistParams struct {
	PersonID   string
	ArtistName string
	Genre      string
	Website    string
}

// ArtistRepository provides access to the dedicated artist profile table.
// ListByPersonID returns raw rows for the schema normalizer.
type ArtistRepository interface {
	ListByPersonID(ctx context.Context, personID string) ([]map[string]any, error)
	// CreateViaProc calls the privileged create_artist_profile procedure.
	CreateViaProc(ctx context.Context, params CreateArtistParams) (string, error)
	// Insert writes directly to the table, accepting weaker atomicity.
	Insert(ctx context.Context, params CreateArtistParams) (string, error)
}

// CreateVenueParams groups parameters for venue profile creation.
type CreateVenueParams struct {
	PersonID  string
	VenueName string
	Capacity  *int
	Website   string
}

// VenueRepository provides access to the dedicated venue profile table.
type VenueRepository interface {
	ListByPersonID(ctx context.Context, personID string) ([]map[string]any, error)
	CreateViaProc(ctx context.Context, params CreateVenueParams) (string, error)
	Insert(ctx context.Context, params CreateVenueParams) (string, error)
}

// CreateOrganizerParams groups parameters for organizer profile creation.
type CreateOrganizerParams struct {
	PersonID string
	OrgName  string
	OrgType  string
}

// OrganizerRepository provides access to the dedicated organizer profile table.
type OrganizerRepository interface {
	ListByPersonID(ctx context.Context, personID string) ([]map[string]any, error)
	CreateViaProc(ctx context.Context, params CreateOrganizerParams) (string, error)
	Insert(ctx context.Context, params CreateOrganizerParams) (string, error)
}

// SessionRepository tracks the active profile per person. The backing table
// and switch procedure are both optional schema.
type SessionRepository interface {
	// Get returns the tracked active session, or NotFound when none exists.
	Get(ctx context.Context, personID string) (*model.ActiveSession, error)
	// SwitchViaProc calls the privileged atomic switch_active_profile procedure.
	SwitchViaProc(ctx context.Context, personID string, ref model.ProfileRef) (bool, error)
}

// PermissionRepository stores explicit per-profile permission rows.
type PermissionRepository interface {
	// Get returns the stored permission row for a profile, or NotFound when
	// the profile falls back to type defaults.
	Get(ctx context.Context, ref model.ProfileRef) (*model.Permissions, error)
	Upsert(ctx context.Context, ref model.ProfileRef, perms model.Permissions) error
}

// ActivityRepository appends to and reads the append-only activity log.
type ActivityRepository interface {
	Append(ctx context.Context, rec *model.ActivityRecord) error
	ListByPerson(ctx context.Context, personID string, opts model.ActivityListOptions) ([]*model.ActivityRecord, error)
}

// CreatePostParams groups parameters for publishing content under a profile.
type CreatePostParams struct {
	PersonID          string
	AuthorProfileID   string
	AuthorProfileType model.ProfileType
	Body              string
}

// PostRepository persists published content.
type PostRepository interface {
	// CreateViaProc calls the privileged create_post_with_profile procedure.
	CreateViaProc(ctx context.Context, params CreatePostParams) (string, error)
	Insert(ctx context.Context, params CreatePostParams) (string, error)
}
