//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/net/publicsuffix"

	apperrors "github.com/gigwire/identity-go/internal/errors"
)

const (
	maxDisplayNameLen = 255
	maxWebsiteLen     = 2048
)

// ProfileType identifies which persona a profile represents.
type ProfileType string

const (
	ProfileTypeGeneral   ProfileType = "general"
	ProfileTypeArtist    ProfileType = "artist"
	ProfileTypeVenue     ProfileType = "venue"
	ProfileTypeOrganizer ProfileType = "organizer"
)

// Valid reports whether the profile type is supported.
func (pt ProfileType) Valid() bool {
	switch pt {
	case ProfileTypeGeneral, ProfileTypeArtist, ProfileTypeVenue, ProfileTypeOrganizer:
		return true
	default:
		return false
	}
}

// Typed reports whether the profile type is an explicitly created persona.
// The general profile exists 1:1 with the person and is never created through
// this subsystem.
func (pt ProfileType) Typed() bool {
	return pt == ProfileTypeArtist || pt == ProfileTypeVenue || pt == ProfileTypeOrganizer
}

// ParseProfileType normalizes a profile type string and reports whether it is supported.
func ParseProfileType(value string) (ProfileType, bool) {
	pt := ProfileType(strings.ToLower(strings.TrimSpace(value)))
	if pt.Valid() {
		return pt, true
	}
	return "", false
}

// Permissions is the fixed-shape capability set attached to a profile.
// Absent fields imply deny; the zero value grants nothing.
type Permissions struct {
	CanPost           bool `json:"can_post"            db:"can_post"`
	CanManageSettings bool `json:"can_manage_settings" db:"can_manage_settings"`
	CanViewAnalytics  bool `json:"can_view_analytics"  db:"can_view_analytics"`
	CanManageContent  bool `json:"can_manage_content"  db:"can_manage_content"`
	CanManageEvents   bool `json:"can_manage_events"   db:"can_manage_events"`
	CanManageTours    bool `json:"can_manage_tours"    db:"can_manage_tours"`
	CanModerate       bool `json:"can_moderate"        db:"can_moderate"`
	CanManageUsers    bool `json:"can_manage_users"    db:"can_manage_users"`
}

// DefaultPermissions returns the capability set granted to a profile type
// when no explicit permission record is stored.
func DefaultPermissions(pt ProfileType) Permissions {
	switch pt {
	case ProfileTypeArtist, ProfileTypeVenue:
		return Permissions{
			CanPost:           true,
			CanManageSettings: true,
			CanViewAnalytics:  true,
			CanManageContent:  true,
		}
	case ProfileTypeOrganizer:
		return Permissions{
			CanPost:           true,
			CanManageSettings: true,
			CanViewAnalytics:  true,
			CanManageContent:  true,
			CanManageEvents:   true,
			CanManageTours:    true,
			CanModerate:       true,
			CanManageUsers:    true,
		}
	default:
		return Permissions{
			CanPost:           true,
			CanManageSettings: true,
		}
	}
}

// PermissionsUpdate is a partial permission change. Nil fields are left
// untouched by a merge; fields are never unset implicitly.
type PermissionsUpdate struct {
	CanPost           *bool `json:"can_post,omitempty"`
	CanManageSettings *bool `json:"can_manage_settings,omitempty"`
	CanViewAnalytics  *bool `json:"can_view_analytics,omitempty"`
	CanManageContent  *bool `json:"can_manage_content,omitempty"`
	CanManageEvents   *bool `json:"can_manage_events,omitempty"`
	CanManageTours    *bool `json:"can_manage_tours,omitempty"`
	CanModerate       *bool `json:"can_moderate,omitempty"`
	CanManageUsers    *bool `json:"can_manage_users,omitempty"`
}

// Empty reports whether the update changes nothing.
func (u PermissionsUpdate) Empty() bool {
	return u.CanPost == nil && u.CanManageSettings == nil && u.CanViewAnalytics == nil &&
		u.CanManageContent == nil && u.CanManageEvents == nil && u.CanManageTours == nil &&
		u.CanModerate == nil && u.CanManageUsers == nil
}

// Merge applies the update on top of base and returns the result.
func (u PermissionsUpdate) Merge(base Permissions) Permissions {
	out := base
	if u.CanPost != nil {
		out.CanPost = *u.CanPost
	}
	if u.CanManageSettings != nil {
		out.CanManageSettings = *u.CanManageSettings
	}
	if u.CanViewAnalytics != nil {
		out.CanViewAnalytics = *u.CanViewAnalytics
	}
	if u.CanManageContent != nil {
		out.CanManageContent = *u.CanManageContent
	}
	if u.CanManageEvents != nil {
		out.CanManageEvents = *u.CanManageEvents
	}
	if u.CanManageTours != nil {
		out.CanManageTours = *u.CanManageTours
	}
	if u.CanModerate != nil {
		out.CanModerate = *u.CanModerate
	}
	if u.CanManageUsers != nil {
		out.CanManageUsers = *u.CanManageUsers
	}
	return out
}

// ProfileRef addresses one profile within a person's set.
type ProfileRef struct {
	ID   string      `json:"id"`
	Type ProfileType `json:"type"`
}

// Profile is the canonical persona shape every storage source is normalized
// into. Permissions is nil when the source carried no explicit permission
// record; callers resolve type defaults in that case.
type Profile struct {
	ID          string         `json:"id"`
	PersonID    string         `json:"person_id"`
	Type        ProfileType    `json:"type"`
	DisplayName string         `json:"display_name"`
	Details     map[string]any `json:"details,omitempty"`
	Permissions *Permissions   `json:"permissions,omitempty"`
	Active      bool           `json:"active"`
	Placeholder bool           `json:"placeholder,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// Ref returns the profile's address.
func (p *Profile) Ref() ProfileRef {
	return ProfileRef{ID: p.ID, Type: p.Type}
}

// CreateProfileRequest carries inputs for creating a typed profile.
type CreateProfileRequest struct {
	Type        ProfileType `json:"type"`
	DisplayName string      `json:"display_name"`
	Website     string      `json:"website,omitempty"`
	Genre       string      `json:"genre,omitempty"`    // artist only
	Capacity    *int        `json:"capacity,omitempty"` // venue only
	OrgType     string      `json:"org_type,omitempty"` // organizer only
}

// Validate checks the request and normalizes its website to a registrable
// domain when present.
func (r *CreateProfileRequest) Validate() error {
	if !r.Type.Typed() {
		return apperrors.ValidationField("type", "profile type must be artist, venue, or organizer")
	}
	r.DisplayName = strings.TrimSpace(r.DisplayName)
	if r.DisplayName == "" {
		return apperrors.ValidationField("display_name", "display name is required")
	}
	if utf8.RuneCountInString(r.DisplayName) > maxDisplayNameLen {
		return apperrors.ValidationField("display_name", "display name is too long")
	}
	if r.Capacity != nil && *r.Capacity < 0 {
		return apperrors.ValidationField("capacity", "capacity cannot be negative")
	}
	if r.Website != "" {
		if len(r.Website) > maxWebsiteLen {
			return apperrors.ValidationField("website", "website is too long")
		}
		domain, err := NormalizeWebsiteDomain(r.Website)
		if err != nil {
			return err
		}
		r.Website = domain
	}
	return nil
}

// NormalizeWebsiteDomain reduces a website URL or hostname to its registrable
// domain (eTLD+1), so the same site entered as "https://www.nova.band/tour"
// and "nova.band" stores identically.
func NormalizeWebsiteDomain(raw string) (string, error) {
	in := strings.TrimSpace(strings.ToLower(raw))
	if in == "" {
		return "", apperrors.ValidationField("website", "website is empty")
	}
	if !strings.Contains(in, "://") {
		in = "https://" + in
	}
	u, err := url.Parse(in)
	if err != nil || u.Hostname() == "" {
		return "", apperrors.ValidationField("website", "website is not a valid URL")
	}
	domain, err := publicsuffix.EffectiveTLDPlusOne(u.Hostname())
	if err != nil {
		return "", apperrors.ValidationField("website", "website host has no registrable domain")
	}
	return domain, nil
}
