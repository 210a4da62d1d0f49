package service

import (
	"encoding/json"
	"strconv"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/gigwire/identity-go/internal/domain/model"
	apperrors "github.com/gigwire/identity-go/internal/errors"
)

// SourceShape tags which storage shape a raw profile record came from.
// Each shape uses its own field names for the same logical attributes; the
// normalizer is the single place that maps all of them onto model.Profile.
type SourceShape string

const (
	// ShapeLegacyList is an entry of the organizer_profiles list embedded in
	// the general record's settings blob.
	ShapeLegacyList SourceShape = "legacy_list"
	// ShapeLegacySingle is the single organizer_profile object embedded in
	// the settings blob, superseded by the list form.
	ShapeLegacySingle SourceShape = "legacy_single"
	// ShapeArtistTable is a row of the dedicated artist_profiles table.
	ShapeArtistTable SourceShape = "artist_table"
	// ShapeVenueTable is a row of the dedicated venue_profiles table.
	ShapeVenueTable SourceShape = "venue_table"
	// ShapeOrganizerTable is a row of the dedicated organizer_profiles table.
	ShapeOrganizerTable SourceShape = "organizer_table"
)

// shapeSpec holds the JMESPath expressions that locate each canonical
// attribute inside one source shape. An empty expression means the shape
// does not carry that attribute.
type shapeSpec struct {
	profileType model.ProfileType
	id          string
	displayName string
	createdAt   string
	permissions string
	active      string
	details     map[string]string
}

var shapeSpecs = map[SourceShape]shapeSpec{
	ShapeLegacyList: {
		profileType: model.ProfileTypeOrganizer,
		id:          "id || organizer_id",
		displayName: "org_name || name",
		createdAt:   "created_at",
		permissions: "permissions",
		active:      "is_active",
		details:     map[string]string{"org_type": "org_type"},
	},
	ShapeLegacySingle: {
		profileType: model.ProfileTypeOrganizer,
		id:          "id || organizer_id",
		displayName: "org_name || name",
		createdAt:   "created_at",
		permissions: "permissions",
		active:      "is_active",
		details:     map[string]string{"org_type": "org_type"},
	},
	ShapeArtistTable: {
		profileType: model.ProfileTypeArtist,
		id:          "id",
		displayName: "artist_name",
		createdAt:   "created_at",
		details:     map[string]string{"genre": "genre", "website_domain": "website_domain"},
	},
	ShapeVenueTable: {
		profileType: model.ProfileTypeVenue,
		id:          "id",
		displayName: "venue_name",
		createdAt:   "created_at",
		details:     map[string]string{"capacity": "capacity", "website_domain": "website_domain"},
	},
	ShapeOrganizerTable: {
		profileType: model.ProfileTypeOrganizer,
		id:          "id",
		displayName: "org_name",
		createdAt:   "created_at",
		permissions: "permissions",
		active:      "is_active",
		details:     map[string]string{"org_type": "org_type"},
	},
}

// Normalizer translates heterogeneous stored profile records into the
// canonical profile shape.
type Normalizer struct{}

// NewNormalizer creates a Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize maps one raw record of the given shape onto a canonical profile
// owned by personID. It fails with UnrecognizedShape when the record does
// not carry the shape's identifying fields; callers treat that as
// skip-and-log, not as a subsystem failure.
func (n *Normalizer) Normalize(personID string, raw map[string]any, shape SourceShape) (*model.Profile, error) {
	spec, ok := shapeSpecs[shape]
	if !ok {
		return nil, apperrors.UnrecognizedShape("unknown source shape " + string(shape))
	}
	if raw == nil {
		return nil, apperrors.UnrecognizedShape("record is empty")
	}

	id := searchString(spec.id, raw)
	if id == "" {
		// The pre-list settings blob stored a single organizer object with no
		// id of its own. Derive a stable one so repeated aggregations agree.
		if shape == ShapeLegacySingle {
			id = "legacy:" + personID
		} else {
			return nil, apperrors.UnrecognizedShape("record has no id")
		}
	}

	name := searchString(spec.displayName, raw)
	if name == "" {
		return nil, apperrors.UnrecognizedShape("record has no display name")
	}

	profile := &model.Profile{
		ID:          id,
		PersonID:    personID,
		Type:        spec.profileType,
		DisplayName: name,
		Active:      true,
		CreatedAt:   searchTime(spec.createdAt, raw),
	}

	if spec.active != "" {
		if b, found := searchBool(spec.active, raw); found {
			profile.Active = b
		}
	}

	if spec.permissions != "" {
		if perms := searchPermissions(spec.permissions, raw); perms != nil {
			profile.Permissions = perms
		}
	}

	for key, expr := range spec.details {
		v, err := jmespath.Search(expr, raw)
		if err != nil || v == nil {
			continue
		}
		if profile.Details == nil {
			profile.Details = make(map[string]any, len(spec.details))
		}
		profile.Details[key] = v
	}

	return profile, nil
}

// LegacyOrganizerList extracts the embedded organizer list from a decoded
// settings blob. Returns nil when the list form is absent.
func (n *Normalizer) LegacyOrganizerList(settings map[string]any) []map[string]any {
	v, err := jmespath.Search("organizer_profiles", settings)
	if err != nil || v == nil {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if m, isMap := item.(map[string]any); isMap {
			out = append(out, m)
		}
	}
	return out
}

// LegacyOrganizerSingle extracts the superseded single organizer object from
// a decoded settings blob. Returns nil when absent.
func (n *Normalizer) LegacyOrganizerSingle(settings map[string]any) map[string]any {
	v, err := jmespath.Search("organizer_profile", settings)
	if err != nil || v == nil {
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return m
}

// searchString reads a value that is usually a string but, in the oldest
// legacy list entries, may be a bare JSON number (numeric organizer ids).
func searchString(expr string, data map[string]any) string {
	if expr == "" {
		return ""
	}
	v, err := jmespath.Search(expr, data)
	if err != nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	}
	return ""
}

// searchTime reads a timestamp that may be a time.Time (from a table row) or
// an RFC 3339 string (from a JSON settings blob).
func searchTime(expr string, data map[string]any) time.Time {
	if expr == "" {
		return time.Time{}
	}
	v, err := jmespath.Search(expr, data)
	if err != nil {
		return time.Time{}
	}
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, parseErr := time.Parse(time.RFC3339, t); parseErr == nil {
			return parsed
		}
	}
	return time.Time{}
}

func searchBool(expr string, data map[string]any) (value, found bool) {
	v, err := jmespath.Search(expr, data)
	if err != nil || v == nil {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// searchPermissions decodes an explicit permission record that may be stored
// as a JSON object (settings blob) or raw bytes (jsonb column).
func searchPermissions(expr string, data map[string]any) *model.Permissions {
	v, err := jmespath.Search(expr, data)
	if err != nil || v == nil {
		return nil
	}

	var raw []byte
	switch p := v.(type) {
	case []byte:
		raw = p
	case json.RawMessage:
		raw = p
	case map[string]any:
		encoded, marshalErr := json.Marshal(p)
		if marshalErr != nil {
			return nil
		}
		raw = encoded
	default:
		return nil
	}

	var perms model.Permissions
	if unmarshalErr := json.Unmarshal(raw, &perms); unmarshalErr != nil {
		return nil
	}
	return &perms
}
