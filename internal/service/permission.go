package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/gigwire/identity-go/internal/core"
	"github.com/gigwire/identity-go/internal/domain/model"
	apperrors "github.com/gigwire/identity-go/internal/errors"
)

// PermissionServiceOptions groups dependencies for PermissionService.
type PermissionServiceOptions struct {
	Permissions core.PermissionRepository
	Profiles    *ProfileService
	Activity    core.ActivityRepository // Optional: activity log is best-effort
	Logger      *slog.Logger            // Optional: structured logger
}

// PermissionService resolves and updates per-profile capability sets.
type PermissionService struct {
	perms    core.PermissionRepository
	profiles *ProfileService
	activity core.ActivityRepository
	logger   *slog.Logger
}

// NewPermissionService constructs a new PermissionService.
func NewPermissionService(opts PermissionServiceOptions) *PermissionService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &PermissionService{
		perms:    opts.Permissions,
		profiles: opts.Profiles,
		activity: opts.Activity,
		logger:   logger.With("component", "permission_service"),
	}
}

// Resolve returns the profile's capability set. A row in the permission
// store takes precedence over a capability set carried inline on the
// profile record, so a merged Update applies even to organizer profiles,
// whose table rows always seed an inline set. Absent a stored row, the
// inline set is honored verbatim; absent both, the type default applies.
// A permission store that is missing or not yet migrated degrades the same
// way a missing row does.
func (s *PermissionService) Resolve(ctx context.Context, profile *model.Profile) (model.Permissions, error) {
	stored, err := s.perms.Get(ctx, profile.Ref())
	if err == nil {
		return *stored, nil
	}
	switch {
	case apperrors.IsNotFound(err):
	case apperrors.IsSchemaUnavailable(err):
		s.logger.DebugContext(ctx, "permission table unavailable, using profile record or type defaults",
			"profile_id", profile.ID, "profile_type", string(profile.Type))
	default:
		return model.Permissions{}, err
	}

	if profile.Permissions != nil {
		return *profile.Permissions, nil
	}
	return model.DefaultPermissions(profile.Type), nil
}

// UpdatePermissionsParams groups parameters for Update.
type UpdatePermissionsParams struct {
	PersonID string
	Ref      model.ProfileRef
	Update   model.PermissionsUpdate
}

// Update merges a partial permission change into the profile's stored
// record. Fields absent from the update are never unset. Only the owning
// person may update a profile's permissions.
func (s *PermissionService) Update(ctx context.Context, params UpdatePermissionsParams) (model.Permissions, error) {
	if params.Update.Empty() {
		return model.Permissions{}, apperrors.Validation("permission update changes nothing")
	}

	profile, err := s.profiles.Find(ctx, params.PersonID, params.Ref)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return model.Permissions{}, apperrors.Unauthorized("profile is not owned by the acting person")
		}
		return model.Permissions{}, err
	}

	current, err := s.Resolve(ctx, profile)
	if err != nil {
		return model.Permissions{}, err
	}

	merged := params.Update.Merge(current)
	if err := s.perms.Upsert(ctx, params.Ref, merged); err != nil {
		return model.Permissions{}, err
	}

	s.appendActivity(ctx, params, merged)
	return merged, nil
}

func (s *PermissionService) appendActivity(ctx context.Context, params UpdatePermissionsParams, merged model.Permissions) {
	if s.activity == nil {
		return
	}
	details, err := json.Marshal(map[string]any{"permissions": merged})
	if err != nil {
		details = []byte(`{}`)
	}
	rec := &model.ActivityRecord{
		PersonID:         params.PersonID,
		ActorProfileID:   params.Ref.ID,
		ActorProfileType: params.Ref.Type,
		ActionType:       model.ActionUpdatePermissions,
		ActionDetails:    details,
	}
	if err := s.activity.Append(ctx, rec); err != nil {
		s.logger.WarnContext(ctx, "failed to append permission activity",
			"person_id", params.PersonID, "err", err)
	}
}
