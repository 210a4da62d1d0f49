package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gigwire/identity-go/internal/core"
	"github.com/gigwire/identity-go/internal/domain/model"
	apperrors "github.com/gigwire/identity-go/internal/errors"
)

// placeholderPrefix marks synthetic identifiers returned by the placeholder
// tier so calling UI code can proceed without crashing while the schema
// migration is pending.
const placeholderPrefix = "pending-"

// tier is one step of an ordered degradation ladder. A tier either produces
// a result or signals "try next" by returning a SchemaUnavailable error;
// any other error stops the ladder.
type tier struct {
	name string
	run  func(ctx context.Context) (string, error)
}

// ActionServiceOptions groups dependencies for ActionService.
type ActionServiceOptions struct {
	Profiles    *ProfileService
	Permissions *PermissionService
	Artists     core.ArtistRepository
	Venues      core.VenueRepository
	Organizers  core.OrganizerRepository
	Posts       core.PostRepository
	Activity    core.ActivityRepository // Optional: activity log is best-effort
	Logger      *slog.Logger            // Optional: structured logger
}

// ActionService performs profile-scoped side-effecting operations: profile
// creation and content publishing. Every operation follows the same ladder:
// privileged procedure, then direct table write, then a flagged placeholder
// result. The authorization check precedes all tiers and is never bypassed
// by a fallback.
type ActionService struct {
	profiles    *ProfileService
	permissions *PermissionService
	artists     core.ArtistRepository
	venues      core.VenueRepository
	organizers  core.OrganizerRepository
	posts       core.PostRepository
	activity    core.ActivityRepository
	logger      *slog.Logger
}

// NewActionService constructs a new ActionService.
func NewActionService(opts ActionServiceOptions) *ActionService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ActionService{
		profiles:    opts.Profiles,
		permissions: opts.Permissions,
		artists:     opts.Artists,
		venues:      opts.Venues,
		organizers:  opts.Organizers,
		posts:       opts.Posts,
		activity:    opts.Activity,
		logger:      logger.With("component", "action_service"),
	}
}

// ActionResult reports the outcome of a ladder operation. Placeholder is
// true when the operation landed on the placeholder tier and the id is
// synthetic; nothing durable was written in that case.
type ActionResult struct {
	ID          string
	Placeholder bool
}

// CreateProfileParams groups parameters for CreateProfile.
type CreateProfileParams struct {
	// AuthPersonID is the authenticated caller; PersonID is the owner the
	// caller claims to act for. They must match.
	AuthPersonID string
	PersonID     string
	Req          model.CreateProfileRequest
}

// CreateProfile creates a typed profile for the person. An activity record
// is appended on success at any tier except the placeholder tier.
func (s *ActionService) CreateProfile(ctx context.Context, params CreateProfileParams) (*ActionResult, error) {
	if params.AuthPersonID != params.PersonID {
		return nil, apperrors.IDMismatch("caller-supplied person id does not match the authenticated caller")
	}
	if err := params.Req.Validate(); err != nil {
		return nil, err
	}

	// The general record is the mandatory anchor; a person without one is
	// corrupted and gets a hard failure before any tier runs.
	if _, err := s.profiles.General(ctx, params.PersonID); err != nil {
		return nil, err
	}

	tiers, err := s.createTiers(params)
	if err != nil {
		return nil, err
	}

	result, tierName, err := s.runLadder(ctx, "create_profile", tiers)
	if err != nil {
		return nil, err
	}

	if !result.Placeholder {
		s.appendActivity(ctx, activityParams{
			personID:    params.PersonID,
			profileID:   result.ID,
			profileType: params.Req.Type,
			action:      model.ActionCreateProfile,
			details: map[string]any{
				"display_name": params.Req.DisplayName,
				"tier":         tierName,
			},
		})
	}
	return result, nil
}

// createTiers builds the procedure and direct-write tiers for the requested
// profile type.
func (s *ActionService) createTiers(params CreateProfileParams) ([]tier, error) {
	switch params.Req.Type {
	case model.ProfileTypeArtist:
		p := core.CreateArtistParams{
			PersonID:   params.PersonID,
			ArtistName: params.Req.DisplayName,
			Genre:      params.Req.Genre,
			Website:    params.Req.Website,
		}
		return []tier{
			{name: "procedure", run: func(ctx context.Context) (string, error) { return s.artists.CreateViaProc(ctx, p) }},
			{name: "direct", run: func(ctx context.Context) (string, error) { return s.artists.Insert(ctx, p) }},
		}, nil
	case model.ProfileTypeVenue:
		p := core.CreateVenueParams{
			PersonID:  params.PersonID,
			VenueName: params.Req.DisplayName,
			Capacity:  params.Req.Capacity,
			Website:   params.Req.Website,
		}
		return []tier{
			{name: "procedure", run: func(ctx context.Context) (string, error) { return s.venues.CreateViaProc(ctx, p) }},
			{name: "direct", run: func(ctx context.Context) (string, error) { return s.venues.Insert(ctx, p) }},
		}, nil
	case model.ProfileTypeOrganizer:
		p := core.CreateOrganizerParams{
			PersonID: params.PersonID,
			OrgName:  params.Req.DisplayName,
			OrgType:  params.Req.OrgType,
		}
		return []tier{
			{name: "procedure", run: func(ctx context.Context) (string, error) { return s.organizers.CreateViaProc(ctx, p) }},
			{name: "direct", run: func(ctx context.Context) (string, error) { return s.organizers.Insert(ctx, p) }},
		}, nil
	default:
		return nil, apperrors.ValidationField("type", "profile type must be artist, venue, or organizer")
	}
}

// PublishPostParams groups parameters for PublishPost.
type PublishPostParams struct {
	AuthPersonID string
	PersonID     string
	// Active is the profile the content is published under. The caller's
	// ownership of it and its posting capability are validated here, at
	// action time, not at switch time.
	Active model.ProfileRef
	Req    model.CreatePostRequest
}

// PublishPost publishes content under the person's active profile.
func (s *ActionService) PublishPost(ctx context.Context, params PublishPostParams) (*ActionResult, error) {
	if params.AuthPersonID != params.PersonID {
		return nil, apperrors.IDMismatch("caller-supplied person id does not match the authenticated caller")
	}
	if err := params.Req.Validate(); err != nil {
		return nil, err
	}

	profile, err := s.profiles.Find(ctx, params.PersonID, params.Active)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.Unauthorized("profile is not owned by the acting person")
		}
		return nil, err
	}

	perms, err := s.permissions.Resolve(ctx, profile)
	if err != nil {
		return nil, err
	}
	if !perms.CanPost {
		return nil, apperrors.Unauthorized("active profile cannot post")
	}

	p := core.CreatePostParams{
		PersonID:          params.PersonID,
		AuthorProfileID:   params.Active.ID,
		AuthorProfileType: params.Active.Type,
		Body:              params.Req.Body,
	}
	tiers := []tier{
		{name: "procedure", run: func(ctx context.Context) (string, error) { return s.posts.CreateViaProc(ctx, p) }},
		{name: "direct", run: func(ctx context.Context) (string, error) { return s.posts.Insert(ctx, p) }},
	}

	result, tierName, err := s.runLadder(ctx, "publish_post", tiers)
	if err != nil {
		return nil, err
	}

	if !result.Placeholder {
		s.appendActivity(ctx, activityParams{
			personID:    params.PersonID,
			profileID:   params.Active.ID,
			profileType: params.Active.Type,
			action:      model.ActionPublishPost,
			details:     map[string]any{"post_id": result.ID, "tier": tierName},
		})
	}
	return result, nil
}

// runLadder tries each tier in order. SchemaUnavailable moves to the next
// tier; any other error stops the ladder. When every tier is exhausted the
// operation lands on the placeholder tier: a clearly flagged synthetic id,
// no durable write, feature logged as pending schema migration.
func (s *ActionService) runLadder(ctx context.Context, op string, tiers []tier) (*ActionResult, string, error) {
	for _, t := range tiers {
		id, err := t.run(ctx)
		if err == nil {
			return &ActionResult{ID: id}, t.name, nil
		}
		if apperrors.IsSchemaUnavailable(err) {
			s.logger.InfoContext(ctx, "tier unavailable, trying next",
				"op", op, "tier", t.name, "err", err)
			continue
		}
		return nil, t.name, err
	}

	s.logger.InfoContext(ctx, "all tiers unavailable, returning placeholder",
		"op", op)
	return &ActionResult{ID: placeholderPrefix + uuid.NewString(), Placeholder: true}, "placeholder", nil
}

// activityParams groups fields for the best-effort activity append.
type activityParams struct {
	personID    string
	profileID   string
	profileType model.ProfileType
	action      model.ActionType
	details     map[string]any
}

func (s *ActionService) appendActivity(ctx context.Context, p activityParams) {
	if s.activity == nil {
		return
	}
	details, err := json.Marshal(p.details)
	if err != nil {
		details = []byte(`{}`)
	}
	rec := &model.ActivityRecord{
		PersonID:         p.personID,
		ActorProfileID:   p.profileID,
		ActorProfileType: p.profileType,
		ActionType:       p.action,
		ActionDetails:    details,
	}
	if err := s.activity.Append(ctx, rec); err != nil {
		s.logger.WarnContext(ctx, "failed to append activity record",
			"person_id", p.personID, "action", string(p.action), "err", err)
	}
}
