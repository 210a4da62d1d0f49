package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/gigwire/identity-go/internal/core"
	"github.com/gigwire/identity-go/internal/domain/model"
	apperrors "github.com/gigwire/identity-go/internal/errors"
)

// ActiveContextCache is an optional read-through cache in front of the
// active-session table. Cache failures are never fatal.
type ActiveContextCache interface {
	Get(ctx context.Context, personID string) (model.ProfileRef, bool, error)
	Set(ctx context.Context, personID string, ref model.ProfileRef) error
	Invalidate(ctx context.Context, personID string) error
}

// ActiveContextServiceOptions groups dependencies for ActiveContextService.
type ActiveContextServiceOptions struct {
	Sessions core.SessionRepository
	Profiles *ProfileService
	Activity core.ActivityRepository // Optional: activity log is best-effort
	Cache    ActiveContextCache      // Optional: read-through cache
	Logger   *slog.Logger            // Optional: structured logger
}

// ActiveContextService tracks which of a person's profiles is currently
// acting. It deliberately favors availability over consistency: losing the
// active pointer is recoverable (fall back to general), whereas blocking
// callers on a missing optional table is not acceptable.
type ActiveContextService struct {
	sessions core.SessionRepository
	profiles *ProfileService
	activity core.ActivityRepository
	cache    ActiveContextCache
	logger   *slog.Logger
}

// NewActiveContextService constructs a new ActiveContextService.
func NewActiveContextService(opts ActiveContextServiceOptions) *ActiveContextService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ActiveContextService{
		sessions: opts.Sessions,
		profiles: opts.Profiles,
		activity: opts.Activity,
		cache:    opts.Cache,
		logger:   logger.With("component", "active_context"),
	}
}

// Active returns the profile currently acting for the person. It never
// returns none for a valid person: when no switch was ever recorded, the
// session table is absent, or the tracked pointer no longer matches an
// owned profile, the general profile is returned.
func (s *ActiveContextService) Active(ctx context.Context, personID string) (*model.Profile, error) {
	profiles, err := s.profiles.Profiles(ctx, personID)
	if err != nil {
		return nil, err
	}
	general := profiles[0]

	if ref, ok := s.cachedRef(ctx, personID); ok {
		if p := findRef(profiles, ref); p != nil {
			return p, nil
		}
		// Stale cache entry; fall through to the durable source.
		s.invalidate(ctx, personID)
	}

	sess, err := s.sessions.Get(ctx, personID)
	if err != nil {
		if !apperrors.IsNotFound(err) && !apperrors.IsSchemaUnavailable(err) {
			s.logger.WarnContext(ctx, "active session lookup failed, defaulting to general",
				"person_id", personID, "err", err)
		}
		return general, nil
	}

	p := findRef(profiles, sess.Ref())
	if p == nil {
		// The tracked profile was deleted since the last switch. Readers
		// tolerate the stale pointer; ownership is re-validated at action
		// time anyway.
		return general, nil
	}

	s.fillCache(ctx, personID, p.Ref())
	return p, nil
}

// SwitchParams groups parameters for Switch.
type SwitchParams struct {
	PersonID string
	Ref      model.ProfileRef
}

// Switch makes the referenced profile the person's active context. The
// privileged atomic procedure is attempted first; when it is absent the
// switch still reports success but performs no durable write, and callers
// must not assume persistence. Ownership is validated before any write.
func (s *ActiveContextService) Switch(ctx context.Context, params SwitchParams) (bool, error) {
	if _, err := s.profiles.Find(ctx, params.PersonID, params.Ref); err != nil {
		if apperrors.IsNotFound(err) {
			return false, apperrors.Unauthorized("profile is not owned by the acting person")
		}
		return false, err
	}

	ok, err := s.sessions.SwitchViaProc(ctx, params.PersonID, params.Ref)
	if err != nil {
		if apperrors.IsSchemaUnavailable(err) {
			// Report success without a durable write. Readers that find
			// no session row fall back to the general profile.
			s.logger.InfoContext(ctx, "switch procedure unavailable, switch not persisted",
				"person_id", params.PersonID, "profile_id", params.Ref.ID)
			return true, nil
		}
		return false, err
	}
	if !ok {
		return false, nil
	}

	s.fillCache(ctx, params.PersonID, params.Ref)
	s.appendActivity(ctx, params)
	return true, nil
}

func (s *ActiveContextService) cachedRef(ctx context.Context, personID string) (model.ProfileRef, bool) {
	if s.cache == nil {
		return model.ProfileRef{}, false
	}
	ref, ok, err := s.cache.Get(ctx, personID)
	if err != nil {
		s.logger.DebugContext(ctx, "active context cache read failed", "person_id", personID, "err", err)
		return model.ProfileRef{}, false
	}
	return ref, ok
}

func (s *ActiveContextService) fillCache(ctx context.Context, personID string, ref model.ProfileRef) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, personID, ref); err != nil {
		s.logger.DebugContext(ctx, "active context cache write failed", "person_id", personID, "err", err)
	}
}

func (s *ActiveContextService) invalidate(ctx context.Context, personID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, personID); err != nil {
		s.logger.DebugContext(ctx, "active context cache invalidate failed", "person_id", personID, "err", err)
	}
}

func (s *ActiveContextService) appendActivity(ctx context.Context, params SwitchParams) {
	if s.activity == nil {
		return
	}
	details, err := json.Marshal(map[string]string{
		"switched_to_id":   params.Ref.ID,
		"switched_to_type": string(params.Ref.Type),
	})
	if err != nil {
		details = []byte(`{}`)
	}
	rec := &model.ActivityRecord{
		PersonID:         params.PersonID,
		ActorProfileID:   params.Ref.ID,
		ActorProfileType: params.Ref.Type,
		ActionType:       model.ActionSwitchProfile,
		ActionDetails:    details,
	}
	if err := s.activity.Append(ctx, rec); err != nil {
		s.logger.WarnContext(ctx, "failed to append switch activity",
			"person_id", params.PersonID, "err", err)
	}
}

// findRef returns the profile matching ref, or nil.
func findRef(profiles []*model.Profile, ref model.ProfileRef) *model.Profile {
	for _, p := range profiles {
		if p.ID == ref.ID && p.Type == ref.Type {
			return p
		}
	}
	return nil
}
