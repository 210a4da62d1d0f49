package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/gigwire/identity-go/internal/core"
	"github.com/gigwire/identity-go/internal/domain/model"
	apperrors "github.com/gigwire/identity-go/internal/errors"
)

// ProfileServiceOptions groups dependencies for ProfileService.
type ProfileServiceOptions struct {
	Accounts   core.AccountRepository
	Artists    core.ArtistRepository
	Venues     core.VenueRepository
	Organizers core.OrganizerRepository
	Normalizer *Normalizer  // Optional: defaults to a fresh Normalizer
	Logger     *slog.Logger // Optional: structured logger
}

// ProfileService aggregates every profile linked to a person across the
// independently evolving storage shapes.
//
// Source precedence: the dedicated per-type tables are authoritative; the
// legacy records embedded in the general record's settings blob only surface
// profiles created before those tables existed, and are suppressed once a
// dedicated row covers the same logical profile. Cross-reference link tables
// are never consulted: a linking row can outlive the record it points at,
// and surfacing those would fabricate orphaned profiles.
type ProfileService struct {
	accounts   core.AccountRepository
	artists    core.ArtistRepository
	venues     core.VenueRepository
	organizers core.OrganizerRepository
	normalizer *Normalizer
	logger     *slog.Logger
}

// NewProfileService constructs a new ProfileService.
func NewProfileService(opts ProfileServiceOptions) *ProfileService {
	n := opts.Normalizer
	if n == nil {
		n = NewNormalizer()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ProfileService{
		accounts:   opts.Accounts,
		artists:    opts.Artists,
		venues:     opts.Venues,
		organizers: opts.Organizers,
		normalizer: n,
		logger:     logger.With("component", "profile_service"),
	}
}

// Profiles returns every profile linked to a person, in stable order:
// general first, then artists, venues, organizers, in discovery order within
// each group. The general record is mandatory; every other source is probed
// independently and a failing source is logged and skipped, never fatal.
func (s *ProfileService) Profiles(ctx context.Context, personID string) ([]*model.Profile, error) {
	general, err := s.accounts.GetByPersonID(ctx, personID)
	if err != nil {
		return nil, err
	}

	artistRows, venueRows, organizerRows := s.probeTypedSources(ctx, personID)

	out := make([]*model.Profile, 0, 1+len(artistRows)+len(venueRows)+len(organizerRows))
	out = append(out, &model.Profile{
		ID:          general.ID,
		PersonID:    general.ID,
		Type:        model.ProfileTypeGeneral,
		DisplayName: general.DisplayName,
		Active:      true,
		CreatedAt:   general.CreatedAt,
	})

	seen := map[model.ProfileRef]bool{out[0].Ref(): true}

	appendRows := func(rows []map[string]any, shape SourceShape) []*model.Profile {
		var group []*model.Profile
		for _, raw := range rows {
			p, normErr := s.normalizer.Normalize(personID, raw, shape)
			if normErr != nil {
				s.logger.WarnContext(ctx, "skipping unrecognized profile record",
					"person_id", personID, "shape", string(shape), "err", normErr)
				continue
			}
			if seen[p.Ref()] {
				s.logger.WarnContext(ctx, "skipping duplicate profile record",
					"person_id", personID, "shape", string(shape), "profile_id", p.ID)
				continue
			}
			seen[p.Ref()] = true
			group = append(group, p)
		}
		return group
	}

	out = append(out, appendRows(artistRows, ShapeArtistTable)...)
	out = append(out, appendRows(venueRows, ShapeVenueTable)...)

	// Organizer group: legacy embedded records surface first (they were
	// discovered first historically), but only when no dedicated row covers
	// the same logical profile.
	dedicated := appendRows(organizerRows, ShapeOrganizerTable)
	out = append(out, s.legacyOrganizers(ctx, general, seen)...)
	out = append(out, dedicated...)

	return out, nil
}

// General returns just the person's general profile. Absence is a hard
// failure indicating a corrupted person record.
func (s *ProfileService) General(ctx context.Context, personID string) (*model.Profile, error) {
	rec, err := s.accounts.GetByPersonID(ctx, personID)
	if err != nil {
		return nil, err
	}
	return &model.Profile{
		ID:          rec.ID,
		PersonID:    rec.ID,
		Type:        model.ProfileTypeGeneral,
		DisplayName: rec.DisplayName,
		Active:      true,
		CreatedAt:   rec.CreatedAt,
	}, nil
}

// Find returns the profile with the given ref from the person's set, or
// NotFound when the person does not own it.
func (s *ProfileService) Find(ctx context.Context, personID string, ref model.ProfileRef) (*model.Profile, error) {
	profiles, err := s.Profiles(ctx, personID)
	if err != nil {
		return nil, err
	}
	for _, p := range profiles {
		if p.ID == ref.ID && p.Type == ref.Type {
			return p, nil
		}
	}
	return nil, apperrors.NotFoundf("profile %s/%s not found for person %s", ref.Type, ref.ID, personID)
}

// probeTypedSources fans out to the dedicated tables concurrently. Each
// probe absorbs its own failure; a missing or erroring source yields an
// empty group, not an aggregation failure.
func (s *ProfileService) probeTypedSources(ctx context.Context, personID string) (artists, venues, organizers []map[string]any) {
	g, gctx := errgroup.WithContext(ctx)

	probe := func(name string, list func(context.Context, string) ([]map[string]any, error), dst *[]map[string]any) {
		g.Go(func() error {
			rows, err := list(gctx, personID)
			if err != nil {
				s.logger.WarnContext(ctx, "profile source unavailable, skipping",
					"person_id", personID, "source", name, "err", err)
				return nil
			}
			*dst = rows
			return nil
		})
	}

	probe("artist_profiles", s.artists.ListByPersonID, &artists)
	probe("venue_profiles", s.venues.ListByPersonID, &venues)
	probe("organizer_profiles", s.organizers.ListByPersonID, &organizers)

	// Probes never return errors; Wait only joins them.
	_ = g.Wait()
	return artists, venues, organizers
}

// legacyOrganizers surfaces organizer records embedded in the settings blob.
// The single-object form is consulted only when the list form is absent,
// since the list supersedes it. Records already covered by a dedicated table
// row (present in seen) are suppressed.
func (s *ProfileService) legacyOrganizers(ctx context.Context, general *model.GeneralRecord, seen map[model.ProfileRef]bool) []*model.Profile {
	if len(general.Settings) == 0 {
		return nil
	}

	var settings map[string]any
	if err := json.Unmarshal(general.Settings, &settings); err != nil {
		s.logger.WarnContext(ctx, "settings blob is not an object, skipping legacy sources",
			"person_id", general.ID, "err", err)
		return nil
	}

	var candidates []map[string]any
	var shape SourceShape
	if list := s.normalizer.LegacyOrganizerList(settings); list != nil {
		candidates, shape = list, ShapeLegacyList
	} else if single := s.normalizer.LegacyOrganizerSingle(settings); single != nil {
		candidates, shape = []map[string]any{single}, ShapeLegacySingle
	}

	var out []*model.Profile
	for _, raw := range candidates {
		p, err := s.normalizer.Normalize(general.ID, raw, shape)
		if err != nil {
			s.logger.WarnContext(ctx, "skipping unrecognized legacy record",
				"person_id", general.ID, "shape", string(shape), "err", err)
			continue
		}
		if seen[p.Ref()] {
			// A dedicated row covers this logical profile; the legacy copy
			// must not produce a second entry.
			continue
		}
		seen[p.Ref()] = true
		out = append(out, p)
	}
	return out
}
