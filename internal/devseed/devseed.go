package devseed

// Package devseed populates a development database with a demo person whose
// profile set exercises every storage shape: the mandatory general record, a
// legacy organizer embedded in settings, and dedicated artist and venue rows.

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gigwire/identity-go/internal/data"
	"github.com/gigwire/identity-go/internal/domain/model"
	"github.com/gigwire/identity-go/internal/service"
)

// DemoPersonID is the stable person id the seed creates. The dev auth
// provider defaults to the same id so a locally authenticated session lands
// on the seeded profile set.
const DemoPersonID = "dev-person"

// Services bundles the dependencies needed for development seeding.
type Services struct {
	DB       *sql.DB
	profiles *service.ProfileService
	actions  *service.ActionService
	active   *service.ActiveContextService
}

// NewServices constructs all required services for seeding using the provided DB.
func NewServices(db *sql.DB) Services {
	accountRepo := data.NewAccountRepo(db)
	artistRepo := data.NewArtistRepo(db)
	venueRepo := data.NewVenueRepo(db)
	organizerRepo := data.NewOrganizerRepo(db)
	sessionRepo := data.NewSessionRepo(db)
	permissionRepo := data.NewPermissionRepo(db)
	activityRepo := data.NewActivityRepo(db)
	postRepo := data.NewPostRepo(db)

	profiles := service.NewProfileService(service.ProfileServiceOptions{
		Accounts:   accountRepo,
		Artists:    artistRepo,
		Venues:     venueRepo,
		Organizers: organizerRepo,
	})
	permissions := service.NewPermissionService(service.PermissionServiceOptions{
		Permissions: permissionRepo,
		Profiles:    profiles,
		Activity:    activityRepo,
	})
	actions := service.NewActionService(service.ActionServiceOptions{
		Profiles:    profiles,
		Permissions: permissions,
		Artists:     artistRepo,
		Venues:      venueRepo,
		Organizers:  organizerRepo,
		Posts:       postRepo,
		Activity:    activityRepo,
	})
	active := service.NewActiveContextService(service.ActiveContextServiceOptions{
		Sessions: sessionRepo,
		Profiles: profiles,
		Activity: activityRepo,
	})

	return Services{
		DB:       db,
		profiles: profiles,
		actions:  actions,
		active:   active,
	}
}

// Run executes the full development seeding workflow against the provided DB.
// Seeding is idempotent: an existing demo person is left alone.
func Run(ctx context.Context, svcs Services, logger *slog.Logger) error {
	seeded, err := seedGeneralRecord(ctx, svcs.DB)
	if err != nil {
		return fmt.Errorf("seed general record: %w", err)
	}
	if !seeded {
		if logger != nil {
			logger.InfoContext(ctx, "demo person already seeded, skipping", "person_id", DemoPersonID)
		}
		return nil
	}

	if err := seedTypedProfiles(ctx, svcs, logger); err != nil {
		return err
	}
	if logger != nil {
		logger.InfoContext(ctx, "development seed complete", "person_id", DemoPersonID)
	}
	return nil
}

// seedGeneralRecord inserts the demo person's general record with a legacy
// organizer embedded in the settings blob. Returns false when the person
// already exists.
func seedGeneralRecord(ctx context.Context, db *sql.DB) (bool, error) {
	settings, err := json.Marshal(map[string]any{
		"organizer_profiles": []map[string]any{
			{
				"id":         "seed-legacy-organizer",
				"org_name":   "Warehouse Sessions",
				"org_type":   "promoter",
				"created_at": time.Now().UTC().Format(time.RFC3339),
			},
		},
	})
	if err != nil {
		return false, err
	}

	res, err := db.ExecContext(ctx, `
		INSERT INTO profiles (id, display_name, settings, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (id) DO NOTHING`,
		DemoPersonID, "Dev Person", settings)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func seedTypedProfiles(ctx context.Context, svcs Services, logger *slog.Logger) error {
	capacity := 450
	requests := []model.CreateProfileRequest{
		{
			Type:        model.ProfileTypeArtist,
			DisplayName: "The Midnight Echo",
			Genre:       "indie rock",
			Website:     "https://midnightecho.example.com",
		},
		{
			Type:        model.ProfileTypeVenue,
			DisplayName: "The Basement",
			Capacity:    &capacity,
			Website:     "https://basement.example.com",
		},
		{
			Type:        model.ProfileTypeOrganizer,
			DisplayName: "Northside Collective",
			OrgType:     "festival",
		},
	}

	var lastRef *model.ProfileRef
	for _, req := range requests {
		result, err := svcs.actions.CreateProfile(ctx, service.CreateProfileParams{
			AuthPersonID: DemoPersonID,
			PersonID:     DemoPersonID,
			Req:          req,
		})
		if err != nil {
			return fmt.Errorf("create %s profile: %w", req.Type, err)
		}
		if logger != nil {
			logger.InfoContext(ctx, "seeded profile",
				"type", string(req.Type), "id", result.ID, "placeholder", result.Placeholder)
		}
		if req.Type == model.ProfileTypeArtist && !result.Placeholder {
			lastRef = &model.ProfileRef{ID: result.ID, Type: req.Type}
		}
	}

	// Leave the demo person acting as the artist so the switch path gets
	// exercised on every fresh seed.
	if lastRef != nil {
		if _, err := svcs.active.Switch(ctx, service.SwitchParams{
			PersonID: DemoPersonID,
			Ref:      *lastRef,
		}); err != nil {
			return fmt.Errorf("switch to seeded artist: %w", err)
		}
	}
	return nil
}
