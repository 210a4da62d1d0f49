package data

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gigwire/identity-go/internal/core"
	"github.com/gigwire/identity-go/internal/data/pgxutil"
	apperrors "github.com/gigwire/identity-go/internal/errors"
)

// VenueRepo provides database operations for the dedicated venue profile table.
//
// Venue rows are looked up by profile_id only. A venue_members cross-reference
// table also exists in some deployments, but identities are never synthesized
// from it: a linking row can outlive the venue record it points at, and
// surfacing those would resurrect deleted venues.
type VenueRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewVenueRepo creates a new VenueRepo with real time provider.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewVenueRepoWithTimeProvider creates a new VenueRepo with a custom time provider (useful for tests).
func NewVenueRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *VenueRepo {
	return &VenueRepo{DB: db, timeProvider: tp}
}

const venueListQuery = `
	SELECT id, profile_id, venue_name, capacity, website_domain, created_at
	FROM venue_profiles
	WHERE profile_id = $1
	ORDER BY created_at, id`

// ListByPersonID returns raw venue rows for a person, in creation order.
func (r *VenueRepo) ListByPersonID(ctx context.Context, personID string) ([]map[string]any, error) {
	return listRawRows(ctx, r.DB, venueListQuery, personID)
}

// CreateViaProc calls the privileged create_venue_profile procedure.
func (r *VenueRepo) CreateViaProc(ctx context.Context, params core.CreateVenueParams) (string, error) {
	return callCreateProc(ctx, r.DB, `SELECT create_venue_profile($1, $2, $3, $4)`,
		params.PersonID, params.VenueName, params.Capacity, nullable(params.Website))
}

// Insert writes a venue row directly, accepting weaker atomicity than the procedure path.
func (r *VenueRepo) Insert(ctx context.Context, params core.CreateVenueParams) (string, error) {
	id := uuid.NewString()
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		_, err := conn.Exec(ctx, `
			INSERT INTO venue_profiles (id, profile_id, venue_name, capacity, website_domain, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			id,
			params.PersonID,
			params.VenueName,
			params.Capacity,
			nullable(params.Website),
			r.timeProvider.Now().UTC(),
		)
		return err
	})
	if err != nil {
		return "", apperrors.MapDBError(err)
	}
	return id, nil
}
