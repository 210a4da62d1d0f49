package data

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gigwire/identity-go/internal/core"
	"github.com/gigwire/identity-go/internal/data/pgxutil"
	"github.com/gigwire/identity-go/internal/domain/model"
	apperrors "github.com/gigwire/identity-go/internal/errors"
)

// OrganizerRepo provides database operations for the dedicated organizer
// profile table. Organizer rows carry an inline permissions column from the
// era before the shared permission table existed; the normalizer honors it
// as an explicit stored permission set.
type OrganizerRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewOrganizerRepo creates a new OrganizerRepo with real time provider.
func NewOrganizerRepo(db *sql.DB) *OrganizerRepo {
	return &OrganizerRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewOrganizerRepoWithTimeProvider creates a new OrganizerRepo with a custom time provider (useful for tests).
func NewOrganizerRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *OrganizerRepo {
	return &OrganizerRepo{DB: db, timeProvider: tp}
}

const organizerListQuery = `
	SELECT id, profile_id, org_name, org_type, permissions, is_active, created_at
	FROM organizer_profiles
	WHERE profile_id = $1
	ORDER BY created_at, id`

// ListByPersonID returns raw organizer rows for a person, in creation order.
func (r *OrganizerRepo) ListByPersonID(ctx context.Context, personID string) ([]map[string]any, error) {
	return listRawRows(ctx, r.DB, organizerListQuery, personID)
}

// CreateViaProc calls the privileged create_organizer_profile procedure.
func (r *OrganizerRepo) CreateViaProc(ctx context.Context, params core.CreateOrganizerParams) (string, error) {
	return callCreateProc(ctx, r.DB, `SELECT create_organizer_profile($1, $2, $3)`,
		params.PersonID, params.OrgName, nullable(params.OrgType))
}

// Insert writes an organizer row directly, accepting weaker atomicity than
// the procedure path. The row is seeded with the organizer default
// permission set.
func (r *OrganizerRepo) Insert(ctx context.Context, params core.CreateOrganizerParams) (string, error) {
	perms, err := json.Marshal(model.DefaultPermissions(model.ProfileTypeOrganizer))
	if err != nil {
		return "", fmt.Errorf("marshal default permissions: %w", err)
	}

	id := uuid.NewString()
	err = pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		_, execErr := conn.Exec(ctx, `
			INSERT INTO organizer_profiles (id, profile_id, org_name, org_type, permissions, is_active, created_at)
			VALUES ($1, $2, $3, $4, $5, TRUE, $6)`,
			id,
			params.PersonID,
			params.OrgName,
			nullable(params.OrgType),
			perms,
			r.timeProvider.Now().UTC(),
		)
		return execErr
	})
	if err != nil {
		return "", apperrors.MapDBError(err)
	}
	return id, nil
}
