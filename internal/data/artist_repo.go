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

// ArtistRepo provides database operations for the dedicated artist profile table.
type ArtistRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewArtistRepo creates a new ArtistRepo with real time provider.
func NewArtistRepo(db *sql.DB) *ArtistRepo {
	return &ArtistRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewArtistRepoWithTimeProvider creates a new ArtistRepo with a custom time provider (useful for tests).
func NewArtistRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *ArtistRepo {
	return &ArtistRepo{DB: db, timeProvider: tp}
}

const artistListQuery = `
	SELECT id, profile_id, artist_name, genre, website_domain, created_at
	FROM artist_profiles
	WHERE profile_id = $1
	ORDER BY created_at, id`

// ListByPersonID returns raw artist rows for a person, in creation order.
// Rows are returned unshaped; the schema normalizer maps them onto the
// canonical profile shape.
func (r *ArtistRepo) ListByPersonID(ctx context.Context, personID string) ([]map[string]any, error) {
	return listRawRows(ctx, r.DB, artistListQuery, personID)
}

// CreateViaProc calls the privileged create_artist_profile procedure.
// A missing procedure surfaces as SchemaUnavailable.
func (r *ArtistRepo) CreateViaProc(ctx context.Context, params core.CreateArtistParams) (string, error) {
	return callCreateProc(ctx, r.DB, `SELECT create_artist_profile($1, $2, $3, $4)`,
		params.PersonID, params.ArtistName, nullable(params.Genre), nullable(params.Website))
}

// Insert writes an artist row directly, accepting weaker atomicity than the procedure path.
func (r *ArtistRepo) Insert(ctx context.Context, params core.CreateArtistParams) (string, error) {
	id := uuid.NewString()
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		_, err := conn.Exec(ctx, `
			INSERT INTO artist_profiles (id, profile_id, artist_name, genre, website_domain, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			id,
			params.PersonID,
			params.ArtistName,
			nullable(params.Genre),
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
