package data

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5"

	"github.com/gigwire/identity-go/internal/data/pgxutil"
	"github.com/gigwire/identity-go/internal/domain/model"
	apperrors "github.com/gigwire/identity-go/internal/errors"
)

// SessionRepo tracks which profile is active for a person. Both the
// active_profile_sessions table and the switch_active_profile procedure are
// optional schema; their absence surfaces as SchemaUnavailable, never as a
// hard failure.
type SessionRepo struct {
	DB *sql.DB
}

// NewSessionRepo creates a new SessionRepo.
func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{DB: db}
}

const sessionGetQuery = `
	SELECT person_id, active_profile_id, active_profile_type, last_activity, created_at
	FROM active_profile_sessions
	WHERE person_id = $1`

// Get returns the tracked active session for a person. NotFound means no
// switch has ever been recorded; SchemaUnavailable means the table does not
// exist yet. Callers treat both as "default to the general profile".
func (r *SessionRepo) Get(ctx context.Context, personID string) (*model.ActiveSession, error) {
	var sess model.ActiveSession
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, sessionGetQuery, personID)
		if err != nil {
			return err
		}
		defer rows.Close()
		sess, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.ActiveSession])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &sess, nil
}

// SwitchViaProc calls the privileged atomic switch_active_profile procedure,
// which upserts the session row and bumps last_activity in one statement.
func (r *SessionRepo) SwitchViaProc(ctx context.Context, personID string, ref model.ProfileRef) (bool, error) {
	var ok bool
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `SELECT switch_active_profile($1, $2, $3)`,
			personID, ref.ID, string(ref.Type)).Scan(&ok)
	})
	if err != nil {
		return false, apperrors.MapDBError(err)
	}
	return ok, nil
}
