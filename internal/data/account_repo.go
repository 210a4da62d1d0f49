package data

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5"

	"github.com/gigwire/identity-go/internal/data/pgxutil"
	"github.com/gigwire/identity-go/internal/domain/model"
	apperrors "github.com/gigwire/identity-go/internal/errors"
)

// AccountRepo reads general profile records. The general record is the
// authoritative anchor for a person; every other source hangs off its id.
type AccountRepo struct {
	DB *sql.DB
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(db *sql.DB) *AccountRepo {
	return &AccountRepo{DB: db}
}

const accountGetQuery = `
	SELECT id, display_name, settings, created_at, updated_at
	FROM profiles
	WHERE id = $1`

// GetByPersonID retrieves a person's general record.
func (r *AccountRepo) GetByPersonID(ctx context.Context, personID string) (*model.GeneralRecord, error) {
	var rec model.GeneralRecord
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, accountGetQuery, personID)
		if err != nil {
			return err
		}
		defer rows.Close()
		rec, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.GeneralRecord])
		return err
	})
	if err != nil {
		mapped := apperrors.MapDBError(err)
		if apperrors.IsNotFound(mapped) {
			return nil, apperrors.NotFoundf("general profile %s not found", personID)
		}
		return nil, mapped
	}
	return &rec, nil
}
