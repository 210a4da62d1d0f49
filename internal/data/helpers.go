package data

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5"

	"github.com/gigwire/identity-go/internal/data/pgxutil"
	apperrors "github.com/gigwire/identity-go/internal/errors"
)

// listRawRows runs a query and collects every row as a column→value map.
// The typed profile sources return raw rows on purpose: the schema
// normalizer owns the mapping from each storage shape onto the canonical
// profile, so repos stay shape-agnostic.
func listRawRows(ctx context.Context, db *sql.DB, query string, args ...any) ([]map[string]any, error) {
	var out []map[string]any
	err := pgxutil.WithPgxConn(ctx, db, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToMap)
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return out, nil
}

// callCreateProc invokes a privileged creation procedure that returns the new
// row id. Missing procedures map to SchemaUnavailable so callers can fall
// through to the direct-write tier.
func callCreateProc(ctx context.Context, db *sql.DB, query string, args ...any) (string, error) {
	var id string
	err := pgxutil.WithPgxConn(ctx, db, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, query, args...).Scan(&id)
	})
	if err != nil {
		return "", apperrors.MapDBError(err)
	}
	return id, nil
}

// nullable converts an empty string to NULL for optional text columns.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
