package data

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gigwire/identity-go/internal/data/pgxutil"
	"github.com/gigwire/identity-go/internal/domain/model"
	apperrors "github.com/gigwire/identity-go/internal/errors"
)

// PermissionRepo stores explicit per-profile permission rows. A profile with
// no row here resolves to its type defaults. The table is optional schema.
type PermissionRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewPermissionRepo creates a new PermissionRepo with real time provider.
func NewPermissionRepo(db *sql.DB) *PermissionRepo {
	return &PermissionRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewPermissionRepoWithTimeProvider creates a new PermissionRepo with a custom time provider (useful for tests).
func NewPermissionRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *PermissionRepo {
	return &PermissionRepo{DB: db, timeProvider: tp}
}

// Get returns the stored permission row for a profile.
func (r *PermissionRepo) Get(ctx context.Context, ref model.ProfileRef) (*model.Permissions, error) {
	var raw []byte
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `
			SELECT permissions
			FROM profile_permissions
			WHERE profile_id = $1 AND profile_type = $2`,
			ref.ID, string(ref.Type)).Scan(&raw)
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}

	var perms model.Permissions
	if unmarshalErr := json.Unmarshal(raw, &perms); unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal permissions: %w", unmarshalErr)
	}
	return &perms, nil
}

// Upsert writes the full permission set for a profile, replacing any
// existing row. Merging partial updates is the service layer's job; by the
// time a write reaches here the set is complete.
func (r *PermissionRepo) Upsert(ctx context.Context, ref model.ProfileRef, perms model.Permissions) error {
	raw, err := json.Marshal(perms)
	if err != nil {
		return fmt.Errorf("marshal permissions: %w", err)
	}

	err = pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		_, execErr := conn.Exec(ctx, `
			INSERT INTO profile_permissions (profile_id, profile_type, permissions, updated_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (profile_id, profile_type)
			DO UPDATE SET permissions = EXCLUDED.permissions, updated_at = EXCLUDED.updated_at`,
			ref.ID, string(ref.Type), raw, r.timeProvider.Now().UTC())
		return execErr
	})
	if err != nil {
		return apperrors.MapDBError(err)
	}
	return nil
}
