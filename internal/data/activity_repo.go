package data

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gigwire/identity-go/internal/data/pgxutil"
	"github.com/gigwire/identity-go/internal/domain/model"
	apperrors "github.com/gigwire/identity-go/internal/errors"
)

// ActivityRepo appends to and reads the append-only profile activity log.
// Rows are never updated or deleted.
type ActivityRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewActivityRepo creates a new ActivityRepo with real time provider.
func NewActivityRepo(db *sql.DB) *ActivityRepo {
	return &ActivityRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewActivityRepoWithTimeProvider creates a new ActivityRepo with a custom time provider (useful for tests).
func NewActivityRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *ActivityRepo {
	return &ActivityRepo{DB: db, timeProvider: tp}
}

// Append writes one activity record. The record's ID and CreatedAt are
// assigned here; callers fill everything else.
func (r *ActivityRepo) Append(ctx context.Context, rec *model.ActivityRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = r.timeProvider.Now().UTC()
	}
	details := rec.ActionDetails
	if len(details) == 0 {
		details = []byte(`{}`)
	}

	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		_, execErr := conn.Exec(ctx, `
			INSERT INTO profile_activity_log (id, person_id, actor_profile_id, actor_profile_type, action_type, action_details, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			rec.ID,
			rec.PersonID,
			rec.ActorProfileID,
			string(rec.ActorProfileType),
			string(rec.ActionType),
			[]byte(details),
			rec.CreatedAt,
		)
		return execErr
	})
	if err != nil {
		return apperrors.MapDBError(err)
	}
	return nil
}

const activityListQuery = `
	SELECT id, person_id, actor_profile_id, actor_profile_type, action_type, action_details, created_at
	FROM profile_activity_log
	WHERE person_id = $1
	ORDER BY created_at DESC, id
	LIMIT $2 OFFSET $3`

// ListByPerson returns a page of a person's activity, newest first.
func (r *ActivityRepo) ListByPerson(ctx context.Context, personID string, opts model.ActivityListOptions) ([]*model.ActivityRecord, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)

	var rowsOut []model.ActivityRecord
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, activityListQuery, personID, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.ActivityRecord])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}

	res := make([]*model.ActivityRecord, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}
