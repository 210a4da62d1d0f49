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

// PostRepo persists content published under a profile.
type PostRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewPostRepo creates a new PostRepo with real time provider.
func NewPostRepo(db *sql.DB) *PostRepo {
	return &PostRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewPostRepoWithTimeProvider creates a new PostRepo with a custom time provider (useful for tests).
func NewPostRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *PostRepo {
	return &PostRepo{DB: db, timeProvider: tp}
}

// CreateViaProc calls the privileged create_post_with_profile procedure,
// which validates authorship and writes the post and activity entry atomically.
func (r *PostRepo) CreateViaProc(ctx context.Context, params core.CreatePostParams) (string, error) {
	return callCreateProc(ctx, r.DB, `SELECT create_post_with_profile($1, $2, $3, $4)`,
		params.PersonID, params.AuthorProfileID, string(params.AuthorProfileType), params.Body)
}

// Insert writes a post row directly, accepting weaker atomicity than the procedure path.
func (r *PostRepo) Insert(ctx context.Context, params core.CreatePostParams) (string, error) {
	id := uuid.NewString()
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		_, execErr := conn.Exec(ctx, `
			INSERT INTO posts (id, author_profile_id, author_profile_type, body, created_at)
			VALUES ($1, $2, $3, $4, $5)`,
			id,
			params.AuthorProfileID,
			string(params.AuthorProfileType),
			params.Body,
			r.timeProvider.Now().UTC(),
		)
		return execErr
	})
	if err != nil {
		return "", apperrors.MapDBError(err)
	}
	return id, nil
}
