package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/gigwire/identity-go/internal/errors"
	"github.com/gigwire/identity-go/internal/testutil"
)

// seedProfile inserts a general profile row directly; most repo tests need
// one as the FK anchor for typed rows.
func seedProfile(t *testing.T, db *sql.DB, id, displayName string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO profiles (id, display_name) VALUES ($1, $2)`, id, displayName)
	require.NoError(t, err)
}

func TestAccountRepo_GetByPersonID(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		seedProfile(t, db, "person-1", "Ada")

		repo := NewAccountRepo(db)
		rec, err := repo.GetByPersonID(context.Background(), "person-1")
		require.NoError(t, err)
		assert.Equal(t, "person-1", rec.ID)
		assert.Equal(t, "Ada", rec.DisplayName)
		assert.JSONEq(t, `{}`, string(rec.Settings))
		assert.False(t, rec.CreatedAt.IsZero())
	})
}

func TestAccountRepo_GetByPersonID_SettingsBlob(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		_, err := db.Exec(`INSERT INTO profiles (id, display_name, settings) VALUES ($1, $2, $3)`,
			"person-1", "Ada", `{"organizer_profiles":[{"id":"legacy-1","org_name":"Old Org"}]}`)
		require.NoError(t, err)

		repo := NewAccountRepo(db)
		rec, err := repo.GetByPersonID(context.Background(), "person-1")
		require.NoError(t, err)
		assert.Contains(t, string(rec.Settings), "legacy-1")
	})
}

func TestAccountRepo_GetByPersonID_NotFound(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewAccountRepo(db)
		_, err := repo.GetByPersonID(context.Background(), "missing")
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})
}
