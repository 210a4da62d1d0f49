package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigwire/identity-go/internal/core"
	"github.com/gigwire/identity-go/internal/testutil"
)

func TestVenueRepo_InsertAndList(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		seedProfile(t, db, "person-1", "Ada")

		repo := NewVenueRepo(db)
		ctx := context.Background()

		id, err := repo.Insert(ctx, core.CreateVenueParams{
			PersonID:  "person-1",
			VenueName: "The Basement",
			Capacity:  testutil.IntPtr(450),
			Website:   "basement.example",
		})
		require.NoError(t, err)

		rows, err := repo.ListByPersonID(ctx, "person-1")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, id, rows[0]["id"])
		assert.Equal(t, "The Basement", rows[0]["venue_name"])
		assert.EqualValues(t, 450, rows[0]["capacity"])
	})
}

func TestVenueRepo_Insert_NilCapacity(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		seedProfile(t, db, "person-1", "Ada")

		repo := NewVenueRepo(db)
		ctx := context.Background()

		_, err := repo.Insert(ctx, core.CreateVenueParams{PersonID: "person-1", VenueName: "Open Air"})
		require.NoError(t, err)

		rows, err := repo.ListByPersonID(ctx, "person-1")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Nil(t, rows[0]["capacity"])
	})
}

func TestVenueRepo_CreateViaProc(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		seedProfile(t, db, "person-1", "Ada")

		repo := NewVenueRepo(db)
		ctx := context.Background()

		id, err := repo.CreateViaProc(ctx, core.CreateVenueParams{
			PersonID:  "person-1",
			VenueName: "The Basement",
			Capacity:  testutil.IntPtr(450),
		})
		require.NoError(t, err)

		rows, err := repo.ListByPersonID(ctx, "person-1")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, id, rows[0]["id"])
	})
}
