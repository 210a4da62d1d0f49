package data

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigwire/identity-go/internal/domain/model"
	"github.com/gigwire/identity-go/internal/testutil"
)

func TestActivityRepo_AppendAssignsIDAndTime(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewActivityRepoWithTimeProvider(db, NewFixedTimeProvider(testutil.TestTime()))
		ctx := context.Background()

		rec := &model.ActivityRecord{
			PersonID:         "person-1",
			ActorProfileID:   "artist-1",
			ActorProfileType: model.ProfileTypeArtist,
			ActionType:       model.ActionSwitchProfile,
		}
		require.NoError(t, repo.Append(ctx, rec))
		assert.NotEmpty(t, rec.ID)
		assert.Equal(t, testutil.TestTime(), rec.CreatedAt)

		records, err := repo.ListByPerson(ctx, "person-1", model.ActivityListOptions{})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, rec.ID, records[0].ID)
		assert.JSONEq(t, `{}`, string(records[0].ActionDetails))
	})
}

func TestActivityRepo_ListByPerson_NewestFirst(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		tp := NewFixedTimeProvider(testutil.TestTime())
		repo := NewActivityRepoWithTimeProvider(db, tp)
		ctx := context.Background()

		for _, action := range []model.ActionType{model.ActionCreateProfile, model.ActionSwitchProfile, model.ActionPublishPost} {
			require.NoError(t, repo.Append(ctx, &model.ActivityRecord{
				PersonID:         "person-1",
				ActorProfileID:   "artist-1",
				ActorProfileType: model.ProfileTypeArtist,
				ActionType:       action,
				ActionDetails:    []byte(`{"k":"v"}`),
			}))
			tp.AddTime(time.Minute)
		}

		records, err := repo.ListByPerson(ctx, "person-1", model.ActivityListOptions{})
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, model.ActionPublishPost, records[0].ActionType)
		assert.Equal(t, model.ActionCreateProfile, records[2].ActionType)
	})
}

func TestActivityRepo_ListByPerson_Paging(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		tp := NewFixedTimeProvider(testutil.TestTime())
		repo := NewActivityRepoWithTimeProvider(db, tp)
		ctx := context.Background()

		for i := 0; i < 5; i++ {
			require.NoError(t, repo.Append(ctx, &model.ActivityRecord{
				PersonID:         "person-1",
				ActorProfileID:   "person-1",
				ActorProfileType: model.ProfileTypeGeneral,
				ActionType:       model.ActionSwitchProfile,
			}))
			tp.AddTime(time.Second)
		}

		page, err := repo.ListByPerson(ctx, "person-1", model.ActivityListOptions{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, page, 2)

		rest, err := repo.ListByPerson(ctx, "person-1", model.ActivityListOptions{Limit: 10, Offset: 2})
		require.NoError(t, err)
		assert.Len(t, rest, 3)
	})
}
