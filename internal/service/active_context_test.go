package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gigwire/identity-go/internal/domain/model"
	apperrors "github.com/gigwire/identity-go/internal/errors"
	"github.com/gigwire/identity-go/internal/mocks"
	"github.com/gigwire/identity-go/internal/testutil"
)

// fakeCache is an in-memory ActiveContextCache. A nil entries map simulates
// a cache whose every call fails.
type fakeCache struct {
	entries     map[string]model.ProfileRef
	sets        int
	invalidates int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]model.ProfileRef{}}
}

func (c *fakeCache) Get(_ context.Context, personID string) (model.ProfileRef, bool, error) {
	if c.entries == nil {
		return model.ProfileRef{}, false, errors.New("cache down")
	}
	ref, ok := c.entries[personID]
	return ref, ok, nil
}

func (c *fakeCache) Set(_ context.Context, personID string, ref model.ProfileRef) error {
	if c.entries == nil {
		return errors.New("cache down")
	}
	c.entries[personID] = ref
	c.sets++
	return nil
}

func (c *fakeCache) Invalidate(_ context.Context, personID string) error {
	c.invalidates++
	if c.entries == nil {
		return errors.New("cache down")
	}
	delete(c.entries, personID)
	return nil
}

type activeContextFixture struct {
	svc      *ActiveContextService
	sessions *mocks.MockSessionRepository
	activity *mocks.MockActivityRepository
	cache    *fakeCache
	profiles profileMocks
}

func newActiveContextFixture(ctrl *gomock.Controller, cache *fakeCache) activeContextFixture {
	profiles, pm := newProfileService(ctrl)
	sessions := mocks.NewMockSessionRepository(ctrl)
	activity := mocks.NewMockActivityRepository(ctrl)

	var c ActiveContextCache
	if cache != nil {
		c = cache
	}
	svc := NewActiveContextService(ActiveContextServiceOptions{
		Sessions: sessions,
		Profiles: profiles,
		Activity: activity,
		Cache:    c,
	})
	return activeContextFixture{svc: svc, sessions: sessions, activity: activity, cache: cache, profiles: pm}
}

// expectAggregation primes the profile sources with the general record and a
// single artist row.
func (f activeContextFixture) expectAggregation(times int) {
	f.profiles.accounts.EXPECT().GetByPersonID(gomock.Any(), testPersonID).Return(generalRecord(), nil).Times(times)
	f.profiles.artists.EXPECT().ListByPersonID(gomock.Any(), testPersonID).Return([]map[string]any{
		testutil.ArtistRow("artist-1", testPersonID, "Echo"),
	}, nil).Times(times)
	f.profiles.venues.EXPECT().ListByPersonID(gomock.Any(), testPersonID).Return(nil, nil).Times(times)
	f.profiles.organizers.EXPECT().ListByPersonID(gomock.Any(), testPersonID).Return(nil, nil).Times(times)
}

func artistRef() model.ProfileRef {
	return model.ProfileRef{ID: "artist-1", Type: model.ProfileTypeArtist}
}

func TestActiveContextService_Active_DefaultsToGeneral(t *testing.T) {
	tests := []struct {
		name       string
		sessionErr error
	}{
		{name: "no switch ever recorded", sessionErr: apperrors.NotFoundf("no active session")},
		{name: "session table missing", sessionErr: apperrors.SchemaUnavailablef("relation active_profile_sessions does not exist")},
		{name: "session lookup fails", sessionErr: apperrors.Internal("connection reset")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newActiveContextFixture(ctrl, nil)
			f.expectAggregation(1)
			f.sessions.EXPECT().Get(gomock.Any(), testPersonID).Return(nil, tt.sessionErr)

			active, err := f.svc.Active(context.Background(), testPersonID)
			require.NoError(t, err)
			assert.Equal(t, model.ProfileTypeGeneral, active.Type)
			assert.Equal(t, testPersonID, active.ID)
		})
	}
}

func TestActiveContextService_Active_TrackedProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := newFakeCache()
	f := newActiveContextFixture(ctrl, cache)
	f.expectAggregation(1)
	f.sessions.EXPECT().Get(gomock.Any(), testPersonID).Return(&model.ActiveSession{
		PersonID:          testPersonID,
		ActiveProfileID:   "artist-1",
		ActiveProfileType: model.ProfileTypeArtist,
	}, nil)

	active, err := f.svc.Active(context.Background(), testPersonID)
	require.NoError(t, err)
	assert.Equal(t, "artist-1", active.ID)
	assert.Equal(t, artistRef(), cache.entries[testPersonID])
}

func TestActiveContextService_Active_StalePointerFallsBackToGeneral(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newActiveContextFixture(ctrl, nil)
	f.expectAggregation(1)
	f.sessions.EXPECT().Get(gomock.Any(), testPersonID).Return(&model.ActiveSession{
		PersonID:          testPersonID,
		ActiveProfileID:   "deleted-profile",
		ActiveProfileType: model.ProfileTypeVenue,
	}, nil)

	active, err := f.svc.Active(context.Background(), testPersonID)
	require.NoError(t, err)
	assert.Equal(t, model.ProfileTypeGeneral, active.Type)
}

func TestActiveContextService_Active_CacheHitSkipsSessionLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := newFakeCache()
	cache.entries[testPersonID] = artistRef()
	f := newActiveContextFixture(ctrl, cache)
	f.expectAggregation(1)
	// No sessions.Get expected.

	active, err := f.svc.Active(context.Background(), testPersonID)
	require.NoError(t, err)
	assert.Equal(t, "artist-1", active.ID)
}

func TestActiveContextService_Active_StaleCacheEntryInvalidated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := newFakeCache()
	cache.entries[testPersonID] = model.ProfileRef{ID: "gone", Type: model.ProfileTypeVenue}
	f := newActiveContextFixture(ctrl, cache)
	f.expectAggregation(1)
	f.sessions.EXPECT().Get(gomock.Any(), testPersonID).Return(nil, apperrors.NotFoundf("no session"))

	active, err := f.svc.Active(context.Background(), testPersonID)
	require.NoError(t, err)
	assert.Equal(t, model.ProfileTypeGeneral, active.Type)
	assert.Equal(t, 1, cache.invalidates)
}

func TestActiveContextService_Active_CacheFailureIsAMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newActiveContextFixture(ctrl, &fakeCache{}) // nil entries: every call errors
	f.expectAggregation(1)
	f.sessions.EXPECT().Get(gomock.Any(), testPersonID).Return(&model.ActiveSession{
		PersonID:          testPersonID,
		ActiveProfileID:   "artist-1",
		ActiveProfileType: model.ProfileTypeArtist,
	}, nil)

	active, err := f.svc.Active(context.Background(), testPersonID)
	require.NoError(t, err)
	assert.Equal(t, "artist-1", active.ID)
}

func TestActiveContextService_Switch_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := newFakeCache()
	f := newActiveContextFixture(ctrl, cache)
	f.expectAggregation(1)
	f.sessions.EXPECT().SwitchViaProc(gomock.Any(), testPersonID, artistRef()).Return(true, nil)
	f.activity.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rec *model.ActivityRecord) error {
			assert.Equal(t, model.ActionSwitchProfile, rec.ActionType)
			assert.Equal(t, "artist-1", rec.ActorProfileID)
			return nil
		})

	ok, err := f.svc.Switch(context.Background(), SwitchParams{PersonID: testPersonID, Ref: artistRef()})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, artistRef(), cache.entries[testPersonID])
}

func TestActiveContextService_Switch_UnownedProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newActiveContextFixture(ctrl, nil)
	f.expectAggregation(1)
	// No SwitchViaProc expected: authorization precedes the write.

	ok, err := f.svc.Switch(context.Background(), SwitchParams{
		PersonID: testPersonID,
		Ref:      model.ProfileRef{ID: "not-mine", Type: model.ProfileTypeVenue},
	})
	require.Error(t, err)
	assert.False(t, ok)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestActiveContextService_Switch_DegradedReportsSuccessWithoutPersistence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := newFakeCache()
	f := newActiveContextFixture(ctrl, cache)
	f.expectAggregation(2)
	f.sessions.EXPECT().SwitchViaProc(gomock.Any(), testPersonID, artistRef()).
		Return(false, apperrors.SchemaUnavailablef("function switch_active_profile does not exist"))

	ok, err := f.svc.Switch(context.Background(), SwitchParams{PersonID: testPersonID, Ref: artistRef()})
	require.NoError(t, err)
	assert.True(t, ok)

	// Nothing was persisted or cached; the next read still lands on general.
	assert.Equal(t, 0, cache.sets)
	f.sessions.EXPECT().Get(gomock.Any(), testPersonID).Return(nil, apperrors.NotFoundf("no session"))
	active, err := f.svc.Active(context.Background(), testPersonID)
	require.NoError(t, err)
	assert.Equal(t, model.ProfileTypeGeneral, active.Type)
}

func TestActiveContextService_Switch_ProcReportsNoChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newActiveContextFixture(ctrl, nil)
	f.expectAggregation(1)
	f.sessions.EXPECT().SwitchViaProc(gomock.Any(), testPersonID, artistRef()).Return(false, nil)

	ok, err := f.svc.Switch(context.Background(), SwitchParams{PersonID: testPersonID, Ref: artistRef()})
	require.NoError(t, err)
	assert.False(t, ok)
}
