package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/gigwire/identity-go/internal/errors"
)

func TestParseProfileType(t *testing.T) {
	pt, ok := ParseProfileType("Artist")
	assert.True(t, ok)
	assert.Equal(t, ProfileTypeArtist, pt)

	pt, ok = ParseProfileType(" venue ")
	assert.True(t, ok)
	assert.Equal(t, ProfileTypeVenue, pt)

	_, ok = ParseProfileType("promoter")
	assert.False(t, ok)
}

func TestProfileType_Typed(t *testing.T) {
	assert.False(t, ProfileTypeGeneral.Typed())
	assert.True(t, ProfileTypeArtist.Typed())
	assert.True(t, ProfileTypeVenue.Typed())
	assert.True(t, ProfileTypeOrganizer.Typed())
	assert.False(t, ProfileType("unknown").Typed())
}

func TestDefaultPermissions(t *testing.T) {
	artist := DefaultPermissions(ProfileTypeArtist)
	assert.True(t, artist.CanPost)
	assert.True(t, artist.CanManageContent)
	assert.False(t, artist.CanManageEvents)
	assert.False(t, artist.CanModerate)

	assert.Equal(t, artist, DefaultPermissions(ProfileTypeVenue))

	organizer := DefaultPermissions(ProfileTypeOrganizer)
	assert.True(t, organizer.CanManageEvents)
	assert.True(t, organizer.CanModerate)
	assert.True(t, organizer.CanManageUsers)

	general := DefaultPermissions(ProfileTypeGeneral)
	assert.True(t, general.CanPost)
	assert.True(t, general.CanManageSettings)
	assert.False(t, general.CanViewAnalytics)
}

func TestPermissionsUpdate_Empty(t *testing.T) {
	assert.True(t, PermissionsUpdate{}.Empty())

	f := false
	assert.False(t, PermissionsUpdate{CanModerate: &f}.Empty())
}

func TestPermissionsUpdate_Merge(t *testing.T) {
	base := DefaultPermissions(ProfileTypeArtist)

	tr, f := true, false
	got := PermissionsUpdate{CanModerate: &tr, CanPost: &f}.Merge(base)

	assert.True(t, got.CanModerate)
	assert.False(t, got.CanPost)
	// Untouched fields keep base values.
	assert.True(t, got.CanManageSettings)
	assert.True(t, got.CanViewAnalytics)
	// Base is not mutated.
	assert.True(t, base.CanPost)
	assert.False(t, base.CanModerate)
}

func TestCreateProfileRequest_Validate(t *testing.T) {
	neg := -1
	tests := []struct {
		name  string
		req   CreateProfileRequest
		field string
	}{
		{name: "general not creatable", req: CreateProfileRequest{Type: ProfileTypeGeneral, DisplayName: "X"}, field: "type"},
		{name: "unknown type", req: CreateProfileRequest{Type: "promoter", DisplayName: "X"}, field: "type"},
		{name: "blank display name", req: CreateProfileRequest{Type: ProfileTypeArtist, DisplayName: "  "}, field: "display_name"},
		{name: "display name too long", req: CreateProfileRequest{Type: ProfileTypeArtist, DisplayName: strings.Repeat("x", 256)}, field: "display_name"},
		{name: "negative capacity", req: CreateProfileRequest{Type: ProfileTypeVenue, DisplayName: "X", Capacity: &neg}, field: "capacity"},
		{name: "bad website", req: CreateProfileRequest{Type: ProfileTypeArtist, DisplayName: "X", Website: "://"}, field: "website"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))

			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.field, appErr.Field)
		})
	}
}

func TestCreateProfileRequest_Validate_NormalizesInputs(t *testing.T) {
	req := CreateProfileRequest{
		Type:        ProfileTypeArtist,
		DisplayName: "  The Midnight Echo  ",
		Website:     "https://www.nova.band/tour?ref=home",
	}
	require.NoError(t, req.Validate())
	assert.Equal(t, "The Midnight Echo", req.DisplayName)
	assert.Equal(t, "nova.band", req.Website)
}

func TestNormalizeWebsiteDomain(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "https://www.nova.band/tour", want: "nova.band"},
		{in: "nova.band", want: "nova.band"},
		{in: "WWW.NOVA.BAND", want: "nova.band"},
		{in: "http://tickets.venue.example.co.uk/buy", want: "example.co.uk"},
	}
	for _, tt := range tests {
		got, err := NormalizeWebsiteDomain(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := NormalizeWebsiteDomain("")
	require.Error(t, err)
	_, err = NormalizeWebsiteDomain("://")
	require.Error(t, err)
}

func TestCreatePostRequest_Validate(t *testing.T) {
	req := CreatePostRequest{Body: "  hello  "}
	require.NoError(t, req.Validate())
	assert.Equal(t, "hello", req.Body)

	err := (&CreatePostRequest{Body: "   "}).Validate()
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	err = (&CreatePostRequest{Body: strings.Repeat("x", 10001)}).Validate()
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}
