// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdikyarts/musicopedia/internal/core/artist"
	"github.com/sdikyarts/musicopedia/internal/platform/apperr"
	"github.com/sdikyarts/musicopedia/pkg/uuid"
)

func soloRequest() *artist.CreateRequest {
	return &artist.CreateRequest{Type: artist.TypeSolo, Name: "IU", PrimaryLanguage: "Korean"}
}

func groupRequest() *artist.CreateRequest {
	return &artist.CreateRequest{
		Type:        artist.TypeGroup,
		Name:        "TWICE",
		Genre:       "K-Pop",
		Description: "Nine-member girl group formed through SIXTEEN",
	}
}

func franchiseRequest() *artist.CreateRequest {
	return &artist.CreateRequest{
		Type:          artist.TypeFranchise,
		Name:          "Love Live!",
		Description:   strings.Repeat("f", 50),
		OriginCountry: "JP",
	}
}

func variousRequest() *artist.CreateRequest {
	return &artist.CreateRequest{
		Type:        artist.TypeVarious,
		Name:        "Now That's What I Call Music",
		Description: strings.Repeat("v", 30),
		Genre:       "Pop",
	}
}

/*
TestDispatcher_Create_Rules walks every per-type rule and asserts the first
violated rule is the one named in the error.
*/
func TestDispatcher_Create_Rules(t *testing.T) {
	dispatcher := artist.NewDispatcher()

	tests := []struct {
		name    string
		request func() *artist.CreateRequest
		message string
	}{
		{"solo_empty_name", func() *artist.CreateRequest { r := soloRequest(); r.Name = "  "; return r }, "Solo artist name cannot be empty"},
		{"solo_long_name", func() *artist.CreateRequest { r := soloRequest(); r.Name = strings.Repeat("a", 101); return r }, "Solo artist name cannot exceed 100 characters"},
		{"solo_no_language", func() *artist.CreateRequest { r := soloRequest(); r.PrimaryLanguage = ""; return r }, "Primary language is required for solo artists"},
		{"solo_name_before_language", func() *artist.CreateRequest { r := soloRequest(); r.Name = ""; r.PrimaryLanguage = ""; return r }, "Solo artist name cannot be empty"},

		{"group_empty_name", func() *artist.CreateRequest { r := groupRequest(); r.Name = ""; return r }, "Group name cannot be empty"},
		{"group_long_name", func() *artist.CreateRequest { r := groupRequest(); r.Name = strings.Repeat("a", 151); return r }, "Group name cannot exceed 150 characters"},
		{"group_no_genre", func() *artist.CreateRequest { r := groupRequest(); r.Genre = ""; return r }, "Genre is required for groups"},
		{"group_no_description", func() *artist.CreateRequest { r := groupRequest(); r.Description = ""; return r }, "Description is required for groups to explain their concept"},

		{"franchise_empty_name", func() *artist.CreateRequest { r := franchiseRequest(); r.Name = ""; return r }, "Franchise artist name cannot be empty"},
		{"franchise_long_name", func() *artist.CreateRequest { r := franchiseRequest(); r.Name = strings.Repeat("a", 201); return r }, "Franchise artist name cannot exceed 200 characters"},
		{"franchise_short_description", func() *artist.CreateRequest { r := franchiseRequest(); r.Description = strings.Repeat("f", 49); return r }, "Franchise artists require detailed description (minimum 50 characters)"},
		{"franchise_no_country", func() *artist.CreateRequest { r := franchiseRequest(); r.OriginCountry = ""; return r }, "Origin country is required for franchise artists"},

		{"various_empty_name", func() *artist.CreateRequest { r := variousRequest(); r.Name = ""; return r }, "Various artist compilation name cannot be empty"},
		{"various_long_name", func() *artist.CreateRequest { r := variousRequest(); r.Name = strings.Repeat("a", 301); return r }, "Various artist compilation name cannot exceed 300 characters"},
		{"various_short_description", func() *artist.CreateRequest { r := variousRequest(); r.Description = strings.Repeat("v", 29); return r }, "Various artist compilations require description (minimum 30 characters) to explain the collection"},
		{"various_no_genre", func() *artist.CreateRequest { r := variousRequest(); r.Genre = ""; return r }, "Genre classification is required for various artist compilations"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created, err := dispatcher.Create(tt.request())

			require.Error(t, err)
			assert.Nil(t, created)
			assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

/*
TestDispatcher_Create_PreservesType asserts the built artist carries the type
of the policy that accepted it, a fresh id and a slug.
*/
func TestDispatcher_Create_PreservesType(t *testing.T) {
	dispatcher := artist.NewDispatcher()

	for _, request := range []*artist.CreateRequest{soloRequest(), groupRequest(), franchiseRequest(), variousRequest()} {
		t.Run(string(request.Type), func(t *testing.T) {
			created, err := dispatcher.Create(request)

			require.NoError(t, err)
			assert.Equal(t, request.Type, created.Type)
			assert.Equal(t, request.Name, created.Name)
			assert.True(t, uuid.IsValid(created.ID))
			assert.NotEmpty(t, created.Slug)
		})
	}
}

/*
TestDispatcher_Create_CountsCodePoints asserts name and description limits
count characters, not bytes.
*/
func TestDispatcher_Create_CountsCodePoints(t *testing.T) {
	dispatcher := artist.NewDispatcher()

	solo := soloRequest()
	solo.Name = strings.Repeat("아", 100)
	_, err := dispatcher.Create(solo)
	assert.NoError(t, err)

	franchise := franchiseRequest()
	franchise.Description = strings.Repeat("é", 50)
	_, err = dispatcher.Create(franchise)
	assert.NoError(t, err)
}

/*
TestDispatcher_Dispatch covers missing and unmapped type tags.
*/
func TestDispatcher_Dispatch(t *testing.T) {
	dispatcher := artist.NewDispatcher()

	tests := []struct {
		name    string
		tag     artist.Type
		message string
	}{
		{"missing", "", "Artist type is required"},
		{"unknown", "ORCHESTRA", "No factory available for artist type: ORCHESTRA"},
		{"case_sensitive", "solo", "No factory available for artist type: solo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dispatcher.Create(&artist.CreateRequest{Type: tt.tag, Name: "Anyone"})

			require.Error(t, err)
			assert.True(t, apperr.HasCode(err, apperr.CodeDispatch))
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

/*
TestDispatcher_Assemble attaches exactly the extension the type requires.
*/
func TestDispatcher_Assemble(t *testing.T) {
	dispatcher := artist.NewDispatcher()

	t.Run("solo_gets_solo_extension", func(t *testing.T) {
		profile, err := dispatcher.Assemble(soloRequest())

		require.NoError(t, err)
		require.NotNil(t, profile.Solo)
		assert.Nil(t, profile.Group)
		assert.Equal(t, profile.Artist.ID, profile.Solo.ArtistID)
		assert.Equal(t, artist.GenderUnknown, profile.Solo.Gender)
		assert.Equal(t, artist.AffiliationNever, profile.Solo.AffiliationStatus)
	})

	t.Run("group_gets_group_extension", func(t *testing.T) {
		profile, err := dispatcher.Assemble(groupRequest())

		require.NoError(t, err)
		require.NotNil(t, profile.Group)
		assert.Nil(t, profile.Solo)
		assert.Equal(t, artist.ActivityActive, profile.Group.ActivityStatus)
	})

	t.Run("franchise_and_various_get_none", func(t *testing.T) {
		for _, request := range []*artist.CreateRequest{franchiseRequest(), variousRequest()} {
			profile, err := dispatcher.Assemble(request)

			require.NoError(t, err)
			assert.Nil(t, profile.Solo)
			assert.Nil(t, profile.Group)
		}
	})

	t.Run("mismatched_extension_block", func(t *testing.T) {
		request := franchiseRequest()
		request.Solo = &artist.SoloRequest{Gender: artist.GenderFemale}

		profile, err := dispatcher.Assemble(request)

		require.Error(t, err)
		assert.Nil(t, profile)
		assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
	})

	t.Run("bad_spotify_id", func(t *testing.T) {
		request := soloRequest()
		spotifyID := "short"
		request.SpotifyID = &spotifyID

		_, err := dispatcher.Assemble(request)

		require.Error(t, err)
		assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
	})
}
