// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdikyarts/musicopedia/internal/core/artist"
	"github.com/sdikyarts/musicopedia/internal/platform/apperr"
	"github.com/sdikyarts/musicopedia/pkg/pointer"
)

func day(year int, month time.Month, date int) *time.Time {
	return pointer.To(time.Date(year, month, date, 0, 0, 0, 0, time.UTC))
}

func base(artistType artist.Type) *artist.Artist {
	return &artist.Artist{ID: "0190f5b2-7a3c-7c4e-9b1a-2f6d8e4c1a00", Name: "Sample", Type: artistType}
}

/*
TestNewSolo covers base matching, defaults and the birth/death ordering.
*/
func TestNewSolo(t *testing.T) {
	tests := []struct {
		name       string
		base       *artist.Artist
		attributes artist.SoloAttributes
		code       string
	}{
		{"valid", base(artist.TypeSolo), artist.SoloAttributes{BirthDate: day(1993, 5, 16)}, ""},
		{"same_day_death", base(artist.TypeSolo), artist.SoloAttributes{BirthDate: day(1990, 1, 1), DeathDate: day(1990, 1, 1)}, ""},
		{"missing_base", nil, artist.SoloAttributes{}, apperr.CodeReferenceIntegrity},
		{"group_base", base(artist.TypeGroup), artist.SoloAttributes{}, apperr.CodeReferenceIntegrity},
		{"death_before_birth", base(artist.TypeSolo), artist.SoloAttributes{BirthDate: day(1990, 1, 2), DeathDate: day(1990, 1, 1)}, apperr.CodeValidation},
		{"unknown_gender", base(artist.TypeSolo), artist.SoloAttributes{Gender: "ROBOT"}, apperr.CodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			solo, err := artist.NewSolo(tt.base, tt.attributes)

			if tt.code != "" {
				require.Error(t, err)
				assert.Nil(t, solo)
				assert.True(t, apperr.HasCode(err, tt.code))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.base.ID, solo.ArtistID)
			assert.Equal(t, artist.GenderUnknown, solo.Gender)
			assert.Equal(t, artist.AffiliationNever, solo.AffiliationStatus)
		})
	}
}

/*
TestNewSolo_MismatchMessage names the artist and its actual type.
*/
func TestNewSolo_MismatchMessage(t *testing.T) {
	_, err := artist.NewSolo(base(artist.TypeFranchise), artist.SoloAttributes{})

	require.Error(t, err)
	assert.Equal(t, "Artist 'Sample' is type FRANCHISE and cannot carry solo attributes", err.Error())
}

/*
TestNewGroup covers base matching, the disbanded default and date ordering.
*/
func TestNewGroup(t *testing.T) {
	t.Run("disband_date_implies_disbanded", func(t *testing.T) {
		group, err := artist.NewGroup(base(artist.TypeGroup), artist.GroupAttributes{
			FormationDate: day(2007, 8, 5),
			DisbandDate:   day(2017, 9, 1),
		})

		require.NoError(t, err)
		assert.Equal(t, artist.ActivityDisbanded, group.ActivityStatus)
		assert.True(t, group.IsDisbanded())
	})

	t.Run("explicit_status_wins", func(t *testing.T) {
		group, err := artist.NewGroup(base(artist.TypeGroup), artist.GroupAttributes{
			DisbandDate:    day(2017, 9, 1),
			ActivityStatus: artist.ActivityInactive,
		})

		require.NoError(t, err)
		assert.Equal(t, artist.ActivityInactive, group.ActivityStatus)
	})

	t.Run("disband_before_formation", func(t *testing.T) {
		_, err := artist.NewGroup(base(artist.TypeGroup), artist.GroupAttributes{
			FormationDate: day(2010, 1, 1),
			DisbandDate:   day(2009, 1, 1),
		})

		require.Error(t, err)
		assert.Equal(t, "Disband date cannot be before formation date", err.Error())
	})

	t.Run("solo_base", func(t *testing.T) {
		_, err := artist.NewGroup(base(artist.TypeSolo), artist.GroupAttributes{})

		require.Error(t, err)
		assert.True(t, apperr.HasCode(err, apperr.CodeReferenceIntegrity))
	})
}

/*
TestProfile_Check asserts each type carries exactly the extension it requires.
*/
func TestProfile_Check(t *testing.T) {
	soloBase := base(artist.TypeSolo)
	groupBase := base(artist.TypeGroup)
	solo := &artist.Solo{ArtistID: soloBase.ID}
	group := &artist.Group{ArtistID: groupBase.ID}

	tests := []struct {
		name    string
		profile *artist.Profile
		valid   bool
	}{
		{"solo_with_solo", &artist.Profile{Artist: soloBase, Solo: solo}, true},
		{"solo_without_extension", &artist.Profile{Artist: soloBase}, false},
		{"solo_with_both", &artist.Profile{Artist: soloBase, Solo: solo, Group: group}, false},
		{"group_with_group", &artist.Profile{Artist: groupBase, Group: group}, true},
		{"group_with_solo", &artist.Profile{Artist: groupBase, Solo: solo}, false},
		{"franchise_bare", &artist.Profile{Artist: base(artist.TypeFranchise)}, true},
		{"various_with_group", &artist.Profile{Artist: base(artist.TypeVarious), Group: group}, false},
		{"foreign_extension", &artist.Profile{Artist: soloBase, Solo: &artist.Solo{ArtistID: "other"}}, false},
		{"no_base", &artist.Profile{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Check()
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.True(t, apperr.HasCode(err, apperr.CodeReferenceIntegrity))
		})
	}
}
