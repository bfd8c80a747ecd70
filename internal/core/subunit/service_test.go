// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package subunit_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdikyarts/musicopedia/internal/core/artist"
	"github.com/sdikyarts/musicopedia/internal/core/subunit"
	"github.com/sdikyarts/musicopedia/internal/platform/apperr"
	"github.com/sdikyarts/musicopedia/internal/platform/metrics"
	"github.com/sdikyarts/musicopedia/pkg/date"
	"github.com/sdikyarts/musicopedia/pkg/pointer"
)

type fixture struct {
	artists  *artist.Service
	subunits *subunit.Service
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)

	artists := artist.NewService(artist.NewMemoryRepository(), metrics.NewNop(), logger)
	subunits := subunit.NewService(subunit.NewMemoryRepository(), artists, logger)
	return fixture{artists: artists, subunits: subunits}
}

func (f fixture) group(t *testing.T, name string) string {
	t.Helper()
	profile, err := f.artists.Create(context.Background(), &artist.CreateRequest{
		Type:        artist.TypeGroup,
		Name:        name,
		Genre:       "K-Pop",
		Description: "Boy group under Pledis Entertainment",
	})
	require.NoError(t, err)
	return profile.Artist.ID
}

func (f fixture) solo(t *testing.T, name string) string {
	t.Helper()
	profile, err := f.artists.Create(context.Background(), &artist.CreateRequest{
		Type:            artist.TypeSolo,
		Name:            name,
		PrimaryLanguage: "Korean",
	})
	require.NoError(t, err)
	return profile.Artist.ID
}

func day(year int, month time.Month, date int) *time.Time {
	return pointer.To(time.Date(year, month, date, 0, 0, 0, 0, time.UTC))
}

/*
TestService_Create_Defaults resolves the main group name and fills in gender
and activity status.
*/
func TestService_Create_Defaults(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seventeen := f.group(t, "SEVENTEEN")

	created, err := f.subunits.Create(ctx, &subunit.CreateRequest{
		MainGroupID: &seventeen,
		Name:        "  BOOSEOKSOON ",
	})
	require.NoError(t, err)

	assert.Equal(t, "BOOSEOKSOON", created.Name)
	assert.Equal(t, seventeen, created.MainGroupID)
	assert.Equal(t, "SEVENTEEN", created.MainGroupName)
	assert.Equal(t, artist.GenderUnknown, created.Gender)
	assert.Equal(t, artist.ActivityActive, created.ActivityStatus)
	assert.Nil(t, created.GroupIdentityName)

	disbanded, err := f.subunits.Create(ctx, &subunit.CreateRequest{
		MainGroupID:   &seventeen,
		Name:          "Hip-hop Team",
		FormationDate: date.FromTime(day(2015, time.May, 26)),
		DisbandDate:   date.FromTime(day(2023, time.January, 1)),
	})
	require.NoError(t, err)
	assert.Equal(t, artist.ActivityDisbanded, disbanded.ActivityStatus)
}

/*
TestService_Create_MainGroupRules covers the required main group link.
*/
func TestService_Create_MainGroupRules(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	soloist := f.solo(t, "Hoshi")
	unknown := "5f0c2d3e-4b1a-4c8d-9e7f-0a1b2c3d4e5f"

	tests := []struct {
		name    string
		groupID *string
		message string
	}{
		{"missing", nil, "Main group is required"},
		{"blank", pointer.To("  "), "Main group is required"},
		{"unknown", &unknown, "Main group not found with ID: " + unknown},
		{"not_a_group", &soloist, "Main group must be a group artist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.subunits.Create(ctx, &subunit.CreateRequest{MainGroupID: tt.groupID, Name: "Unit"})
			require.Error(t, err)
			assert.True(t, apperr.HasCode(err, "REFERENCE_INTEGRITY"))
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

/*
TestService_Create_GroupIdentity links a debuted subunit to its own GROUP artist.
*/
func TestService_Create_GroupIdentity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seventeen := f.group(t, "SEVENTEEN")
	bss := f.group(t, "BSS")
	soloist := f.solo(t, "DK")

	created, err := f.subunits.Create(ctx, &subunit.CreateRequest{
		MainGroupID:     &seventeen,
		GroupIdentityID: &bss,
		Name:            "BOOSEOKSOON",
	})
	require.NoError(t, err)
	require.NotNil(t, created.GroupIdentityName)
	assert.Equal(t, "BSS", *created.GroupIdentityName)

	_, err = f.subunits.Create(ctx, &subunit.CreateRequest{
		MainGroupID:     &seventeen,
		GroupIdentityID: &soloist,
		Name:            "Vocal Team",
	})
	assert.Equal(t, "Group identity must be a group artist", err.Error())

	_, err = f.subunits.Create(ctx, &subunit.CreateRequest{
		MainGroupID:     &seventeen,
		GroupIdentityID: &seventeen,
		Name:            "Performance Team",
	})
	assert.Equal(t, "Group identity must differ from the main group", err.Error())
}

/*
TestService_Create_Attributes validates names, dates and enum values.
*/
func TestService_Create_Attributes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seventeen := f.group(t, "SEVENTEEN")

	tests := []struct {
		name    string
		request subunit.CreateRequest
		message string
	}{
		{
			name:    "missing_name",
			request: subunit.CreateRequest{Name: " "},
			message: "Subunit name is required",
		},
		{
			name:    "long_name",
			request: subunit.CreateRequest{Name: strings.Repeat("a", subunit.MaxNameLength+1)},
			message: "Subunit name cannot exceed 150 characters",
		},
		{
			name: "disband_before_formation",
			request: subunit.CreateRequest{
				Name:          "Unit",
				FormationDate: date.FromTime(day(2020, time.March, 1)),
				DisbandDate:   date.FromTime(day(2019, time.March, 1)),
			},
			message: "Disband date cannot be before formation date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := tt.request
			request.MainGroupID = &seventeen
			_, err := f.subunits.Create(ctx, &request)
			require.Error(t, err)
			assert.True(t, apperr.HasCode(err, "VALIDATION_ERROR"))
			assert.Contains(t, err.Error(), tt.message)
		})
	}

	_, err := f.subunits.Create(ctx, &subunit.CreateRequest{MainGroupID: &seventeen, Name: "Unit", Gender: "ROBOT"})
	assert.True(t, apperr.HasCode(err, "VALIDATION_ERROR"))
}

/*
TestService_Update patches fields, clears the group identity and keeps the main
group required.
*/
func TestService_Update(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seventeen := f.group(t, "SEVENTEEN")
	bss := f.group(t, "BSS")
	nct := f.group(t, "NCT")

	created, err := f.subunits.Create(ctx, &subunit.CreateRequest{
		MainGroupID:     &seventeen,
		GroupIdentityID: &bss,
		Name:            "BOOSEOKSOON",
	})
	require.NoError(t, err)

	updated, err := f.subunits.Update(ctx, created.ID, &subunit.UpdateRequest{
		Description:     pointer.To("Seungkwan, DK and Hoshi"),
		GroupIdentityID: pointer.To(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "Seungkwan, DK and Hoshi", updated.Description)
	assert.Equal(t, "BOOSEOKSOON", updated.Name)
	assert.Nil(t, updated.GroupIdentityID)

	moved, err := f.subunits.Update(ctx, created.ID, &subunit.UpdateRequest{MainGroupID: &nct})
	require.NoError(t, err)
	assert.Equal(t, "NCT", moved.MainGroupName)

	_, err = f.subunits.Update(ctx, created.ID, &subunit.UpdateRequest{MainGroupID: pointer.To("")})
	assert.Equal(t, "Main group is required", err.Error())

	_, err = f.subunits.Update(ctx, "5f0c2d3e-4b1a-4c8d-9e7f-0a1b2c3d4e5f", &subunit.UpdateRequest{})
	assert.True(t, apperr.HasCode(err, "NOT_FOUND"))
}

/*
TestService_ListAndDelete filters by main group and removes subunits.
*/
func TestService_ListAndDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seventeen := f.group(t, "SEVENTEEN")
	nct := f.group(t, "NCT")

	for _, name := range []string{"Vocal Team", "BOOSEOKSOON"} {
		_, err := f.subunits.Create(ctx, &subunit.CreateRequest{MainGroupID: &seventeen, Name: name})
		require.NoError(t, err)
	}
	dream, err := f.subunits.Create(ctx, &subunit.CreateRequest{MainGroupID: &nct, Name: "NCT DREAM"})
	require.NoError(t, err)

	listed, total, err := f.subunits.List(ctx, subunit.Filter{MainGroupID: &seventeen}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, "BOOSEOKSOON", listed[0].Name)
	assert.Equal(t, "SEVENTEEN", listed[0].MainGroupName)

	_, total, err = f.subunits.List(ctx, subunit.Filter{}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	require.NoError(t, f.subunits.Delete(ctx, dream.ID))
	exists, err := f.subunits.Exists(ctx, dream.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	err = f.subunits.Delete(ctx, dream.ID)
	assert.True(t, apperr.HasCode(err, "NOT_FOUND"))
}
