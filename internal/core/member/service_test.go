// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package member_test

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdikyarts/musicopedia/internal/core/artist"
	"github.com/sdikyarts/musicopedia/internal/core/member"
	"github.com/sdikyarts/musicopedia/internal/platform/apperr"
	"github.com/sdikyarts/musicopedia/internal/platform/metrics"
	"github.com/sdikyarts/musicopedia/pkg/date"
	"github.com/sdikyarts/musicopedia/pkg/pointer"
)

// recordingSyncer captures the members passed to the lifecycle engine.
type recordingSyncer struct {
	mu     sync.Mutex
	synced []string
}

func (syncer *recordingSyncer) SyncMember(_ context.Context, member *member.Member) (int, error) {
	syncer.mu.Lock()
	defer syncer.mu.Unlock()
	syncer.synced = append(syncer.synced, member.ID)
	return 1, nil
}

type fixture struct {
	artists *artist.Service
	members *member.Service
	syncer  *recordingSyncer
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)

	artists := artist.NewService(artist.NewMemoryRepository(), metrics.NewNop(), logger)
	members := member.NewService(member.NewMemoryRepository(), artists, logger)
	syncer := &recordingSyncer{}
	members.SetSyncer(syncer)

	return fixture{artists: artists, members: members, syncer: syncer}
}

func (f fixture) createArtist(t *testing.T, request *artist.CreateRequest) *artist.Profile {
	t.Helper()
	profile, err := f.artists.Create(context.Background(), request)
	require.NoError(t, err)
	return profile
}

func day(year int, month time.Month, date int) *time.Time {
	return pointer.To(time.Date(year, month, date, 0, 0, 0, 0, time.UTC))
}

/*
TestService_Create_Names trims and requires both names.
*/
func TestService_Create_Names(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		request member.CreateRequest
		message string
	}{
		{"missing_stage_name", member.CreateRequest{MemberName: "  ", RealName: "Lee Ji-eun"}, "Member name is required"},
		{"missing_real_name", member.CreateRequest{MemberName: "IU", RealName: ""}, "Member real name is required"},
		{"death_before_birth", member.CreateRequest{
			MemberName: "X", RealName: "Y",
			BirthDate: date.FromTime(day(2000, 1, 2)), DeathDate: date.FromTime(day(2000, 1, 1)),
		}, "Death date cannot be before birth date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.members.Create(ctx, &tt.request)

			require.Error(t, err)
			assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
			assert.Equal(t, tt.message, err.Error())
		})
	}

	created, err := f.members.Create(ctx, &member.CreateRequest{MemberName: " Lisa ", RealName: " Lalisa Manobal "})
	require.NoError(t, err)
	assert.Equal(t, "Lisa", created.MemberName)
	assert.Equal(t, "Lalisa Manobal", created.RealName)
}

/*
TestService_SoloLink covers identity resolution against SOLO artists only.
*/
func TestService_SoloLink(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	solo := f.createArtist(t, &artist.CreateRequest{Type: artist.TypeSolo, Name: "Jennie", PrimaryLanguage: "Korean"})
	group := f.createArtist(t, &artist.CreateRequest{
		Type: artist.TypeGroup, Name: "BLACKPINK", Genre: "K-Pop", Description: "Girl group",
	})

	t.Run("solo_link_accepted", func(t *testing.T) {
		created, err := f.members.Create(ctx, &member.CreateRequest{
			MemberName: "Jennie", RealName: "Kim Jennie", SoloArtistID: pointer.To(solo.Artist.ID),
		})
		require.NoError(t, err)
		assert.True(t, created.HasOfficialSoloDebut())
		assert.Equal(t, "Jennie", *f.members.SoloArtistName(ctx, created))
	})

	t.Run("group_link_rejected", func(t *testing.T) {
		_, err := f.members.Create(ctx, &member.CreateRequest{
			MemberName: "Rosé", RealName: "Park Chae-young", SoloArtistID: pointer.To(group.Artist.ID),
		})
		require.Error(t, err)
		assert.True(t, apperr.HasCode(err, apperr.CodeReferenceIntegrity))
		assert.Equal(t,
			"Cannot link member 'Rosé' to artist 'BLACKPINK' - only SOLO artists can be linked to members, but this artist is type: GROUP",
			err.Error())
	})

	t.Run("unknown_artist", func(t *testing.T) {
		missing := "0190f5b2-7a3c-7c4e-9b1a-2f6d8e4c1a00"
		_, err := f.members.Create(ctx, &member.CreateRequest{
			MemberName: "Jisoo", RealName: "Kim Ji-soo", SoloArtistID: pointer.To(missing),
		})
		require.Error(t, err)
		assert.Equal(t, "Solo artist not found with ID: "+missing, err.Error())
	})

	t.Run("relink_on_update", func(t *testing.T) {
		created, err := f.members.Create(ctx, &member.CreateRequest{MemberName: "Lisa", RealName: "Lalisa Manobal"})
		require.NoError(t, err)

		_, err = f.members.Update(ctx, created.ID, &member.UpdateRequest{SoloArtistID: pointer.To(group.Artist.ID)})
		assert.True(t, apperr.HasCode(err, apperr.CodeReferenceIntegrity))

		updated, err := f.members.Update(ctx, created.ID, &member.UpdateRequest{SoloArtistID: pointer.To(solo.Artist.ID)})
		require.NoError(t, err)
		assert.Equal(t, solo.Artist.ID, *updated.SoloArtistID)

		cleared, err := f.members.Update(ctx, created.ID, &member.UpdateRequest{SoloArtistID: pointer.To("")})
		require.NoError(t, err)
		assert.Nil(t, cleared.SoloArtistID)
	})
}

/*
TestService_Update_DeathTriggersSync runs the engine only when the death date changes.
*/
func TestService_Update_DeathTriggersSync(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.members.Create(ctx, &member.CreateRequest{
		MemberName: "Jonghyun", RealName: "Kim Jong-hyun", BirthDate: date.FromTime(day(1990, 4, 8)),
	})
	require.NoError(t, err)

	_, err = f.members.Update(ctx, created.ID, &member.UpdateRequest{Description: pointer.To("Vocalist")})
	require.NoError(t, err)
	assert.Empty(t, f.syncer.synced)

	updated, err := f.members.Update(ctx, created.ID, &member.UpdateRequest{DeathDate: date.FromTime(day(2017, 12, 18))})
	require.NoError(t, err)
	assert.True(t, updated.IsDeceased())
	assert.Equal(t, "Vocalist", updated.Description)
	assert.Equal(t, []string{created.ID}, f.syncer.synced)
}

/*
TestService_List filters by name, nationality and solo career.
*/
func TestService_List(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	solo := f.createArtist(t, &artist.CreateRequest{Type: artist.TypeSolo, Name: "Taeyeon", PrimaryLanguage: "Korean"})

	for _, request := range []*member.CreateRequest{
		{MemberName: "Taeyeon", RealName: "Kim Tae-yeon", Nationality: "South Korean", SoloArtistID: pointer.To(solo.Artist.ID)},
		{MemberName: "Tiffany", RealName: "Stephanie Young Hwang", Nationality: "American"},
		{MemberName: "Sunny", RealName: "Lee Soon-kyu", Nationality: "South Korean"},
	} {
		_, err := f.members.Create(ctx, request)
		require.NoError(t, err)
	}

	tests := []struct {
		name   string
		filter member.Filter
		total  int
	}{
		{"all", member.Filter{}, 3},
		{"real_name_search", member.Filter{Query: "hwang"}, 1},
		{"nationality_case_insensitive", member.Filter{Nationality: "south korean"}, 2},
		{"with_solo_career", member.Filter{WithSoloCareer: pointer.To(true)}, 1},
		{"without_solo_career", member.Filter{WithSoloCareer: pointer.To(false)}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			members, total, err := f.members.List(ctx, tt.filter, 10, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.total, total)
			assert.Len(t, members, tt.total)
		})
	}
}

/*
TestService_Delete removes the member and reports unknown ids.
*/
func TestService_Delete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.members.Create(ctx, &member.CreateRequest{MemberName: "Wendy", RealName: "Son Seung-wan"})
	require.NoError(t, err)

	require.NoError(t, f.members.Delete(ctx, created.ID))
	_, err = f.members.Get(ctx, created.ID)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	found, err := f.members.FindMember(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	err = f.members.Delete(ctx, created.ID)
	assert.True(t, strings.Contains(err.Error(), "not found"))
}

/*
TestService_Update_StaleSoloLink records a death date on a member whose solo
artist has been deleted. The untouched link is not resolved again, so the
update goes through and the memberships are synced.
*/
func TestService_Update_StaleSoloLink(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	solo := f.createArtist(t, &artist.CreateRequest{Type: artist.TypeSolo, Name: "IU", PrimaryLanguage: "Korean"})
	created, err := f.members.Create(ctx, &member.CreateRequest{
		MemberName: "IU", RealName: "Lee Ji-eun", SoloArtistID: pointer.To(solo.Artist.ID),
	})
	require.NoError(t, err)
	require.NoError(t, f.artists.Delete(ctx, solo.Artist.ID))

	updated, err := f.members.Update(ctx, created.ID, &member.UpdateRequest{DeathDate: date.FromTime(day(2030, 1, 1))})
	require.NoError(t, err)
	assert.True(t, updated.IsDeceased())
	assert.Equal(t, []string{created.ID}, f.syncer.synced)

	t.Run("relinking_still_resolves", func(t *testing.T) {
		_, err := f.members.Update(ctx, created.ID, &member.UpdateRequest{SoloArtistID: pointer.To(solo.Artist.ID)})
		assert.True(t, apperr.HasCode(err, apperr.CodeReferenceIntegrity))
	})
}

/*
TestService_ClearSoloArtist unlinks members from a deleted solo artist and
keeps the members.
*/
func TestService_ClearSoloArtist(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	solo := f.createArtist(t, &artist.CreateRequest{Type: artist.TypeSolo, Name: "Taeyeon", PrimaryLanguage: "Korean"})
	f.artists.OnDelete(func(ctx context.Context, artistID string) error {
		_, err := f.members.ClearSoloArtist(ctx, artistID)
		return err
	})

	linked, err := f.members.Create(ctx, &member.CreateRequest{
		MemberName: "Taeyeon", RealName: "Kim Tae-yeon", SoloArtistID: pointer.To(solo.Artist.ID),
	})
	require.NoError(t, err)
	other, err := f.members.Create(ctx, &member.CreateRequest{MemberName: "Sunny", RealName: "Lee Soon-kyu"})
	require.NoError(t, err)

	require.NoError(t, f.artists.Delete(ctx, solo.Artist.ID))

	stored, err := f.members.Get(ctx, linked.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.SoloArtistID)
	assert.False(t, stored.HasOfficialSoloDebut())

	untouched, err := f.members.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Nil(t, untouched.SoloArtistID)

	cleared, err := f.members.ClearSoloArtist(ctx, solo.Artist.ID)
	require.NoError(t, err)
	assert.Zero(t, cleared)
}
