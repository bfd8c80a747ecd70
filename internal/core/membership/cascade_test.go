// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package membership_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdikyarts/musicopedia/internal/core/artist"
	"github.com/sdikyarts/musicopedia/internal/core/member"
	"github.com/sdikyarts/musicopedia/internal/core/membership"
	"github.com/sdikyarts/musicopedia/internal/core/subunit"
	"github.com/sdikyarts/musicopedia/internal/platform/apperr"
	"github.com/sdikyarts/musicopedia/pkg/date"
	"github.com/sdikyarts/musicopedia/pkg/pointer"
)

/*
TestCascade_SoloArtistDeleted unlinks the member from a deleted solo artist.
The member survives and a later death date still closes its memberships.
*/
func TestCascade_SoloArtistDeleted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	solo, err := f.artists.Create(ctx, &artist.CreateRequest{Type: artist.TypeSolo, Name: "IU", PrimaryLanguage: "Korean"})
	require.NoError(t, err)
	iu, err := f.members.Create(ctx, &member.CreateRequest{
		MemberName: "IU", RealName: "Lee Ji-eun", SoloArtistID: pointer.To(solo.Artist.ID),
	})
	require.NoError(t, err)
	band := f.group(t, "Project Band")
	f.join(t, band, iu.ID, day(2008, time.September, 18))

	require.NoError(t, f.artists.Delete(ctx, solo.Artist.ID))

	stored, err := f.members.Get(ctx, iu.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.SoloArtistID)

	_, err = f.members.Update(ctx, iu.ID, &member.UpdateRequest{DeathDate: date.FromTime(day(2030, time.January, 1))})
	require.NoError(t, err)

	row, err := f.memberships.Get(ctx, band, iu.ID)
	require.NoError(t, err)
	assert.Equal(t, membership.StatusFormer, row.Status)
	require.NotNil(t, row.LeaveDate)
	assert.True(t, row.LeaveDate.Equal(*day(2030, time.January, 1)))
}

/*
TestCascade_GroupDeleted removes the group's memberships and subunits, and
clears group identities pointing at it while keeping those subunits.
*/
func TestCascade_GroupDeleted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	bts := f.group(t, "BTS")
	identity := f.group(t, "Rap Line")
	svt := f.group(t, "SEVENTEEN")
	rm := f.member(t, "RM", nil)
	f.join(t, bts, rm, day(2013, time.June, 13))

	rapLine, err := f.subunits.Create(ctx, &subunit.CreateRequest{
		MainGroupID: pointer.To(bts), GroupIdentityID: pointer.To(identity), Name: "Rap Line",
	})
	require.NoError(t, err)
	_, err = f.memberships.AddSubunitMember(ctx, rapLine.ID, &membership.SubunitMemberRequest{MemberID: rm})
	require.NoError(t, err)

	hipHop, err := f.subunits.Create(ctx, &subunit.CreateRequest{
		MainGroupID: pointer.To(svt), GroupIdentityID: pointer.To(identity), Name: "Hip-Hop Unit",
	})
	require.NoError(t, err)

	t.Run("identity_cleared", func(t *testing.T) {
		require.NoError(t, f.artists.Delete(ctx, identity))

		stored, err := f.subunits.Get(ctx, hipHop.ID)
		require.NoError(t, err)
		assert.Nil(t, stored.GroupIdentityID)
		assert.Equal(t, "SEVENTEEN", stored.MainGroupName)

		kept, err := f.subunits.Get(ctx, rapLine.ID)
		require.NoError(t, err)
		assert.Nil(t, kept.GroupIdentityID)
	})

	t.Run("main_group_removed", func(t *testing.T) {
		require.NoError(t, f.artists.Delete(ctx, bts))

		rows, total, err := f.memberships.ListByGroup(ctx, bts, 10, 0)
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, rows)

		_, err = f.subunits.Get(ctx, rapLine.ID)
		assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

		units, err := f.memberships.ListMemberSubunits(ctx, rm)
		require.NoError(t, err)
		assert.Empty(t, units)

		_, err = f.members.Get(ctx, rm)
		assert.NoError(t, err)
	})
}

/*
TestCascade_MemberDeleted removes the member from every group and subunit.
*/
func TestCascade_MemberDeleted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	bts := f.group(t, "BTS")
	han := f.member(t, "Han", nil)
	jin := f.member(t, "Jin", nil)
	f.join(t, bts, han, day(2013, time.June, 13))
	f.join(t, bts, jin, day(2013, time.June, 13))

	unit, err := f.subunits.Create(ctx, &subunit.CreateRequest{MainGroupID: pointer.To(bts), Name: "Vocal Line"})
	require.NoError(t, err)
	_, err = f.memberships.AddSubunitMember(ctx, unit.ID, &membership.SubunitMemberRequest{MemberID: han})
	require.NoError(t, err)

	require.NoError(t, f.members.Delete(ctx, han))

	rows, total, err := f.memberships.ListByGroup(ctx, bts, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, jin, rows[0].MemberID)

	members, err := f.memberships.ListSubunitMembers(ctx, unit.ID)
	require.NoError(t, err)
	assert.Empty(t, members)
}

/*
TestCascade_SubunitDeleted drops the subunit's member rows.
*/
func TestCascade_SubunitDeleted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	bts := f.group(t, "BTS")
	suga := f.member(t, "Suga", nil)
	unit, err := f.subunits.Create(ctx, &subunit.CreateRequest{MainGroupID: pointer.To(bts), Name: "Rap Line"})
	require.NoError(t, err)
	_, err = f.memberships.AddSubunitMember(ctx, unit.ID, &membership.SubunitMemberRequest{MemberID: suga})
	require.NoError(t, err)

	require.NoError(t, f.subunits.Delete(ctx, unit.ID))

	units, err := f.memberships.ListMemberSubunits(ctx, suga)
	require.NoError(t, err)
	assert.Empty(t, units)
}
