// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

//go:build integration

package artist_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdikyarts/musicopedia/internal/core/artist"
	"github.com/sdikyarts/musicopedia/internal/platform/dberr"
	"github.com/sdikyarts/musicopedia/internal/platform/metrics"
	"github.com/sdikyarts/musicopedia/internal/testutil/containers"
	"github.com/sdikyarts/musicopedia/pkg/uuid"
)

func groupProfile(name string, formed *time.Time) *artist.Profile {
	id := uuid.New()
	now := time.Now().UTC()
	return &artist.Profile{
		Artist: &artist.Artist{
			ID: id, Name: name, Slug: name, SearchName: name, Type: artist.TypeGroup,
			Genre: "K-Pop", CreatedAt: now, UpdatedAt: now,
		},
		Group: &artist.Group{
			ArtistID: id, FormationDate: formed,
			Gender: artist.GenderMale, ActivityStatus: artist.ActivityActive,
		},
	}
}

/*
TestPostgresRepository_Lifecycle stores a group with its extension, lists,
updates and deletes it against a real database.
*/
func TestPostgresRepository_Lifecycle(t *testing.T) {
	pg := containers.NewPostgresContainer(t)
	repository := artist.NewPostgresRepository(pg.Pool)
	ctx := context.Background()

	profile := groupProfile("bts", day(2013, 6, 13))
	require.NoError(t, repository.Create(ctx, profile))

	stored, err := repository.FindProfile(ctx, profile.Artist.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Group)
	assert.Nil(t, stored.Solo)
	assert.True(t, stored.Group.FormationDate.Equal(*day(2013, 6, 13)))

	groups, total, err := repository.ListGroups(ctx, artist.GroupFilter{Gender: artist.GenderMale}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, groups, 1)

	matches, total, err := repository.List(ctx, artist.Filter{Query: "%"}, 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, matches)

	matches, _, err = repository.List(ctx, artist.Filter{Query: "BT"}, 10, 0)
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	stored.Group.DisbandDate = day(2022, 6, 14)
	stored.Group.ActivityStatus = artist.ActivityDisbanded
	require.NoError(t, repository.Update(ctx, stored))

	updated, err := repository.FindProfile(ctx, profile.Artist.ID)
	require.NoError(t, err)
	assert.Equal(t, artist.ActivityDisbanded, updated.Group.ActivityStatus)

	require.NoError(t, repository.Delete(ctx, profile.Artist.ID))
	_, err = repository.FindProfile(ctx, profile.Artist.ID)
	assert.ErrorIs(t, err, dberr.ErrNotFound)
}

/*
TestCachedRepository_Redis serves repeated reads from Redis and drops the
entry on update.
*/
func TestCachedRepository_Redis(t *testing.T) {
	rc := containers.NewRedisContainer(t)
	recorder := metrics.NewNop()
	store := artist.NewMemoryRepository()
	repository := artist.NewCachedRepository(store, rc.Client, time.Minute, recorder, slog.New(slog.DiscardHandler))
	ctx := context.Background()

	profile := groupProfile("seventeen", day(2015, 5, 26))
	require.NoError(t, repository.Create(ctx, profile))

	_, err := repository.FindProfile(ctx, profile.Artist.ID)
	require.NoError(t, err)
	cached, err := repository.FindProfile(ctx, profile.Artist.ID)
	require.NoError(t, err)
	assert.Equal(t, "seventeen", cached.Artist.Name)

	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.CacheLookups.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.CacheLookups.WithLabelValues("hit")))

	cached.Artist.Name = "SVT"
	require.NoError(t, repository.Update(ctx, cached))

	fresh, err := repository.FindProfile(ctx, profile.Artist.ID)
	require.NoError(t, err)
	assert.Equal(t, "SVT", fresh.Artist.Name)
	assert.Equal(t, 2.0, testutil.ToFloat64(recorder.CacheLookups.WithLabelValues("miss")))

	_, err = repository.FindProfile(ctx, uuid.New())
	assert.ErrorIs(t, err, dberr.ErrNotFound)
}
