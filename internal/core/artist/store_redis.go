// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/sdikyarts/musicopedia/internal/platform/constants"
	"github.com/sdikyarts/musicopedia/internal/platform/metrics"
)

// Cache lookup outcomes reported to metrics.
const (
	cacheHit   = "hit"
	cacheMiss  = "miss"
	cacheError = "error"
)

// CachedRepository decorates a [Repository] with a Redis read-through cache
// of single profiles. Listings always go to the wrapped store.
//
// Redis failures never fail a request: reads fall back to the wrapped store
// and invalidation errors are logged.
type CachedRepository struct {
	Repository

	client  redis.Cmdable
	ttl     time.Duration
	metrics *metrics.Metrics
	logger  *slog.Logger
	group   singleflight.Group
}

// NewCachedRepository wraps next with a profile cache stored in client.
func NewCachedRepository(next Repository, client redis.Cmdable, ttl time.Duration, metrics *metrics.Metrics, logger *slog.Logger) *CachedRepository {
	return &CachedRepository{
		Repository: next,
		client:     client,
		ttl:        ttl,
		metrics:    metrics,
		logger:     logger,
	}
}

func cacheKey(id string) string {
	return constants.RedisPrefixArtist + id
}

/*
FindProfile serves the profile from Redis when present.

Description: Concurrent misses for the same id collapse into one store read
whose result is written back with the configured TTL.
*/
func (repository *CachedRepository) FindProfile(context context.Context, id string) (*Profile, error) {
	key := cacheKey(id)

	payload, err := repository.client.Get(context, key).Bytes()
	switch {
	case err == nil:
		var profile Profile
		if err := json.Unmarshal(payload, &profile); err == nil {
			repository.metrics.IncCacheLookup(cacheHit)
			return &profile, nil
		}
		repository.metrics.IncCacheLookup(cacheError)
	case errors.Is(err, redis.Nil):
		repository.metrics.IncCacheLookup(cacheMiss)
	default:
		repository.metrics.IncCacheLookup(cacheError)
		repository.logger.Warn("artist_cache_read_failed", slog.String("artist_id", id), slog.Any("error", err))
	}

	value, err, _ := repository.group.Do(key, func() (interface{}, error) {
		profile, err := repository.Repository.FindProfile(context, id)
		if err != nil {
			return nil, err
		}

		if encoded, err := json.Marshal(profile); err == nil {
			if err := repository.client.Set(context, key, encoded, repository.ttl).Err(); err != nil {
				repository.logger.Warn("artist_cache_write_failed", slog.String("artist_id", id), slog.Any("error", err))
			}
		}
		return profile, nil
	})
	if err != nil {
		return nil, err
	}

	return cloneProfile(value.(*Profile)), nil
}

func (repository *CachedRepository) Update(context context.Context, profile *Profile) error {
	if err := repository.Repository.Update(context, profile); err != nil {
		return err
	}
	repository.invalidate(context, profile.Artist.ID)
	return nil
}

func (repository *CachedRepository) Delete(context context.Context, id string) error {
	if err := repository.Repository.Delete(context, id); err != nil {
		return err
	}
	repository.invalidate(context, id)
	return nil
}

func (repository *CachedRepository) invalidate(context context.Context, id string) {
	if err := repository.client.Del(context, cacheKey(id)).Err(); err != nil {
		repository.logger.Warn("artist_cache_invalidate_failed", slog.String("artist_id", id), slog.Any("error", err))
	}
}
