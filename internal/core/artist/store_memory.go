// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/sdikyarts/musicopedia/internal/platform/apperr"
	"github.com/sdikyarts/musicopedia/internal/platform/dberr"
	"github.com/sdikyarts/musicopedia/pkg/pagination"
	"github.com/sdikyarts/musicopedia/pkg/slug"
)

// MemoryRepository implements [Repository] in process memory.
// It backs STORAGE_DRIVER=memory and the service tests.
type MemoryRepository struct {
	mu       sync.RWMutex
	profiles map[string]*Profile
	spotify  map[string]string
}

// NewMemoryRepository returns an empty in-memory artist store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		profiles: make(map[string]*Profile),
		spotify:  make(map[string]string),
	}
}

func (repository *MemoryRepository) FindProfile(_ context.Context, id string) (*Profile, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	profile, ok := repository.profiles[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return cloneProfile(profile), nil
}

func (repository *MemoryRepository) FindBySpotifyID(context context.Context, spotifyID string) (*Profile, error) {
	repository.mu.RLock()
	id, ok := repository.spotify[spotifyID]
	repository.mu.RUnlock()

	if !ok {
		return nil, dberr.ErrNotFound
	}
	return repository.FindProfile(context, id)
}

func (repository *MemoryRepository) Exists(_ context.Context, id string) (bool, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	_, ok := repository.profiles[id]
	return ok, nil
}

func (repository *MemoryRepository) List(_ context.Context, filter Filter, limit, offset int) ([]*Artist, int, error) {
	matches := repository.filter(func(profile *Profile) bool {
		if len(filter.Types) > 0 && !slices.Contains(filter.Types, profile.Artist.Type) {
			return false
		}
		return slug.Contains(profile.Artist.Name, filter.Query)
	})

	page, total := pagination.Window(matches, limit, offset)

	artists := make([]*Artist, len(page))
	for i, profile := range page {
		artists[i] = profile.Artist
	}
	return artists, total, nil
}

func (repository *MemoryRepository) ListSolos(_ context.Context, filter SoloFilter, limit, offset int) ([]*Profile, int, error) {
	matches := repository.filter(func(profile *Profile) bool {
		solo := profile.Solo
		switch {
		case solo == nil:
			return false
		case filter.Gender != "" && solo.Gender != filter.Gender:
			return false
		case filter.Deceased != nil && solo.IsDeceased() != *filter.Deceased:
			return false
		case filter.BornFrom != nil && (solo.BirthDate == nil || solo.BirthDate.Before(*filter.BornFrom)):
			return false
		case filter.BornTo != nil && (solo.BirthDate == nil || solo.BirthDate.After(*filter.BornTo)):
			return false
		}
		return slug.Contains(profile.Artist.Name, filter.Query)
	})

	page, total := pagination.Window(matches, limit, offset)
	return page, total, nil
}

func (repository *MemoryRepository) ListGroups(_ context.Context, filter GroupFilter, limit, offset int) ([]*Profile, int, error) {
	matches := repository.filter(func(profile *Profile) bool {
		group := profile.Group
		switch {
		case group == nil:
			return false
		case filter.Gender != "" && group.Gender != filter.Gender:
			return false
		case filter.Disbanded != nil && group.IsDisbanded() != *filter.Disbanded:
			return false
		case filter.FormedFrom != nil && (group.FormationDate == nil || group.FormationDate.Before(*filter.FormedFrom)):
			return false
		case filter.FormedTo != nil && (group.FormationDate == nil || group.FormationDate.After(*filter.FormedTo)):
			return false
		}
		return slug.Contains(profile.Artist.Name, filter.Query)
	})

	page, total := pagination.Window(matches, limit, offset)
	return page, total, nil
}

func (repository *MemoryRepository) Create(_ context.Context, profiles ...*Profile) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	// Check the whole batch before writing any of it
	seen := make(map[string]bool, len(profiles))
	for _, profile := range profiles {
		if _, exists := repository.profiles[profile.Artist.ID]; exists {
			return apperr.Conflict("Artist already exists: " + profile.Artist.ID)
		}
		if spotifyID := profile.Artist.SpotifyID; spotifyID != nil {
			if _, taken := repository.spotify[*spotifyID]; taken || seen[*spotifyID] {
				return apperr.Conflict("Spotify ID already in use: " + *spotifyID)
			}
			seen[*spotifyID] = true
		}
	}

	for _, profile := range profiles {
		repository.store(cloneProfile(profile))
	}
	return nil
}

func (repository *MemoryRepository) Update(_ context.Context, profile *Profile) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	current, ok := repository.profiles[profile.Artist.ID]
	if !ok {
		return dberr.ErrNotFound
	}

	if spotifyID := profile.Artist.SpotifyID; spotifyID != nil {
		if owner, taken := repository.spotify[*spotifyID]; taken && owner != profile.Artist.ID {
			return apperr.Conflict("Spotify ID already in use: " + *spotifyID)
		}
	}

	if spotifyID := current.Artist.SpotifyID; spotifyID != nil {
		delete(repository.spotify, *spotifyID)
	}

	updated := cloneProfile(profile)
	updated.Artist.CreatedAt = current.Artist.CreatedAt
	repository.store(updated)
	return nil
}

func (repository *MemoryRepository) Delete(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	profile, ok := repository.profiles[id]
	if !ok {
		return dberr.ErrNotFound
	}

	if spotifyID := profile.Artist.SpotifyID; spotifyID != nil {
		delete(repository.spotify, *spotifyID)
	}
	delete(repository.profiles, id)
	return nil
}

// # Helpers

func (repository *MemoryRepository) store(profile *Profile) {
	repository.profiles[profile.Artist.ID] = profile
	if spotifyID := profile.Artist.SpotifyID; spotifyID != nil {
		repository.spotify[*spotifyID] = profile.Artist.ID
	}
}

// filter returns copies of the matching profiles ordered by name, then id.
func (repository *MemoryRepository) filter(keep func(*Profile) bool) []*Profile {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	matches := []*Profile{}
	for _, profile := range repository.profiles {
		if keep(profile) {
			matches = append(matches, cloneProfile(profile))
		}
	}

	slices.SortFunc(matches, func(a, b *Profile) int {
		return cmp.Or(cmp.Compare(a.Artist.Name, b.Artist.Name), cmp.Compare(a.Artist.ID, b.Artist.ID))
	})
	return matches
}

func cloneProfile(profile *Profile) *Profile {
	artist := *profile.Artist
	clone := &Profile{Artist: &artist}
	if profile.Solo != nil {
		solo := *profile.Solo
		clone.Solo = &solo
	}
	if profile.Group != nil {
		group := *profile.Group
		clone.Group = &group
	}
	return clone
}
