// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package member

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/sdikyarts/musicopedia/internal/platform/apperr"
	"github.com/sdikyarts/musicopedia/internal/platform/dberr"
	"github.com/sdikyarts/musicopedia/pkg/pagination"
	"github.com/sdikyarts/musicopedia/pkg/slug"
)

// MemoryRepository implements [Repository] in process memory.
type MemoryRepository struct {
	mu      sync.RWMutex
	members map[string]Member
}

// NewMemoryRepository returns an empty in-memory member store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{members: make(map[string]Member)}
}

func (repository *MemoryRepository) Find(_ context.Context, id string) (*Member, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	member, ok := repository.members[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return &member, nil
}

func (repository *MemoryRepository) Exists(_ context.Context, id string) (bool, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	_, ok := repository.members[id]
	return ok, nil
}

func (repository *MemoryRepository) List(_ context.Context, filter Filter, limit, offset int) ([]*Member, int, error) {
	matches := repository.filter(func(member *Member) bool {
		switch {
		case filter.Query != "" && !slug.Contains(member.MemberName, filter.Query) && !slug.Contains(member.RealName, filter.Query):
			return false
		case filter.Nationality != "" && !strings.EqualFold(member.Nationality, filter.Nationality):
			return false
		case filter.WithSoloCareer != nil && member.HasOfficialSoloDebut() != *filter.WithSoloCareer:
			return false
		case filter.BornFrom != nil && (member.BirthDate == nil || member.BirthDate.Before(*filter.BornFrom)):
			return false
		case filter.BornTo != nil && (member.BirthDate == nil || member.BirthDate.After(*filter.BornTo)):
			return false
		}
		return true
	})

	page, total := pagination.Window(matches, limit, offset)
	return page, total, nil
}

func (repository *MemoryRepository) ListDeceased(_ context.Context) ([]*Member, error) {
	return repository.filter((*Member).IsDeceased), nil
}

func (repository *MemoryRepository) Create(_ context.Context, member *Member) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, exists := repository.members[member.ID]; exists {
		return apperr.Conflict("Member already exists: " + member.ID)
	}
	repository.members[member.ID] = *member
	return nil
}

func (repository *MemoryRepository) Update(_ context.Context, member *Member) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	current, ok := repository.members[member.ID]
	if !ok {
		return dberr.ErrNotFound
	}

	updated := *member
	updated.CreatedAt = current.CreatedAt
	repository.members[member.ID] = updated
	return nil
}

func (repository *MemoryRepository) Delete(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.members[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(repository.members, id)
	return nil
}

func (repository *MemoryRepository) ClearSoloArtist(_ context.Context, artistID string, at time.Time) (int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	cleared := 0
	for id, member := range repository.members {
		if member.SoloArtistID != nil && *member.SoloArtistID == artistID {
			member.SoloArtistID = nil
			member.UpdatedAt = at
			repository.members[id] = member
			cleared++
		}
	}
	return cleared, nil
}

// filter returns copies of the matching members ordered by stage name, then id.
func (repository *MemoryRepository) filter(keep func(*Member) bool) []*Member {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	matches := []*Member{}
	for _, member := range repository.members {
		if keep(&member) {
			matches = append(matches, &member)
		}
	}

	slices.SortFunc(matches, func(a, b *Member) int {
		return cmp.Or(cmp.Compare(a.MemberName, b.MemberName), cmp.Compare(a.ID, b.ID))
	})
	return matches
}
