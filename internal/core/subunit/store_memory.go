// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package subunit

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/sdikyarts/musicopedia/internal/platform/apperr"
	"github.com/sdikyarts/musicopedia/internal/platform/dberr"
	"github.com/sdikyarts/musicopedia/pkg/pagination"
)

// MemoryRepository implements [Repository] in process memory.
type MemoryRepository struct {
	mu       sync.RWMutex
	subunits map[string]Subunit
}

// NewMemoryRepository returns an empty in-memory subunit store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{subunits: make(map[string]Subunit)}
}

func (repository *MemoryRepository) Find(_ context.Context, id string) (*Subunit, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	subunit, ok := repository.subunits[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return &subunit, nil
}

func (repository *MemoryRepository) Exists(_ context.Context, id string) (bool, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	_, ok := repository.subunits[id]
	return ok, nil
}

func (repository *MemoryRepository) List(_ context.Context, filter Filter, limit, offset int) ([]*Subunit, int, error) {
	repository.mu.RLock()
	matches := []*Subunit{}
	for _, subunit := range repository.subunits {
		if filter.MainGroupID == nil || subunit.MainGroupID == *filter.MainGroupID {
			matches = append(matches, &subunit)
		}
	}
	repository.mu.RUnlock()

	slices.SortFunc(matches, func(a, b *Subunit) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})

	page, total := pagination.Window(matches, limit, offset)
	return page, total, nil
}

func (repository *MemoryRepository) Create(_ context.Context, subunit *Subunit) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, exists := repository.subunits[subunit.ID]; exists {
		return apperr.Conflict("Subunit already exists: " + subunit.ID)
	}
	repository.subunits[subunit.ID] = *subunit
	return nil
}

func (repository *MemoryRepository) Update(_ context.Context, subunit *Subunit) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	current, ok := repository.subunits[subunit.ID]
	if !ok {
		return dberr.ErrNotFound
	}

	updated := *subunit
	updated.CreatedAt = current.CreatedAt
	repository.subunits[subunit.ID] = updated
	return nil
}

func (repository *MemoryRepository) Delete(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.subunits[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(repository.subunits, id)
	return nil
}

func (repository *MemoryRepository) ClearGroupIdentity(_ context.Context, artistID string, at time.Time) (int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	cleared := 0
	for id, subunit := range repository.subunits {
		if subunit.GroupIdentityID != nil && *subunit.GroupIdentityID == artistID {
			subunit.GroupIdentityID = nil
			subunit.UpdatedAt = at
			repository.subunits[id] = subunit
			cleared++
		}
	}
	return cleared, nil
}

func (repository *MemoryRepository) DeleteByMainGroup(_ context.Context, groupID string) ([]string, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	removed := []string{}
	for id, subunit := range repository.subunits {
		if subunit.MainGroupID == groupID {
			delete(repository.subunits, id)
			removed = append(removed, id)
		}
	}
	slices.Sort(removed)
	return removed, nil
}
