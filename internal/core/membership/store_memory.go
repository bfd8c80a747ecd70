// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package membership

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/sdikyarts/musicopedia/internal/platform/apperr"
	"github.com/sdikyarts/musicopedia/internal/platform/dberr"
	"github.com/sdikyarts/musicopedia/pkg/pagination"
)

type key struct {
	owner  string
	member string
}

// MemoryRepository implements [Repository] in process memory.
type MemoryRepository struct {
	mu          sync.RWMutex
	memberships map[key]GroupMembership
}

// NewMemoryRepository returns an empty in-memory group ledger.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{memberships: make(map[key]GroupMembership)}
}

func (repository *MemoryRepository) Find(_ context.Context, groupID, memberID string) (*GroupMembership, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	membership, ok := repository.memberships[key{groupID, memberID}]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return &membership, nil
}

func (repository *MemoryRepository) Exists(_ context.Context, groupID, memberID string) (bool, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	_, ok := repository.memberships[key{groupID, memberID}]
	return ok, nil
}

func (repository *MemoryRepository) List(_ context.Context, filter Filter, limit, offset int) ([]*GroupMembership, int, error) {
	matches := repository.filter(func(membership *GroupMembership) bool {
		switch {
		case filter.GroupID != nil && membership.GroupID != *filter.GroupID:
			return false
		case filter.MemberID != nil && membership.MemberID != *filter.MemberID:
			return false
		case filter.Status != nil && membership.Status != *filter.Status:
			return false
		case filter.Former && membership.LeaveDate == nil:
			return false
		case filter.JoinedAfter != nil && !membership.JoinDate.After(*filter.JoinedAfter):
			return false
		case filter.LeftBefore != nil && (membership.LeaveDate == nil || !membership.LeaveDate.Before(*filter.LeftBefore)):
			return false
		}
		return true
	})

	page, total := pagination.Window(matches, limit, offset)
	return page, total, nil
}

func (repository *MemoryRepository) ListByMember(_ context.Context, memberID string) ([]*GroupMembership, error) {
	return repository.filter(func(membership *GroupMembership) bool {
		return membership.MemberID == memberID
	}), nil
}

func (repository *MemoryRepository) Count(_ context.Context, groupID string, status *Status) (int, error) {
	matches := repository.filter(func(membership *GroupMembership) bool {
		return membership.GroupID == groupID && (status == nil || membership.Status == *status)
	})
	return len(matches), nil
}

func (repository *MemoryRepository) Create(_ context.Context, membership *GroupMembership) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	id := key{membership.GroupID, membership.MemberID}
	if _, exists := repository.memberships[id]; exists {
		return apperr.Conflict("A record with the same key already exists")
	}
	repository.memberships[id] = *membership
	return nil
}

func (repository *MemoryRepository) Update(_ context.Context, membership *GroupMembership) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	return repository.put(membership)
}

func (repository *MemoryRepository) UpdateMany(_ context.Context, memberships []*GroupMembership) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, membership := range memberships {
		if _, ok := repository.memberships[key{membership.GroupID, membership.MemberID}]; !ok {
			return dberr.ErrNotFound
		}
	}
	for _, membership := range memberships {
		if err := repository.put(membership); err != nil {
			return err
		}
	}
	return nil
}

func (repository *MemoryRepository) Delete(_ context.Context, groupID, memberID string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	id := key{groupID, memberID}
	if _, ok := repository.memberships[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(repository.memberships, id)
	return nil
}

func (repository *MemoryRepository) DeleteByGroup(_ context.Context, groupID string) (int, error) {
	return repository.deleteWhere(func(id key) bool { return id.owner == groupID }), nil
}

func (repository *MemoryRepository) DeleteByMember(_ context.Context, memberID string) (int, error) {
	return repository.deleteWhere(func(id key) bool { return id.member == memberID }), nil
}

func (repository *MemoryRepository) deleteWhere(match func(key) bool) int {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	removed := 0
	for id := range repository.memberships {
		if match(id) {
			delete(repository.memberships, id)
			removed++
		}
	}
	return removed
}

// put overwrites an existing row, keeping CreatedAt. Callers hold the lock.
func (repository *MemoryRepository) put(membership *GroupMembership) error {
	id := key{membership.GroupID, membership.MemberID}
	current, ok := repository.memberships[id]
	if !ok {
		return dberr.ErrNotFound
	}

	updated := *membership
	updated.CreatedAt = current.CreatedAt
	repository.memberships[id] = updated
	return nil
}

// filter returns copies of the matching rows ordered by join date.
func (repository *MemoryRepository) filter(keep func(*GroupMembership) bool) []*GroupMembership {
	repository.mu.RLock()
	matches := []*GroupMembership{}
	for _, membership := range repository.memberships {
		if keep(&membership) {
			matches = append(matches, &membership)
		}
	}
	repository.mu.RUnlock()

	slices.SortFunc(matches, func(a, b *GroupMembership) int {
		return cmp.Or(a.JoinDate.Compare(b.JoinDate), cmp.Compare(a.GroupID, b.GroupID), cmp.Compare(a.MemberID, b.MemberID))
	})
	return matches
}

// # Subunit Ledger

// MemorySubunitRepository implements [SubunitRepository] in process memory.
type MemorySubunitRepository struct {
	mu          sync.RWMutex
	memberships map[key]SubunitMembership
}

// NewMemorySubunitRepository returns an empty in-memory subunit ledger.
func NewMemorySubunitRepository() *MemorySubunitRepository {
	return &MemorySubunitRepository{memberships: make(map[key]SubunitMembership)}
}

func (repository *MemorySubunitRepository) Add(_ context.Context, membership *SubunitMembership) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	id := key{membership.SubunitID, membership.MemberID}
	if _, exists := repository.memberships[id]; exists {
		return apperr.Conflict("A record with the same key already exists")
	}
	repository.memberships[id] = *membership
	return nil
}

func (repository *MemorySubunitRepository) Remove(_ context.Context, subunitID, memberID string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	id := key{subunitID, memberID}
	if _, ok := repository.memberships[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(repository.memberships, id)
	return nil
}

func (repository *MemorySubunitRepository) Exists(_ context.Context, subunitID, memberID string) (bool, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	_, ok := repository.memberships[key{subunitID, memberID}]
	return ok, nil
}

func (repository *MemorySubunitRepository) ListBySubunit(_ context.Context, subunitID string) ([]*SubunitMembership, error) {
	return repository.filter(func(id key) bool { return id.owner == subunitID }), nil
}

func (repository *MemorySubunitRepository) ListByMember(_ context.Context, memberID string) ([]*SubunitMembership, error) {
	return repository.filter(func(id key) bool { return id.member == memberID }), nil
}

func (repository *MemorySubunitRepository) DeleteBySubunit(_ context.Context, subunitID string) (int, error) {
	return repository.deleteWhere(func(id key) bool { return id.owner == subunitID }), nil
}

func (repository *MemorySubunitRepository) DeleteByMember(_ context.Context, memberID string) (int, error) {
	return repository.deleteWhere(func(id key) bool { return id.member == memberID }), nil
}

func (repository *MemorySubunitRepository) filter(keep func(key) bool) []*SubunitMembership {
	repository.mu.RLock()
	matches := []*SubunitMembership{}
	for id, membership := range repository.memberships {
		if keep(id) {
			matches = append(matches, &membership)
		}
	}
	repository.mu.RUnlock()

	slices.SortFunc(matches, func(a, b *SubunitMembership) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.SubunitID, b.SubunitID), cmp.Compare(a.MemberID, b.MemberID))
	})
	return matches
}

func (repository *MemorySubunitRepository) deleteWhere(match func(key) bool) int {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	removed := 0
	for id := range repository.memberships {
		if match(id) {
			delete(repository.memberships, id)
			removed++
		}
	}
	return removed
}
