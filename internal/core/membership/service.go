// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package membership

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sdikyarts/musicopedia/internal/core/artist"
	"github.com/sdikyarts/musicopedia/internal/core/member"
	"github.com/sdikyarts/musicopedia/internal/platform/apperr"
	"github.com/sdikyarts/musicopedia/internal/platform/dberr"
	"github.com/sdikyarts/musicopedia/internal/platform/metrics"
	"github.com/sdikyarts/musicopedia/pkg/date"
)

// ArtistFinder resolves performers by id.
type ArtistFinder interface {
	FindArtist(context context.Context, id string) (*artist.Artist, error)
}

// MemberFinder resolves members. FindMember returns nil, nil on a miss.
type MemberFinder interface {
	FindMember(context context.Context, id string) (*member.Member, error)
	ListDeceased(context context.Context) ([]*member.Member, error)
}

// SubunitChecker reports whether a subunit exists.
type SubunitChecker interface {
	Exists(context context.Context, id string) (bool, error)
}

// # Service Implementation

// Service manages both ledgers and runs the lifecycle consistency engine.
type Service struct {
	repository Repository
	subunits   SubunitRepository
	artists    ArtistFinder
	members    MemberFinder
	units      SubunitChecker
	metrics    *metrics.Metrics
	logger     *slog.Logger
	now        func() time.Time
}

// NewService constructs a membership [Service].
func NewService(
	repository Repository,
	subunits SubunitRepository,
	artists ArtistFinder,
	members MemberFinder,
	units SubunitChecker,
	metrics *metrics.Metrics,
	logger *slog.Logger,
) *Service {
	return &Service{
		repository: repository,
		subunits:   subunits,
		artists:    artists,
		members:    members,
		units:      units,
		metrics:    metrics,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// # Group Ledger Queries

// Get returns the membership of a member in a group.
func (service *Service) Get(context context.Context, groupID, memberID string) (*GroupMembership, error) {
	membership, err := service.repository.Find(context, groupID, memberID)
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, apperr.NotFound("Membership")
		}
		return nil, err
	}
	return membership, nil
}

// List returns memberships matching the filter.
func (service *Service) List(context context.Context, filter Filter, limit, offset int) ([]*GroupMembership, int, error) {
	return service.repository.List(context, filter, limit, offset)
}

// ListByGroup returns every membership of a group.
func (service *Service) ListByGroup(context context.Context, groupID string, limit, offset int) ([]*GroupMembership, int, error) {
	return service.repository.List(context, Filter{GroupID: &groupID}, limit, offset)
}

// ListByGroupAndStatus returns the memberships of a group in one status.
func (service *Service) ListByGroupAndStatus(context context.Context, groupID string, status Status, limit, offset int) ([]*GroupMembership, int, error) {
	return service.repository.List(context, Filter{GroupID: &groupID, Status: &status}, limit, offset)
}

// ListFormer returns the memberships of a group that carry a leave date.
func (service *Service) ListFormer(context context.Context, groupID string, limit, offset int) ([]*GroupMembership, int, error) {
	return service.repository.List(context, Filter{GroupID: &groupID, Former: true}, limit, offset)
}

// ListJoinedAfter returns the memberships of a group that started after day.
func (service *Service) ListJoinedAfter(context context.Context, groupID string, day time.Time, limit, offset int) ([]*GroupMembership, int, error) {
	return service.repository.List(context, Filter{GroupID: &groupID, JoinedAfter: &day}, limit, offset)
}

// ListLeftBefore returns the memberships of a group that ended before day.
func (service *Service) ListLeftBefore(context context.Context, groupID string, day time.Time, limit, offset int) ([]*GroupMembership, int, error) {
	return service.repository.List(context, Filter{GroupID: &groupID, LeftBefore: &day}, limit, offset)
}

// ListByMember returns every group a member belongs or belonged to.
func (service *Service) ListByMember(context context.Context, memberID string) ([]*GroupMembership, error) {
	return service.repository.ListByMember(context, memberID)
}

// Count returns the number of memberships of a group, optionally in one status.
func (service *Service) Count(context context.Context, groupID string, status *Status) (int, error) {
	return service.repository.Count(context, groupID, status)
}

// # Group Ledger Mutations

/*
Create opens a membership and immediately applies the member's lifecycle.

Returns:
  - *GroupMembership: The stored row
  - error: REFERENCE_INTEGRITY for an unknown or non-GROUP group or an unknown
    member; CONFLICT when the member is already in the group
*/
func (service *Service) Create(context context.Context, request *CreateRequest) (*GroupMembership, error) {
	request.Normalize()
	if err := request.Validate(); err != nil {
		return nil, err
	}

	if err := service.requireGroup(context, request.GroupID); err != nil {
		return nil, err
	}
	linked, err := service.requireMember(context, request.MemberID)
	if err != nil {
		return nil, err
	}

	joinDate := *date.ToTime(request.JoinDate)
	leaveDate := date.ToTime(request.LeaveDate)
	if err := CheckState(request.Status, joinDate, leaveDate); err != nil {
		return nil, err
	}

	exists, err := service.repository.Exists(context, request.GroupID, request.MemberID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("Member is already in this group")
	}

	now := service.now()
	membership := &GroupMembership{
		GroupID:   request.GroupID,
		MemberID:  request.MemberID,
		Status:    request.Status,
		JoinDate:  joinDate,
		LeaveDate: leaveDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	synced := SyncStatusWithMember(membership, linked)

	if err := service.repository.Create(context, membership); err != nil {
		return nil, err
	}

	if synced {
		service.metrics.AddMembershipsSynced(1)
		service.warnIfBackdated(membership)
	}
	service.logger.Info("membership_created",
		slog.String("group_id", membership.GroupID),
		slog.String("member_id", membership.MemberID),
		slog.String("status", string(membership.Status)),
	)
	return membership, nil
}

/*
Update applies an explicit status or date change, then re-applies the member's
lifecycle so a deceased member stays FORMER.
*/
func (service *Service) Update(context context.Context, groupID, memberID string, request *UpdateRequest) (*GroupMembership, error) {
	current, err := service.Get(context, groupID, memberID)
	if err != nil {
		return nil, err
	}

	next, err := Transition(*current, request.change())
	if err != nil {
		return nil, err
	}

	linked, err := service.members.FindMember(context, memberID)
	if err != nil {
		return nil, err
	}
	if SyncStatusWithMember(&next, linked) {
		service.metrics.AddMembershipsSynced(1)
		service.warnIfBackdated(&next)
	}
	next.UpdatedAt = service.now()

	if err := service.repository.Update(context, &next); err != nil {
		if dberr.IsNotFound(err) {
			return nil, apperr.NotFound("Membership")
		}
		return nil, err
	}

	service.logger.Info("membership_updated",
		slog.String("group_id", groupID),
		slog.String("member_id", memberID),
		slog.String("from", string(current.Status)),
		slog.String("to", string(next.Status)),
	)
	return &next, nil
}

// Delete removes a membership.
func (service *Service) Delete(context context.Context, groupID, memberID string) error {
	if err := service.repository.Delete(context, groupID, memberID); err != nil {
		if dberr.IsNotFound(err) {
			return apperr.NotFound("Membership")
		}
		return err
	}

	service.logger.Warn("membership_deleted", slog.String("group_id", groupID), slog.String("member_id", memberID))
	return nil
}

// # Consistency Engine

/*
SyncMember runs [SyncStatusWithMember] over every membership of a member and
persists the rows it changed in one write.

Returns:
  - int: Number of rows changed
*/
func (service *Service) SyncMember(context context.Context, target *member.Member) (int, error) {
	if target == nil {
		return 0, nil
	}

	memberships, err := service.repository.ListByMember(context, target.ID)
	if err != nil {
		return 0, err
	}

	now := service.now()
	changed := make([]*GroupMembership, 0, len(memberships))
	for _, membership := range memberships {
		if SyncStatusWithMember(membership, target) {
			membership.UpdatedAt = now
			service.warnIfBackdated(membership)
			changed = append(changed, membership)
		}
	}

	if err := service.repository.UpdateMany(context, changed); err != nil {
		return 0, err
	}

	if len(changed) > 0 {
		service.metrics.AddMembershipsSynced(len(changed))
		service.logger.Info("membership_synced",
			slog.String("member_id", target.ID),
			slog.Int("changed", len(changed)),
		)
	}
	return len(changed), nil
}

// ReconcileDeceased re-syncs the memberships of every deceased member.
func (service *Service) ReconcileDeceased(context context.Context) (int, error) {
	deceased, err := service.members.ListDeceased(context)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, target := range deceased {
		changed, err := service.SyncMember(context, target)
		if err != nil {
			return total, fmt.Errorf("sync member %s: %w", target.ID, err)
		}
		total += changed
	}
	return total, nil
}

// # Subunit Ledger

// AddSubunitMember puts a member into a subunit.
func (service *Service) AddSubunitMember(context context.Context, subunitID string, request *SubunitMemberRequest) (*SubunitMembership, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	exists, err := service.units.Exists(context, subunitID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.ReferenceIntegrity(fmt.Sprintf("Subunit not found with ID: %s", subunitID))
	}
	if _, err := service.requireMember(context, request.MemberID); err != nil {
		return nil, err
	}

	already, err := service.subunits.Exists(context, subunitID, request.MemberID)
	if err != nil {
		return nil, err
	}
	if already {
		return nil, apperr.Conflict("Member is already in this subunit")
	}

	membership := &SubunitMembership{SubunitID: subunitID, MemberID: request.MemberID, CreatedAt: service.now()}
	if err := service.subunits.Add(context, membership); err != nil {
		return nil, err
	}

	service.logger.Info("subunit_member_added", slog.String("subunit_id", subunitID), slog.String("member_id", request.MemberID))
	return membership, nil
}

// RemoveSubunitMember takes a member out of a subunit.
func (service *Service) RemoveSubunitMember(context context.Context, subunitID, memberID string) error {
	if err := service.subunits.Remove(context, subunitID, memberID); err != nil {
		if dberr.IsNotFound(err) {
			return apperr.NotFound("Subunit membership")
		}
		return err
	}

	service.logger.Info("subunit_member_removed", slog.String("subunit_id", subunitID), slog.String("member_id", memberID))
	return nil
}

func (service *Service) IsSubunitMember(context context.Context, subunitID, memberID string) (bool, error) {
	return service.subunits.Exists(context, subunitID, memberID)
}

func (service *Service) ListSubunitMembers(context context.Context, subunitID string) ([]*SubunitMembership, error) {
	return service.subunits.ListBySubunit(context, subunitID)
}

func (service *Service) ListMemberSubunits(context context.Context, memberID string) ([]*SubunitMembership, error) {
	return service.subunits.ListByMember(context, memberID)
}

// ClearSubunit removes every member of a subunit.
func (service *Service) ClearSubunit(context context.Context, subunitID string) (int, error) {
	removed, err := service.subunits.DeleteBySubunit(context, subunitID)
	if err != nil {
		return 0, err
	}
	service.logger.Warn("subunit_members_cleared", slog.String("subunit_id", subunitID), slog.Int("removed", removed))
	return removed, nil
}

// LeaveAllSubunits removes a member from every subunit.
func (service *Service) LeaveAllSubunits(context context.Context, memberID string) (int, error) {
	removed, err := service.subunits.DeleteByMember(context, memberID)
	if err != nil {
		return 0, err
	}
	service.logger.Warn("member_subunits_cleared", slog.String("member_id", memberID), slog.Int("removed", removed))
	return removed, nil
}

// # Cleanup

// PurgeGroup removes every membership of a deleted group.
func (service *Service) PurgeGroup(context context.Context, groupID string) (int, error) {
	removed, err := service.repository.DeleteByGroup(context, groupID)
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		service.logger.Warn("group_memberships_purged", slog.String("group_id", groupID), slog.Int("removed", removed))
	}
	return removed, nil
}

// PurgeMember removes a deleted member from every group and subunit.
func (service *Service) PurgeMember(context context.Context, memberID string) (int, error) {
	removed, err := service.repository.DeleteByMember(context, memberID)
	if err != nil {
		return 0, err
	}

	left, err := service.subunits.DeleteByMember(context, memberID)
	if err != nil {
		return removed, err
	}
	if removed+left > 0 {
		service.logger.Warn("member_memberships_purged",
			slog.String("member_id", memberID),
			slog.Int("groups", removed),
			slog.Int("subunits", left),
		)
	}
	return removed + left, nil
}

// # Helpers

func (service *Service) requireGroup(context context.Context, groupID string) error {
	group, err := service.artists.FindArtist(context, groupID)
	if err != nil {
		if dberr.IsNotFound(err) {
			return apperr.ReferenceIntegrity(fmt.Sprintf("Group not found with ID: %s", groupID))
		}
		return err
	}
	if group.Type != artist.TypeGroup {
		return apperr.ReferenceIntegrity(fmt.Sprintf(
			"Only GROUP artists can have members, but '%s' is type: %s", group.Name, group.Type))
	}
	return nil
}

func (service *Service) requireMember(context context.Context, memberID string) (*member.Member, error) {
	found, err := service.members.FindMember(context, memberID)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, apperr.ReferenceIntegrity(fmt.Sprintf("Member not found with ID: %s", memberID))
	}
	return found, nil
}

// warnIfBackdated flags rows the engine left with a leave date before the join date.
func (service *Service) warnIfBackdated(membership *GroupMembership) {
	if membership.LeaveDate != nil && membership.LeaveDate.Before(membership.JoinDate) {
		service.logger.Warn("membership_leave_before_join",
			slog.String("group_id", membership.GroupID),
			slog.String("member_id", membership.MemberID),
		)
	}
}
