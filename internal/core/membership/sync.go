// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package membership

import "github.com/sdikyarts/musicopedia/internal/core/member"

/*
SyncStatusWithMember aligns a membership with its member's lifecycle.

Description: A deceased member is FORMER with the death date as leave date,
whatever the row said before. A living member leaves the row untouched, so
FORMER and INACTIVE are never reverted. A nil member is a no-op. Running it
twice yields the same row.

Returns:
  - bool: Whether status or leave date changed
*/
func SyncStatusWithMember(membership *GroupMembership, member *member.Member) bool {
	if membership == nil || member == nil || member.DeathDate == nil {
		return false
	}

	deathDate := *member.DeathDate
	if membership.Status == StatusFormer && membership.LeaveDate != nil && membership.LeaveDate.Equal(deathDate) {
		return false
	}

	membership.Status = StatusFormer
	membership.LeaveDate = &deathDate
	return true
}
