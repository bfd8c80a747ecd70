// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package membership keeps the ledgers that tie members to groups and subunits.

A GroupMembership moves between CURRENT, INACTIVE and FORMER through explicit
writes, and is forced to FORMER by [SyncStatusWithMember] once the member's
death date is known. SubunitMembership rows are plain associations and are
independent of the group ledger.
*/
package membership

import "time"

// # Status

// Status is the state of a member within a group.
type Status string

const (
	StatusCurrent  Status = "CURRENT"
	StatusFormer   Status = "FORMER"
	StatusInactive Status = "INACTIVE"
)

// Statuses lists every membership status.
var Statuses = []Status{StatusCurrent, StatusFormer, StatusInactive}

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	switch s {
	case StatusCurrent, StatusFormer, StatusInactive:
		return true
	}
	return false
}

// # Entities

// GroupMembership is one member's tenure in a GROUP artist, keyed by
// (GroupID, MemberID).
type GroupMembership struct {
	GroupID   string     `json:"group_id"`
	MemberID  string     `json:"member_id"`
	Status    Status     `json:"status"`
	JoinDate  time.Time  `json:"join_date"`
	LeaveDate *time.Time `json:"leave_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// SubunitMembership associates a member with a subunit.
type SubunitMembership struct {
	SubunitID string    `json:"subunit_id"`
	MemberID  string    `json:"member_id"`
	CreatedAt time.Time `json:"created_at"`
}

// # Search & Filtering

// Filter narrows a group membership listing. Every set field must match.
type Filter struct {
	GroupID     *string
	MemberID    *string
	Status      *Status
	Former      bool       // only rows with a leave date
	JoinedAfter *time.Time // strictly after
	LeftBefore  *time.Time // strictly before
}

// Field identifiers used in validation details.
const (
	FieldGroupID   = "group_id"
	FieldMemberID  = "member_id"
	FieldSubunitID = "subunit_id"
	FieldStatus    = "status"
	FieldJoinDate  = "join_date"
	FieldLeaveDate = "leave_date"
)
