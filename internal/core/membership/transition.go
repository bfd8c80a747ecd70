// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package membership

import (
	"fmt"
	"slices"
	"time"

	"github.com/sdikyarts/musicopedia/internal/platform/apperr"
	"github.com/sdikyarts/musicopedia/internal/platform/validate"
)

// transitions lists the statuses reachable from each status by explicit write.
var transitions = map[Status][]Status{
	StatusCurrent:  {StatusCurrent, StatusInactive, StatusFormer},
	StatusInactive: {StatusInactive, StatusCurrent, StatusFormer},
	StatusFormer:   {StatusFormer},
}

// CanTransition reports whether an explicit write may move from one status to another.
func CanTransition(from, to Status) bool {
	return slices.Contains(transitions[from], to)
}

// Change is an explicit edit of a membership. Nil fields keep their value.
type Change struct {
	Status    *Status
	JoinDate  *time.Time
	LeaveDate *time.Time
}

/*
Transition applies an explicit change to a copy of current.

Description: Leaving FORMER is rejected. CURRENT and INACTIVE rows drop their
leave date; a FORMER row keeps its recorded leave date unless a new one is
supplied. The result must satisfy [CheckState].

Returns:
  - GroupMembership: The changed copy
  - error: VALIDATION_ERROR naming the broken rule
*/
func Transition(current GroupMembership, change Change) (GroupMembership, error) {
	next := current

	if change.Status != nil {
		if !change.Status.IsValid() {
			return current, validate.RequiredError(FieldStatus, fmt.Sprintf("Unknown membership status: %s", *change.Status))
		}
		if !CanTransition(current.Status, *change.Status) {
			if current.Status == StatusFormer {
				return current, apperr.ValidationError("Former memberships cannot be reopened")
			}
			return current, apperr.ValidationError(fmt.Sprintf("Cannot change membership status from %s to %s", current.Status, *change.Status))
		}
		next.Status = *change.Status
	}

	if change.JoinDate != nil {
		next.JoinDate = *change.JoinDate
	}

	switch next.Status {
	case StatusFormer:
		if change.LeaveDate != nil {
			next.LeaveDate = change.LeaveDate
		}
	default:
		if change.LeaveDate != nil {
			return current, validate.RequiredError(FieldLeaveDate, "Only former memberships can have a leave date")
		}
		next.LeaveDate = nil
	}

	if err := CheckState(next.Status, next.JoinDate, next.LeaveDate); err != nil {
		return current, err
	}
	return next, nil
}

// CheckState validates the status and dates of an explicitly written row.
func CheckState(status Status, joinDate time.Time, leaveDate *time.Time) error {
	validator := &validate.Validator{}
	validator.
		Custom(FieldJoinDate, joinDate.IsZero(), "Join date is required").
		Custom(FieldLeaveDate, status == StatusFormer && leaveDate == nil, "Leave date is required for former members").
		Custom(FieldLeaveDate, status != StatusFormer && leaveDate != nil, "Only former memberships can have a leave date").
		NotBefore(FieldLeaveDate, &joinDate, leaveDate, "Leave date cannot be before join date")

	return validator.FirstErr()
}
