// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package membership_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdikyarts/musicopedia/internal/core/membership"
	"github.com/sdikyarts/musicopedia/internal/platform/apperr"
	"github.com/sdikyarts/musicopedia/pkg/pointer"
)

/*
TestCanTransition checks the explicit transition table.
*/
func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to membership.Status
		allowed  bool
	}{
		{membership.StatusCurrent, membership.StatusCurrent, true},
		{membership.StatusCurrent, membership.StatusInactive, true},
		{membership.StatusCurrent, membership.StatusFormer, true},
		{membership.StatusInactive, membership.StatusCurrent, true},
		{membership.StatusInactive, membership.StatusFormer, true},
		{membership.StatusInactive, membership.StatusInactive, true},
		{membership.StatusFormer, membership.StatusFormer, true},
		{membership.StatusFormer, membership.StatusCurrent, false},
		{membership.StatusFormer, membership.StatusInactive, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, membership.CanTransition(tt.from, tt.to))
		})
	}
}

/*
TestTransition applies explicit changes and checks the resulting row or error.
*/
func TestTransition(t *testing.T) {
	status := func(s membership.Status) *membership.Status { return &s }

	tests := []struct {
		name      string
		current   *membership.GroupMembership
		change    membership.Change
		status    membership.Status
		leaveDate *time.Time
		message   string
	}{
		{
			name:      "current_to_former_with_leave_date",
			current:   row(membership.StatusCurrent, nil),
			change:    membership.Change{Status: status(membership.StatusFormer), LeaveDate: day(2020, time.June, 1)},
			status:    membership.StatusFormer,
			leaveDate: day(2020, time.June, 1),
		},
		{
			name:    "current_to_former_without_leave_date",
			current: row(membership.StatusCurrent, nil),
			change:  membership.Change{Status: status(membership.StatusFormer)},
			message: "Leave date is required for former members",
		},
		{
			name:    "current_to_inactive",
			current: row(membership.StatusCurrent, nil),
			change:  membership.Change{Status: status(membership.StatusInactive)},
			status:  membership.StatusInactive,
		},
		{
			name:    "inactive_with_leave_date",
			current: row(membership.StatusCurrent, nil),
			change:  membership.Change{Status: status(membership.StatusInactive), LeaveDate: day(2020, time.June, 1)},
			message: "Only former memberships can have a leave date",
		},
		{
			name:    "inactive_back_to_current",
			current: row(membership.StatusInactive, nil),
			change:  membership.Change{Status: status(membership.StatusCurrent)},
			status:  membership.StatusCurrent,
		},
		{
			name:      "inactive_to_former",
			current:   row(membership.StatusInactive, nil),
			change:    membership.Change{Status: status(membership.StatusFormer), LeaveDate: day(2021, time.July, 1)},
			status:    membership.StatusFormer,
			leaveDate: day(2021, time.July, 1),
		},
		{
			name:      "former_corrects_leave_date",
			current:   row(membership.StatusFormer, day(2020, time.June, 1)),
			change:    membership.Change{LeaveDate: day(2020, time.June, 2)},
			status:    membership.StatusFormer,
			leaveDate: day(2020, time.June, 2),
		},
		{
			name:    "former_cannot_reopen",
			current: row(membership.StatusFormer, day(2020, time.June, 1)),
			change:  membership.Change{Status: status(membership.StatusCurrent)},
			message: "Former memberships cannot be reopened",
		},
		{
			name:    "leave_before_join",
			current: row(membership.StatusCurrent, nil),
			change:  membership.Change{Status: status(membership.StatusFormer), LeaveDate: day(2012, time.January, 1)},
			message: "Leave date cannot be before join date",
		},
		{
			name:    "unknown_status",
			current: row(membership.StatusCurrent, nil),
			change:  membership.Change{Status: status("RETIRED")},
			message: "Unknown membership status: RETIRED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := membership.Transition(*tt.current, tt.change)

			if tt.message != "" {
				require.Error(t, err)
				assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
				assert.Equal(t, tt.message, err.Error())
				assert.Equal(t, *tt.current, next)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.status, next.Status)
			assert.Equal(t, tt.leaveDate, next.LeaveDate)
		})
	}
}

/*
TestTransition_MovesJoinDate accepts a new join date when the order still holds.
*/
func TestTransition_MovesJoinDate(t *testing.T) {
	current := row(membership.StatusFormer, day(2020, time.June, 1))

	next, err := membership.Transition(*current, membership.Change{JoinDate: day(2014, time.January, 1)})
	require.NoError(t, err)
	assert.Equal(t, *day(2014, time.January, 1), next.JoinDate)

	_, err = membership.Transition(*current, membership.Change{JoinDate: day(2021, time.January, 1)})
	assert.Equal(t, "Leave date cannot be before join date", err.Error())
}

/*
TestCheckState validates explicitly written rows.
*/
func TestCheckState(t *testing.T) {
	join := *day(2015, time.April, 29)

	assert.NoError(t, membership.CheckState(membership.StatusCurrent, join, nil))
	assert.NoError(t, membership.CheckState(membership.StatusFormer, join, pointer.To(join)))
	assert.EqualError(t, membership.CheckState(membership.StatusCurrent, time.Time{}, nil), "Join date is required")
	assert.EqualError(t, membership.CheckState(membership.StatusFormer, join, nil), "Leave date is required for former members")
}
