// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package membership

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/sdikyarts/musicopedia/internal/platform/validate"
	"github.com/sdikyarts/musicopedia/pkg/date"
)

// # Requests

// CreateRequest opens a membership. An absent status means CURRENT.
type CreateRequest struct {
	GroupID   string     `json:"group_id"`
	MemberID  string     `json:"member_id"`
	Status    Status     `json:"status,omitempty"`
	JoinDate  *date.Date `json:"join_date"`
	LeaveDate *date.Date `json:"leave_date,omitempty"`
}

// Normalize trims identifiers and defaults the status.
func (request *CreateRequest) Normalize() {
	request.GroupID = strings.TrimSpace(request.GroupID)
	request.MemberID = strings.TrimSpace(request.MemberID)
	request.Status = Status(strings.ToUpper(strings.TrimSpace(string(request.Status))))
	if request.Status == "" {
		request.Status = StatusCurrent
	}
}

// Validate checks identifier formats, the status value and the join date.
func (request CreateRequest) Validate() error {
	return validate.FromOzzo(validation.ValidateStruct(&request,
		validation.Field(&request.GroupID,
			validation.Required.Error("Group ID is required"),
			is.UUID.Error("Group ID must be a valid UUID")),
		validation.Field(&request.MemberID,
			validation.Required.Error("Member ID is required"),
			is.UUID.Error("Member ID must be a valid UUID")),
		validation.Field(&request.Status, validation.In(statusValues()...).Error("Unknown membership status")),
		validation.Field(&request.JoinDate, validation.NotNil.Error("Join date is required")),
	))
}

// UpdateRequest is an explicit status or date change. Absent fields are kept.
type UpdateRequest struct {
	Status    *Status    `json:"status,omitempty"`
	JoinDate  *date.Date `json:"join_date,omitempty"`
	LeaveDate *date.Date `json:"leave_date,omitempty"`
}

func (request UpdateRequest) change() Change {
	change := Change{
		JoinDate:  date.ToTime(request.JoinDate),
		LeaveDate: date.ToTime(request.LeaveDate),
	}
	if request.Status != nil {
		status := Status(strings.ToUpper(strings.TrimSpace(string(*request.Status))))
		change.Status = &status
	}
	return change
}

// SubunitMemberRequest adds a member to a subunit.
type SubunitMemberRequest struct {
	MemberID string `json:"member_id"`
}

// Validate checks the member id format.
func (request SubunitMemberRequest) Validate() error {
	return validate.FromOzzo(validation.ValidateStruct(&request,
		validation.Field(&request.MemberID,
			validation.Required.Error("Member ID is required"),
			is.UUID.Error("Member ID must be a valid UUID")),
	))
}

// # Responses

// Response is the API representation of a group membership.
type Response struct {
	GroupID   string     `json:"group_id"`
	MemberID  string     `json:"member_id"`
	Status    Status     `json:"status"`
	JoinDate  date.Date  `json:"join_date"`
	LeaveDate *date.Date `json:"leave_date"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ToResponse maps a membership to its API shape.
func ToResponse(membership *GroupMembership) *Response {
	return &Response{
		GroupID:   membership.GroupID,
		MemberID:  membership.MemberID,
		Status:    membership.Status,
		JoinDate:  date.Of(membership.JoinDate),
		LeaveDate: date.FromTime(membership.LeaveDate),
		CreatedAt: membership.CreatedAt,
		UpdatedAt: membership.UpdatedAt,
	}
}

// CountResponse carries a membership count.
type CountResponse struct {
	GroupID string  `json:"group_id"`
	Status  *Status `json:"status,omitempty"`
	Count   int     `json:"count"`
}

// # Helpers

func statusValues() []interface{} {
	values := make([]interface{}, len(Statuses))
	for i, status := range Statuses {
		values[i] = status
	}
	return values
}
