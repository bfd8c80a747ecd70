// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CatalogGroupMembershipTable represents the 'catalog.groupmembership' table
type CatalogGroupMembershipTable struct {
	Table     string
	GroupID   string
	MemberID  string
	Status    string
	JoinDate  string
	LeaveDate string
	CreatedAt string
	UpdatedAt string
}

// CatalogGroupMembership is the schema definition for catalog.groupmembership
var CatalogGroupMembership = CatalogGroupMembershipTable{
	Table:     "catalog.groupmembership",
	GroupID:   "groupid",
	MemberID:  "memberid",
	Status:    "status",
	JoinDate:  "joindate",
	LeaveDate: "leavedate",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t CatalogGroupMembershipTable) Columns() []string {
	return []string{t.GroupID, t.MemberID, t.Status, t.JoinDate, t.LeaveDate, t.CreatedAt, t.UpdatedAt}
}
