// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CatalogSubunitMembershipTable represents the 'catalog.subunitmembership' table
type CatalogSubunitMembershipTable struct {
	Table     string
	SubunitID string
	MemberID  string
	CreatedAt string
}

// CatalogSubunitMembership is the schema definition for catalog.subunitmembership
var CatalogSubunitMembership = CatalogSubunitMembershipTable{
	Table:     "catalog.subunitmembership",
	SubunitID: "subunitid",
	MemberID:  "memberid",
	CreatedAt: "createdat",
}

func (t CatalogSubunitMembershipTable) Columns() []string {
	return []string{t.SubunitID, t.MemberID, t.CreatedAt}
}
