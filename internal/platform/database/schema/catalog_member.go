// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CatalogMemberTable represents the 'catalog.member' table
type CatalogMemberTable struct {
	Table        string
	ID           string
	MemberName   string
	RealName     string
	SearchName   string
	Description  string
	Image        string
	BirthDate    string
	DeathDate    string
	Nationality  string
	SoloArtistID string
	CreatedAt    string
	UpdatedAt    string
}

// CatalogMember is the schema definition for catalog.member
var CatalogMember = CatalogMemberTable{
	Table:        "catalog.member",
	ID:           "id",
	MemberName:   "membername",
	RealName:     "realname",
	SearchName:   "searchname",
	Description:  "description",
	Image:        "image",
	BirthDate:    "birthdate",
	DeathDate:    "deathdate",
	Nationality:  "nationality",
	SoloArtistID: "soloartistid",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

func (t CatalogMemberTable) Columns() []string {
	return []string{
		t.ID, t.MemberName, t.RealName, t.SearchName, t.Description, t.Image, t.BirthDate,
		t.DeathDate, t.Nationality, t.SoloArtistID, t.CreatedAt, t.UpdatedAt,
	}
}
