// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CatalogSubunitTable represents the 'catalog.subunit' table
type CatalogSubunitTable struct {
	Table           string
	ID              string
	MainGroupID     string
	GroupIdentityID string
	Name            string
	Description     string
	Image           string
	FormationDate   string
	DisbandDate     string
	Gender          string
	ActivityStatus  string
	OriginCountry   string
	CreatedAt       string
	UpdatedAt       string
}

// CatalogSubunit is the schema definition for catalog.subunit
var CatalogSubunit = CatalogSubunitTable{
	Table:           "catalog.subunit",
	ID:              "id",
	MainGroupID:     "maingroupid",
	GroupIdentityID: "groupidentityid",
	Name:            "name",
	Description:     "description",
	Image:           "image",
	FormationDate:   "formationdate",
	DisbandDate:     "disbanddate",
	Gender:          "gender",
	ActivityStatus:  "activitystatus",
	OriginCountry:   "origincountry",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
}

func (t CatalogSubunitTable) Columns() []string {
	return []string{
		t.ID, t.MainGroupID, t.GroupIdentityID, t.Name, t.Description, t.Image, t.FormationDate,
		t.DisbandDate, t.Gender, t.ActivityStatus, t.OriginCountry, t.CreatedAt, t.UpdatedAt,
	}
}
