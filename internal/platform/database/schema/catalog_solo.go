// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CatalogSoloTable represents the 'catalog.solo' table (1:1 extension of catalog.artist)
type CatalogSoloTable struct {
	Table             string
	ArtistID          string
	BirthDate         string
	DeathDate         string
	Gender            string
	AffiliationStatus string
}

// CatalogSolo is the schema definition for catalog.solo
var CatalogSolo = CatalogSoloTable{
	Table:             "catalog.solo",
	ArtistID:          "artistid",
	BirthDate:         "birthdate",
	DeathDate:         "deathdate",
	Gender:            "gender",
	AffiliationStatus: "affiliationstatus",
}

func (t CatalogSoloTable) Columns() []string {
	return []string{t.ArtistID, t.BirthDate, t.DeathDate, t.Gender, t.AffiliationStatus}
}
