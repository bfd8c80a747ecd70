// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CatalogMusicGroupTable represents the 'catalog.musicgroup' table (1:1 extension of catalog.artist)
type CatalogMusicGroupTable struct {
	Table          string
	ArtistID       string
	FormationDate  string
	DisbandDate    string
	Gender         string
	ActivityStatus string
}

// CatalogMusicGroup is the schema definition for catalog.musicgroup
var CatalogMusicGroup = CatalogMusicGroupTable{
	Table:          "catalog.musicgroup",
	ArtistID:       "artistid",
	FormationDate:  "formationdate",
	DisbandDate:    "disbanddate",
	Gender:         "gender",
	ActivityStatus: "activitystatus",
}

func (t CatalogMusicGroupTable) Columns() []string {
	return []string{t.ArtistID, t.FormationDate, t.DisbandDate, t.Gender, t.ActivityStatus}
}
