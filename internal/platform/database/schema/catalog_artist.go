// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CatalogArtistTable represents the 'catalog.artist' table
type CatalogArtistTable struct {
	Table           string
	ID              string
	SpotifyID       string
	Name            string
	Slug            string
	SearchName      string
	Type            string
	Description     string
	Image           string
	PrimaryLanguage string
	Genre           string
	OriginCountry   string
	CreatedAt       string
	UpdatedAt       string
}

// CatalogArtist is the schema definition for catalog.artist
var CatalogArtist = CatalogArtistTable{
	Table:           "catalog.artist",
	ID:              "id",
	SpotifyID:       "spotifyid",
	Name:            "name",
	Slug:            "slug",
	SearchName:      "searchname",
	Type:            "type",
	Description:     "description",
	Image:           "image",
	PrimaryLanguage: "primarylanguage",
	Genre:           "genre",
	OriginCountry:   "origincountry",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
}

func (t CatalogArtistTable) Columns() []string {
	return []string{
		t.ID, t.SpotifyID, t.Name, t.Slug, t.SearchName, t.Type, t.Description, t.Image,
		t.PrimaryLanguage, t.Genre, t.OriginCountry, t.CreatedAt, t.UpdatedAt,
	}
}
