// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package member keeps the registry of people who perform in groups.

A member may also have a solo career; the link to that career is a weak
reference to a SOLO artist, resolved by explicit lookup and cleared when the
artist is deleted.
*/
package member

import "time"

// # Core Entities

// Member is a person who belongs (or belonged) to one or more groups.
type Member struct {
	ID           string     `json:"id"`
	MemberName   string     `json:"member_name"` // stage name
	RealName     string     `json:"real_name"`
	SearchName   string     `json:"-"`
	Description  string     `json:"description"`
	Image        string     `json:"image"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`
	DeathDate    *time.Time `json:"death_date,omitempty"`
	Nationality  string     `json:"nationality"`
	SoloArtistID *string    `json:"solo_artist_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsDeceased reports whether a death date is recorded.
func (member *Member) IsDeceased() bool {
	return member.DeathDate != nil
}

// HasOfficialSoloDebut reports whether the member is linked to a solo career.
func (member *Member) HasOfficialSoloDebut() bool {
	return member.SoloArtistID != nil
}

// # Search & Filtering

// Filter narrows the member listing.
type Filter struct {
	Query          string // matches stage or real name, accent-insensitive
	Nationality    string
	WithSoloCareer *bool
	BornFrom       *time.Time
	BornTo         *time.Time
}

// # Field Identifiers

const (
	FieldMemberName   = "member_name"
	FieldRealName     = "real_name"
	FieldDescription  = "description"
	FieldImage        = "image"
	FieldBirthDate    = "birth_date"
	FieldDeathDate    = "death_date"
	FieldNationality  = "nationality"
	FieldSoloArtistID = "solo_artist_id"
)
