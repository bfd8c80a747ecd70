// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package artist manages performers: the shared base identity and its
type-specific extensions.

# Core Responsibility

  - Identity: Every performer is an [Artist] with an immutable [Type].
  - Extensions: SOLO artists carry a [Solo] record and GROUP artists a [Group]
    record, both keyed by the artist id. FRANCHISE and VARIOUS carry none.
  - Creation: The [Dispatcher] selects one validation policy per type and
    builds the artist; [NewSolo] and [NewGroup] attach the extension.

Members, subunits and memberships refer to artists by id only.
*/
package artist

import (
	"slices"
	"time"
)

// # Performer Enums

// Type is the closed set of performer variants.
type Type string

const (
	TypeSolo      Type = "SOLO"
	TypeGroup     Type = "GROUP"
	TypeFranchise Type = "FRANCHISE"
	TypeVarious   Type = "VARIOUS"
)

// Types lists every performer type in declaration order.
var Types = []Type{TypeSolo, TypeGroup, TypeFranchise, TypeVarious}

// IsValid reports whether t belongs to the closed set.
func (t Type) IsValid() bool {
	return slices.Contains(Types, t)
}

// Gender describes a solo performer or the line-up of a group.
type Gender string

const (
	GenderMale      Gender = "MALE"
	GenderFemale    Gender = "FEMALE"
	GenderMixed     Gender = "MIXED"
	GenderNonBinary Gender = "NON_BINARY"
	GenderUnknown   Gender = "UNKNOWN"
)

// Genders lists every gender value.
var Genders = []Gender{GenderMale, GenderFemale, GenderMixed, GenderNonBinary, GenderUnknown}

// ActivityStatus describes whether a group (or subunit) is still performing.
type ActivityStatus string

const (
	ActivityActive    ActivityStatus = "ACTIVE"
	ActivityInactive  ActivityStatus = "INACTIVE"
	ActivityDisbanded ActivityStatus = "DISBANDED"
)

// ActivityStatuses lists every activity status.
var ActivityStatuses = []ActivityStatus{ActivityActive, ActivityInactive, ActivityDisbanded}

// AffiliationStatus records whether a solo performer has ever belonged to a group.
type AffiliationStatus string

const (
	AffiliationNever   AffiliationStatus = "NEVER_IN_A_GROUP"
	AffiliationCurrent AffiliationStatus = "IN_A_GROUP"
	AffiliationFormer  AffiliationStatus = "WAS_IN_A_GROUP"
)

// AffiliationStatuses lists every affiliation status.
var AffiliationStatuses = []AffiliationStatus{AffiliationNever, AffiliationCurrent, AffiliationFormer}

// # Core Entities

// Artist is the base identity shared by every performer variant.
type Artist struct {
	ID              string    `json:"id"` // UUIDv7
	SpotifyID       *string   `json:"spotify_id,omitempty"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	SearchName      string    `json:"search_name"` // accent-folded name used by search
	Type            Type      `json:"type"`
	Description     string    `json:"description"`
	Image           string    `json:"image"`
	PrimaryLanguage string    `json:"primary_language"`
	Genre           string    `json:"genre"`
	OriginCountry   string    `json:"origin_country"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Solo is the extension of a SOLO artist.
type Solo struct {
	ArtistID          string            `json:"artist_id"`
	BirthDate         *time.Time        `json:"birth_date,omitempty"`
	DeathDate         *time.Time        `json:"death_date,omitempty"`
	Gender            Gender            `json:"gender"`
	AffiliationStatus AffiliationStatus `json:"affiliation_status"`
}

// IsDeceased reports whether a death date is recorded.
func (solo *Solo) IsDeceased() bool {
	return solo.DeathDate != nil
}

// Group is the extension of a GROUP artist.
type Group struct {
	ArtistID       string         `json:"artist_id"`
	FormationDate  *time.Time     `json:"formation_date,omitempty"`
	DisbandDate    *time.Time     `json:"disband_date,omitempty"`
	Gender         Gender         `json:"gender"`
	ActivityStatus ActivityStatus `json:"activity_status"`
}

// IsDisbanded reports whether a disband date is recorded.
func (group *Group) IsDisbanded() bool {
	return group.DisbandDate != nil
}

// Profile is an artist together with the extension matching its type.
type Profile struct {
	Artist *Artist `json:"artist"`
	Solo   *Solo   `json:"solo,omitempty"`
	Group  *Group  `json:"group,omitempty"`
}

// # Search & Filtering

// Filter holds the parameters for a paginated artist search.
type Filter struct {
	Query string // accent-insensitive match against the name
	Types []Type // empty means every type
}

// SoloFilter narrows the soloist listing.
type SoloFilter struct {
	Query    string
	Gender   Gender
	Deceased *bool
	BornFrom *time.Time
	BornTo   *time.Time
}

// GroupFilter narrows the group listing.
type GroupFilter struct {
	Query      string
	Gender     Gender
	Disbanded  *bool
	FormedFrom *time.Time
	FormedTo   *time.Time
}

// # Field Identifiers

const (
	FieldType              = "type"
	FieldName              = "name"
	FieldSpotifyID         = "spotify_id"
	FieldDescription       = "description"
	FieldImage             = "image"
	FieldPrimaryLanguage   = "primary_language"
	FieldGenre             = "genre"
	FieldOriginCountry     = "origin_country"
	FieldSolo              = "solo"
	FieldGroup             = "group"
	FieldBirthDate         = "birth_date"
	FieldDeathDate         = "death_date"
	FieldGender            = "gender"
	FieldAffiliationStatus = "affiliation_status"
	FieldFormationDate     = "formation_date"
	FieldDisbandDate       = "disband_date"
	FieldActivityStatus    = "activity_status"
)
