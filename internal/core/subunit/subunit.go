// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package subunit manages sub-formations of a group.

Every subunit belongs to exactly one main group. A subunit that debuted as a
performer of its own may also point at that GROUP artist through its group
identity; the link is weak and cleared when the artist is deleted.
*/
package subunit

import (
	"time"

	"github.com/sdikyarts/musicopedia/internal/core/artist"
)

// Subunit is a sub-formation of a main group.
type Subunit struct {
	ID              string                `json:"id"`
	MainGroupID     string                `json:"main_group_id"`
	GroupIdentityID *string               `json:"group_identity_id,omitempty"`
	Name            string                `json:"name"`
	Description     string                `json:"description"`
	Image           string                `json:"image"`
	FormationDate   *time.Time            `json:"formation_date,omitempty"`
	DisbandDate     *time.Time            `json:"disband_date,omitempty"`
	Gender          artist.Gender         `json:"gender"`
	ActivityStatus  artist.ActivityStatus `json:"activity_status"`
	OriginCountry   string                `json:"origin_country"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

// Filter narrows the subunit listing.
type Filter struct {
	MainGroupID *string
}

// Field identifiers used in validation details.
const (
	FieldMainGroupID     = "main_group_id"
	FieldGroupIdentityID = "group_identity_id"
	FieldName            = "name"
	FieldDescription     = "description"
	FieldDisbandDate     = "disband_date"
	FieldGender          = "gender"
	FieldActivityStatus  = "activity_status"
	FieldOriginCountry   = "origin_country"
)

// Limits on free-text fields.
const (
	MaxNameLength        = 150
	MaxDescriptionLength = 1000
)
