// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"fmt"
	"slices"
	"time"

	"github.com/sdikyarts/musicopedia/internal/platform/apperr"
	"github.com/sdikyarts/musicopedia/internal/platform/validate"
)

// # Extension Attributes

// SoloAttributes is the immutable input of [NewSolo]. Zero enum values take defaults.
type SoloAttributes struct {
	BirthDate         *time.Time
	DeathDate         *time.Time
	Gender            Gender
	AffiliationStatus AffiliationStatus
}

// GroupAttributes is the immutable input of [NewGroup]. Zero enum values take defaults.
type GroupAttributes struct {
	FormationDate  *time.Time
	DisbandDate    *time.Time
	Gender         Gender
	ActivityStatus ActivityStatus
}

// Attributes returns the attributes the extension was built from.
func (solo *Solo) Attributes() SoloAttributes {
	return SoloAttributes{
		BirthDate:         solo.BirthDate,
		DeathDate:         solo.DeathDate,
		Gender:            solo.Gender,
		AffiliationStatus: solo.AffiliationStatus,
	}
}

// Attributes returns the attributes the extension was built from.
func (group *Group) Attributes() GroupAttributes {
	return GroupAttributes{
		FormationDate:  group.FormationDate,
		DisbandDate:    group.DisbandDate,
		Gender:         group.Gender,
		ActivityStatus: group.ActivityStatus,
	}
}

// # Extension Constructors

/*
NewSolo attaches solo attributes to an existing base artist.

The base must be a SOLO artist; the extension shares its id.

Returns:
  - *Solo: The extension
  - error: REFERENCE_INTEGRITY on a missing or mismatched base, VALIDATION_ERROR on bad attributes
*/
func NewSolo(base *Artist, attributes SoloAttributes) (*Solo, error) {
	if err := requireBase(base, TypeSolo, "solo"); err != nil {
		return nil, err
	}

	if attributes.Gender == "" {
		attributes.Gender = GenderUnknown
	}
	if attributes.AffiliationStatus == "" {
		attributes.AffiliationStatus = AffiliationNever
	}

	validator := &validate.Validator{}
	validator.
		Custom(FieldGender, !slices.Contains(Genders, attributes.Gender), "Unknown gender: "+string(attributes.Gender)).
		Custom(FieldAffiliationStatus, !slices.Contains(AffiliationStatuses, attributes.AffiliationStatus),
			"Unknown affiliation status: "+string(attributes.AffiliationStatus)).
		NotBefore(FieldDeathDate, attributes.BirthDate, attributes.DeathDate, "Death date cannot be before birth date")

	if err := validator.FirstErr(); err != nil {
		return nil, err
	}

	return &Solo{
		ArtistID:          base.ID,
		BirthDate:         attributes.BirthDate,
		DeathDate:         attributes.DeathDate,
		Gender:            attributes.Gender,
		AffiliationStatus: attributes.AffiliationStatus,
	}, nil
}

/*
NewGroup attaches group attributes to an existing base artist.

The base must be a GROUP artist; the extension shares its id. A disband date
with no explicit status marks the group as disbanded.

Returns:
  - *Group: The extension
  - error: REFERENCE_INTEGRITY on a missing or mismatched base, VALIDATION_ERROR on bad attributes
*/
func NewGroup(base *Artist, attributes GroupAttributes) (*Group, error) {
	if err := requireBase(base, TypeGroup, "group"); err != nil {
		return nil, err
	}

	if attributes.Gender == "" {
		attributes.Gender = GenderUnknown
	}
	if attributes.ActivityStatus == "" {
		attributes.ActivityStatus = ActivityActive
		if attributes.DisbandDate != nil {
			attributes.ActivityStatus = ActivityDisbanded
		}
	}

	validator := &validate.Validator{}
	validator.
		Custom(FieldGender, !slices.Contains(Genders, attributes.Gender), "Unknown gender: "+string(attributes.Gender)).
		Custom(FieldActivityStatus, !slices.Contains(ActivityStatuses, attributes.ActivityStatus),
			"Unknown activity status: "+string(attributes.ActivityStatus)).
		NotBefore(FieldDisbandDate, attributes.FormationDate, attributes.DisbandDate, "Disband date cannot be before formation date")

	if err := validator.FirstErr(); err != nil {
		return nil, err
	}

	return &Group{
		ArtistID:       base.ID,
		FormationDate:  attributes.FormationDate,
		DisbandDate:    attributes.DisbandDate,
		Gender:         attributes.Gender,
		ActivityStatus: attributes.ActivityStatus,
	}, nil
}

func requireBase(base *Artist, want Type, label string) error {
	if base == nil {
		return apperr.ReferenceIntegrity(fmt.Sprintf("A base artist is required for %s attributes", label))
	}
	if base.Type != want {
		return apperr.ReferenceIntegrity(fmt.Sprintf(
			"Artist '%s' is type %s and cannot carry %s attributes", base.Name, base.Type, label))
	}
	return nil
}

// # Profile Invariants

// Check enforces that the profile carries exactly the extension its type requires.
func (profile *Profile) Check() error {
	if profile == nil || profile.Artist == nil {
		return apperr.ReferenceIntegrity("Profile has no base artist")
	}

	base := profile.Artist
	switch {
	case base.Type == TypeSolo && profile.Solo == nil:
		return apperr.ReferenceIntegrity(fmt.Sprintf("SOLO artist '%s' is missing its solo attributes", base.Name))
	case base.Type == TypeGroup && profile.Group == nil:
		return apperr.ReferenceIntegrity(fmt.Sprintf("GROUP artist '%s' is missing its group attributes", base.Name))
	case base.Type != TypeSolo && profile.Solo != nil:
		return apperr.ReferenceIntegrity(fmt.Sprintf("%s artist '%s' cannot carry solo attributes", base.Type, base.Name))
	case base.Type != TypeGroup && profile.Group != nil:
		return apperr.ReferenceIntegrity(fmt.Sprintf("%s artist '%s' cannot carry group attributes", base.Type, base.Name))
	}

	if profile.Solo != nil && profile.Solo.ArtistID != base.ID {
		return apperr.ReferenceIntegrity("Solo attributes belong to a different artist")
	}
	if profile.Group != nil && profile.Group.ArtistID != base.ID {
		return apperr.ReferenceIntegrity("Group attributes belong to a different artist")
	}
	return nil
}
