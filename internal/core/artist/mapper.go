// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/sdikyarts/musicopedia/internal/platform/validate"
	"github.com/sdikyarts/musicopedia/pkg/date"
	"github.com/sdikyarts/musicopedia/pkg/pointer"
)

// spotifyIDLength is the fixed length of a Spotify artist id.
const spotifyIDLength = 22

// # Create Requests

// CreateRequest carries every field a performer can be created with.
// The type tag selects the validation policy.
type CreateRequest struct {
	Type            Type          `json:"type"`
	Name            string        `json:"name"`
	SpotifyID       *string       `json:"spotify_id,omitempty"`
	Description     string        `json:"description"`
	Image           string        `json:"image"`
	PrimaryLanguage string        `json:"primary_language"`
	Genre           string        `json:"genre"`
	OriginCountry   string        `json:"origin_country"`
	Solo            *SoloRequest  `json:"solo,omitempty"`
	Group           *GroupRequest `json:"group,omitempty"`
}

// SoloRequest carries the attributes of a SOLO artist.
type SoloRequest struct {
	BirthDate         *date.Date        `json:"birth_date,omitempty"`
	DeathDate         *date.Date        `json:"death_date,omitempty"`
	Gender            Gender            `json:"gender,omitempty"`
	AffiliationStatus AffiliationStatus `json:"affiliation_status,omitempty"`
}

// GroupRequest carries the attributes of a GROUP artist.
type GroupRequest struct {
	FormationDate  *date.Date     `json:"formation_date,omitempty"`
	DisbandDate    *date.Date     `json:"disband_date,omitempty"`
	Gender         Gender         `json:"gender,omitempty"`
	ActivityStatus ActivityStatus `json:"activity_status,omitempty"`
}

// Normalize trims free-text fields and upper-cases the type tag and country code.
func (request *CreateRequest) Normalize() {
	request.Type = Type(strings.ToUpper(strings.TrimSpace(string(request.Type))))
	request.Name = strings.TrimSpace(request.Name)
	request.Description = strings.TrimSpace(request.Description)
	request.Image = strings.TrimSpace(request.Image)
	request.PrimaryLanguage = strings.TrimSpace(request.PrimaryLanguage)
	request.Genre = strings.TrimSpace(request.Genre)
	request.OriginCountry = strings.ToUpper(strings.TrimSpace(request.OriginCountry))
	if request.SpotifyID != nil {
		trimmed := strings.TrimSpace(*request.SpotifyID)
		request.SpotifyID = &trimmed
		if trimmed == "" {
			request.SpotifyID = nil
		}
	}
}

// Validate checks the request shape: formats, enum members and that only
// the extension matching the type is supplied. Business rules live in the
// type policies.
func (request CreateRequest) Validate() error {
	return validate.FromOzzo(validation.ValidateStruct(&request,
		validation.Field(&request.SpotifyID,
			validation.Length(spotifyIDLength, spotifyIDLength).Error("Spotify ID must be exactly 22 characters"),
			is.Alphanumeric),
		validation.Field(&request.OriginCountry, is.CountryCode2.Error("Origin country must be an ISO 3166 alpha-2 code")),
		validation.Field(&request.PrimaryLanguage, validation.Length(0, 64)),
		validation.Field(&request.Genre, validation.Length(0, 100)),
		validation.Field(&request.Solo,
			validation.When(request.Type != TypeSolo, validation.Nil.Error("Solo attributes are only allowed for SOLO artists"))),
		validation.Field(&request.Group,
			validation.When(request.Type != TypeGroup, validation.Nil.Error("Group attributes are only allowed for GROUP artists"))),
	))
}

// Validate checks the enum members of the solo block.
func (request SoloRequest) Validate() error {
	return validation.ValidateStruct(&request,
		validation.Field(&request.Gender, validation.In(enumValues(Genders)...)),
		validation.Field(&request.AffiliationStatus, validation.In(enumValues(AffiliationStatuses)...)),
	)
}

// Validate checks the enum members of the group block.
func (request GroupRequest) Validate() error {
	return validation.ValidateStruct(&request,
		validation.Field(&request.Gender, validation.In(enumValues(Genders)...)),
		validation.Field(&request.ActivityStatus, validation.In(enumValues(ActivityStatuses)...)),
	)
}

func (request *CreateRequest) soloAttributes() SoloAttributes {
	if request.Solo == nil {
		return SoloAttributes{}
	}
	return SoloAttributes{
		BirthDate:         date.ToTime(request.Solo.BirthDate),
		DeathDate:         date.ToTime(request.Solo.DeathDate),
		Gender:            request.Solo.Gender,
		AffiliationStatus: request.Solo.AffiliationStatus,
	}
}

func (request *CreateRequest) groupAttributes() GroupAttributes {
	if request.Group == nil {
		return GroupAttributes{}
	}
	return GroupAttributes{
		FormationDate:  date.ToTime(request.Group.FormationDate),
		DisbandDate:    date.ToTime(request.Group.DisbandDate),
		Gender:         request.Group.Gender,
		ActivityStatus: request.Group.ActivityStatus,
	}
}

// requestFromArtist rebuilds the policy input from a stored artist so
// updates are checked against the same rules as creation.
func requestFromArtist(artist *Artist) *CreateRequest {
	return &CreateRequest{
		Type:            artist.Type,
		Name:            artist.Name,
		SpotifyID:       artist.SpotifyID,
		Description:     artist.Description,
		Image:           artist.Image,
		PrimaryLanguage: artist.PrimaryLanguage,
		Genre:           artist.Genre,
		OriginCountry:   artist.OriginCountry,
	}
}

// # Update Requests

// UpdateRequest is a null-propagating patch: a nil field leaves the stored
// value unchanged, while an explicit empty string overwrites it. The type can
// be echoed back but never changed.
type UpdateRequest struct {
	Type            *Type       `json:"type,omitempty"`
	Name            *string     `json:"name,omitempty"`
	SpotifyID       *string     `json:"spotify_id,omitempty"`
	Description     *string     `json:"description,omitempty"`
	Image           *string     `json:"image,omitempty"`
	PrimaryLanguage *string     `json:"primary_language,omitempty"`
	Genre           *string     `json:"genre,omitempty"`
	OriginCountry   *string     `json:"origin_country,omitempty"`
	Solo            *SoloPatch  `json:"solo,omitempty"`
	Group           *GroupPatch `json:"group,omitempty"`
}

// SoloPatch is the null-propagating patch of a solo extension.
type SoloPatch struct {
	BirthDate         *date.Date         `json:"birth_date,omitempty"`
	DeathDate         *date.Date         `json:"death_date,omitempty"`
	Gender            *Gender            `json:"gender,omitempty"`
	AffiliationStatus *AffiliationStatus `json:"affiliation_status,omitempty"`
}

// GroupPatch is the null-propagating patch of a group extension.
type GroupPatch struct {
	FormationDate  *date.Date      `json:"formation_date,omitempty"`
	DisbandDate    *date.Date      `json:"disband_date,omitempty"`
	Gender         *Gender         `json:"gender,omitempty"`
	ActivityStatus *ActivityStatus `json:"activity_status,omitempty"`
}

// Normalize upper-cases the supplied type tag and country code, as on create.
func (request *UpdateRequest) Normalize() {
	if request.Type != nil {
		request.Type = pointer.To(Type(strings.ToUpper(strings.TrimSpace(string(*request.Type)))))
	}
	if request.OriginCountry != nil {
		request.OriginCountry = pointer.To(strings.ToUpper(strings.TrimSpace(*request.OriginCountry)))
	}
}

// Validate checks formats of the supplied fields.
func (request UpdateRequest) Validate() error {
	return validate.FromOzzo(validation.ValidateStruct(&request,
		validation.Field(&request.Type, validation.In(enumValues(Types)...)),
		validation.Field(&request.SpotifyID,
			validation.When(request.SpotifyID != nil && *request.SpotifyID != "",
				validation.Length(spotifyIDLength, spotifyIDLength).Error("Spotify ID must be exactly 22 characters"),
				is.Alphanumeric)),
		validation.Field(&request.OriginCountry, is.CountryCode2.Error("Origin country must be an ISO 3166 alpha-2 code")),
		validation.Field(&request.PrimaryLanguage, validation.Length(0, 64)),
		validation.Field(&request.Genre, validation.Length(0, 100)),
	))
}

// apply merges the patch into a copy of artist. The stored artist is not modified.
func (request *UpdateRequest) apply(current *Artist) *Artist {
	merged := *current

	pointer.Assign(&merged.Name, trimmed(request.Name))
	pointer.Assign(&merged.Description, trimmed(request.Description))
	pointer.Assign(&merged.Image, trimmed(request.Image))
	pointer.Assign(&merged.PrimaryLanguage, trimmed(request.PrimaryLanguage))
	pointer.Assign(&merged.Genre, trimmed(request.Genre))
	pointer.Assign(&merged.OriginCountry, request.OriginCountry)

	// An explicit empty Spotify id removes the external reference
	if request.SpotifyID != nil {
		merged.SpotifyID = trimmed(request.SpotifyID)
		if *merged.SpotifyID == "" {
			merged.SpotifyID = nil
		}
	}

	return &merged
}

// apply merges the patch into the attributes of an existing extension.
func (patch *SoloPatch) apply(current SoloAttributes) SoloAttributes {
	if patch == nil {
		return current
	}
	pointer.AssignOptional(&current.BirthDate, timeOf(patch.BirthDate))
	pointer.AssignOptional(&current.DeathDate, timeOf(patch.DeathDate))
	pointer.Assign(&current.Gender, patch.Gender)
	pointer.Assign(&current.AffiliationStatus, patch.AffiliationStatus)
	return current
}

// apply merges the patch into the attributes of an existing extension.
func (patch *GroupPatch) apply(current GroupAttributes) GroupAttributes {
	if patch == nil {
		return current
	}
	pointer.AssignOptional(&current.FormationDate, timeOf(patch.FormationDate))
	pointer.AssignOptional(&current.DisbandDate, timeOf(patch.DisbandDate))
	pointer.Assign(&current.Gender, patch.Gender)
	pointer.Assign(&current.ActivityStatus, patch.ActivityStatus)
	return current
}

// # Responses

// Response is the full API representation of a performer.
// Solo and group blocks are present only when the matching extension exists.
type Response struct {
	ID              string         `json:"id"`
	SpotifyID       *string        `json:"spotify_id"`
	Name            string         `json:"name"`
	Slug            string         `json:"slug"`
	Type            Type           `json:"type"`
	Description     string         `json:"description"`
	Image           string         `json:"image"`
	PrimaryLanguage string         `json:"primary_language"`
	Genre           string         `json:"genre"`
	OriginCountry   string         `json:"origin_country"`
	Solo            *SoloResponse  `json:"solo,omitempty"`
	Group           *GroupResponse `json:"group,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// SoloResponse is the API representation of a solo extension.
type SoloResponse struct {
	BirthDate         *date.Date        `json:"birth_date"`
	DeathDate         *date.Date        `json:"death_date"`
	Gender            Gender            `json:"gender"`
	AffiliationStatus AffiliationStatus `json:"affiliation_status"`
	IsDeceased        bool              `json:"is_deceased"`
}

// GroupResponse is the API representation of a group extension.
type GroupResponse struct {
	FormationDate  *date.Date     `json:"formation_date"`
	DisbandDate    *date.Date     `json:"disband_date"`
	Gender         Gender         `json:"gender"`
	ActivityStatus ActivityStatus `json:"activity_status"`
	IsDisbanded    bool           `json:"is_disbanded"`
}

// Summary is the compact representation used in listings.
type Summary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Type          Type   `json:"type"`
	Image         string `json:"image"`
	Genre         string `json:"genre"`
	OriginCountry string `json:"origin_country"`
}

// ToResponse maps a profile to its API representation.
func ToResponse(profile *Profile) *Response {
	artist := profile.Artist
	response := &Response{
		ID:              artist.ID,
		SpotifyID:       artist.SpotifyID,
		Name:            artist.Name,
		Slug:            artist.Slug,
		Type:            artist.Type,
		Description:     artist.Description,
		Image:           artist.Image,
		PrimaryLanguage: artist.PrimaryLanguage,
		Genre:           artist.Genre,
		OriginCountry:   artist.OriginCountry,
		CreatedAt:       artist.CreatedAt,
		UpdatedAt:       artist.UpdatedAt,
	}

	if solo := profile.Solo; solo != nil {
		response.Solo = &SoloResponse{
			BirthDate:         date.FromTime(solo.BirthDate),
			DeathDate:         date.FromTime(solo.DeathDate),
			Gender:            solo.Gender,
			AffiliationStatus: solo.AffiliationStatus,
			IsDeceased:        solo.IsDeceased(),
		}
	}

	if group := profile.Group; group != nil {
		response.Group = &GroupResponse{
			FormationDate:  date.FromTime(group.FormationDate),
			DisbandDate:    date.FromTime(group.DisbandDate),
			Gender:         group.Gender,
			ActivityStatus: group.ActivityStatus,
			IsDisbanded:    group.IsDisbanded(),
		}
	}

	return response
}

// ToSummary maps an artist to its compact representation.
func ToSummary(artist *Artist) *Summary {
	return &Summary{
		ID:            artist.ID,
		Name:          artist.Name,
		Type:          artist.Type,
		Image:         artist.Image,
		Genre:         artist.Genre,
		OriginCountry: artist.OriginCountry,
	}
}

// # Helpers

func trimmed(value *string) *string {
	if value == nil {
		return nil
	}
	return pointer.To(strings.TrimSpace(*value))
}

func timeOf(value *date.Date) *time.Time {
	return date.ToTime(value)
}

func enumValues[T ~string](values []T) []interface{} {
	result := make([]interface{}, len(values))
	for i, value := range values {
		result[i] = value
	}
	return result
}
