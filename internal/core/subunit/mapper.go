// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package subunit

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/sdikyarts/musicopedia/internal/core/artist"
	"github.com/sdikyarts/musicopedia/internal/platform/validate"
	"github.com/sdikyarts/musicopedia/pkg/date"
	"github.com/sdikyarts/musicopedia/pkg/pointer"
)

// # Requests

// CreateRequest carries every field a subunit can be created with.
type CreateRequest struct {
	MainGroupID     *string               `json:"main_group_id"`
	GroupIdentityID *string               `json:"group_identity_id,omitempty"`
	Name            string                `json:"name"`
	Description     string                `json:"description"`
	Image           string                `json:"image"`
	FormationDate   *date.Date            `json:"formation_date,omitempty"`
	DisbandDate     *date.Date            `json:"disband_date,omitempty"`
	Gender          artist.Gender         `json:"gender,omitempty"`
	ActivityStatus  artist.ActivityStatus `json:"activity_status,omitempty"`
	OriginCountry   string                `json:"origin_country"`
}

// Normalize trims free-text fields and upper-cases the country code.
func (request *CreateRequest) Normalize() {
	request.MainGroupID = blankToNil(request.MainGroupID)
	request.GroupIdentityID = blankToNil(request.GroupIdentityID)
	request.Name = strings.TrimSpace(request.Name)
	request.Description = strings.TrimSpace(request.Description)
	request.Image = strings.TrimSpace(request.Image)
	request.OriginCountry = strings.ToUpper(strings.TrimSpace(request.OriginCountry))
}

// Validate checks identifier formats and enum members.
func (request CreateRequest) Validate() error {
	return validate.FromOzzo(validation.ValidateStruct(&request,
		validation.Field(&request.MainGroupID, is.UUID.Error("Main group ID must be a valid UUID")),
		validation.Field(&request.GroupIdentityID, is.UUID.Error("Group identity ID must be a valid UUID")),
		validation.Field(&request.Gender, validation.In(enumValues(artist.Genders)...)),
		validation.Field(&request.ActivityStatus, validation.In(enumValues(artist.ActivityStatuses)...)),
		validation.Field(&request.OriginCountry, is.CountryCode2.Error("Origin country must be an ISO 3166 alpha-2 code")),
	))
}

// UpdateRequest is a null-propagating patch. An explicit empty group identity
// id removes the link; the main group can be moved but never cleared.
type UpdateRequest struct {
	MainGroupID     *string                `json:"main_group_id,omitempty"`
	GroupIdentityID *string                `json:"group_identity_id,omitempty"`
	Name            *string                `json:"name,omitempty"`
	Description     *string                `json:"description,omitempty"`
	Image           *string                `json:"image,omitempty"`
	FormationDate   *date.Date             `json:"formation_date,omitempty"`
	DisbandDate     *date.Date             `json:"disband_date,omitempty"`
	Gender          *artist.Gender         `json:"gender,omitempty"`
	ActivityStatus  *artist.ActivityStatus `json:"activity_status,omitempty"`
	OriginCountry   *string                `json:"origin_country,omitempty"`
}

// Validate checks formats of the supplied fields.
func (request UpdateRequest) Validate() error {
	return validate.FromOzzo(validation.ValidateStruct(&request,
		validation.Field(&request.MainGroupID,
			validation.When(request.MainGroupID != nil && *request.MainGroupID != "",
				is.UUID.Error("Main group ID must be a valid UUID"))),
		validation.Field(&request.GroupIdentityID,
			validation.When(request.GroupIdentityID != nil && *request.GroupIdentityID != "",
				is.UUID.Error("Group identity ID must be a valid UUID"))),
		validation.Field(&request.Gender, validation.In(enumValues(artist.Genders)...)),
		validation.Field(&request.ActivityStatus, validation.In(enumValues(artist.ActivityStatuses)...)),
		validation.Field(&request.OriginCountry, is.CountryCode2.Error("Origin country must be an ISO 3166 alpha-2 code")),
	))
}

// apply merges the patch into a copy of current.
func (request *UpdateRequest) apply(current *Subunit) *Subunit {
	merged := *current

	if request.MainGroupID != nil {
		merged.MainGroupID = strings.TrimSpace(*request.MainGroupID)
	}
	if request.GroupIdentityID != nil {
		merged.GroupIdentityID = blankToNil(request.GroupIdentityID)
	}
	pointer.Assign(&merged.Name, trimmed(request.Name))
	pointer.Assign(&merged.Description, trimmed(request.Description))
	pointer.Assign(&merged.Image, trimmed(request.Image))
	pointer.AssignOptional(&merged.FormationDate, date.ToTime(request.FormationDate))
	pointer.AssignOptional(&merged.DisbandDate, date.ToTime(request.DisbandDate))
	pointer.Assign(&merged.Gender, request.Gender)
	pointer.Assign(&merged.ActivityStatus, request.ActivityStatus)
	if request.OriginCountry != nil {
		merged.OriginCountry = strings.ToUpper(strings.TrimSpace(*request.OriginCountry))
	}

	return &merged
}

// # Responses

// Response is the API representation of a subunit with both group names resolved.
type Response struct {
	ID                string                `json:"id"`
	MainGroupID       string                `json:"main_group_id"`
	MainGroupName     string                `json:"main_group_name"`
	GroupIdentityID   *string               `json:"group_identity_id"`
	GroupIdentityName *string               `json:"group_identity_name,omitempty"`
	Name              string                `json:"name"`
	Description       string                `json:"description"`
	Image             string                `json:"image"`
	FormationDate     *date.Date            `json:"formation_date"`
	DisbandDate       *date.Date            `json:"disband_date"`
	Gender            artist.Gender         `json:"gender"`
	ActivityStatus    artist.ActivityStatus `json:"activity_status"`
	OriginCountry     string                `json:"origin_country"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

// ToResponse maps a subunit and its resolved group names.
func ToResponse(subunit *Subunit, mainGroupName string, groupIdentityName *string) *Response {
	return &Response{
		ID:                subunit.ID,
		MainGroupID:       subunit.MainGroupID,
		MainGroupName:     mainGroupName,
		GroupIdentityID:   subunit.GroupIdentityID,
		GroupIdentityName: groupIdentityName,
		Name:              subunit.Name,
		Description:       subunit.Description,
		Image:             subunit.Image,
		FormationDate:     date.FromTime(subunit.FormationDate),
		DisbandDate:       date.FromTime(subunit.DisbandDate),
		Gender:            subunit.Gender,
		ActivityStatus:    subunit.ActivityStatus,
		OriginCountry:     subunit.OriginCountry,
		CreatedAt:         subunit.CreatedAt,
		UpdatedAt:         subunit.UpdatedAt,
	}
}

// # Helpers

func trimmed(value *string) *string {
	if value == nil {
		return nil
	}
	return pointer.To(strings.TrimSpace(*value))
}

func blankToNil(value *string) *string {
	value = trimmed(value)
	if value == nil || *value == "" {
		return nil
	}
	return value
}

func enumValues[T ~string](values []T) []interface{} {
	result := make([]interface{}, len(values))
	for i, value := range values {
		result[i] = value
	}
	return result
}
