// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package member

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/sdikyarts/musicopedia/internal/platform/validate"
	"github.com/sdikyarts/musicopedia/pkg/date"
	"github.com/sdikyarts/musicopedia/pkg/pointer"
)

// # Requests

// CreateRequest carries every field a member can be registered with.
type CreateRequest struct {
	MemberName   string     `json:"member_name"`
	RealName     string     `json:"real_name"`
	Description  string     `json:"description"`
	Image        string     `json:"image"`
	BirthDate    *date.Date `json:"birth_date,omitempty"`
	DeathDate    *date.Date `json:"death_date,omitempty"`
	Nationality  string     `json:"nationality"`
	SoloArtistID *string    `json:"solo_artist_id,omitempty"`
}

// Normalize trims every free-text field. An empty solo artist id means no link.
func (request *CreateRequest) Normalize() {
	request.MemberName = strings.TrimSpace(request.MemberName)
	request.RealName = strings.TrimSpace(request.RealName)
	request.Description = strings.TrimSpace(request.Description)
	request.Image = strings.TrimSpace(request.Image)
	request.Nationality = strings.TrimSpace(request.Nationality)
	request.SoloArtistID = trimmed(request.SoloArtistID)
	if request.SoloArtistID != nil && *request.SoloArtistID == "" {
		request.SoloArtistID = nil
	}
}

// Validate checks field formats; required fields are checked by the service.
func (request CreateRequest) Validate() error {
	return validate.FromOzzo(validation.ValidateStruct(&request,
		validation.Field(&request.MemberName, validation.Length(0, 100)),
		validation.Field(&request.RealName, validation.Length(0, 100)),
		validation.Field(&request.Nationality, validation.Length(0, 64)),
		validation.Field(&request.SoloArtistID, is.UUID.Error("Solo artist ID must be a valid UUID")),
	))
}

// UpdateRequest is a null-propagating patch. An explicit empty solo artist
// id removes the link.
type UpdateRequest struct {
	MemberName   *string    `json:"member_name,omitempty"`
	RealName     *string    `json:"real_name,omitempty"`
	Description  *string    `json:"description,omitempty"`
	Image        *string    `json:"image,omitempty"`
	BirthDate    *date.Date `json:"birth_date,omitempty"`
	DeathDate    *date.Date `json:"death_date,omitempty"`
	Nationality  *string    `json:"nationality,omitempty"`
	SoloArtistID *string    `json:"solo_artist_id,omitempty"`
}

// Validate checks formats of the supplied fields.
func (request UpdateRequest) Validate() error {
	return validate.FromOzzo(validation.ValidateStruct(&request,
		validation.Field(&request.MemberName, validation.Length(0, 100)),
		validation.Field(&request.RealName, validation.Length(0, 100)),
		validation.Field(&request.Nationality, validation.Length(0, 64)),
		validation.Field(&request.SoloArtistID,
			validation.When(request.SoloArtistID != nil && *request.SoloArtistID != "",
				is.UUID.Error("Solo artist ID must be a valid UUID"))),
	))
}

// apply merges the patch into a copy of current. The link is handled by the service.
func (request *UpdateRequest) apply(current *Member) *Member {
	merged := *current

	pointer.Assign(&merged.MemberName, trimmed(request.MemberName))
	pointer.Assign(&merged.RealName, trimmed(request.RealName))
	pointer.Assign(&merged.Description, trimmed(request.Description))
	pointer.Assign(&merged.Image, trimmed(request.Image))
	pointer.Assign(&merged.Nationality, trimmed(request.Nationality))
	pointer.AssignOptional(&merged.BirthDate, date.ToTime(request.BirthDate))
	pointer.AssignOptional(&merged.DeathDate, date.ToTime(request.DeathDate))

	return &merged
}

// # Responses

// Response is the API representation of a member.
type Response struct {
	ID                   string     `json:"id"`
	MemberName           string     `json:"member_name"`
	RealName             string     `json:"real_name"`
	Description          string     `json:"description"`
	Image                string     `json:"image"`
	BirthDate            *date.Date `json:"birth_date"`
	DeathDate            *date.Date `json:"death_date"`
	IsDeceased           bool       `json:"is_deceased"`
	Nationality          string     `json:"nationality"`
	SoloArtistID         *string    `json:"solo_artist_id"`
	SoloArtistName       *string    `json:"solo_artist_name,omitempty"`
	HasOfficialSoloDebut bool       `json:"has_official_solo_debut"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// ToResponse maps a member to its API representation. soloArtistName is
// the resolved name of the linked solo career, if any.
func ToResponse(member *Member, soloArtistName *string) *Response {
	return &Response{
		ID:                   member.ID,
		MemberName:           member.MemberName,
		RealName:             member.RealName,
		Description:          member.Description,
		Image:                member.Image,
		BirthDate:            date.FromTime(member.BirthDate),
		DeathDate:            date.FromTime(member.DeathDate),
		IsDeceased:           member.IsDeceased(),
		Nationality:          member.Nationality,
		SoloArtistID:         member.SoloArtistID,
		SoloArtistName:       soloArtistName,
		HasOfficialSoloDebut: member.HasOfficialSoloDebut(),
		CreatedAt:            member.CreatedAt,
		UpdatedAt:            member.UpdatedAt,
	}
}

func trimmed(value *string) *string {
	if value == nil {
		return nil
	}
	return pointer.To(strings.TrimSpace(*value))
}
