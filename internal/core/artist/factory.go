// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sdikyarts/musicopedia/internal/platform/apperr"
	"github.com/sdikyarts/musicopedia/internal/platform/validate"
	"github.com/sdikyarts/musicopedia/pkg/slug"
	"github.com/sdikyarts/musicopedia/pkg/uuid"
)

// # Type Policies

// Policy is the creation rule set of one performer type.
type Policy struct {
	Type Type
	// MaxNameLength is counted in Unicode code points.
	MaxNameLength int
	// Validate stops at the first violated rule; the error message names it.
	Validate func(request *CreateRequest) error
}

// SoloPolicy: non-empty name of at most 100 characters and a primary language.
var SoloPolicy = Policy{
	Type:          TypeSolo,
	MaxNameLength: 100,
	Validate: func(request *CreateRequest) error {
		validator := nameRules("Solo artist name", request.Name, 100)
		validator.Custom(FieldPrimaryLanguage, isBlank(request.PrimaryLanguage), "Primary language is required for solo artists")
		return validator.FirstErr()
	},
}

// GroupPolicy: non-empty name of at most 150 characters, a genre and a concept description.
var GroupPolicy = Policy{
	Type:          TypeGroup,
	MaxNameLength: 150,
	Validate: func(request *CreateRequest) error {
		validator := nameRules("Group name", request.Name, 150)
		validator.
			Custom(FieldGenre, isBlank(request.Genre), "Genre is required for groups").
			Custom(FieldDescription, isBlank(request.Description), "Description is required for groups to explain their concept")
		return validator.FirstErr()
	},
}

// FranchisePolicy: non-empty name of at most 200 characters, a description of
// at least 50 characters and an origin country.
var FranchisePolicy = Policy{
	Type:          TypeFranchise,
	MaxNameLength: 200,
	Validate: func(request *CreateRequest) error {
		validator := nameRules("Franchise artist name", request.Name, 200)
		validator.
			Custom(FieldDescription, utf8.RuneCountInString(request.Description) < 50,
				"Franchise artists require detailed description (minimum 50 characters)").
			Custom(FieldOriginCountry, isBlank(request.OriginCountry), "Origin country is required for franchise artists")
		return validator.FirstErr()
	},
}

// VariousPolicy: non-empty name of at most 300 characters, a description of
// at least 30 characters and a genre classification.
var VariousPolicy = Policy{
	Type:          TypeVarious,
	MaxNameLength: 300,
	Validate: func(request *CreateRequest) error {
		validator := nameRules("Various artist compilation name", request.Name, 300)
		validator.
			Custom(FieldDescription, utf8.RuneCountInString(request.Description) < 30,
				"Various artist compilations require description (minimum 30 characters) to explain the collection").
			Custom(FieldGenre, isBlank(request.Genre), "Genre classification is required for various artist compilations")
		return validator.FirstErr()
	},
}

func nameRules(label, name string, max int) *validate.Validator {
	validator := &validate.Validator{}
	validator.Custom(FieldName, isBlank(name), label+" cannot be empty")
	if !validator.HasErrors() {
		validator.Custom(FieldName, utf8.RuneCountInString(name) > max, fmt.Sprintf("%s cannot exceed %d characters", label, max))
	}
	return validator
}

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// # Dispatch

// Dispatcher selects the policy matching a request's type tag from a closed table.
type Dispatcher struct {
	policies map[Type]Policy
}

// NewDispatcher returns a dispatcher over the four performer policies.
func NewDispatcher() *Dispatcher {
	dispatcher := &Dispatcher{policies: make(map[Type]Policy, len(Types))}
	for _, policy := range []Policy{SoloPolicy, GroupPolicy, FranchisePolicy, VariousPolicy} {
		dispatcher.policies[policy.Type] = policy
	}
	return dispatcher
}

/*
Policy returns the policy registered for a type tag.

Returns:
  - Policy: The matching policy
  - error: DISPATCH_ERROR when the tag is empty or unmapped
*/
func (dispatcher *Dispatcher) Policy(artistType Type) (Policy, error) {
	if artistType == "" {
		return Policy{}, apperr.Dispatch("Artist type is required")
	}

	policy, ok := dispatcher.policies[artistType]
	if !ok {
		return Policy{}, apperr.Dispatch(fmt.Sprintf("No factory available for artist type: %s", artistType))
	}
	return policy, nil
}

// Validate runs the policy of the request's type without building anything.
func (dispatcher *Dispatcher) Validate(request *CreateRequest) error {
	policy, err := dispatcher.Policy(request.Type)
	if err != nil {
		return err
	}
	return policy.Validate(request)
}

/*
Create validates the request against its type policy and builds the artist.

Nothing is persisted. The artist gets a fresh id and exactly the type of the
policy that accepted it.

Returns:
  - *Artist: The in-memory artist
  - error: DISPATCH_ERROR or VALIDATION_ERROR; no artist is returned with an error
*/
func (dispatcher *Dispatcher) Create(request *CreateRequest) (*Artist, error) {
	policy, err := dispatcher.Policy(request.Type)
	if err != nil {
		return nil, err
	}

	if err := policy.Validate(request); err != nil {
		return nil, err
	}

	return &Artist{
		ID:              uuid.New(),
		SpotifyID:       request.SpotifyID,
		Name:            request.Name,
		Slug:            slug.From(request.Name),
		SearchName:      slug.Fold(request.Name),
		Type:            policy.Type,
		Description:     request.Description,
		Image:           request.Image,
		PrimaryLanguage: request.PrimaryLanguage,
		Genre:           request.Genre,
		OriginCountry:   request.OriginCountry,
	}, nil
}

/*
Assemble runs [Dispatcher.Create] after the request shape check and attaches
the extension matching the type: [Solo] for SOLO, [Group] for GROUP, none
otherwise. The result always satisfies [Profile.Check].
*/
func (dispatcher *Dispatcher) Assemble(request *CreateRequest) (*Profile, error) {
	if _, err := dispatcher.Policy(request.Type); err != nil {
		return nil, err
	}

	if err := request.Validate(); err != nil {
		return nil, err
	}

	artist, err := dispatcher.Create(request)
	if err != nil {
		return nil, err
	}

	profile := &Profile{Artist: artist}
	switch artist.Type {
	case TypeSolo:
		if profile.Solo, err = NewSolo(artist, request.soloAttributes()); err != nil {
			return nil, err
		}
	case TypeGroup:
		if profile.Group, err = NewGroup(artist, request.groupAttributes()); err != nil {
			return nil, err
		}
	}

	if err := profile.Check(); err != nil {
		return nil, err
	}
	return profile, nil
}
