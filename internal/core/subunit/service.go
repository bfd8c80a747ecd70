// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package subunit

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/sdikyarts/musicopedia/internal/core/artist"
	"github.com/sdikyarts/musicopedia/internal/platform/apperr"
	"github.com/sdikyarts/musicopedia/internal/platform/dberr"
	"github.com/sdikyarts/musicopedia/internal/platform/validate"
	"github.com/sdikyarts/musicopedia/pkg/date"
	"github.com/sdikyarts/musicopedia/pkg/uuid"
)

// ArtistFinder resolves performers by id.
type ArtistFinder interface {
	FindArtist(context context.Context, id string) (*artist.Artist, error)
}

// Service manages subunits and the links to their groups.
type Service struct {
	repository Repository
	artists    ArtistFinder
	logger     *slog.Logger
	now        func() time.Time
	onDelete   []DeleteHook
}

// DeleteHook runs after a subunit is deleted, with the deleted id.
type DeleteHook func(context context.Context, subunitID string) error

// NewService constructs a subunit [Service].
func NewService(repository Repository, artists ArtistFinder, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		artists:    artists,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// OnDelete registers hooks that drop rows referring to a deleted subunit.
func (service *Service) OnDelete(hooks ...DeleteHook) {
	service.onDelete = append(service.onDelete, hooks...)
}

// # Queries

// Get returns one subunit with its group names resolved.
func (service *Service) Get(context context.Context, id string) (*Response, error) {
	subunit, err := service.repository.Find(context, id)
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, apperr.NotFound("Subunit")
		}
		return nil, err
	}
	return service.describe(context, subunit)
}

// List returns subunits, optionally of one main group, with group names resolved.
func (service *Service) List(context context.Context, filter Filter, limit, offset int) ([]*Response, int, error) {
	subunits, total, err := service.repository.List(context, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*Response, len(subunits))
	for i, subunit := range subunits {
		if responses[i], err = service.describe(context, subunit); err != nil {
			return nil, 0, err
		}
	}
	return responses, total, nil
}

func (service *Service) Exists(context context.Context, id string) (bool, error) {
	return service.repository.Exists(context, id)
}

// # Mutations

/*
Create stores a subunit under its main group.

Returns:
  - *Response: The stored subunit with group names
  - error: REFERENCE_INTEGRITY when the main group is missing, unknown or not a
    GROUP; VALIDATION_ERROR on bad attributes
*/
func (service *Service) Create(context context.Context, request *CreateRequest) (*Response, error) {
	request.Normalize()
	if request.MainGroupID == nil {
		return nil, apperr.ReferenceIntegrity("Main group is required")
	}
	if err := request.Validate(); err != nil {
		return nil, err
	}

	now := service.now()
	subunit := &Subunit{
		ID:              uuid.New(),
		MainGroupID:     *request.MainGroupID,
		GroupIdentityID: request.GroupIdentityID,
		Name:            request.Name,
		Description:     request.Description,
		Image:           request.Image,
		FormationDate:   date.ToTime(request.FormationDate),
		DisbandDate:     date.ToTime(request.DisbandDate),
		Gender:          request.Gender,
		ActivityStatus:  request.ActivityStatus,
		OriginCountry:   request.OriginCountry,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	applyDefaults(subunit)

	if err := service.check(context, subunit); err != nil {
		return nil, err
	}

	if err := service.repository.Create(context, subunit); err != nil {
		return nil, err
	}

	service.logger.Info("subunit_created",
		slog.String("subunit_id", subunit.ID),
		slog.String("main_group_id", subunit.MainGroupID),
	)
	return service.describe(context, subunit)
}

// Update applies a null-propagating patch. The main group stays required.
func (service *Service) Update(context context.Context, id string, request *UpdateRequest) (*Response, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	current, err := service.repository.Find(context, id)
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, apperr.NotFound("Subunit")
		}
		return nil, err
	}

	updated := request.apply(current)
	if updated.MainGroupID == "" {
		return nil, apperr.ReferenceIntegrity("Main group is required")
	}
	updated.UpdatedAt = service.now()

	if err := service.check(context, updated); err != nil {
		return nil, err
	}

	if err := service.repository.Update(context, updated); err != nil {
		if dberr.IsNotFound(err) {
			return nil, apperr.NotFound("Subunit")
		}
		return nil, err
	}

	service.logger.Info("subunit_updated", slog.String("subunit_id", id))
	return service.describe(context, updated)
}

// Delete removes a subunit; its member rows go with it through the delete hooks.
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repository.Delete(context, id); err != nil {
		if dberr.IsNotFound(err) {
			return apperr.NotFound("Subunit")
		}
		return err
	}

	service.logger.Warn("subunit_deleted", slog.String("subunit_id", id))
	service.deleted(context, id)
	return nil
}

/*
DetachArtist drops every reference to a deleted performer.

Description: Subunits of the deleted group are removed together with their
member rows. Subunits that used it as their group identity keep existing
without one.
*/
func (service *Service) DetachArtist(context context.Context, artistID string) error {
	cleared, err := service.repository.ClearGroupIdentity(context, artistID, service.now())
	if err != nil {
		return err
	}

	removed, err := service.repository.DeleteByMainGroup(context, artistID)
	if err != nil {
		return err
	}
	for _, id := range removed {
		service.deleted(context, id)
	}

	if cleared > 0 || len(removed) > 0 {
		service.logger.Warn("subunit_artist_detached",
			slog.String("artist_id", artistID),
			slog.Int("identities_cleared", cleared),
			slog.Int("subunits_deleted", len(removed)),
		)
	}
	return nil
}

// # Helpers

func (service *Service) deleted(context context.Context, id string) {
	for _, hook := range service.onDelete {
		if err := hook(context, id); err != nil {
			service.logger.Error("subunit_delete_cleanup_failed", slog.String("subunit_id", id), slog.Any("error", err))
		}
	}
}

func applyDefaults(subunit *Subunit) {
	if subunit.Gender == "" {
		subunit.Gender = artist.GenderUnknown
	}
	if subunit.ActivityStatus == "" {
		subunit.ActivityStatus = artist.ActivityActive
		if subunit.DisbandDate != nil {
			subunit.ActivityStatus = artist.ActivityDisbanded
		}
	}
}

// check validates attributes and resolves both group links.
func (service *Service) check(context context.Context, subunit *Subunit) error {
	validator := &validate.Validator{}
	validator.
		Custom(FieldName, subunit.Name == "", "Subunit name is required").
		Custom(FieldName, utf8.RuneCountInString(subunit.Name) > MaxNameLength,
			fmt.Sprintf("Subunit name cannot exceed %d characters", MaxNameLength)).
		Custom(FieldDescription, utf8.RuneCountInString(subunit.Description) > MaxDescriptionLength,
			fmt.Sprintf("Subunit description cannot exceed %d characters", MaxDescriptionLength)).
		Custom(FieldGender, !slices.Contains(artist.Genders, subunit.Gender), "Unknown gender: "+string(subunit.Gender)).
		NotBefore(FieldDisbandDate, subunit.FormationDate, subunit.DisbandDate, "Disband date cannot be before formation date")

	if err := validator.FirstErr(); err != nil {
		return err
	}

	if err := service.requireGroup(context, subunit.MainGroupID, "Main group"); err != nil {
		return err
	}
	if subunit.GroupIdentityID != nil {
		if *subunit.GroupIdentityID == subunit.MainGroupID {
			return apperr.ReferenceIntegrity("Group identity must differ from the main group")
		}
		return service.requireGroup(context, *subunit.GroupIdentityID, "Group identity")
	}
	return nil
}

// requireGroup resolves id and requires a GROUP artist.
func (service *Service) requireGroup(context context.Context, id, label string) error {
	group, err := service.artists.FindArtist(context, id)
	if err != nil {
		if dberr.IsNotFound(err) {
			return apperr.ReferenceIntegrity(fmt.Sprintf("%s not found with ID: %s", label, id))
		}
		return err
	}
	if group.Type != artist.TypeGroup {
		return apperr.ReferenceIntegrity(label + " must be a group artist")
	}
	return nil
}

/*
describe resolves the main group and group identity names concurrently.

Description: A link whose artist has since disappeared resolves to an empty
name rather than failing the read.
*/
func (service *Service) describe(context context.Context, subunit *Subunit) (*Response, error) {
	var mainGroupName string
	var groupIdentityName *string

	group, groupContext := errgroup.WithContext(context)

	group.Go(func() error {
		name, err := service.artistName(groupContext, subunit.MainGroupID)
		if name != nil {
			mainGroupName = *name
		}
		return err
	})

	if subunit.GroupIdentityID != nil {
		group.Go(func() error {
			name, err := service.artistName(groupContext, *subunit.GroupIdentityID)
			groupIdentityName = name
			return err
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return ToResponse(subunit, mainGroupName, groupIdentityName), nil
}

func (service *Service) artistName(context context.Context, id string) (*string, error) {
	found, err := service.artists.FindArtist(context, id)
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &found.Name, nil
}
