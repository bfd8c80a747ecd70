// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sdikyarts/musicopedia/internal/platform/apperr"
	"github.com/sdikyarts/musicopedia/internal/platform/dberr"
	"github.com/sdikyarts/musicopedia/internal/platform/metrics"
	"github.com/sdikyarts/musicopedia/pkg/slug"
)

// MaxBatchSize bounds the number of performers accepted by [Service.CreateBatch].
const MaxBatchSize = 100

// # Service Implementation

// Service coordinates performer creation, lookups and updates.
type Service struct {
	repository Repository
	dispatcher *Dispatcher
	metrics    *metrics.Metrics
	logger     *slog.Logger
	now        func() time.Time
	onDelete   []DeleteHook
}

// DeleteHook runs after a performer is deleted, with the deleted id.
type DeleteHook func(context context.Context, artistID string) error

// NewService constructs an artist [Service].
func NewService(repository Repository, metrics *metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		dispatcher: NewDispatcher(),
		metrics:    metrics,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// OnDelete registers hooks that unlink or drop rows referring to a deleted performer.
func (service *Service) OnDelete(hooks ...DeleteHook) {
	service.onDelete = append(service.onDelete, hooks...)
}

// # Queries

func (service *Service) List(context context.Context, filter Filter, limit, offset int) ([]*Artist, int, error) {
	return service.repository.List(context, filter, limit, offset)
}

func (service *Service) ListSolos(context context.Context, filter SoloFilter, limit, offset int) ([]*Profile, int, error) {
	return service.repository.ListSolos(context, filter, limit, offset)
}

func (service *Service) ListGroups(context context.Context, filter GroupFilter, limit, offset int) ([]*Profile, int, error) {
	return service.repository.ListGroups(context, filter, limit, offset)
}

// Get returns the profile of one performer.
func (service *Service) Get(context context.Context, id string) (*Profile, error) {
	profile, err := service.repository.FindProfile(context, id)
	if dberr.IsNotFound(err) {
		return nil, apperr.NotFound("Artist")
	}
	return profile, err
}

// GetBySpotifyID resolves a performer by its external Spotify id.
func (service *Service) GetBySpotifyID(context context.Context, spotifyID string) (*Profile, error) {
	profile, err := service.repository.FindBySpotifyID(context, spotifyID)
	if dberr.IsNotFound(err) {
		return nil, apperr.NotFound("Artist")
	}
	return profile, err
}

// FindArtist returns the base identity of a performer. It serves the
// member, subunit and membership services that link to artists by id.
func (service *Service) FindArtist(context context.Context, id string) (*Artist, error) {
	profile, err := service.Get(context, id)
	if err != nil {
		return nil, err
	}
	return profile.Artist, nil
}

func (service *Service) Exists(context context.Context, id string) (bool, error) {
	return service.repository.Exists(context, id)
}

// # Mutations

/*
Create validates a request against its type policy and persists the
resulting performer together with its extension.

Returns:
  - *Profile: The stored performer
  - error: DISPATCH_ERROR, VALIDATION_ERROR, REFERENCE_INTEGRITY or CONFLICT
*/
func (service *Service) Create(context context.Context, request *CreateRequest) (*Profile, error) {
	profile, err := service.assemble(request)
	if err != nil {
		return nil, err
	}

	if err := service.repository.Create(context, profile); err != nil {
		return nil, err
	}

	service.metrics.IncArtistCreated(string(profile.Artist.Type))
	service.logger.Info("artist_created",
		slog.String("artist_id", profile.Artist.ID),
		slog.String("type", string(profile.Artist.Type)),
	)
	return profile, nil
}

/*
CreateBatch validates every request before persisting any of them, then
stores the whole batch in one transaction.

Description: The first invalid request aborts the batch; its message is
prefixed with the zero-based item index.
*/
func (service *Service) CreateBatch(context context.Context, requests []*CreateRequest) ([]*Profile, error) {
	if len(requests) == 0 {
		return nil, apperr.ValidationError("Batch must contain at least one artist")
	}
	if len(requests) > MaxBatchSize {
		return nil, apperr.ValidationError(fmt.Sprintf("Batch cannot exceed %d artists", MaxBatchSize))
	}

	profiles := make([]*Profile, len(requests))
	for i, request := range requests {
		profile, err := service.assemble(request)
		if err != nil {
			return nil, itemError(i, err)
		}
		profiles[i] = profile
	}

	if err := service.repository.Create(context, profiles...); err != nil {
		return nil, err
	}

	for _, profile := range profiles {
		service.metrics.IncArtistCreated(string(profile.Artist.Type))
	}
	service.logger.Info("artist_batch_created", slog.Int("count", len(profiles)))
	return profiles, nil
}

/*
Update applies a null-propagating patch to a performer.

Description: The type can never change. The merged performer is checked
against the creation policy of its type and its extension is rebuilt through
[NewSolo] or [NewGroup], so invariants hold after every write.
*/
func (service *Service) Update(context context.Context, id string, request *UpdateRequest) (*Profile, error) {
	request.Normalize()
	if err := request.Validate(); err != nil {
		return nil, err
	}

	current, err := service.Get(context, id)
	if err != nil {
		return nil, err
	}
	base := current.Artist

	if request.Type != nil && *request.Type != base.Type {
		return nil, apperr.ValidationError(
			fmt.Sprintf("Artist type cannot be changed from %s to %s", base.Type, *request.Type),
			apperr.FieldError{Field: FieldType, Message: "Artist type is immutable"},
		)
	}
	if request.Solo != nil && base.Type != TypeSolo {
		return nil, apperr.ValidationError("Solo attributes are only allowed for SOLO artists")
	}
	if request.Group != nil && base.Type != TypeGroup {
		return nil, apperr.ValidationError("Group attributes are only allowed for GROUP artists")
	}

	merged := request.apply(base)
	merged.Slug = slug.From(merged.Name)
	merged.SearchName = slug.Fold(merged.Name)
	merged.UpdatedAt = service.now()

	if err := service.dispatcher.Validate(requestFromArtist(merged)); err != nil {
		return nil, err
	}

	updated := &Profile{Artist: merged}
	switch merged.Type {
	case TypeSolo:
		attributes := SoloAttributes{}
		if current.Solo != nil {
			attributes = current.Solo.Attributes()
		}
		if updated.Solo, err = NewSolo(merged, request.Solo.apply(attributes)); err != nil {
			return nil, err
		}
	case TypeGroup:
		attributes := GroupAttributes{}
		if current.Group != nil {
			attributes = current.Group.Attributes()
		}
		if updated.Group, err = NewGroup(merged, request.Group.apply(attributes)); err != nil {
			return nil, err
		}
	}

	if err := updated.Check(); err != nil {
		return nil, err
	}

	if err := service.repository.Update(context, updated); err != nil {
		if dberr.IsNotFound(err) {
			return nil, apperr.NotFound("Artist")
		}
		return nil, err
	}

	service.logger.Info("artist_updated", slog.String("artist_id", id))
	return updated, nil
}

/*
Delete removes a performer, then runs the registered delete hooks.

Description: Memberships and subunits of a deleted group go with it; member
and subunit links to it are cleared. A failing hook is logged and does not
undo the delete.
*/
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repository.Delete(context, id); err != nil {
		if dberr.IsNotFound(err) {
			return apperr.NotFound("Artist")
		}
		return err
	}

	service.logger.Warn("artist_deleted", slog.String("artist_id", id))

	for _, hook := range service.onDelete {
		if err := hook(context, id); err != nil {
			service.logger.Error("artist_delete_cleanup_failed", slog.String("artist_id", id), slog.Any("error", err))
		}
	}
	return nil
}

// # Helpers

// assemble normalizes the request and builds the profile, counting rejections by type.
func (service *Service) assemble(request *CreateRequest) (*Profile, error) {
	if request == nil {
		return nil, apperr.Dispatch("Artist type is required")
	}
	request.Normalize()

	profile, err := service.dispatcher.Assemble(request)
	if err != nil {
		service.metrics.IncFactoryRejection(string(request.Type))
		return nil, err
	}

	now := service.now()
	profile.Artist.CreatedAt = now
	profile.Artist.UpdatedAt = now
	return profile, nil
}

// itemError prefixes a batch failure with the offending item index and keeps its code.
func itemError(index int, err error) error {
	appError := apperr.As(err)
	if appError == nil {
		return err
	}

	prefixed := *appError
	prefixed.Message = fmt.Sprintf("Item %d: %s", index, appError.Message)
	return &prefixed
}
