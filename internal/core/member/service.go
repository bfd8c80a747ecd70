// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package member

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sdikyarts/musicopedia/internal/core/artist"
	"github.com/sdikyarts/musicopedia/internal/platform/apperr"
	"github.com/sdikyarts/musicopedia/internal/platform/ctxutil"
	"github.com/sdikyarts/musicopedia/internal/platform/dberr"
	"github.com/sdikyarts/musicopedia/internal/platform/validate"
	"github.com/sdikyarts/musicopedia/pkg/date"
	"github.com/sdikyarts/musicopedia/pkg/slug"
	"github.com/sdikyarts/musicopedia/pkg/uuid"
)

// ArtistFinder resolves performers by id.
type ArtistFinder interface {
	FindArtist(context context.Context, id string) (*artist.Artist, error)
}

// LifecycleSyncer re-applies lifecycle facts of a member to its memberships.
type LifecycleSyncer interface {
	SyncMember(context context.Context, member *Member) (int, error)
}

// # Service Implementation

// Service manages the member registry and the link to solo careers.
type Service struct {
	repository Repository
	artists    ArtistFinder
	syncer     LifecycleSyncer
	logger     *slog.Logger
	now        func() time.Time
	onDelete   []DeleteHook
}

// DeleteHook runs after a member is deleted, with the deleted id.
type DeleteHook func(context context.Context, memberID string) error

// NewService constructs a member [Service].
func NewService(repository Repository, artists ArtistFinder, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		artists:    artists,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// SetSyncer installs the membership engine run after death-date changes.
// The membership service depends on members, so it is wired after construction.
func (service *Service) SetSyncer(syncer LifecycleSyncer) {
	service.syncer = syncer
}

// OnDelete registers hooks that drop rows referring to a deleted member.
func (service *Service) OnDelete(hooks ...DeleteHook) {
	service.onDelete = append(service.onDelete, hooks...)
}

// # Queries

// Get returns one member.
func (service *Service) Get(context context.Context, id string) (*Member, error) {
	member, err := service.repository.Find(context, id)
	if dberr.IsNotFound(err) {
		return nil, apperr.NotFound("Member")
	}
	return member, err
}

// FindMember serves the membership service. A missing member yields (nil, nil).
func (service *Service) FindMember(context context.Context, id string) (*Member, error) {
	member, err := service.repository.Find(context, id)
	if dberr.IsNotFound(err) {
		return nil, nil
	}
	return member, err
}

func (service *Service) List(context context.Context, filter Filter, limit, offset int) ([]*Member, int, error) {
	return service.repository.List(context, filter, limit, offset)
}

// ListDeceased returns every member with a death date, for the reconciler.
func (service *Service) ListDeceased(context context.Context) ([]*Member, error) {
	return service.repository.ListDeceased(context)
}

func (service *Service) Exists(context context.Context, id string) (bool, error) {
	return service.repository.Exists(context, id)
}

// SoloArtistName resolves the name of the linked solo career, if any.
// Lookup failures are logged and yield nil.
func (service *Service) SoloArtistName(context context.Context, member *Member) *string {
	if member.SoloArtistID == nil {
		return nil
	}

	linked, err := service.artists.FindArtist(context, *member.SoloArtistID)
	if err != nil {
		ctxutil.GetLogger(context).Warn("member_solo_artist_unresolved",
			slog.String("member_id", member.ID),
			slog.String("artist_id", *member.SoloArtistID),
		)
		return nil
	}
	return &linked.Name
}

// # Mutations

/*
Create registers a member.

Description: Stage and real names are required. A supplied solo artist id must
resolve to an existing SOLO artist.

Returns:
  - *Member: The stored member
  - error: VALIDATION_ERROR or REFERENCE_INTEGRITY
*/
func (service *Service) Create(context context.Context, request *CreateRequest) (*Member, error) {
	request.Normalize()
	if err := request.Validate(); err != nil {
		return nil, err
	}

	now := service.now()
	member := &Member{
		ID:           uuid.New(),
		MemberName:   request.MemberName,
		RealName:     request.RealName,
		SearchName:   searchName(request.MemberName, request.RealName),
		Description:  request.Description,
		Image:        request.Image,
		BirthDate:    date.ToTime(request.BirthDate),
		DeathDate:    date.ToTime(request.DeathDate),
		Nationality:  request.Nationality,
		SoloArtistID: request.SoloArtistID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := service.check(context, member, true); err != nil {
		return nil, err
	}

	if err := service.repository.Create(context, member); err != nil {
		return nil, err
	}

	service.logger.Info("member_created", slog.String("member_id", member.ID))
	return member, nil
}

/*
Update applies a null-propagating patch to a member.

Description: A supplied solo artist id is resolved again; an empty one removes
the link. An untouched link is not looked up, so a stale one never blocks the
update. When the death date changes, the member's group memberships are
synced before returning. A sync failure is logged and left to the reconciler.
*/
func (service *Service) Update(context context.Context, id string, request *UpdateRequest) (*Member, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	current, err := service.Get(context, id)
	if err != nil {
		return nil, err
	}

	updated := request.apply(current)
	if request.SoloArtistID != nil {
		updated.SoloArtistID = trimmed(request.SoloArtistID)
		if *updated.SoloArtistID == "" {
			updated.SoloArtistID = nil
		}
	}
	updated.SearchName = searchName(updated.MemberName, updated.RealName)
	updated.UpdatedAt = service.now()

	if err := service.check(context, updated, request.SoloArtistID != nil); err != nil {
		return nil, err
	}

	if err := service.repository.Update(context, updated); err != nil {
		if dberr.IsNotFound(err) {
			return nil, apperr.NotFound("Member")
		}
		return nil, err
	}

	service.logger.Info("member_updated", slog.String("member_id", id))

	if !sameDate(current.DeathDate, updated.DeathDate) {
		service.sync(ctxutil.Detach(context), updated)
	}
	return updated, nil
}

// Delete removes a member; its memberships go with it through the delete hooks.
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repository.Delete(context, id); err != nil {
		if dberr.IsNotFound(err) {
			return apperr.NotFound("Member")
		}
		return err
	}

	service.logger.Warn("member_deleted", slog.String("member_id", id))

	for _, hook := range service.onDelete {
		if err := hook(context, id); err != nil {
			service.logger.Error("member_delete_cleanup_failed", slog.String("member_id", id), slog.Any("error", err))
		}
	}
	return nil
}

// ClearSoloArtist unlinks every member from a deleted solo artist.
func (service *Service) ClearSoloArtist(context context.Context, artistID string) (int, error) {
	cleared, err := service.repository.ClearSoloArtist(context, artistID, service.now())
	if err != nil {
		return 0, err
	}
	if cleared > 0 {
		service.logger.Info("member_solo_artist_cleared", slog.String("artist_id", artistID), slog.Int("cleared", cleared))
	}
	return cleared, nil
}

// # Helpers

// check enforces the required names and the lifespan order. With resolveLink
// set it also requires the solo link to name a SOLO artist.
func (service *Service) check(context context.Context, member *Member, resolveLink bool) error {
	validator := &validate.Validator{}
	validator.
		Custom(FieldMemberName, member.MemberName == "", "Member name is required").
		Custom(FieldRealName, member.RealName == "", "Member real name is required").
		NotBefore(FieldDeathDate, member.BirthDate, member.DeathDate, "Death date cannot be before birth date")

	if err := validator.FirstErr(); err != nil {
		return err
	}

	if resolveLink && member.SoloArtistID != nil {
		return service.resolveSoloArtist(context, member)
	}
	return nil
}

// resolveSoloArtist requires the linked id to name an existing SOLO artist.
func (service *Service) resolveSoloArtist(context context.Context, member *Member) error {
	linked, err := service.artists.FindArtist(context, *member.SoloArtistID)
	if err != nil {
		if dberr.IsNotFound(err) {
			return apperr.ReferenceIntegrity(fmt.Sprintf("Solo artist not found with ID: %s", *member.SoloArtistID))
		}
		return err
	}

	if linked.Type != artist.TypeSolo {
		return apperr.ReferenceIntegrity(fmt.Sprintf(
			"Cannot link member '%s' to artist '%s' - only SOLO artists can be linked to members, but this artist is type: %s",
			member.MemberName, linked.Name, linked.Type))
	}
	return nil
}

func (service *Service) sync(context context.Context, member *Member) {
	if service.syncer == nil {
		return
	}

	changed, err := service.syncer.SyncMember(context, member)
	if err != nil {
		service.logger.Error("member_sync_failed", slog.String("member_id", member.ID), slog.Any("error", err))
		return
	}
	service.logger.Info("member_synced", slog.String("member_id", member.ID), slog.Int("changed", changed))
}

// searchName folds both names into one accent-insensitive search key.
func searchName(memberName, realName string) string {
	return slug.Fold(memberName + " " + realName)
}

func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
