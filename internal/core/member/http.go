// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package member

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/sdikyarts/musicopedia/internal/platform/request"
	"github.com/sdikyarts/musicopedia/internal/platform/respond"
	"github.com/sdikyarts/musicopedia/pkg/pagination"
)

// Handler implements the HTTP layer for the member registry.
type Handler struct {
	service *Service
}

// NewHandler constructs a new member [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the /members router.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listMembers)
	router.Get("/{id}", handler.getMember)
	router.Post("/", handler.createMember)
	router.Patch("/{id}", handler.updateMember)
	router.Delete("/{id}", handler.deleteMember)

	return router
}

/*
GET /api/v1/members.

Request:
  - q: string (stage or real name)
  - nationality: string
  - with_solo_career: bool
  - born_from, born_to: date (YYYY-MM-DD)
*/
func (handler *Handler) listMembers(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	withSoloCareer, err := requestutil.OptionalBool(request, "with_solo_career")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	bornFrom, err := requestutil.OptionalDate(request, "born_from")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	bornTo, err := requestutil.OptionalDate(request, "born_to")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	filter := Filter{
		Query:          requestutil.Query(request, "q"),
		Nationality:    requestutil.Query(request, FieldNationality),
		WithSoloCareer: withSoloCareer,
		BornFrom:       bornFrom,
		BornTo:         bornTo,
	}

	members, total, err := handler.service.List(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	responses := make([]*Response, len(members))
	for i, member := range members {
		responses[i] = ToResponse(member, nil)
	}
	respond.Paginated(writer, responses, paginationParams.Meta(total))
}

// GET /api/v1/members/{id}. The linked solo career name is resolved.
func (handler *Handler) getMember(writer http.ResponseWriter, request *http.Request) {
	memberID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	member, err := handler.service.Get(request.Context(), memberID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ToResponse(member, handler.service.SoloArtistName(request.Context(), member)))
}

/*
POST /api/v1/members.

Response:
  - 201: Response
  - 400: VALIDATION_ERROR: Missing names or bad dates
  - 422: REFERENCE_INTEGRITY: Unknown or non-SOLO solo artist
*/
func (handler *Handler) createMember(writer http.ResponseWriter, request *http.Request) {
	var input CreateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	member, err := handler.service.Create(request.Context(), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, ToResponse(member, handler.service.SoloArtistName(request.Context(), member)))
}

// PATCH /api/v1/members/{id}.
func (handler *Handler) updateMember(writer http.ResponseWriter, request *http.Request) {
	memberID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	member, err := handler.service.Update(request.Context(), memberID, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ToResponse(member, handler.service.SoloArtistName(request.Context(), member)))
}

// DELETE /api/v1/members/{id}.
func (handler *Handler) deleteMember(writer http.ResponseWriter, request *http.Request) {
	memberID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), memberID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
