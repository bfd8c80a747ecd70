// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/sdikyarts/musicopedia/internal/platform/request"
	"github.com/sdikyarts/musicopedia/internal/platform/respond"
	"github.com/sdikyarts/musicopedia/internal/platform/validate"
	"github.com/sdikyarts/musicopedia/pkg/pagination"
	"github.com/sdikyarts/musicopedia/pkg/query"
	"github.com/sdikyarts/musicopedia/pkg/slice"
)

// # Handler Implementation

// Handler implements the HTTP layer for performers, soloists and groups.
type Handler struct {
	service *Service
}

// NewHandler constructs a new artist [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the /artists router. Writes are guarded by the admin token
// middleware mounted above it.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listArtists)
	router.Get("/spotify/{spotifyId}", handler.getBySpotifyID)
	router.Get("/{id}", handler.getArtist)

	router.Post("/", handler.createArtist)
	router.Post("/batch", handler.createBatch)
	router.Patch("/{id}", handler.updateArtist)
	router.Delete("/{id}", handler.deleteArtist)

	return router
}

// SoloRoutes returns the read-only /soloists router.
func (handler *Handler) SoloRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listSolos)
	return router
}

// GroupRoutes returns the read-only /groups router.
func (handler *Handler) GroupRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listGroups)
	return router
}

// # Discovery Endpoints

/*
GET /api/v1/artists.

Request:
  - q: string (accent-insensitive name search)
  - type: string (comma separated; solo, group, franchise, various)
  - page, limit: int

Response:
  - 200: []Summary
  - 400: VALIDATION_ERROR: Unknown type
*/
func (handler *Handler) listArtists(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	types := slice.Map(query.UpperSlice(requestutil.Query(request, "type")), func(value string) Type { return Type(value) })
	for _, artistType := range types {
		if !artistType.IsValid() {
			respond.Error(writer, request, validate.RequiredError(FieldType, "Unknown artist type: "+string(artistType)))
			return
		}
	}

	filter := Filter{
		Query: requestutil.Query(request, "q"),
		Types: types,
	}

	artists, total, err := handler.service.List(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, slice.Map(artists, ToSummary), paginationParams.Meta(total))
}

/*
GET /api/v1/artists/{id}.

Response:
  - 200: Response
  - 400: VALIDATION_ERROR: id is not a UUID
  - 404: NOT_FOUND
*/
func (handler *Handler) getArtist(writer http.ResponseWriter, request *http.Request) {
	artistID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.service.Get(request.Context(), artistID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ToResponse(profile))
}

// GET /api/v1/artists/spotify/{spotifyId}.
func (handler *Handler) getBySpotifyID(writer http.ResponseWriter, request *http.Request) {
	profile, err := handler.service.GetBySpotifyID(request.Context(), requestutil.Param(request, "spotifyId"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ToResponse(profile))
}

/*
GET /api/v1/soloists.

Request:
  - q: string
  - gender: string
  - deceased: bool
  - born_from, born_to: date (YYYY-MM-DD)
*/
func (handler *Handler) listSolos(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	deceased, err := requestutil.OptionalBool(request, "deceased")
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

	gender, err := genderParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	filter := SoloFilter{
		Query:    requestutil.Query(request, "q"),
		Gender:   gender,
		Deceased: deceased,
		BornFrom: bornFrom,
		BornTo:   bornTo,
	}

	profiles, total, err := handler.service.ListSolos(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, slice.Map(profiles, ToResponse), paginationParams.Meta(total))
}

/*
GET /api/v1/groups.

Request:
  - q: string
  - gender: string
  - disbanded: bool
  - formed_from, formed_to: date (YYYY-MM-DD)
*/
func (handler *Handler) listGroups(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	disbanded, err := requestutil.OptionalBool(request, "disbanded")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	formedFrom, err := requestutil.OptionalDate(request, "formed_from")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	formedTo, err := requestutil.OptionalDate(request, "formed_to")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	gender, err := genderParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	filter := GroupFilter{
		Query:      requestutil.Query(request, "q"),
		Gender:     gender,
		Disbanded:  disbanded,
		FormedFrom: formedFrom,
		FormedTo:   formedTo,
	}

	profiles, total, err := handler.service.ListGroups(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, slice.Map(profiles, ToResponse), paginationParams.Meta(total))
}

// # Mutation Endpoints

/*
POST /api/v1/artists.

Request:
  - CreateRequest (JSON body; "type" selects the policy)

Response:
  - 201: Response
  - 400: DISPATCH_ERROR or VALIDATION_ERROR
  - 409: CONFLICT: Spotify ID already in use
*/
func (handler *Handler) createArtist(writer http.ResponseWriter, request *http.Request) {
	var input CreateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.service.Create(request.Context(), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, ToResponse(profile))
}

// POST /api/v1/artists/batch. The body is a JSON array of create requests.
func (handler *Handler) createBatch(writer http.ResponseWriter, request *http.Request) {
	var input []*CreateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	profiles, err := handler.service.CreateBatch(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, slice.Map(profiles, ToResponse))
}

/*
PATCH /api/v1/artists/{id}.

Description: Absent fields are left unchanged; the type can never change.
*/
func (handler *Handler) updateArtist(writer http.ResponseWriter, request *http.Request) {
	artistID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.service.Update(request.Context(), artistID, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ToResponse(profile))
}

// DELETE /api/v1/artists/{id}.
func (handler *Handler) deleteArtist(writer http.ResponseWriter, request *http.Request) {
	artistID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), artistID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// # Helpers

// genderParam reads the optional gender filter.
func genderParam(request *http.Request) (Gender, error) {
	gender := Gender(strings.ToUpper(strings.TrimSpace(requestutil.Query(request, FieldGender))))
	if gender != "" && !slices.Contains(Genders, gender) {
		return "", validate.RequiredError(FieldGender, "Unknown gender: "+string(gender))
	}
	return gender, nil
}
