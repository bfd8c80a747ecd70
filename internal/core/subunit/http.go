// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package subunit

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/sdikyarts/musicopedia/internal/platform/request"
	"github.com/sdikyarts/musicopedia/internal/platform/respond"
	"github.com/sdikyarts/musicopedia/pkg/pagination"
)

// Handler implements the HTTP layer for subunits.
type Handler struct {
	service *Service
}

// NewHandler constructs a new subunit [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the /subunits router. Member routes are registered onto it
// by the membership handler before mounting.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listSubunits)
	router.Get("/{id}", handler.getSubunit)
	router.Post("/", handler.createSubunit)
	router.Patch("/{id}", handler.updateSubunit)
	router.Delete("/{id}", handler.deleteSubunit)

	return router
}

/*
GET /api/v1/subunits.

Request:
  - main_group_id: uuid (optional)
*/
func (handler *Handler) listSubunits(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	mainGroupID, err := requestutil.OptionalID(request, FieldMainGroupID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	subunits, total, err := handler.service.List(request.Context(), Filter{MainGroupID: mainGroupID},
		paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, subunits, paginationParams.Meta(total))
}

// GET /api/v1/subunits/{id}.
func (handler *Handler) getSubunit(writer http.ResponseWriter, request *http.Request) {
	subunitID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	subunit, err := handler.service.Get(request.Context(), subunitID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, subunit)
}

/*
POST /api/v1/subunits.

Response:
  - 201: Response
  - 422: REFERENCE_INTEGRITY: Missing, unknown or non-GROUP main group
*/
func (handler *Handler) createSubunit(writer http.ResponseWriter, request *http.Request) {
	var input CreateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	subunit, err := handler.service.Create(request.Context(), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, subunit)
}

// PATCH /api/v1/subunits/{id}.
func (handler *Handler) updateSubunit(writer http.ResponseWriter, request *http.Request) {
	subunitID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	subunit, err := handler.service.Update(request.Context(), subunitID, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, subunit)
}

// DELETE /api/v1/subunits/{id}.
func (handler *Handler) deleteSubunit(writer http.ResponseWriter, request *http.Request) {
	subunitID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), subunitID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
