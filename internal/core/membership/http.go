// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package membership

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/sdikyarts/musicopedia/internal/platform/request"
	"github.com/sdikyarts/musicopedia/internal/platform/respond"
	"github.com/sdikyarts/musicopedia/internal/platform/validate"
	"github.com/sdikyarts/musicopedia/pkg/pagination"
	"github.com/sdikyarts/musicopedia/pkg/slice"
)

// Handler implements the HTTP layer for both membership ledgers.
type Handler struct {
	service *Service
}

// NewHandler constructs a new membership [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the /memberships router.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.createMembership)
	router.Post("/reconcile", handler.reconcile)

	router.Route("/group/{groupId}", func(router chi.Router) {
		router.Get("/", handler.listGroupMemberships)
		router.Get("/count", handler.countGroupMemberships)
		router.Get("/member/{memberId}", handler.getMembership)
		router.Patch("/member/{memberId}", handler.updateMembership)
		router.Delete("/member/{memberId}", handler.deleteMembership)
	})

	router.Route("/member/{memberId}", func(router chi.Router) {
		router.Get("/", handler.listMemberMemberships)
		router.Get("/subunits", handler.listMemberSubunits)
		router.Delete("/subunits", handler.leaveAllSubunits)
	})

	return router
}

// RegisterSubunitRoutes adds the subunit member routes to the /subunits router.
func (handler *Handler) RegisterSubunitRoutes(router chi.Router) {
	router.Get("/{id}/members", handler.listSubunitMembers)
	router.Post("/{id}/members", handler.addSubunitMember)
	router.Delete("/{id}/members", handler.clearSubunit)
	router.Get("/{id}/members/{memberId}", handler.checkSubunitMember)
	router.Delete("/{id}/members/{memberId}", handler.removeSubunitMember)
}

// # Group Ledger

/*
GET /api/v1/memberships/group/{groupId}.

Request:
  - status: CURRENT | FORMER | INACTIVE
  - former: bool (only rows with a leave date)
  - joined_after, left_before: date (YYYY-MM-DD)
*/
func (handler *Handler) listGroupMemberships(writer http.ResponseWriter, request *http.Request) {
	groupID, err := requestutil.ID(request, "groupId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	filter, err := groupFilter(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	filter.GroupID = &groupID

	paginationParams := pagination.FromRequest(request)
	memberships, total, err := handler.service.List(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, slice.Map(memberships, ToResponse), paginationParams.Meta(total))
}

// GET /api/v1/memberships/group/{groupId}/count.
func (handler *Handler) countGroupMemberships(writer http.ResponseWriter, request *http.Request) {
	groupID, err := requestutil.ID(request, "groupId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	status, err := statusParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	count, err := handler.service.Count(request.Context(), groupID, status)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, CountResponse{GroupID: groupID, Status: status, Count: count})
}

// GET /api/v1/memberships/group/{groupId}/member/{memberId}.
func (handler *Handler) getMembership(writer http.ResponseWriter, request *http.Request) {
	groupID, memberID, err := membershipKey(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	membership, err := handler.service.Get(request.Context(), groupID, memberID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ToResponse(membership))
}

/*
POST /api/v1/memberships.

Response:
  - 201: Response (already FORMER when the member is deceased)
  - 409: CONFLICT: Member is already in the group
  - 422: REFERENCE_INTEGRITY: Unknown member, unknown or non-GROUP group
*/
func (handler *Handler) createMembership(writer http.ResponseWriter, request *http.Request) {
	var input CreateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	membership, err := handler.service.Create(request.Context(), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, ToResponse(membership))
}

// PATCH /api/v1/memberships/group/{groupId}/member/{memberId}.
func (handler *Handler) updateMembership(writer http.ResponseWriter, request *http.Request) {
	groupID, memberID, err := membershipKey(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	membership, err := handler.service.Update(request.Context(), groupID, memberID, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ToResponse(membership))
}

// DELETE /api/v1/memberships/group/{groupId}/member/{memberId}.
func (handler *Handler) deleteMembership(writer http.ResponseWriter, request *http.Request) {
	groupID, memberID, err := membershipKey(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), groupID, memberID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// GET /api/v1/memberships/member/{memberId}.
func (handler *Handler) listMemberMemberships(writer http.ResponseWriter, request *http.Request) {
	memberID, err := requestutil.ID(request, "memberId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	memberships, err := handler.service.ListByMember(request.Context(), memberID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, slice.Map(memberships, ToResponse))
}

// POST /api/v1/memberships/reconcile. Runs one lifecycle sweep now.
func (handler *Handler) reconcile(writer http.ResponseWriter, request *http.Request) {
	changed, err := handler.service.ReconcileDeceased(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]int{"changed": changed})
}

// # Subunit Ledger

// GET /api/v1/memberships/member/{memberId}/subunits.
func (handler *Handler) listMemberSubunits(writer http.ResponseWriter, request *http.Request) {
	memberID, err := requestutil.ID(request, "memberId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	memberships, err := handler.service.ListMemberSubunits(request.Context(), memberID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, memberships)
}

// DELETE /api/v1/memberships/member/{memberId}/subunits.
func (handler *Handler) leaveAllSubunits(writer http.ResponseWriter, request *http.Request) {
	memberID, err := requestutil.ID(request, "memberId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if _, err := handler.service.LeaveAllSubunits(request.Context(), memberID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// GET /api/v1/subunits/{id}/members.
func (handler *Handler) listSubunitMembers(writer http.ResponseWriter, request *http.Request) {
	subunitID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	memberships, err := handler.service.ListSubunitMembers(request.Context(), subunitID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, memberships)
}

// POST /api/v1/subunits/{id}/members.
func (handler *Handler) addSubunitMember(writer http.ResponseWriter, request *http.Request) {
	subunitID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input SubunitMemberRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	membership, err := handler.service.AddSubunitMember(request.Context(), subunitID, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, membership)
}

// DELETE /api/v1/subunits/{id}/members.
func (handler *Handler) clearSubunit(writer http.ResponseWriter, request *http.Request) {
	subunitID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if _, err := handler.service.ClearSubunit(request.Context(), subunitID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// GET /api/v1/subunits/{id}/members/{memberId}.
func (handler *Handler) checkSubunitMember(writer http.ResponseWriter, request *http.Request) {
	subunitID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	memberID, err := requestutil.ID(request, "memberId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	isMember, err := handler.service.IsSubunitMember(request.Context(), subunitID, memberID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]bool{"is_member": isMember})
}

// DELETE /api/v1/subunits/{id}/members/{memberId}.
func (handler *Handler) removeSubunitMember(writer http.ResponseWriter, request *http.Request) {
	subunitID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	memberID, err := requestutil.ID(request, "memberId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.RemoveSubunitMember(request.Context(), subunitID, memberID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// # Helpers

func membershipKey(request *http.Request) (string, string, error) {
	groupID, err := requestutil.ID(request, "groupId")
	if err != nil {
		return "", "", err
	}
	memberID, err := requestutil.ID(request, "memberId")
	if err != nil {
		return "", "", err
	}
	return groupID, memberID, nil
}

func statusParam(request *http.Request) (*Status, error) {
	raw := strings.ToUpper(requestutil.Query(request, FieldStatus))
	if raw == "" {
		return nil, nil
	}

	status := Status(raw)
	if !status.IsValid() {
		return nil, validate.RequiredError(FieldStatus, "Unknown membership status: "+raw)
	}
	return &status, nil
}

func groupFilter(request *http.Request) (Filter, error) {
	status, err := statusParam(request)
	if err != nil {
		return Filter{}, err
	}
	former, err := requestutil.OptionalBool(request, "former")
	if err != nil {
		return Filter{}, err
	}
	joinedAfter, err := requestutil.OptionalDate(request, "joined_after")
	if err != nil {
		return Filter{}, err
	}
	leftBefore, err := requestutil.OptionalDate(request, "left_before")
	if err != nil {
		return Filter{}, err
	}

	return Filter{
		Status:      status,
		Former:      former != nil && *former,
		JoinedAfter: joinedAfter,
		LeftBefore:  leftBefore,
	}, nil
}
