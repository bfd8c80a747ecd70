// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package membership_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdikyarts/musicopedia/internal/core/membership"
	"github.com/sdikyarts/musicopedia/internal/core/subunit"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
	Code  string          `json:"code"`
}

func newRouter(f fixture) http.Handler {
	handler := membership.NewHandler(f.memberships)

	subunits := subunit.NewHandler(f.subunits).Routes()
	handler.RegisterSubunitRoutes(subunits)

	router := chi.NewRouter()
	router.Mount("/memberships", handler.Routes())
	router.Mount("/subunits", subunits)
	return router
}

func do(t *testing.T, router http.Handler, method, target, body string) (int, envelope) {
	t.Helper()
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	var decoded envelope
	if recorder.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded))
	}
	return recorder.Code, decoded
}

/*
TestHandler_GroupLedger drives a membership from creation to deletion over HTTP.
*/
func TestHandler_GroupLedger(t *testing.T) {
	f := newFixture(t)
	router := newRouter(f)
	group := f.group(t, "BTS")
	suga := f.member(t, "SUGA", nil)

	status, body := do(t, router, http.MethodPost, "/memberships", fmt.Sprintf(
		`{"group_id": %q, "member_id": %q, "join_date": "2013-06-13"}`, group, suga))
	require.Equal(t, http.StatusCreated, status, body.Error)

	var created membership.Response
	require.NoError(t, json.Unmarshal(body.Data, &created))
	assert.Equal(t, membership.StatusCurrent, created.Status)
	assert.Equal(t, "2013-06-13", created.JoinDate.String())

	status, body = do(t, router, http.MethodPost, "/memberships", fmt.Sprintf(
		`{"group_id": %q, "member_id": %q, "join_date": "2013-06-13"}`, group, suga))
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "CONFLICT", body.Code)

	key := fmt.Sprintf("/memberships/group/%s/member/%s", group, suga)
	status, _ = do(t, router, http.MethodPatch, key, `{"status": "INACTIVE"}`)
	assert.Equal(t, http.StatusOK, status)

	status, body = do(t, router, http.MethodGet, "/memberships/group/"+group+"/count?status=inactive", "")
	require.Equal(t, http.StatusOK, status)
	var count membership.CountResponse
	require.NoError(t, json.Unmarshal(body.Data, &count))
	assert.Equal(t, 1, count.Count)

	status, _ = do(t, router, http.MethodPatch, key, `{"status": "FORMER", "leave_date": "2030-01-01"}`)
	assert.Equal(t, http.StatusOK, status)

	status, body = do(t, router, http.MethodPatch, key, `{"status": "CURRENT"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Former memberships cannot be reopened", body.Error)

	status, body = do(t, router, http.MethodGet, "/memberships/group/"+group+"?former=true&left_before=2031-01-01", "")
	require.Equal(t, http.StatusOK, status)
	var listed []membership.Response
	require.NoError(t, json.Unmarshal(body.Data, &listed))
	assert.Len(t, listed, 1)

	status, body = do(t, router, http.MethodGet, "/memberships/group/"+group+"?status=RETIRED", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)

	status, _ = do(t, router, http.MethodGet, "/memberships/member/"+suga, "")
	assert.Equal(t, http.StatusOK, status)

	status, _ = do(t, router, http.MethodDelete, key, "")
	assert.Equal(t, http.StatusNoContent, status)

	status, body = do(t, router, http.MethodGet, key, "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body.Code)
}

/*
TestHandler_SubunitLedger adds and removes subunit members through the
/subunits routes.
*/
func TestHandler_SubunitLedger(t *testing.T) {
	f := newFixture(t)
	router := newRouter(f)
	seventeen := f.group(t, "SEVENTEEN")
	woozi := f.member(t, "WOOZI", nil)

	status, body := do(t, router, http.MethodPost, "/subunits", fmt.Sprintf(`{"main_group_id": %q, "name": "Vocal Team"}`, seventeen))
	require.Equal(t, http.StatusCreated, status, body.Error)
	var unit subunit.Response
	require.NoError(t, json.Unmarshal(body.Data, &unit))
	assert.Equal(t, "SEVENTEEN", unit.MainGroupName)

	members := "/subunits/" + unit.ID + "/members"
	status, _ = do(t, router, http.MethodPost, members, fmt.Sprintf(`{"member_id": %q}`, woozi))
	assert.Equal(t, http.StatusCreated, status)

	status, body = do(t, router, http.MethodGet, members+"/"+woozi, "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"is_member": true}`, string(body.Data))

	status, body = do(t, router, http.MethodGet, "/memberships/member/"+woozi+"/subunits", "")
	require.Equal(t, http.StatusOK, status)
	var rows []membership.SubunitMembership
	require.NoError(t, json.Unmarshal(body.Data, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, unit.ID, rows[0].SubunitID)

	status, _ = do(t, router, http.MethodDelete, members+"/"+woozi, "")
	assert.Equal(t, http.StatusNoContent, status)

	status, body = do(t, router, http.MethodDelete, members+"/"+woozi, "")
	assert.Equal(t, http.StatusNotFound, status)

	status, body = do(t, router, http.MethodPost, "/subunits", `{"name": "Orphan"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "Main group is required", body.Error)
}

/*
TestHandler_Reconcile reports how many rows a manual sweep changed.
*/
func TestHandler_Reconcile(t *testing.T) {
	f := newFixture(t)
	router := newRouter(f)
	group := f.group(t, "SHINee")
	jonghyun := f.member(t, "Jonghyun", nil)
	f.join(t, group, jonghyun, day(2008, time.May, 25))

	status, body := do(t, router, http.MethodPost, "/memberships/reconcile", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"changed": 0}`, string(body.Data))
}
