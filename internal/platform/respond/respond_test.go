// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdikyarts/musicopedia/internal/platform/apperr"
	"github.com/sdikyarts/musicopedia/internal/platform/respond"
)

/*
TestError_StatusMapping verifies every catalog error code renders with its status and envelope.
*/
func TestError_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", apperr.ValidationError("Genre is required for groups"), http.StatusBadRequest, apperr.CodeValidation},
		{"reference", apperr.ReferenceIntegrity("Main group is required"), http.StatusUnprocessableEntity, apperr.CodeReferenceIntegrity},
		{"dispatch", apperr.Dispatch("No factory available for artist type: BAND"), http.StatusBadRequest, apperr.CodeDispatch},
		{"not_found", apperr.NotFound("Artist"), http.StatusNotFound, apperr.CodeNotFound},
		{"conflict", apperr.Conflict("duplicate"), http.StatusConflict, apperr.CodeConflict},
		{"plain_error", errors.New("db exploded"), http.StatusInternalServerError, apperr.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			respond.Error(recorder, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.status, recorder.Code)

			var envelope respond.ErrorEnvelope
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
			assert.Equal(t, tt.code, envelope.Code)
			assert.NotContains(t, envelope.Error, "db exploded")
		})
	}
}

/*
TestCreated_WrapsData checks the success envelope.
*/
func TestCreated_WrapsData(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.Created(recorder, map[string]string{"name": "IU"})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.JSONEq(t, `{"data":{"name":"IU"}}`, recorder.Body.String())
}
