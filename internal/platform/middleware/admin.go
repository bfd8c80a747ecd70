// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/sdikyarts/musicopedia/internal/platform/apperr"
	"github.com/sdikyarts/musicopedia/internal/platform/constants"
	"github.com/sdikyarts/musicopedia/internal/platform/ctxutil"
	"github.com/sdikyarts/musicopedia/internal/platform/respond"
)

// AdminToken guards every state-changing request with a static bearer token.
//
// # Flow
//  1. Safe methods (GET, HEAD, OPTIONS) pass through untouched.
//  2. Otherwise the 'Authorization: Bearer <token>' header is required.
//  3. The token is compared in constant time against the configured value.
//
// # Parameters
//   - token: The configured ADMIN_TOKEN.
func AdminToken(token string) func(http.Handler) http.Handler {
	expected := []byte(token)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// ── 1. Read-only access ─────────────────────────────────────────
			switch request.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Format Validation ────────────────────────────────────────
			header := request.Header.Get(constants.HeaderAuthorization)
			if !strings.HasPrefix(header, constants.BearerPrefix) {
				respond.Error(writer, request, apperr.Unauthorized("Admin token required"))
				return
			}

			// ── 3. Token Verification ───────────────────────────────────────
			supplied := []byte(strings.TrimSpace(strings.TrimPrefix(header, constants.BearerPrefix)))
			if len(expected) == 0 || subtle.ConstantTimeCompare(supplied, expected) != 1 {
				ctxutil.GetLogger(request.Context()).WarnContext(request.Context(), "admin_token_rejected")
				respond.Error(writer, request, apperr.Unauthorized("Invalid admin token"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
