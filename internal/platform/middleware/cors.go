// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/sdikyarts/musicopedia/internal/platform/constants"
)

// trustedOriginSuffix matches the catalog's own front-ends.
const trustedOriginSuffix = ".musicopedia.app"

// CORSConfig is the subset of the server configuration CORS needs.
type CORSConfig interface {
	IsDevelopment() bool
	AllowedOrigins() []string
}

// CORS echoes allowed origins back with the catalog's methods and headers
// and short-circuits preflight requests. Development accepts any origin.
func CORS(cfg CORSConfig) func(http.Handler) http.Handler {
	allowed := func(origin string) bool {
		return cfg.IsDevelopment() ||
			strings.HasSuffix(origin, trustedOriginSuffix) ||
			slices.Contains(cfg.AllowedOrigins(), origin)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			origin := request.Header.Get(constants.HeaderOrigin)
			if origin == "" {
				next.ServeHTTP(writer, request)
				return
			}

			if allowed(origin) {
				header := writer.Header()
				header.Set("Access-Control-Allow-Origin", origin)
				header.Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
				header.Set("Access-Control-Allow-Headers", "Accept, Content-Type, Authorization, X-Request-ID")
				header.Set("Access-Control-Expose-Headers", "X-Request-ID, Retry-After")
				header.Set("Access-Control-Max-Age", "300")
				header.Add("Vary", constants.HeaderOrigin)
			}

			if request.Method == http.MethodOptions {
				writer.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
