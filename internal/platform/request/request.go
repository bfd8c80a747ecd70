// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sdikyarts/musicopedia/internal/platform/validate"
	"github.com/sdikyarts/musicopedia/pkg/convert"
	"github.com/sdikyarts/musicopedia/pkg/uuid"
)

// maxBodyBytes bounds JSON request bodies (batch creation included).
const maxBodyBytes = 1 << 20

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	decoder := json.NewDecoder(http.MaxBytesReader(nil, request.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
ID retrieves a named URL parameter and requires it to be a UUID.

Returns:
  - string: The canonical lowercase UUID
  - error: VALIDATION_ERROR naming the parameter if it is not a UUID
*/
func ID(request *http.Request, name string) (string, error) {
	id, ok := uuid.Normalize(chi.URLParam(request, name))
	if !ok {
		return "", validate.RequiredError(name, "Must be a valid UUID")
	}
	return id, nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Query retrieves a query-string parameter from the request.
*/
func Query(request *http.Request, name string) string {
	return request.URL.Query().Get(name)
}

/*
OptionalID reads a query-string parameter that, when present, must be a UUID.
*/
func OptionalID(request *http.Request, name string) (*string, error) {
	raw := Query(request, name)
	if raw == "" {
		return nil, nil
	}

	id, ok := uuid.Normalize(raw)
	if !ok {
		return nil, validate.RequiredError(name, "Must be a valid UUID")
	}
	return &id, nil
}

/*
OptionalBool reads a boolean query filter; absent yields nil.
*/
func OptionalBool(request *http.Request, name string) (*bool, error) {
	value, err := convert.ToBoolPtr(Query(request, name))
	if err != nil {
		return nil, validate.RequiredError(name, "Must be true or false")
	}
	return value, nil
}

/*
OptionalDate reads a YYYY-MM-DD query filter; absent yields nil.
*/
func OptionalDate(request *http.Request, name string) (*time.Time, error) {
	value, err := convert.ToDatePtr(Query(request, name))
	if err != nil {
		return nil, validate.RequiredError(name, "Must be a date in YYYY-MM-DD format")
	}
	return value, nil
}
