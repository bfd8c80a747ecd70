// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr classifies PostgreSQL failures into [apperr.AppError] values
// so repositories never leak SQLSTATE codes or driver messages to clients.
//
// Memory repositories return the same sentinels, which keeps service code
// independent of the storage driver.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sdikyarts/musicopedia/internal/platform/apperr"
)

var (
	// ErrNotFound is returned by every repository when the addressed row is absent.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// Errors that are already [apperr.AppError] values pass through untouched so
// repositories can wrap every return path.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}
	if apperr.IsAppError(err) {
		return err
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Constraint violations
	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		switch pgError.Code {
		case pgerrcode.UniqueViolation:
			conflict := apperr.Conflict("A record with the same key already exists")
			conflict.Cause = err
			return conflict
		case pgerrcode.ForeignKeyViolation:
			reference := apperr.ReferenceIntegrity("Referenced record does not exist or is still in use")
			reference.Cause = err
			return reference
		case pgerrcode.CheckViolation:
			invalid := apperr.ValidationError("Record violates a data constraint")
			invalid.Cause = err
			return invalid
		}
	}

	// 3. Unknown query errors become Internal Server Errors
	internal := apperr.Internal(err)
	internal.Message = "An unexpected error occurred while trying to " + action
	return internal
}

// IsNotFound reports whether err is the not-found sentinel or any NOT_FOUND [apperr.AppError].
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || apperr.HasCode(err, apperr.CodeNotFound)
}
