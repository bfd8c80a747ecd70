// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil carries request-scoped values (request ID, logger) through
// [context.Context] from the HTTP middleware down to the services.
package ctxutil

import (
	"context"
	"log/slog"
)

// key is unexported so no other package can read or overwrite these values.
type key string

const (
	keyRequestID key = "request_id"
	keyLogger    key = "logger"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// GetLogger retrieves the logger from the context, falling back to
// [slog.Default].
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// # Background Work

// Detach keeps the request ID and logger of parent but drops its deadline
// and cancellation. Membership sync after a member write runs on it so a
// disconnecting client cannot leave the ledger half-updated.
func Detach(parent context.Context) context.Context {
	return context.WithoutCancel(parent)
}
