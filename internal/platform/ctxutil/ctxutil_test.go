// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sdikyarts/musicopedia/internal/platform/ctxutil"
)

/*
TestContext_Defaults returns zero values on a bare context.
*/
func TestContext_Defaults(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, ctxutil.GetRequestID(ctx))
	assert.Same(t, slog.Default(), ctxutil.GetLogger(ctx))
}

/*
TestContext_Detach keeps the request values of a cancelled request so the
membership sync can still log under the same request ID.
*/
func TestContext_Detach(t *testing.T) {
	logger := slog.New(slog.DiscardHandler).With(slog.String("member_id", "m-1"))

	parent := ctxutil.WithLogger(ctxutil.WithRequestID(context.Background(), "req-1"), logger)
	parent, cancel := context.WithCancel(parent)
	detached := ctxutil.Detach(parent)
	cancel()

	assert.Error(t, parent.Err())
	assert.NoError(t, detached.Err())
	assert.Equal(t, "req-1", ctxutil.GetRequestID(detached))
	assert.Same(t, logger, ctxutil.GetLogger(detached))
}
