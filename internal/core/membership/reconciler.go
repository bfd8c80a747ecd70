// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package membership

import (
	"context"
	"log/slog"
	"time"

	"github.com/sdikyarts/musicopedia/internal/platform/metrics"
)

// Reconciler periodically re-applies member lifecycle facts to the group
// ledger. It heals rows left stale when the inline sync after a member write
// did not complete.
type Reconciler struct {
	service  *Service
	interval time.Duration
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewReconciler constructs a [Reconciler]. A non-positive interval disables it.
func NewReconciler(service *Service, interval time.Duration, metrics *metrics.Metrics, logger *slog.Logger) *Reconciler {
	return &Reconciler{service: service, interval: interval, metrics: metrics, logger: logger}
}

// Run sweeps once at start and then on every tick until context is cancelled.
func (reconciler *Reconciler) Run(context context.Context) error {
	if reconciler.interval <= 0 {
		reconciler.logger.Info("reconciler_disabled")
		return nil
	}

	reconciler.RunOnce(context)

	ticker := time.NewTicker(reconciler.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			reconciler.RunOnce(context)
		case <-context.Done():
			reconciler.logger.Info("reconciler_stopped")
			return nil
		}
	}
}

// RunOnce performs a single sweep. Failures are logged and counted; the next
// tick retries.
func (reconciler *Reconciler) RunOnce(context context.Context) int {
	started := time.Now()

	changed, err := reconciler.service.ReconcileDeceased(context)
	if err != nil {
		reconciler.metrics.IncReconcileRun("error")
		reconciler.logger.Error("reconcile_failed", slog.Any("error", err), slog.Int("changed", changed))
		return changed
	}

	reconciler.metrics.IncReconcileRun("ok")
	reconciler.logger.Info("reconcile_completed",
		slog.Int("changed", changed),
		slog.Duration("elapsed", time.Since(started)),
	)
	return changed
}
