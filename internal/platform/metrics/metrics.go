// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package metrics holds the Prometheus instruments of the catalog.
//
// Instruments are registered against an explicit [prometheus.Registerer] so
// tests can use a throwaway registry while the server registers on the
// process-wide default one.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sdikyarts/musicopedia/internal/platform/constants"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	ArtistsCreated     *prometheus.CounterVec
	FactoryRejections  *prometheus.CounterVec
	MembershipsSynced  prometheus.Counter
	ReconcileRuns      *prometheus.CounterVec
	CacheLookups       *prometheus.CounterVec
	HTTPRequestSeconds *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New creates and registers all Prometheus metrics on registry.
func New(registry *prometheus.Registry) *Metrics {
	factory := promauto.With(registry)

	return &Metrics{
		ArtistsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: constants.MetricsNamespace,
			Name:      "artists_created_total",
			Help:      "Total number of performers created, by performer type",
		}, []string{"type"}),
		FactoryRejections: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: constants.MetricsNamespace,
			Name:      "factory_rejections_total",
			Help:      "Performer creation requests rejected by the type policy, by performer type",
		}, []string{"type"}),
		MembershipsSynced: factory.NewCounter(prometheus.CounterOpts{
			Namespace: constants.MetricsNamespace,
			Name:      "memberships_synced_total",
			Help:      "Group memberships closed because the member died",
		}),
		ReconcileRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: constants.MetricsNamespace,
			Name:      "reconcile_runs_total",
			Help:      "Membership reconciliation sweeps, by outcome",
		}, []string{"outcome"}),
		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: constants.MetricsNamespace,
			Name:      "cache_lookups_total",
			Help:      "Artist cache lookups, by result (hit, miss, error)",
		}, []string{"result"}),
		HTTPRequestSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: constants.MetricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency, by method, route pattern and status",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),

		gatherer: registry,
	}
}

// NewNop returns metrics bound to a private registry. Used by tests and by
// components constructed without a registry.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}

// IncArtistCreated increments the created counter for a performer type.
func (m *Metrics) IncArtistCreated(artistType string) {
	m.ArtistsCreated.WithLabelValues(artistType).Inc()
}

// IncFactoryRejection increments the rejection counter for a performer type.
func (m *Metrics) IncFactoryRejection(artistType string) {
	m.FactoryRejections.WithLabelValues(artistType).Inc()
}

// AddMembershipsSynced adds the number of rows the consistency engine changed.
func (m *Metrics) AddMembershipsSynced(count int) {
	m.MembershipsSynced.Add(float64(count))
}

// IncReconcileRun records a sweep outcome ("ok" or "error").
func (m *Metrics) IncReconcileRun(outcome string) {
	m.ReconcileRuns.WithLabelValues(outcome).Inc()
}

// IncCacheLookup records a cache lookup result.
func (m *Metrics) IncCacheLookup(result string) {
	m.CacheLookups.WithLabelValues(result).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// # HTTP Instrumentation

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (recorder *statusRecorder) WriteHeader(code int) {
	recorder.status = code
	recorder.ResponseWriter.WriteHeader(code)
}

// Middleware observes request latency labelled by the matched chi route
// pattern, so path parameters do not explode label cardinality.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		startTime := time.Now()
		recorder := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}

		next.ServeHTTP(recorder, request)

		route := "unmatched"
		if routeContext := chi.RouteContext(request.Context()); routeContext != nil {
			if pattern := routeContext.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		m.HTTPRequestSeconds.
			WithLabelValues(request.Method, route, strconv.Itoa(recorder.status)).
			Observe(time.Since(startTime).Seconds())
	})
}
