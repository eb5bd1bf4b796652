package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReconcileRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "guild_manager_reconcile_runs_total",
		Help: "The total number of reconciliation cycles",
	}, []string{"status"})

	ReconcileDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "guild_manager_reconcile_duration_seconds",
		Help:    "Duration of reconciliation cycles",
		Buckets: prometheus.DefBuckets,
	})

	ChangeEventsDerived = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "guild_manager_change_events_total",
		Help: "The total number of derived membership change events",
	}, []string{"type"})

	GuardViolations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "guild_manager_guard_violations_total",
		Help: "The total number of rejected checklist removals",
	})

	PersistWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "guild_manager_persist_writes_total",
		Help: "Total number of debounced document writes",
	}, []string{"status"})

	TibiaDataRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tibiadata_request_duration_seconds",
		Help:    "Duration of TibiaData API requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint", "status"})

	TibiaDataRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tibiadata_requests_total",
		Help: "Total number of TibiaData API requests",
	}, []string{"endpoint", "status"})

	TibiaComRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tibiacom_request_duration_seconds",
		Help:    "Duration of Tibia.com HTML scraping requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"status"})

	TibiaComRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tibiacom_requests_total",
		Help: "Total number of Tibia.com HTML scraping requests",
	}, []string{"status"})

	DiscordMessagesSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "discord_messages_sent_total",
		Help: "Total number of Discord webhook messages sent",
	}, []string{"status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "guild_manager_http_request_duration_seconds",
		Help:    "Duration of HTTP API requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method", "status"})
)
