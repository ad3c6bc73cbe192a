// Package metrics defines and registers all custom Prometheus metrics
// for the commerce API. It is the single source of truth for metric
// names, labels, and help strings; promauto registers everything with
// the default registry at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "commerce"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignupsTotal counts successful signups.
// Label:
//   - role: the role chosen at signup ("CUSTOMER" or "MERCHANT")
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of successful signups, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts successful logins.
// Label:
//   - role: the role carried in the issued token
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of successful logins, by role.",
	},
	[]string{"role"},
)

// AuthFailuresTotal counts rejected authentication attempts.
// Label:
//   - reason: "unknown_email", "bad_password", "rate_limited",
//     "missing_token", "invalid_token", or "forbidden_role"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of failed authentication or authorization attempts.",
	},
	[]string{"reason"},
)

// ── Store metrics ─────────────────────────────────────────────────────────────

// StoresCreatedTotal counts newly created stores.
var StoresCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stores_created_total",
		Help:      "Total number of stores created.",
	},
)

// ── Audit pipeline metrics ────────────────────────────────────────────────────

// AuditEventsProcessedTotal counts audit events persisted successfully.
// Labels:
//   - action: "signup" or "login"
//   - outcome: "success" or "failure"
var AuditEventsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_processed_total",
		Help:      "Total number of auth audit events persisted.",
	},
	[]string{"action", "outcome"},
)

// AuditEventsErrorsTotal counts audit events that failed to persist.
var AuditEventsErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_errors_total",
		Help:      "Total number of auth audit events that failed to persist.",
	},
)

// AuditQueueDepth tracks events waiting in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// AuditProcessingDuration measures how long one audit event takes to persist.
var AuditProcessingDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "audit_processing_duration_seconds",
		Help:      "Duration of audit event persistence from dequeue to write.",
		Buckets:   prometheus.DefBuckets,
	},
)
