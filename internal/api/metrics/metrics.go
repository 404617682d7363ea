// Package metrics defines and registers all custom Prometheus metrics for the
// entity-mapping API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package init
// through promauto; /metrics exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "entity_mapping"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts credential checks.
// Label:
//   - outcome: "success", "invalid_credentials" or "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of credential checks, by outcome.",
	},
	[]string{"outcome"},
)

// RegistrationsTotal counts registration requests.
// Label:
//   - outcome: "success", "conflict", "invalid" or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration requests, by outcome.",
	},
	[]string{"outcome"},
)

// GateDecisionsTotal counts authorization decisions.
// Label:
//   - decision: "allow", "unauthenticated" or "forbidden"
var GateDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_decisions_total",
		Help:      "Total number of route authorization decisions.",
	},
	[]string{"decision"},
)

// ── Customer metrics ──────────────────────────────────────────────────────────

// CustomerOperationsTotal counts customer aggregate operations.
// Labels:
//   - operation: "create", "list", "get", "update", "delete"
//   - result: "ok", "replayed", "not_found", "invalid" or "error"
var CustomerOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "customer_operations_total",
		Help:      "Total number of customer operations, by operation and result.",
	},
	[]string{"operation", "result"},
)

// ── HTTP metrics ──────────────────────────────────────────────────────────────

// HTTPRequestDuration measures request latency per route.
// Labels:
//   - method: HTTP method
//   - route: the matched route pattern (e.g. "/getCustomer/:id")
//   - status: response status code
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests by route and status.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route", "status"},
)
