// Package metrics defines and registers all custom Prometheus metrics for
// the microblog services. It is the single source of truth for metric
// names, labels, and help strings; promauto registers everything with the
// default registry at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "microblog"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignupsTotal counts signup attempts.
// Label:
//   - result: "created", "duplicate", or "error"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenVerificationsTotal counts bearer-token verifications across all
// services.
// Labels:
//   - mode: "local" or "remote"
//   - result: "ok", "invalid", "unauthorized", or "unavailable"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, by mode and result.",
	},
	[]string{"mode", "result"},
)

// ── Health metrics ────────────────────────────────────────────────────────────

// HealthProbeDuration measures individual health-probe round trips.
// Labels:
//   - dependency: probed dependency name (e.g. "auth-service", "mongodb")
//   - outcome: "healthy", "unhealthy" (non-200), or "error" (transport)
var HealthProbeDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "health_probe_duration_seconds",
		Help:      "Duration of individual dependency health probes.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"dependency", "outcome"},
)
