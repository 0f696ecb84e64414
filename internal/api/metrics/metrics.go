// Package metrics defines and registers all custom Prometheus metrics for the
// starsky backend. It is the single source of truth for metric names, labels,
// and help strings. Metrics self-register with the default registry via
// promauto; the /metrics endpoint is served by the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "starsky"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_body", or "failure" (unknown user or bad password)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts account registrations.
// Label:
//   - result: "success", "invalid_body", or "conflict"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// TokenVerificationsTotal counts bearer token verifications performed by the
// auth middleware.
// Label:
//   - result: "success" or "failure"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, by result.",
	},
	[]string{"result"},
)
