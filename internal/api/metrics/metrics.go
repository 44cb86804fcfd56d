// Package metrics defines and registers the custom Prometheus metrics for
// the user-management API. It is the single source of truth for metric
// names, labels, and help strings; metrics register themselves with the
// default registry at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "usermanager"

// SignUpsTotal counts sign-up attempts.
// Label:
//   - result: "success" or "duplicate"
var SignUpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of sign-up attempts, by result.",
	},
	[]string{"result"},
)

// SignInsTotal counts sign-in attempts.
// Label:
//   - result: "success", "invalid_credentials", or "throttled"
var SignInsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of sign-in attempts, by result.",
	},
	[]string{"result"},
)

// TokenValidationsTotal counts bearer token checks at the request boundary.
// Label:
//   - result: "valid" or "invalid"
var TokenValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_validations_total",
		Help:      "Total number of bearer token validations, by result.",
	},
	[]string{"result"},
)
