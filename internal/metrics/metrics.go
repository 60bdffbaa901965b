// Package metrics defines and registers the custom Prometheus metrics
// for the admin back-office API. It is the single source of truth for
// metric names, labels, and help strings; HTTP-level metrics come from
// the echoprometheus middleware and are not defined here.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "adminapi"

// Login outcome label values.
const (
	OutcomeSuccess     = "success"
	OutcomeBadPassword = "invalid_credentials"
	OutcomeForbidden   = "forbidden_role"
	OutcomeRateLimited = "rate_limited"
	OutcomeError       = "error"
)

// LoginAttemptsTotal counts login attempts by terminal outcome.
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"outcome"},
)

// DashboardCacheTotal counts dashboard snapshot cache lookups.
// Label:
//   - result: "hit" or "miss"
var DashboardCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dashboard_cache_total",
		Help:      "Total number of dashboard cache lookups, labelled by result.",
	},
	[]string{"result"},
)

// NotificationsCreatedTotal counts in-app notifications fanned out when
// a property is deactivated.
var NotificationsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_created_total",
		Help:      "Total number of property-removed notifications created.",
	},
)
