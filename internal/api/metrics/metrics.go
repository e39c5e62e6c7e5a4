// Package metrics defines and registers all custom Prometheus metrics for
// the bug tracker API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package init; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bugtracker"

// UsersRegisteredTotal counts successful registrations.
// Label:
//   - role: "Developer" or "Admin"
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
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

// AuthRejectedTotal counts requests rejected by the auth guard.
// Label:
//   - reason: "no_token", "expired", "malformed", or "invalid_payload"
var AuthRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejected_total",
		Help:      "Total number of requests rejected by the auth middleware, by reason.",
	},
	[]string{"reason"},
)

// ProjectsCreatedTotal counts newly created projects.
var ProjectsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projects_created_total",
		Help:      "Total number of projects created.",
	},
)

// IssuesCreatedTotal counts newly filed issues.
// Label:
//   - priority: "low", "medium", or "high"
var IssuesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "issues_created_total",
		Help:      "Total number of issues filed, by priority.",
	},
	[]string{"priority"},
)
