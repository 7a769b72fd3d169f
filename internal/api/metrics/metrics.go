// Package metrics defines and registers all custom Prometheus metrics for
// the employee system. It is the single source of truth for metric names,
// labels, and help strings; collectors register themselves with the default
// registry via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "employee_system"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// EmployeeMutationsTotal counts successful employee writes.
// Label:
//   - action: "create", "update", or "delete"
var EmployeeMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "employee_mutations_total",
		Help:      "Total number of successful employee mutations, by action.",
	},
	[]string{"action"},
)

// AuditEntriesTotal counts audit trail writes.
// Label:
//   - result: "ok" or "error"
var AuditEntriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_entries_total",
		Help:      "Total number of audit entries processed, labelled by result.",
	},
	[]string{"result"},
)

// AuditQueueDepth tracks the current number of entries waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit entries pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// EmployeeCacheTotal counts employee cache lookups.
// Label:
//   - result: "hit" or "miss"
var EmployeeCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "employee_cache_total",
		Help:      "Total number of employee cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
