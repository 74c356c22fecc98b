package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce          sync.Once
	rosterOperationsTotal *prometheus.CounterVec
	auditPurgedTotal      prometheus.Counter
	adminRequestsTotal    *prometheus.CounterVec
	adminLatencySeconds   *prometheus.HistogramVec
)

// RegisterMetrics initialises the Prometheus collectors used by the service.
func RegisterMetrics() {
	registerOnce.Do(func() {
		rosterOperationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_operations_total",
			Help: "Signup and unregister operations by outcome.",
		}, []string{"operation", "outcome"})

		auditPurgedTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "audit_log_purged_entries_total",
			Help: "Audit log entries deleted by retention purges.",
		})

		adminRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "admin_requests_total",
			Help: "Total number of admin API requests served.",
		}, []string{"method", "route", "status"})

		adminLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "admin_latency_seconds",
			Help:    "Latency distribution for admin API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		prometheus.MustRegister(rosterOperationsTotal, auditPurgedTotal, adminRequestsTotal, adminLatencySeconds)
	})
}

// RosterOperations exposes the counter for roster operations.
func RosterOperations() *prometheus.CounterVec {
	RegisterMetrics()
	return rosterOperationsTotal
}

// AuditPurgedEntries exposes the counter for purged audit rows.
func AuditPurgedEntries() prometheus.Counter {
	RegisterMetrics()
	return auditPurgedTotal
}

// AdminRequests exposes the counter for admin requests.
func AdminRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return adminRequestsTotal
}

// AdminLatency exposes the latency histogram for admin requests.
func AdminLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return adminLatencySeconds
}
