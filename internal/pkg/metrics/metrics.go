// Package metrics exposes Prometheus instrumentation for the fulfillment
// workflow.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for transition metrics.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeConflict = "conflict"
	OutcomeError    = "error"
)

var transitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "order_status_transitions_total",
		Help: "Order status transition attempts by target status and outcome.",
	},
	[]string{"target", "outcome"},
)

// ObserveTransition records one transition attempt.
func ObserveTransition(target, outcome string) {
	transitionsTotal.WithLabelValues(target, outcome).Inc()
}

// Handler returns the HTTP handler serving the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
