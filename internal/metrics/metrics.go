// Package metrics collects and exposes Prometheus metrics for the bid engine.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the metrics interface consumed by the engine and the auditor.
type Recorder interface {
	RecordBidAccepted()
	RecordBidRejected(reason string)
	RecordCommitRetry()
	RecordPlacementLatency(d time.Duration)
	RecordDivergence()
}

// Collector is the Prometheus-backed Recorder implementation.
type Collector struct {
	accepted      prometheus.Counter
	rejected      *prometheus.CounterVec
	commitRetries prometheus.Counter
	latency       prometheus.Histogram
	divergences   prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		accepted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bidengine_bids_accepted_total",
			Help: "Total number of accepted bids",
		}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bidengine_bids_rejected_total",
			Help: "Total number of rejected bids by reason",
		}, []string{"reason"}),
		commitRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bidengine_commit_retries_total",
			Help: "Total number of highest-bid commit retries after a conflict",
		}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bidengine_bid_placement_seconds",
			Help:    "Bid placement latency in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		divergences: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bidengine_ledger_divergences_total",
			Help: "Total number of registry/ledger divergences detected",
		}),
	}

	reg.MustRegister(
		c.accepted,
		c.rejected,
		c.commitRetries,
		c.latency,
		c.divergences,
	)

	return c
}

func (c *Collector) RecordBidAccepted() {
	c.accepted.Inc()
}

func (c *Collector) RecordBidRejected(reason string) {
	c.rejected.WithLabelValues(reason).Inc()
}

func (c *Collector) RecordCommitRetry() {
	c.commitRetries.Inc()
}

func (c *Collector) RecordPlacementLatency(d time.Duration) {
	c.latency.Observe(d.Seconds())
}

func (c *Collector) RecordDivergence() {
	c.divergences.Inc()
}

// Handler returns the HTTP handler serving a Prometheus scrape endpoint.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Noop is a Recorder that drops every observation. Used in tests and as the
// engine default when no collector is wired.
type Noop struct{}

func (Noop) RecordBidAccepted()                     {}
func (Noop) RecordBidRejected(string)               {}
func (Noop) RecordCommitRetry()                     {}
func (Noop) RecordPlacementLatency(_ time.Duration) {}
func (Noop) RecordDivergence()                      {}
