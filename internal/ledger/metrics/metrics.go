package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for submission counters.
const (
	OutcomeReply    = "reply"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Metrics holds the Prometheus instruments for the pool ledger gateway.
type Metrics struct {
	Submissions    *prometheus.CounterVec
	Retries        prometheus.Counter
	SubmitDuration *prometheus.HistogramVec
	CacheHits      *prometheus.CounterVec
	CacheMisses    *prometheus.CounterVec
}

// New registers the gateway metrics against reg. Pass a fresh registry in
// tests to avoid duplicate registration panics.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "identitychain_ledger_submissions_total",
			Help: "Ledger request submissions by transaction type and outcome",
		}, []string{"txn", "outcome"}),
		Retries: factory.NewCounter(prometheus.CounterOpts{
			Name: "identitychain_ledger_read_retries_total",
			Help: "Read submissions retried while waiting for pool consistency",
		}),
		SubmitDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "identitychain_ledger_submit_duration_seconds",
			Help:    "Latency of ledger request build and submit",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"txn"}),
		CacheHits: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "identitychain_ledger_cache_hits_total",
			Help: "Immutable entity lookups served from cache",
		}, []string{"entity"}),
		CacheMisses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "identitychain_ledger_cache_misses_total",
			Help: "Immutable entity lookups that went to the pool",
		}, []string{"entity"}),
	}
}

// ObserveSubmission records one submission outcome with its latency.
func (m *Metrics) ObserveSubmission(txn, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Submissions.WithLabelValues(txn, outcome).Inc()
	m.SubmitDuration.WithLabelValues(txn).Observe(elapsed.Seconds())
}

// AddRetries records read submissions beyond the first attempt.
func (m *Metrics) AddRetries(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.Retries.Add(float64(n))
}

// CacheHit and CacheMiss record cache effectiveness per entity kind.
func (m *Metrics) CacheHit(entity string) {
	if m == nil {
		return
	}
	m.CacheHits.WithLabelValues(entity).Inc()
}

func (m *Metrics) CacheMiss(entity string) {
	if m == nil {
		return
	}
	m.CacheMisses.WithLabelValues(entity).Inc()
}
