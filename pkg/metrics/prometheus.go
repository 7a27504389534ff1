package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	fetches   *prometheus.CounterVec
	errors    *prometheus.CounterVec
	lastPrice *prometheus.GaugeVec
	latency   *prometheus.HistogramVec
	tracked   prometheus.Gauge
}

// New creates a Prometheus metrics recorder registered on reg.
// Pass prometheus.DefaultRegisterer in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		fetches: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tickerboard_fetch_total",
				Help: "Quote fetch attempts by tier and outcome",
			},
			[]string{"tier", "outcome"},
		),
		errors: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tickerboard_errors_total",
				Help: "Total number of classified fetch errors",
			},
			[]string{"kind"},
		),
		lastPrice: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "tickerboard_last_price",
				Help: "Last resolved price for a symbol",
			},
			[]string{"symbol"},
		),
		latency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tickerboard_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		tracked: f.NewGauge(prometheus.GaugeOpts{
			Name: "tickerboard_tracked_tickers",
			Help: "Number of tickers currently on the board",
		}),
	}
}

// RecordFetch records one source attempt.
func (r *Recorder) RecordFetch(tier, outcome string) {
	r.fetches.WithLabelValues(tier, outcome).Inc()
}

// RecordError records a classified error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errors.WithLabelValues(kind).Inc()
}

// RecordLastPrice records the last price for a symbol.
func (r *Recorder) RecordLastPrice(symbol string, price float64) {
	r.lastPrice.WithLabelValues(symbol).Set(price)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}

// SetTracked records the current board size.
func (r *Recorder) SetTracked(n int) {
	r.tracked.Set(float64(n))
}
