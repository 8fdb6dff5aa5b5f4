package metrics

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/rbf-sniper/internal/mempool/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	captureTransactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "capture",
		Name:      "transactions_total",
		Help:      "Count of mempool transactions handled, by outcome.",
	}, []string{"coin", "network", "outcome"})

	captureHandleDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "capture",
		Name:      "handle_duration_seconds",
		Help:      "Duration of handling one mempool transaction.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "outcome"})

	captureEligibleInputs = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "capture",
		Name:      "eligible_inputs",
		Help:      "Number of eligible inputs per vulnerable transaction.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
	}, []string{"coin", "network"})

	captureValueSatoshis = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "capture",
		Name:      "captured_satoshis_total",
		Help:      "Satoshis paid to the wallet by broadcast replacements.",
	}, []string{"coin", "network"})

	captureObservationsDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "capture",
		Name:      "observations_dropped_total",
		Help:      "Observations not queued because the sink buffer was full.",
	}, []string{"coin", "network"})
)

// Capture tracks metrics for the capture pipeline.
type Capture struct {
	coin    string
	network string
}

// NewCapture constructs a Capture collector.
func NewCapture(coin model.Coin, network model.Network) *Capture {
	c, n := labels(coin, network)
	return &Capture{coin: c, network: n}
}

// ObserveHandle records the outcome and duration of one handled transaction.
func (m Capture) ObserveHandle(outcome model.Outcome, started time.Time) {
	captureTransactionsTotal.WithLabelValues(m.coin, m.network, string(outcome)).Inc()
	captureHandleDuration.WithLabelValues(m.coin, m.network, string(outcome)).
		Observe(time.Since(started).Seconds())
}

// ObserveEligible records the eligible input count of a vulnerable transaction.
func (m Capture) ObserveEligible(inputs int) {
	captureEligibleInputs.WithLabelValues(m.coin, m.network).Observe(float64(inputs))
}

// ObserveCaptured adds the payout of a broadcast replacement.
func (m Capture) ObserveCaptured(value btcutil.Amount) {
	if value <= 0 {
		return
	}
	captureValueSatoshis.WithLabelValues(m.coin, m.network).Add(float64(value))
}

// ObserveObservationDropped counts an observation lost to a full sink buffer.
func (m Capture) ObserveObservationDropped() {
	captureObservationsDropped.WithLabelValues(m.coin, m.network).Inc()
}
