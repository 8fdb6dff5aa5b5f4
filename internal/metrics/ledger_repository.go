package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger_repository",
		Name:      "operations_total",
		Help:      "Count of audit ledger operations.",
	}, []string{"operation", "status"})
	ledgerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "ledger_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of audit ledger operations.",
		Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"operation", "status"})
)

// LedgerRepository tracks metrics for the audit ledger.
type LedgerRepository struct{}

// NewLedgerRepository creates a LedgerRepository metrics collector.
func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{}
}

// Observe records duration and status of a ledger operation.
func (m LedgerRepository) Observe(operation string, err error, started time.Time) {
	s := status(err)
	ledgerRequestsTotal.WithLabelValues(operation, s).Inc()
	ledgerRequestDuration.WithLabelValues(operation, s).Observe(time.Since(started).Seconds())
}
