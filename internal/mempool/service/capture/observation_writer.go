package capture

import (
	"context"
	"time"

	"github.com/goodnatureofminers/rbf-sniper/internal/mempool/model"
	"github.com/goodnatureofminers/rbf-sniper/pkg/batcher"
	"go.uber.org/zap"
)

// ObservationWriterConfig controls how observations are batched.
type ObservationWriterConfig struct {
	FlushSize     int
	FlushInterval time.Duration
	RPS           int
}

// DefaultObservationWriterConfig returns the default batching settings.
func DefaultObservationWriterConfig() ObservationWriterConfig {
	return ObservationWriterConfig{
		FlushSize:     1000,
		FlushInterval: 5 * time.Second,
		RPS:           5,
	}
}

// ObservationWriter queues observations for asynchronous batch inserts.
// Emit never blocks the pipeline: when the buffer is full the observation
// is dropped and counted.
type ObservationWriter struct {
	batcher *batcher.Batcher[model.Observation]
	metrics Metrics
	logger  *zap.Logger
}

// NewObservationWriter constructs an ObservationWriter over repo.
func NewObservationWriter(repo ObservationRepository, cfg ObservationWriterConfig, metrics Metrics, logger *zap.Logger) *ObservationWriter {
	if cfg.FlushSize <= 0 || cfg.FlushInterval <= 0 {
		cfg = DefaultObservationWriterConfig()
	}
	return &ObservationWriter{
		batcher: batcher.New(logger, repo.InsertObservations, cfg.FlushSize, cfg.FlushInterval, cfg.RPS),
		metrics: metrics,
		logger:  logger,
	}
}

// Start begins flushing in the background.
func (w *ObservationWriter) Start(ctx context.Context) {
	w.batcher.Start(ctx)
}

// Stop flushes queued observations and waits for the writer to finish.
func (w *ObservationWriter) Stop() {
	w.batcher.Stop()
}

// Emit queues obs without blocking.
func (w *ObservationWriter) Emit(obs model.Observation) {
	if w.batcher.TryAdd(obs) {
		return
	}
	w.metrics.ObserveObservationDropped()
	w.logger.Debug("observation dropped", zap.String("txid", obs.TxID))
}

type discardObservations struct{}

func (discardObservations) Emit(model.Observation) {}
