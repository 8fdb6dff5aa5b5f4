package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/rbf-sniper/internal/mempool/model"
	"github.com/goodnatureofminers/rbf-sniper/pkg/safe"
)

// InsertObservations stores observation rows in one batch.
func (r *Repository) InsertObservations(ctx context.Context, observations []model.Observation) (err error) {
	start := time.Now()
	coin, network := firstLabels(observations)
	defer func() {
		r.metrics.Observe("insert_observations", coin, network, len(observations), err, start)
	}()

	if len(observations) == 0 {
		return nil
	}

	const query = `
INSERT INTO mempool_observations (
	coin,
	network,
	txid,
	observed_at,
	input_count,
	output_count,
	eligible_input_count,
	output_value,
	vsize,
	outcome,
	captured_value,
	replacement_txid
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare observations batch: %w", err)
	}

	for _, o := range observations {
		var outputValue, capturedValue uint64
		if outputValue, err = safe.Uint64(o.OutputValue); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("observation %s output value: %w", o.TxID, err)
		}
		if capturedValue, err = safe.Uint64(o.CapturedValue); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("observation %s captured value: %w", o.TxID, err)
		}

		if err = batch.Append(
			string(o.Coin),
			string(o.Network),
			o.TxID,
			o.ObservedAt,
			o.InputCount,
			o.OutputCount,
			o.EligibleInputCount,
			outputValue,
			o.VSize,
			string(o.Outcome),
			capturedValue,
			o.ReplacementTxID,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append observation: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert observations: %w", err)
	}
	return nil
}

func firstLabels(observations []model.Observation) (model.Coin, model.Network) {
	if len(observations) == 0 {
		return "", ""
	}
	return observations[0].Coin, observations[0].Network
}
