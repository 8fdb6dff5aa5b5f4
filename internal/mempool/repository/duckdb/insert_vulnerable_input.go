package duckdb

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/rbf-sniper/internal/mempool/model"
)

// InsertVulnerableInput appends one sighting of an eligible input and
// returns its id. Repeated sightings of a prevout are kept as separate rows.
func (l *Ledger) InsertVulnerableInput(ctx context.Context, in model.VulnerableInput) (id int64, err error) {
	started := time.Now()
	defer func() {
		l.metrics.Observe("insert_vulnerable_input", err, started)
	}()

	const query = `
INSERT INTO vulnerable_input (prevout_txid, prevout_index, value, first_seen_spend_txid)
VALUES (?, ?, ?, ?)
RETURNING id`

	err = l.db.QueryRowContext(ctx, query,
		in.PrevOut.TxID,
		in.PrevOut.Index,
		int64(in.Value),
		in.FirstSeenSpendTxID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert vulnerable input %s: %w", in.PrevOut, err)
	}
	return id, nil
}
