package duckdb

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/rbf-sniper/internal/mempool/model"
)

// InsertVulnerableTransaction appends a vulnerable transaction and returns its id.
func (l *Ledger) InsertVulnerableTransaction(ctx context.Context, vt model.VulnerableTransaction) (id int64, err error) {
	started := time.Now()
	defer func() {
		l.metrics.Observe("insert_vulnerable_transaction", err, started)
	}()

	const query = `
INSERT INTO vulnerable_transaction (txid, value, vsize, fees)
VALUES (?, ?, ?, ?)
RETURNING id`

	err = l.db.QueryRowContext(ctx, query,
		vt.TxID,
		int64(vt.Value),
		vt.VSize,
		int64(vt.Fees),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert vulnerable transaction %s: %w", vt.TxID, err)
	}
	return id, nil
}
