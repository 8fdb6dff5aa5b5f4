package duckdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/rbf-sniper/internal/mempool/model"
)

// LedgerTx groups the writes that record one hijack.
type LedgerTx struct {
	tx      *sql.Tx
	metrics Metrics
}

// Begin starts a ledger transaction.
func (l *Ledger) Begin(ctx context.Context) (ltx *LedgerTx, err error) {
	started := time.Now()
	defer func() {
		l.metrics.Observe("begin", err, started)
	}()

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin ledger transaction: %w", err)
	}
	return &LedgerTx{tx: tx, metrics: l.metrics}, nil
}

// InsertHijackTransaction appends a broadcast replacement and returns its id.
func (t *LedgerTx) InsertHijackTransaction(ctx context.Context, h model.HijackTransaction) (id int64, err error) {
	started := time.Now()
	defer func() {
		t.metrics.Observe("insert_hijack_transaction", err, started)
	}()

	const query = `
INSERT INTO hijack_transaction (txid, value, vsize, fee)
VALUES (?, ?, ?, ?)
RETURNING id`

	err = t.tx.QueryRowContext(ctx, query, h.TxID, int64(h.Value), h.VSize, int64(h.Fee)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert hijack transaction %s: %w", h.TxID, err)
	}
	return id, nil
}

// FindVulnerableInputID returns the most recent vulnerable input recorded
// for prevOut, or model.ErrAssociationNotFound.
func (t *LedgerTx) FindVulnerableInputID(ctx context.Context, prevOut model.OutPoint) (id int64, err error) {
	started := time.Now()
	defer func() {
		t.metrics.Observe("find_vulnerable_input_id", err, started)
	}()

	const query = `
SELECT id
FROM vulnerable_input
WHERE prevout_txid = ? AND prevout_index = ?
ORDER BY id DESC
LIMIT 1`

	err = t.tx.QueryRowContext(ctx, query, prevOut.TxID, prevOut.Index).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: %s", model.ErrAssociationNotFound, prevOut)
	}
	if err != nil {
		return 0, fmt.Errorf("find vulnerable input %s: %w", prevOut, err)
	}
	return id, nil
}

// InsertHijackInputSpend links a vulnerable input to a hijack and returns the link id.
func (t *LedgerTx) InsertHijackInputSpend(ctx context.Context, vulnerableInputID, hijackTransactionID int64) (id int64, err error) {
	started := time.Now()
	defer func() {
		t.metrics.Observe("insert_hijack_input_spend", err, started)
	}()

	const query = `
INSERT INTO hijack_input_spend (vulnerable_input_id, hijack_transaction_id)
VALUES (?, ?)
RETURNING id`

	err = t.tx.QueryRowContext(ctx, query, vulnerableInputID, hijackTransactionID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert hijack input spend %d->%d: %w", vulnerableInputID, hijackTransactionID, err)
	}
	return id, nil
}

// Commit makes the transaction's writes durable.
func (t *LedgerTx) Commit() error {
	if err := t.tx.Commit(); err != nil {
		return fmt.Errorf("commit ledger transaction: %w", err)
	}
	return nil
}

// Rollback discards the transaction's writes. Rolling back a finished
// transaction is a no-op.
func (t *LedgerTx) Rollback() error {
	if err := t.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("rollback ledger transaction: %w", err)
	}
	return nil
}
