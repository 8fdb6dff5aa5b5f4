package duckdb

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/rbf-sniper/internal/mempool/model"
)

// VulnerableInputs lists vulnerable inputs in insertion order.
func (l *Ledger) VulnerableInputs(ctx context.Context) (out []model.VulnerableInput, err error) {
	started := time.Now()
	defer func() {
		l.metrics.Observe("vulnerable_inputs", err, started)
	}()

	const query = `
SELECT id, prevout_txid, prevout_index, value, first_seen_spend_txid
FROM vulnerable_input
ORDER BY id`

	rows, err := l.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query vulnerable inputs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			in    model.VulnerableInput
			value int64
		)
		if err = rows.Scan(&in.ID, &in.PrevOut.TxID, &in.PrevOut.Index, &value, &in.FirstSeenSpendTxID); err != nil {
			return nil, fmt.Errorf("scan vulnerable input: %w", err)
		}
		in.Value = btcutil.Amount(value)
		out = append(out, in)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vulnerable inputs: %w", err)
	}
	return out, nil
}

// VulnerableTransactions lists vulnerable transactions in insertion order.
func (l *Ledger) VulnerableTransactions(ctx context.Context) (out []model.VulnerableTransaction, err error) {
	started := time.Now()
	defer func() {
		l.metrics.Observe("vulnerable_transactions", err, started)
	}()

	const query = `
SELECT id, txid, value, vsize, fees
FROM vulnerable_transaction
ORDER BY id`

	rows, err := l.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query vulnerable transactions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			vt          model.VulnerableTransaction
			value, fees int64
		)
		if err = rows.Scan(&vt.ID, &vt.TxID, &value, &vt.VSize, &fees); err != nil {
			return nil, fmt.Errorf("scan vulnerable transaction: %w", err)
		}
		vt.Value = btcutil.Amount(value)
		vt.Fees = btcutil.Amount(fees)
		out = append(out, vt)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vulnerable transactions: %w", err)
	}
	return out, nil
}

// HijackTransactions lists recorded hijacks in insertion order.
func (l *Ledger) HijackTransactions(ctx context.Context) (out []model.HijackTransaction, err error) {
	started := time.Now()
	defer func() {
		l.metrics.Observe("hijack_transactions", err, started)
	}()

	const query = `
SELECT id, txid, value, vsize, fee
FROM hijack_transaction
ORDER BY id`

	rows, err := l.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query hijack transactions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			h          model.HijackTransaction
			value, fee int64
		)
		if err = rows.Scan(&h.ID, &h.TxID, &value, &h.VSize, &fee); err != nil {
			return nil, fmt.Errorf("scan hijack transaction: %w", err)
		}
		h.Value = btcutil.Amount(value)
		h.Fee = btcutil.Amount(fee)
		out = append(out, h)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate hijack transactions: %w", err)
	}
	return out, nil
}

// HijackInputSpends lists input associations of hijackTransactionID, or of
// every hijack when it is zero.
func (l *Ledger) HijackInputSpends(ctx context.Context, hijackTransactionID int64) (out []model.HijackInputSpend, err error) {
	started := time.Now()
	defer func() {
		l.metrics.Observe("hijack_input_spends", err, started)
	}()

	const query = `
SELECT id, vulnerable_input_id, hijack_transaction_id
FROM hijack_input_spend
WHERE ? = 0 OR hijack_transaction_id = ?
ORDER BY id`

	rows, err := l.db.QueryContext(ctx, query, hijackTransactionID, hijackTransactionID)
	if err != nil {
		return nil, fmt.Errorf("query hijack input spends: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s model.HijackInputSpend
		if err = rows.Scan(&s.ID, &s.VulnerableInputID, &s.HijackTransactionID); err != nil {
			return nil, fmt.Errorf("scan hijack input spend: %w", err)
		}
		out = append(out, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate hijack input spends: %w", err)
	}
	return out, nil
}
