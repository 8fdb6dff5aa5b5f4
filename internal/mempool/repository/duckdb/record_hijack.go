package duckdb

import (
	"context"
	"time"

	"github.com/goodnatureofminers/rbf-sniper/internal/mempool/model"
)

// RecordHijack stores a hijack and one input spend per consumed prevout in a
// single transaction. If any prevout has no vulnerable input record nothing
// is written and the error wraps model.ErrAssociationNotFound.
func (l *Ledger) RecordHijack(
	ctx context.Context,
	hijack model.HijackTransaction,
	prevOuts []model.OutPoint,
) (recorded model.HijackTransaction, spends []model.HijackInputSpend, err error) {
	started := time.Now()
	defer func() {
		l.metrics.Observe("record_hijack", err, started)
	}()

	tx, err := l.Begin(ctx)
	if err != nil {
		return model.HijackTransaction{}, nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	hijackID, err := tx.InsertHijackTransaction(ctx, hijack)
	if err != nil {
		return model.HijackTransaction{}, nil, err
	}

	spends = make([]model.HijackInputSpend, 0, len(prevOuts))
	for _, prevOut := range prevOuts {
		var inputID, spendID int64
		inputID, err = tx.FindVulnerableInputID(ctx, prevOut)
		if err != nil {
			return model.HijackTransaction{}, nil, err
		}
		spendID, err = tx.InsertHijackInputSpend(ctx, inputID, hijackID)
		if err != nil {
			return model.HijackTransaction{}, nil, err
		}
		spends = append(spends, model.HijackInputSpend{
			ID:                  spendID,
			VulnerableInputID:   inputID,
			HijackTransactionID: hijackID,
		})
	}

	if err = tx.Commit(); err != nil {
		return model.HijackTransaction{}, nil, err
	}

	hijack.ID = hijackID
	return hijack, spends, nil
}
