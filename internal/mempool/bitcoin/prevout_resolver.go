package bitcoin

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/rbf-sniper/internal/mempool/model"
	"github.com/goodnatureofminers/rbf-sniper/pkg/workerpool"
)

// PrevoutResolver looks up the values spent by a set of inputs.
type PrevoutResolver struct {
	source  PrevoutSource
	workers int
}

// NewPrevoutResolver constructs a resolver running up to workers lookups at once.
func NewPrevoutResolver(source PrevoutSource, workers int) *PrevoutResolver {
	return &PrevoutResolver{source: source, workers: workers}
}

// Resolve returns one value per input in input order. Any failed lookup
// fails the whole call with model.ErrLookupFailed.
func (p *PrevoutResolver) Resolve(ctx context.Context, inputs []model.Input) ([]btcutil.Amount, error) {
	values, err := workerpool.Map(ctx, p.workers, inputs, func(_ context.Context, in model.Input) (btcutil.Amount, error) {
		return p.lookup(in.PrevOut())
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrLookupFailed, err)
	}
	return values, nil
}

func (p *PrevoutResolver) lookup(prevOut model.OutPoint) (btcutil.Amount, error) {
	msg, rawErr := p.source.GetRawTransaction(prevOut.TxID)
	if rawErr == nil {
		if int(prevOut.Index) >= len(msg.TxOut) {
			return 0, fmt.Errorf("prevout %s: transaction has %d outputs", prevOut, len(msg.TxOut))
		}
		return btcutil.Amount(msg.TxOut[prevOut.Index].Value), nil
	}

	value, err := p.source.GetTxOutValue(prevOut)
	if err != nil {
		return 0, fmt.Errorf("prevout %s: %v; fallback: %w", prevOut, rawErr, err)
	}
	return value, nil
}
