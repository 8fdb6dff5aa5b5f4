package capture

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/rbf-sniper/internal/mempool/model"
)

// DustLimit is the smallest payout worth a replacement. A payout equal to it
// is not viable.
const DustLimit btcutil.Amount = 546

// EvaluateFees decides viability from integer satoshi amounts. The fee rate
// is in satoshis per 1000 virtual bytes; the bump is rounded up so the
// replacement never pays below the relay minimum.
func EvaluateFees(captured, baseFee, feeRatePerKvB btcutil.Amount, vsize int64) model.Evaluation {
	bump := MinimumBump(feeRatePerKvB, vsize)
	total := baseFee + bump
	return model.Evaluation{
		Viable:        captured-total > DustLimit,
		CapturedValue: captured,
		MinimumBump:   bump,
		TotalFee:      total,
	}
}

// MinimumBump returns ceil(feeRatePerKvB * vsize / 1000).
func MinimumBump(feeRatePerKvB btcutil.Amount, vsize int64) btcutil.Amount {
	if feeRatePerKvB <= 0 || vsize <= 0 {
		return 0
	}
	return btcutil.Amount((int64(feeRatePerKvB)*vsize + 999) / 1000)
}

// Evaluator gathers the node state a capture decision depends on.
type Evaluator struct {
	resolver PrevoutResolver
	gateway  Gateway
}

// NewEvaluator constructs an Evaluator.
func NewEvaluator(resolver PrevoutResolver, gateway Gateway) *Evaluator {
	return &Evaluator{resolver: resolver, gateway: gateway}
}

// Resolve returns the value of every eligible input and their sum.
func (e *Evaluator) Resolve(ctx context.Context, eligible []model.Input) ([]btcutil.Amount, btcutil.Amount, error) {
	values, err := e.resolver.Resolve(ctx, eligible)
	if err != nil {
		return nil, 0, err
	}
	if len(values) != len(eligible) {
		return nil, 0, fmt.Errorf("%w: resolved %d of %d inputs", model.ErrLookupFailed, len(values), len(eligible))
	}

	var captured btcutil.Amount
	for _, v := range values {
		captured += v
	}
	return values, captured, nil
}

// MempoolState fetches the residency record of txid. A transaction that left
// the mempool yields model.ErrNoLongerPending.
func (e *Evaluator) MempoolState(ctx context.Context, txid string) (model.MempoolEntry, error) {
	if err := ctx.Err(); err != nil {
		return model.MempoolEntry{}, err
	}
	return e.gateway.GetMempoolEntry(txid)
}

// Evaluate prices a replacement of entry that captures the given value.
func (e *Evaluator) Evaluate(ctx context.Context, entry model.MempoolEntry, captured btcutil.Amount) (model.Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return model.Evaluation{}, err
	}
	rate, err := e.gateway.MinRelayFeeRate()
	if err != nil {
		return model.Evaluation{}, fmt.Errorf("min relay fee rate: %w", err)
	}
	return EvaluateFees(captured, entry.BaseFee, rate, entry.VSize), nil
}
