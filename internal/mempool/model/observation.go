package model

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
)

// Outcome is the terminal state of one pipeline run.
type Outcome string

var (
	OutcomeDecodeFailed      Outcome = "decode_failed"
	OutcomeNoEligibleInputs  Outcome = "no_eligible_inputs"
	OutcomeOwnTransaction    Outcome = "own_transaction"
	OutcomeLookupFailed      Outcome = "lookup_failed"
	OutcomeLedgerFailed      Outcome = "ledger_failed"
	OutcomeNotPending        Outcome = "not_pending"
	OutcomeNotViable         Outcome = "not_viable"
	OutcomeBuildFailed       Outcome = "build_failed"
	OutcomeBroadcastRejected Outcome = "broadcast_rejected"
	OutcomeRecordingFailed   Outcome = "recording_failed"
	OutcomeHijacked          Outcome = "hijacked"
)

// Observation summarizes one processed feed transaction for analytics.
type Observation struct {
	Coin               Coin
	Network            Network
	TxID               string
	ObservedAt         time.Time
	InputCount         uint32
	OutputCount        uint32
	EligibleInputCount uint32
	OutputValue        btcutil.Amount
	VSize              uint32
	Outcome            Outcome
	CapturedValue      btcutil.Amount
	ReplacementTxID    string
}

// MempoolEntry is the part of a mempool residency record the evaluator needs.
type MempoolEntry struct {
	TxID    string
	VSize   int64
	BaseFee btcutil.Amount
}

// Evaluation is the result of the economic evaluation of a capture.
// Viable is false for NotViable results; the amounts are filled either way.
type Evaluation struct {
	Viable        bool
	CapturedValue btcutil.Amount
	MinimumBump   btcutil.Amount
	TotalFee      btcutil.Amount
}

// Payout returns the value left for the replacement output.
func (e Evaluation) Payout() btcutil.Amount {
	return e.CapturedValue - e.TotalFee
}
