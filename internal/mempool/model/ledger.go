package model

import "github.com/btcsuite/btcd/btcutil"

// VulnerableInput records an input whose spending data was seen in public.
// Sightings are appended, the same prevout may be recorded more than once.
type VulnerableInput struct {
	ID                 int64
	PrevOut            OutPoint
	Value              btcutil.Amount
	FirstSeenSpendTxID string
}

// VulnerableTransaction records a mempool transaction that carried eligible inputs.
type VulnerableTransaction struct {
	ID    int64
	TxID  string
	Value btcutil.Amount
	VSize int64
	Fees  btcutil.Amount
}

// HijackTransaction records a replacement accepted by the node.
type HijackTransaction struct {
	ID    int64
	TxID  string
	Value btcutil.Amount
	VSize int64
	Fee   btcutil.Amount
}

// HijackInputSpend links a vulnerable input to the hijack that consumed it.
type HijackInputSpend struct {
	ID                  int64
	VulnerableInputID   int64
	HijackTransactionID int64
}
