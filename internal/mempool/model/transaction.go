package model

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
)

// OutPoint references a previous transaction output.
type OutPoint struct {
	TxID  string
	Index uint32
}

// NewOutPoint validates txid and returns an OutPoint.
func NewOutPoint(txid string, index uint32) (OutPoint, error) {
	if len(txid) != 64 {
		return OutPoint{}, fmt.Errorf("txid %q: want 64 hex characters, got %d", txid, len(txid))
	}
	if _, err := hex.DecodeString(txid); err != nil {
		return OutPoint{}, fmt.Errorf("txid %q: %w", txid, err)
	}
	return OutPoint{TxID: txid, Index: index}, nil
}

func (o OutPoint) String() string {
	return fmt.Sprintf("%s:%d", o.TxID, o.Index)
}

// Input is a transaction input as observed on the wire. Values are immutable;
// accessors hand out copies.
type Input struct {
	prevOut         OutPoint
	sequence        uint32
	signatureScript []byte
	witness         [][]byte
}

// NewInput builds an Input, copying the signature script and witness items.
func NewInput(prevOut OutPoint, sequence uint32, signatureScript []byte, witness [][]byte) (Input, error) {
	if _, err := NewOutPoint(prevOut.TxID, prevOut.Index); err != nil {
		return Input{}, fmt.Errorf("input prevout: %w", err)
	}
	return Input{
		prevOut:         prevOut,
		sequence:        sequence,
		signatureScript: cloneBytes(signatureScript),
		witness:         cloneWitness(witness),
	}, nil
}

// PrevOut returns the output spent by the input.
func (in Input) PrevOut() OutPoint { return in.prevOut }

// Sequence returns the input sequence number.
func (in Input) Sequence() uint32 { return in.sequence }

// SignatureScript returns a copy of the legacy signature script.
func (in Input) SignatureScript() []byte { return cloneBytes(in.signatureScript) }

// Witness returns a copy of the witness stack.
func (in Input) Witness() [][]byte { return cloneWitness(in.witness) }

// WitnessLen returns the number of witness items without copying them.
func (in Input) WitnessLen() int { return len(in.witness) }

// Output is a transaction output.
type Output struct {
	Value    btcutil.Amount
	PkScript []byte
}

// NewOutput validates the amount range and copies the locking script.
func NewOutput(value btcutil.Amount, pkScript []byte) (Output, error) {
	if value < 0 {
		return Output{}, fmt.Errorf("output value %d is negative", value)
	}
	if value > btcutil.MaxSatoshi {
		return Output{}, fmt.Errorf("output value %d exceeds max money", value)
	}
	return Output{Value: value, PkScript: cloneBytes(pkScript)}, nil
}

// Transaction is a decoded transaction. It is never mutated after construction;
// building a replacement yields a new Transaction.
type Transaction struct {
	txID     string
	version  int32
	lockTime uint32
	inputs   []Input
	outputs  []Output
	vsize    int64
	raw      []byte
}

// NewTransaction assembles a Transaction from its parts.
func NewTransaction(txid string, version int32, lockTime uint32, inputs []Input, outputs []Output, vsize int64, raw []byte) (Transaction, error) {
	if _, err := NewOutPoint(txid, 0); err != nil {
		return Transaction{}, fmt.Errorf("transaction id: %w", err)
	}
	if len(inputs) == 0 {
		return Transaction{}, errors.New("transaction has no inputs")
	}
	if len(outputs) == 0 {
		return Transaction{}, errors.New("transaction has no outputs")
	}
	if len(raw) == 0 {
		return Transaction{}, errors.New("transaction serialization is empty")
	}
	if vsize <= 0 {
		return Transaction{}, fmt.Errorf("transaction vsize %d is not positive", vsize)
	}

	outs := make([]Output, len(outputs))
	for i, out := range outputs {
		outs[i] = Output{Value: out.Value, PkScript: cloneBytes(out.PkScript)}
	}

	return Transaction{
		txID:     txid,
		version:  version,
		lockTime: lockTime,
		inputs:   append([]Input(nil), inputs...),
		outputs:  outs,
		vsize:    vsize,
		raw:      cloneBytes(raw),
	}, nil
}

// TxID returns the transaction id in RPC byte order.
func (t Transaction) TxID() string { return t.txID }

// Version returns the transaction version.
func (t Transaction) Version() int32 { return t.version }

// LockTime returns the transaction lock time.
func (t Transaction) LockTime() uint32 { return t.lockTime }

// VSize returns the virtual size in vbytes.
func (t Transaction) VSize() int64 { return t.vsize }

// Raw returns a copy of the serialized transaction.
func (t Transaction) Raw() []byte { return cloneBytes(t.raw) }

// Inputs returns the inputs in original order.
func (t Transaction) Inputs() []Input { return append([]Input(nil), t.inputs...) }

// Outputs returns copies of the outputs in original order.
func (t Transaction) Outputs() []Output {
	outs := make([]Output, len(t.outputs))
	for i, out := range t.outputs {
		outs[i] = Output{Value: out.Value, PkScript: cloneBytes(out.PkScript)}
	}
	return outs
}

// OutputValue sums the values of all outputs.
func (t Transaction) OutputValue() btcutil.Amount {
	var total btcutil.Amount
	for _, out := range t.outputs {
		total += out.Value
	}
	return total
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}

func cloneWitness(w [][]byte) [][]byte {
	if len(w) == 0 {
		return nil
	}
	out := make([][]byte, len(w))
	for i, item := range w {
		out[i] = cloneBytes(item)
	}
	return out
}
