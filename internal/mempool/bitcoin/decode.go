package bitcoin

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/mempool"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/rbf-sniper/internal/mempool/model"
)

// DecodeTransaction parses a serialized transaction, witness data included.
// Malformed input and trailing bytes fail with model.ErrDecode.
func DecodeTransaction(raw []byte) (model.Transaction, error) {
	if len(raw) == 0 {
		return model.Transaction{}, fmt.Errorf("%w: empty payload", model.ErrDecode)
	}

	r := bytes.NewReader(raw)
	msg := wire.NewMsgTx(wire.TxVersion)
	if err := msg.Deserialize(r); err != nil {
		return model.Transaction{}, fmt.Errorf("%w: %v", model.ErrDecode, err)
	}
	if r.Len() != 0 {
		return model.Transaction{}, fmt.Errorf("%w: %d trailing bytes", model.ErrDecode, r.Len())
	}

	tx, err := FromWire(msg, raw)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("%w: %v", model.ErrDecode, err)
	}
	return tx, nil
}

// FromWire converts a wire transaction into the domain model. raw must be
// the witness serialization of msg; it is recomputed when nil.
func FromWire(msg *wire.MsgTx, raw []byte) (model.Transaction, error) {
	if raw == nil {
		var buf bytes.Buffer
		buf.Grow(msg.SerializeSize())
		if err := msg.Serialize(&buf); err != nil {
			return model.Transaction{}, fmt.Errorf("serialize transaction: %w", err)
		}
		raw = buf.Bytes()
	}

	inputs := make([]model.Input, 0, len(msg.TxIn))
	for i, txIn := range msg.TxIn {
		prevOut := model.OutPoint{
			TxID:  txIn.PreviousOutPoint.Hash.String(),
			Index: txIn.PreviousOutPoint.Index,
		}
		in, err := model.NewInput(prevOut, txIn.Sequence, txIn.SignatureScript, txIn.Witness)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("input %d: %w", i, err)
		}
		inputs = append(inputs, in)
	}

	outputs := make([]model.Output, 0, len(msg.TxOut))
	for i, txOut := range msg.TxOut {
		out, err := model.NewOutput(btcutil.Amount(txOut.Value), txOut.PkScript)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("output %d: %w", i, err)
		}
		outputs = append(outputs, out)
	}

	vsize := mempool.GetTxVirtualSize(btcutil.NewTx(msg))
	return model.NewTransaction(msg.TxHash().String(), msg.Version, msg.LockTime, inputs, outputs, vsize, raw)
}

// ToWire parses the serialization carried by tx back into a wire message.
func ToWire(tx model.Transaction) (*wire.MsgTx, error) {
	msg := wire.NewMsgTx(wire.TxVersion)
	if err := msg.Deserialize(bytes.NewReader(tx.Raw())); err != nil {
		return nil, fmt.Errorf("deserialize %s: %w", tx.TxID(), err)
	}
	return msg, nil
}
