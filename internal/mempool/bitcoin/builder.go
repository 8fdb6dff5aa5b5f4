package bitcoin

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/rbf-sniper/internal/mempool/model"
)

// BuildReplacement spends exactly the eligible inputs of original into a
// single output paying captured-totalFee to destination. Version and lock
// time are carried over; original is left untouched.
func BuildReplacement(
	original model.Transaction,
	eligible []model.Input,
	captured, totalFee btcutil.Amount,
	destination btcutil.Address,
) (model.Transaction, error) {
	if len(eligible) == 0 {
		return model.Transaction{}, errors.New("build replacement: no inputs")
	}
	if destination == nil {
		return model.Transaction{}, errors.New("build replacement: no destination")
	}
	payout := captured - totalFee
	if payout <= 0 {
		return model.Transaction{}, fmt.Errorf("build replacement: payout %d is not positive", payout)
	}

	pkScript, err := txscript.PayToAddrScript(destination)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("build replacement: destination script: %w", err)
	}

	msg := wire.NewMsgTx(original.Version())
	msg.LockTime = original.LockTime()
	for _, in := range eligible {
		prevOut := in.PrevOut()
		hash, err := chainhash.NewHashFromStr(prevOut.TxID)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("build replacement: prevout %s: %w", prevOut, err)
		}
		txIn := wire.NewTxIn(wire.NewOutPoint(hash, prevOut.Index), in.SignatureScript(), in.Witness())
		txIn.Sequence = in.Sequence()
		msg.AddTxIn(txIn)
	}
	msg.AddTxOut(wire.NewTxOut(int64(payout), pkScript))

	tx, err := FromWire(msg, nil)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("build replacement: %w", err)
	}
	return tx, nil
}
