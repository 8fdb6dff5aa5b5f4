package bitcoin

import (
	"fmt"

	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/rbf-sniper/internal/mempool/model"
	"go.uber.org/zap"
)

// annexTag marks an optional trailing taproot witness element that carries
// no spending data.
const annexTag = 0x50

// Classifier selects inputs whose revealed witness can be replayed without
// a fresh signature.
type Classifier struct {
	logger *zap.Logger
}

// NewClassifier constructs a Classifier.
func NewClassifier(logger *zap.Logger) *Classifier {
	return &Classifier{logger: logger}
}

// Classify returns the eligible inputs of tx in their original order.
func (c *Classifier) Classify(tx model.Transaction) []model.Input {
	var eligible []model.Input
	for i, in := range tx.Inputs() {
		ok, err := ClassifyInput(in)
		if err != nil {
			c.logger.Debug("witness script not parsed",
				zap.String("txid", tx.TxID()),
				zap.Int("input", i),
				zap.Error(err),
			)
			continue
		}
		if ok {
			eligible = append(eligible, in)
		}
	}
	return eligible
}

// ClassifyInput reports whether a single input is eligible. A witness script
// that cannot be tokenized yields false and an error wrapping
// model.ErrClassification.
func ClassifyInput(in model.Input) (bool, error) {
	witness := in.Witness()
	n := len(witness)
	if n > 0 && len(witness[n-1]) > 0 && witness[n-1][0] == annexTag {
		n--
	}
	if n <= 1 {
		return false, nil
	}

	script := witness[n-1]
	tokenizer := txscript.MakeScriptTokenizer(0, script)
	for tokenizer.Next() {
		if isSignatureCheck(tokenizer.Opcode()) {
			return false, nil
		}
	}
	if err := tokenizer.Err(); err != nil {
		return false, fmt.Errorf("%w: input %s: %w", model.ErrClassification, in.PrevOut(), err)
	}
	return true, nil
}

func isSignatureCheck(op byte) bool {
	switch op {
	case txscript.OP_CHECKSIG,
		txscript.OP_CHECKSIGVERIFY,
		txscript.OP_CHECKMULTISIG,
		txscript.OP_CHECKMULTISIGVERIFY,
		txscript.OP_CHECKSIGADD:
		return true
	default:
		return false
	}
}
