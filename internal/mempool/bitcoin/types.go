package bitcoin

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"encoding/json"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/rbf-sniper/internal/mempool/model"
)

type (
	// NodeClient is the subset of *rpcclient.Client used by the gateway.
	NodeClient interface {
		GetBalance(account string) (btcutil.Amount, error)
		GetNewAddress(account string) (btcutil.Address, error)
		GetAddressInfo(address string) (*btcjson.GetAddressInfoResult, error)
		GetRawTransaction(txHash *chainhash.Hash) (*btcutil.Tx, error)
		SendRawTransaction(tx *wire.MsgTx, allowHighFees bool) (*chainhash.Hash, error)
		GetMempoolEntry(txHash string) (*btcjson.GetMempoolEntryResult, error)
		GetTxOut(txHash *chainhash.Hash, index uint32, mempool bool) (*btcjson.GetTxOutResult, error)
		RawRequest(method string, params []json.RawMessage) (json.RawMessage, error)
	}

	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}

	// PrevoutSource looks up the value of a previous output.
	PrevoutSource interface {
		GetRawTransaction(txid string) (*wire.MsgTx, error)
		GetTxOutValue(prevOut model.OutPoint) (btcutil.Amount, error)
	}
)
