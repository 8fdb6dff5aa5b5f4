package bitcoin

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/rbf-sniper/internal/mempool/model"
)

const (
	// allAccounts is the only dummy argument getbalance accepts.
	allAccounts = "*"
	// defaultLabel is the wallet label given to new receiving addresses.
	defaultLabel = ""
)

// RPCClient wraps btc rpcclient with metrics instrumentation and converts
// node answers into integer satoshi amounts.
type RPCClient struct {
	client     NodeClient
	rpcMetrics RPCMetrics
}

// NewRPCClient constructs an instrumented RPC client.
func NewRPCClient(client NodeClient, rpcMetrics RPCMetrics) *RPCClient {
	return &RPCClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

// GetBalance returns the wallet balance.
func (r *RPCClient) GetBalance() (balance btcutil.Amount, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_balance", err, started)
	}()
	return r.client.GetBalance(allAccounts)
}

// GetNewAddress asks the wallet for a fresh receiving address.
func (r *RPCClient) GetNewAddress() (addr btcutil.Address, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_new_address", err, started)
	}()
	return r.client.GetNewAddress(defaultLabel)
}

// IsMine reports whether the wallet controls address.
func (r *RPCClient) IsMine(address btcutil.Address) (mine bool, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_address_info", err, started)
	}()
	info, err := r.client.GetAddressInfo(address.EncodeAddress())
	if err != nil {
		return false, fmt.Errorf("get address info %s: %w", address.EncodeAddress(), err)
	}
	return info.IsMine, nil
}

// GetRawTransaction returns the transaction identified by txid in wire form.
func (r *RPCClient) GetRawTransaction(txid string) (msg *wire.MsgTx, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_raw_transaction", err, started)
	}()
	hash, err := chainhash.NewHashFromStr(txid)
	if err != nil {
		return nil, fmt.Errorf("parse txid %s: %w", txid, err)
	}
	tx, err := r.client.GetRawTransaction(hash)
	if err != nil {
		return nil, fmt.Errorf("get raw transaction %s: %w", txid, err)
	}
	return tx.MsgTx(), nil
}

// GetTxOutValue returns the value of an unspent confirmed output.
func (r *RPCClient) GetTxOutValue(prevOut model.OutPoint) (value btcutil.Amount, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_tx_out", err, started)
	}()
	hash, err := chainhash.NewHashFromStr(prevOut.TxID)
	if err != nil {
		return 0, fmt.Errorf("parse txid %s: %w", prevOut.TxID, err)
	}
	res, err := r.client.GetTxOut(hash, prevOut.Index, false)
	if err != nil {
		return 0, fmt.Errorf("get tx out %s: %w", prevOut, err)
	}
	if res == nil {
		return 0, fmt.Errorf("%w: %s is not in the utxo set", model.ErrLookupFailed, prevOut)
	}
	value, err = btcutil.NewAmount(res.Value)
	if err != nil {
		return 0, fmt.Errorf("tx out %s value: %w", prevOut, err)
	}
	return value, nil
}

// SendRawTransaction broadcasts tx. Any node refusal is reported as
// model.ErrBroadcastRejected.
func (r *RPCClient) SendRawTransaction(tx model.Transaction) (txid string, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("send_raw_transaction", err, started)
	}()
	msg, err := ToWire(tx)
	if err != nil {
		return "", err
	}
	hash, err := r.client.SendRawTransaction(msg, false)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", model.ErrBroadcastRejected, tx.TxID(), err)
	}
	return hash.String(), nil
}

// GetMempoolEntry returns the mempool residency of txid. A transaction that
// already left the mempool yields model.ErrNoLongerPending.
func (r *RPCClient) GetMempoolEntry(txid string) (entry model.MempoolEntry, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_mempool_entry", err, started)
	}()
	res, err := r.client.GetMempoolEntry(txid)
	if err != nil {
		if isNotFound(err) {
			return model.MempoolEntry{}, fmt.Errorf("%w: %s", model.ErrNoLongerPending, txid)
		}
		return model.MempoolEntry{}, fmt.Errorf("get mempool entry %s: %w", txid, err)
	}

	base := res.Fees.Base
	if base == 0 {
		base = res.Fee
	}
	fee, err := btcutil.NewAmount(base)
	if err != nil {
		return model.MempoolEntry{}, fmt.Errorf("mempool entry %s fee: %w", txid, err)
	}
	if res.VSize <= 0 {
		return model.MempoolEntry{}, fmt.Errorf("mempool entry %s: vsize %d is not positive", txid, res.VSize)
	}
	return model.MempoolEntry{TxID: txid, VSize: int64(res.VSize), BaseFee: fee}, nil
}

type mempoolInfo struct {
	MinRelayTxFee float64 `json:"minrelaytxfee"`
}

// MinRelayFeeRate returns the node's minimum relay fee in satoshis per 1000
// virtual bytes.
func (r *RPCClient) MinRelayFeeRate() (rate btcutil.Amount, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_mempool_info", err, started)
	}()
	raw, err := r.client.RawRequest("getmempoolinfo", nil)
	if err != nil {
		return 0, fmt.Errorf("get mempool info: %w", err)
	}
	var info mempoolInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return 0, fmt.Errorf("decode mempool info: %w", err)
	}
	rate, err = btcutil.NewAmount(info.MinRelayTxFee)
	if err != nil {
		return 0, fmt.Errorf("min relay fee: %w", err)
	}
	if rate < 0 {
		return 0, fmt.Errorf("min relay fee %v is negative", rate)
	}
	return rate, nil
}

func isNotFound(err error) bool {
	var rpcErr *btcjson.RPCError
	return errors.As(err, &rpcErr) && rpcErr.Code == btcjson.ErrRPCInvalidAddressOrKey
}
