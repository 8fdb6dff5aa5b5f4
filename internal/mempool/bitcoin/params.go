package bitcoin

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/rbf-sniper/internal/mempool/model"
)

// ChainParams maps a configured network name to btcd chain parameters.
func ChainParams(network model.Network) (*chaincfg.Params, error) {
	switch strings.ToLower(string(network)) {
	case "main", "mainnet", "bitcoin":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}

// FirstOutputAddress decodes the address paid by output 0. It reports false
// for non-standard or multi-key scripts.
func FirstOutputAddress(tx model.Transaction, params *chaincfg.Params) (btcutil.Address, bool) {
	outs := tx.Outputs()
	if len(outs) == 0 {
		return nil, false
	}
	_, addrs, _, err := txscript.ExtractPkScriptAddrs(outs[0].PkScript, params)
	if err != nil || len(addrs) != 1 {
		return nil, false
	}
	return addrs[0], true
}
