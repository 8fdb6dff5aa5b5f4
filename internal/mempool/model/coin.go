// Package model defines domain models for mempool capture.
package model

// Coin identifies the chain family a process is attached to.
type Coin string

// Network identifies the network of the attached node.
type Network string

var (
	BTC Coin = "BTC"
)

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Regtest Network = "regtest"
	Signet  Network = "signet"
)
