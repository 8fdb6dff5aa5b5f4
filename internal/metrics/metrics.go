// Package metrics exposes application metrics collectors.
package metrics

import "github.com/goodnatureofminers/rbf-sniper/internal/mempool/model"

const namespace = "rbf_sniper"

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func labels(coin model.Coin, network model.Network) (string, string) {
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return string(coin), string(network)
}
